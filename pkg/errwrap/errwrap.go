// Package errwrap builds the error chains the rest of the module returns.
// Context is layered on with pkg/errors and independent failures are
// gathered with go-multierror, so errors.Is still finds every sentinel.
package errwrap

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
)

// Wrapf prefixes err with a formatted message. A nil err stays nil, so it can
// wrap the result of a call without checking it first.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Append gathers err into acc. Either side may be nil; a single non-nil error
// is returned untouched and only a second one creates a list.
func Append(acc, err error) error {
	switch {
	case err == nil:
		return acc
	case acc == nil:
		return err
	}
	return multierror.Append(acc, err)
}

// Count is the number of failures gathered in err: zero for nil, the list
// length for a result of Append, and one otherwise.
func Count(err error) int {
	if err == nil {
		return 0
	}
	var list *multierror.Error
	if errors.As(err, &list) {
		return list.Len()
	}
	return 1
}

// String is err's message, or "" for nil.
func String(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
