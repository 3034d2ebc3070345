package expr

import (
	"errors"

	"github.com/wildfunctions/symbolics/pkg/numeric"
)

var (
	// ErrPrecondition indicates an operation was given a tree that does not
	// have the shape it requires.
	ErrPrecondition = errors.New("precondition violated")

	// ErrDivideByZero indicates a literal zero divisor.
	ErrDivideByZero = numeric.ErrDivideByZero

	// ErrUnsupported indicates an operation that is not implemented for the
	// given input.
	ErrUnsupported = errors.New("not supported")

	// ErrInternal indicates a broken internal invariant, such as a node of a
	// variant outside the closed set.
	ErrInternal = errors.New("internal error")

	// ErrDepthExceeded indicates a tree deeper than the configured limit.
	ErrDepthExceeded = errors.New("tree depth limit exceeded")

	// ErrUnbound indicates evaluation met a variable with no binding.
	ErrUnbound = errors.New("unbound variable")
)
