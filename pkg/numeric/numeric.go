// Package numeric holds the arithmetic facade the symbolic engine folds
// constants through. The engine never touches values of T directly; every
// comparison and operation is routed through an Arithmetic[T].
package numeric

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDivideByZero is returned when a divisor is zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrNotRepresentable is returned when a result exists mathematically
	// but cannot be held by the numeric type (eg: 2^(1/2) as a rational).
	ErrNotRepresentable = errors.New("result not representable")

	// ErrSyntax is returned by Parse for malformed numerals.
	ErrSyntax = errors.New("invalid numeral")
)

// Arithmetic is the set of operations the engine needs from a numeric type.
// Implementations must be stateless and must never mutate their arguments.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	Divide(a, b T) (T, error)
	Power(a, b T) (T, error)
	Negate(a T) T

	Compare(a, b T) int
	Equal(a, b T) bool
	Sign(a T) int
	IsInteger(a T) bool
	IsNonNegative(a T) bool

	FromInt64(v int64) T
	Parse(s string) (T, error)
	Format(v T) string
}

// Transcendental is implemented by facades that can evaluate the non
// algebraic functions. It is optional.
type Transcendental[T any] interface {
	Sin(a T) (T, error)
	Cos(a T) (T, error)
	Tan(a T) (T, error)
	Log(a T) (T, error)
	Exp(a T) (T, error)
	Sqrt(a T) (T, error)
}

// Facade names a numeric implementation chosen at runtime.
type Facade string

const (
	// RationalFacade is exact *big.Rat arithmetic.
	RationalFacade Facade = "rational"

	// FloatFacade is float64 arithmetic.
	FloatFacade Facade = "float"
)

// Lookup validates a facade name.
func Lookup(name string) (Facade, error) {
	switch f := Facade(name); f {
	case RationalFacade, FloatFacade:
		return f, nil
	}
	return "", fmt.Errorf("unknown numeric facade: %s (available: %v)", name, Names())
}

// Names returns the available facade names.
func Names() []string {
	names := []string{string(RationalFacade), string(FloatFacade)}
	sort.Strings(names)
	return names
}
