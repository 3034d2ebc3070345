package engine

import (
	"github.com/wildfunctions/symbolics/pkg/expr"
)

// Classify returns the name of every shape node matches, in a fixed order. A
// simplified polynomial also reports its degree.
func Classify[T any](s *expr.Symbolics[T], node expr.Node[T]) []string {
	predicates := []struct {
		name string
		test func(expr.Node[T]) bool
	}{
		{"term", s.IsSimplifiedTerm},
		{"polynomial", s.IsSimplifiedPolynomial},
		{"linear", s.IsSimplifiedLinearFunction},
		{"quadratic", s.IsSimplifiedQuadraticFunction},
		{"cubic", s.IsSimplifiedCubicFunction},
		{"quartic", s.IsSimplifiedQuarticFunction},
		{"quintic", s.IsSimplifiedQuinticFunction},
		{"sextic", s.IsSimplifiedSexticFunction},
		{"power", s.IsSimplifiedPowerFunction},
		{"rational", s.IsSimplifiedRationalFunction},
		{"exponential", s.IsSimplifiedExponentialFunction},
		{"logarithmic", s.IsSimplifiedLogarithmicFunction},
		{"sinusoidal", s.IsSimplifiedSinusoidalFunction},
		{"algebraic", s.IsValidAlgebraicExpression},
		{"polynomial-like", s.IsSimplifiableToPolynomial},
	}

	var names []string
	for _, p := range predicates {
		if p.test(node) {
			names = append(names, p.name)
		}
	}
	if degree, err := s.Degree(node); err == nil {
		names = append(names, "degree="+s.Numeric().Format(degree))
	}
	return names
}
