package expr

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 3x^2 + 2x + 1
func quadratic() Node[R] {
	return Add(
		Node[R](Add(
			Node[R](Mul(c(3), Node[R](Pow(x(), c(2))))),
			Node[R](Mul(c(2), x())),
		)),
		c(1),
	)
}

func TestPolynomialClassification(t *testing.T) {
	s := newRat()
	p := quadratic()

	if !s.IsSimplifiedPolynomial(p) {
		t.Fatalf("%s should be a simplified polynomial", p)
	}
	d, err := s.Degree(p)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	if d.Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("Degree = %s, want 2", d.RatString())
	}
	if diff := cmp.Diff([]string{"x"}, Variables(p)); diff != "" {
		t.Errorf("Variables (-want +got):\n%s", diff)
	}
	if !s.IsSimplifiedQuadraticFunction(p) {
		t.Error("expected a quadratic function")
	}
	if s.IsSimplifiedLinearFunction(p) {
		t.Error("quadratic classified as linear")
	}
}

func TestIsSimplifiedTerm(t *testing.T) {
	s := newRat()
	tests := []struct {
		name string
		node Node[R]
		want bool
	}{
		{"constant", c(4), true},
		{"variable", x(), true},
		{"x^2", Pow(x(), c(2)), true},
		{"x * x", Mul(x(), x()), false},
		{"x * x^2", Mul(x(), Node[R](Pow(x(), c(2)))), false},
		{"3xy", Mul(Node[R](Mul(c(3), x())), v("y")), true},
		{"two coefficients", Mul(c(2), Node[R](Mul(c(3), x()))), false},
		{"negated", Neg(Node[R](Mul(c(2), x()))), true},
		{"fractional exponent", Pow(x(), frac(1, 2)), false},
		{"negative exponent", Pow(x(), c(-1)), false},
		{"variable exponent", Pow(x(), v("n")), false},
		{"constant base", Pow(c(2), c(3)), false},
		{"sum", Add(x(), c(1)), false},
		{"quotient", Div(x(), c(2)), false},
		{"sine", Sin(x()), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsSimplifiedTerm(tc.node); got != tc.want {
				t.Errorf("IsSimplifiedTerm(%s) = %v, want %v", tc.node, got, tc.want)
			}
		})
	}
}

func TestIsSimplifiedPolynomial(t *testing.T) {
	s := newRat()
	tests := []struct {
		name string
		node Node[R]
		want bool
	}{
		{"constant", c(1), true},
		{"variable", x(), true},
		{"x - y", Sub(x(), v("y")), true},
		{"-x + 1", Add(Node[R](Neg(x())), c(1)), true},
		{"negated sum", Neg(Node[R](Add(x(), c(1)))), true},
		{"x + x", Add(x(), x()), false},
		{"2 + 3", Add(c(2), c(3)), true},
		{"x + 1 + 2", Add(Node[R](Add(x(), c(1))), c(2)), true},
		{"x^2 - 3x^2", Sub(Node[R](Pow(x(), c(2))), Node[R](Mul(c(3), Node[R](Pow(x(), c(2)))))), false},
		{"xy + x", Add(Node[R](Mul(x(), v("y"))), x()), false},
		{"x^2 + y^2", Add(Node[R](Pow(x(), c(2))), Node[R](Pow(v("y"), c(2)))), true},
		{"x * (x + 1)", Mul(x(), Node[R](Add(x(), c(1)))), false},
		{"sin(x) + 1", Add(Node[R](Sin(x())), c(1)), false},
		{"x / 2", Div(x(), c(2)), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsSimplifiedPolynomial(tc.node); got != tc.want {
				t.Errorf("IsSimplifiedPolynomial(%s) = %v, want %v", tc.node, got, tc.want)
			}
		})
	}
}

func TestDegree(t *testing.T) {
	s := newRat()
	tests := []struct {
		name string
		node Node[R]
		want int64
	}{
		{"constant", c(5), 0},
		{"variable", x(), 1},
		{"linear", Add(Node[R](Mul(c(2), x())), c(1)), 1},
		{"cubic", Sub(Node[R](Pow(x(), c(3))), x()), 3},
		{"two variables", Add(Node[R](Pow(x(), c(2))), Node[R](Pow(v("y"), c(4)))), 4},
		{"negated", Neg(Node[R](Pow(x(), c(5)))), 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Degree(tc.node)
			if err != nil {
				t.Fatalf("Degree(%s): %v", tc.node, err)
			}
			if got.Cmp(big.NewRat(tc.want, 1)) != 0 {
				t.Errorf("Degree(%s) = %s, want %d", tc.node, got.RatString(), tc.want)
			}
		})
	}

	if _, err := s.Degree(Sin(x())); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Degree(sin(x)): expected ErrPrecondition, got %v", err)
	}
}

func TestFixedDegreeFunctions(t *testing.T) {
	s := newRat()
	pow := func(n int64) Node[R] { return Add(Node[R](Pow(x(), c(n))), c(1)) }
	checks := []struct {
		name string
		fn   func(Node[R]) bool
		deg  int64
	}{
		{"linear", s.IsSimplifiedLinearFunction, 1},
		{"quadratic", s.IsSimplifiedQuadraticFunction, 2},
		{"cubic", s.IsSimplifiedCubicFunction, 3},
		{"quartic", s.IsSimplifiedQuarticFunction, 4},
		{"quintic", s.IsSimplifiedQuinticFunction, 5},
		{"sextic", s.IsSimplifiedSexticFunction, 6},
	}
	for _, check := range checks {
		for deg := int64(2); deg <= 6; deg++ {
			if got, want := check.fn(pow(deg)), deg == check.deg; got != want {
				t.Errorf("%s(%s) = %v, want %v", check.name, pow(deg), got, want)
			}
		}
	}

	if !s.IsSimplifiedLinearFunction(Sub(Node[R](Mul(c(2), x())), c(7))) {
		t.Error("2x - 7 should be linear")
	}
	// two variables
	if s.IsSimplifiedQuadraticFunction(Add(Node[R](Pow(x(), c(2))), v("y"))) {
		t.Error("x^2 + y is not a single-variable quadratic")
	}
	if s.IsSimplifiedLinearFunction(c(3)) {
		t.Error("a constant is not linear")
	}
}

func TestPowerAndRationalFunctions(t *testing.T) {
	s := newRat()
	if !s.IsSimplifiedPowerFunction(Mul(c(3), Node[R](Pow(x(), c(4))))) {
		t.Error("3x^4 should be a power function")
	}
	if s.IsSimplifiedPowerFunction(Add(Node[R](Pow(x(), c(2))), c(1))) {
		t.Error("two terms is not a power function")
	}
	if s.IsSimplifiedPowerFunction(Mul(x(), v("y"))) {
		t.Error("two variables is not a power function")
	}

	if !s.IsSimplifiedRationalFunction(Div(Node[R](Add(x(), c(1))), Node[R](Pow(x(), c(2))))) {
		t.Error("(x + 1) / x^2 should be a rational function")
	}
	if s.IsSimplifiedRationalFunction(Div(Node[R](Sin(x())), x())) {
		t.Error("sin(x) / x is not a rational function")
	}
	if s.IsSimplifiedRationalFunction(quadratic()) {
		t.Error("a polynomial without a division is not a rational function")
	}
}

func TestCoefficient(t *testing.T) {
	s := newRat()
	tests := []struct {
		name string
		node Node[R]
		want *big.Rat
	}{
		{"explicit", Mul(c(3), Node[R](Pow(x(), c(2)))), big.NewRat(3, 1)},
		{"trailing", Mul(x(), frac(1, 2)), big.NewRat(1, 2)},
		{"implicit", x(), big.NewRat(1, 1)},
		{"constant", c(7), big.NewRat(7, 1)},
		{"negated variable", Neg(x()), big.NewRat(-1, 1)},
		{"negated product", Neg(Node[R](Mul(c(4), x()))), big.NewRat(-4, 1)},
		{"inner negation", Mul(Node[R](Neg(x())), c(3)), big.NewRat(-3, 1)},
		{"double negation", Neg(Node[R](Neg(x()))), big.NewRat(1, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Coefficient(tc.node)
			if err != nil {
				t.Fatalf("Coefficient(%s): %v", tc.node, err)
			}
			if got.Cmp(tc.want) != 0 {
				t.Errorf("Coefficient(%s) = %s, want %s", tc.node, got.RatString(), tc.want.RatString())
			}
		})
	}

	if _, err := s.Coefficient(Mul(x(), x())); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected ErrPrecondition, got %v", err)
	}
}

func TestTerms(t *testing.T) {
	s := newRat()
	tests := []struct {
		name string
		node Node[R]
		want []Node[R]
	}{
		{"single", x(), []Node[R]{x()}},
		{"quadratic", quadratic(), []Node[R]{Mul(c(3), Node[R](Pow(x(), c(2)))), Mul(c(2), x()), c(1)}},
		{"subtraction", Add(Node[R](Sub(Node[R](Mul(c(3), x())), v("y"))), c(1)), []Node[R]{Mul(c(3), x()), Neg(v("y")), c(1)}},
		{"nested subtraction", Sub(x(), Node[R](Sub(v("y"), c(2)))), []Node[R]{x(), Neg(v("y")), c(2)}},
		{"negated sum", Neg(Node[R](Add(x(), c(1)))), []Node[R]{Neg(x()), Neg(c(1))}},
		{"opaque sum in factor", Add(Node[R](Mul(x(), Node[R](Sin(Node[R](Add(v("y"), c(1))))))), c(2)),
			[]Node[R]{Mul(x(), Node[R](Sin(Node[R](Add(v("y"), c(1)))))), c(2)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Terms(tc.node)
			if err != nil {
				t.Fatalf("Terms(%s): %v", tc.node, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Terms(%s) = %v, want %v", tc.node, got, tc.want)
			}
			for i := range got {
				assertEqual(t, s, got[i], tc.want[i])
			}
		})
	}

	for _, node := range []Node[R]{
		Mul(x(), Node[R](Add(v("y"), c(1)))),
		Mul(Node[R](Neg(Node[R](Sub(v("y"), c(1))))), x()),
		Mul(c(2), Node[R](Mul(x(), Node[R](Add(v("y"), c(1)))))),
	} {
		if _, err := s.Terms(node); !errors.Is(err, ErrPrecondition) {
			t.Errorf("Terms(%s): expected ErrPrecondition for an unexpanded product, got %v", node, err)
		}
	}
}

func TestAlgebraicPredicates(t *testing.T) {
	s := newRat()
	tests := []struct {
		name       string
		node       Node[R]
		algebraic  bool
		polynomial bool
	}{
		{"sqrt plus power", Add(Node[R](Sqrt(x())), Node[R](Pow(x(), frac(1, 2)))), true, false},
		{"root", Root(x(), c(3)), true, false},
		{"sine", Sin(x()), false, false},
		{"variable exponent", Pow(x(), v("y")), false, false},
		{"comparison", Less(x(), c(1)), false, false},
		{"product of sums", Mul(Node[R](Add(x(), c(1))), Node[R](Sub(x(), c(1)))), true, true},
		{"divide by constant", Div(x(), c(2)), true, true},
		{"divide by zero", Div(x(), c(0)), true, false},
		{"divide by variable", Div(c(1), x()), true, false},
		{"power of sum", Pow(Node[R](Add(x(), c(1))), c(2)), true, true},
		{"negated", Neg(Node[R](Mul(x(), v("y")))), true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsValidAlgebraicExpression(tc.node); got != tc.algebraic {
				t.Errorf("IsValidAlgebraicExpression(%s) = %v, want %v", tc.node, got, tc.algebraic)
			}
			if got := s.IsSimplifiableToPolynomial(tc.node); got != tc.polynomial {
				t.Errorf("IsSimplifiableToPolynomial(%s) = %v, want %v", tc.node, got, tc.polynomial)
			}
		})
	}
}

func TestTranscendentalShapes(t *testing.T) {
	s := newRat()
	linear := Add(Node[R](Mul(c(2), x())), c(1))
	tests := []struct {
		name string
		fn   func(Node[R]) bool
		node Node[R]
		want bool
	}{
		{"exp(x)", s.IsSimplifiedExponentialFunction, Exp(x()), true},
		{"3 exp(2x + 1)", s.IsSimplifiedExponentialFunction, Mul(c(3), Node[R](Exp(linear))), true},
		{"2^x", s.IsSimplifiedExponentialFunction, Pow(c(2), x()), true},
		{"exp(x^2)", s.IsSimplifiedExponentialFunction, Exp(Node[R](Pow(x(), c(2)))), false},
		{"x^2", s.IsSimplifiedExponentialFunction, Pow(x(), c(2)), false},
		{"exp(x + y)", s.IsSimplifiedExponentialFunction, Exp(Node[R](Add(x(), v("y")))), false},

		{"ln(x)", s.IsSimplifiedLogarithmicFunction, Ln(x()), true},
		{"2 ln(x + 1)", s.IsSimplifiedLogarithmicFunction, Mul(c(2), Node[R](Ln(Node[R](Add(x(), c(1)))))), true},
		{"ln(x + y)", s.IsSimplifiedLogarithmicFunction, Ln(Node[R](Add(x(), v("y")))), false},
		{"ln(sin(x))", s.IsSimplifiedLogarithmicFunction, Ln(Node[R](Sin(x()))), false},

		{"sin(x)", s.IsSimplifiedSinusoidalFunction, Sin(x()), true},
		{"2 cos(3x) + 1", s.IsSimplifiedSinusoidalFunction, Add(Node[R](Mul(c(2), Node[R](Cos(Node[R](Mul(c(3), x())))))), c(1)), true},
		{"sin(x) - 4", s.IsSimplifiedSinusoidalFunction, Sub(Node[R](Sin(x())), c(4)), true},
		{"-sin(2x + 1)", s.IsSimplifiedSinusoidalFunction, Neg(Node[R](Sin(linear))), true},
		{"tan(x)", s.IsSimplifiedSinusoidalFunction, Tan(x()), false},
		{"sin(x^2)", s.IsSimplifiedSinusoidalFunction, Sin(Node[R](Pow(x(), c(2)))), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.node); got != tc.want {
				t.Errorf("%s: got %v, want %v", tc.node, got, tc.want)
			}
		})
	}
}
