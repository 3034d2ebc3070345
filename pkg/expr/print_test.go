package expr

import (
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		node Node[R]
		want string
	}{
		{Add(x(), c(1)), "x + 1"},
		{Add(x(), c(-3)), "x - 3"},
		{Sub(x(), Node[R](Add(v("y"), c(1)))), "x - (y + 1)"},
		{Add(Node[R](Sub(x(), v("y"))), c(1)), "x - y + 1"},
		{Mul(Node[R](Add(x(), c(1))), v("y")), "(x + 1) * y"},
		{Div(x(), Node[R](Mul(c(2), v("y")))), "x / (2 * y)"},
		{Mul(c(-2), x()), "-2 * x"},
		{Mul(frac(1, 2), x()), "1/2 * x"},
		{Pow(x(), c(2)), "x^2"},
		{Pow(Node[R](Add(x(), c(1))), c(2)), "(x + 1)^2"},
		{Pow(c(-2), c(2)), "(-2)^2"},
		{Neg(x()), "-x"},
		{Neg(Node[R](Add(x(), c(1)))), "-(x + 1)"},
		{Neg(c(-2)), "-(-2)"},
		{Sin(Node[R](Mul(c(2), x()))), "sin(2 * x)"},
		{Ln(x()), "ln(x)"},
		{Root(x(), c(3)), "root(x, 3)"},
		{Less(x(), c(1)), "x < 1"},
		{Greater(Node[R](Add(x(), c(1))), v("y")), "x + 1 > y"},
		{Equate(x(), c(2), v("y")), "x = 2 = y"},
		{Sum(x(), c(1)), "sum(x, 1)"},
	}
	for _, tc := range tests {
		if got := tc.node.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestLaTeX(t *testing.T) {
	tests := []struct {
		node Node[R]
		want string
	}{
		{Div(x(), c(2)), `\frac{x}{2}`},
		{Pow(x(), c(2)), `{x}^{2}`},
		{Sqrt(x()), `\sqrt{x}`},
		{Sin(x()), `\sin\left(x\right)`},
		{frac(-1, 2), `-\frac{1}{2}`},
		{Mul(c(2), x()), `{2} \cdot {x}`},
		{Root(x(), c(3)), `\sqrt[3]{x}`},
		{Neg(Node[R](Add(x(), c(1)))), `-\left({x} + {1}\right)`},
		{Exp(x()), `e^{x}`},
		{Equate(x(), c(1)), `x = 1`},
	}
	for _, tc := range tests {
		if got := LaTeX(tc.node); got != tc.want {
			t.Errorf("LaTeX(%s) = %q, want %q", tc.node, got, tc.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		node Node[R]
		want string
	}{
		{c(3), "3"},
		{x(), "[x]"},
		{Add(Node[R](Mul(c(2), x())), Node[R](Neg(v("y")))), "add(multiply(2, [x]), negate([y]))"},
		{Equate(x(), c(1), c(2)), "equate([x], 1, 2)"},
		{Greater(Node[R](Sin(x())), Node[R](Root(v("y"), c(2)))), "greater(sin([x]), root([y], 2))"},
	}
	for _, tc := range tests {
		if got := Prefix(tc.node); got != tc.want {
			t.Errorf("Prefix(%s) = %q, want %q", tc.node, got, tc.want)
		}
	}
}

func TestTokenTablesCoverEveryOp(t *testing.T) {
	if got := len(UnaryTokens()); got != int(OpDeterminant)+1 {
		t.Errorf("unary tokens: %d", got)
	}
	if got := len(BinaryTokens()); got != int(OpGreaterThan)+1 {
		t.Errorf("binary tokens: %d", got)
	}
	if got := len(MultinaryTokens()); got != int(OpSummation)+1 {
		t.Errorf("multinary tokens: %d", got)
	}
	for tok, op := range BinaryTokens() {
		if got := PrefixToken(Node[R](NewBinary(op, x(), c(1)))); got != tok {
			t.Errorf("PrefixToken(%s) = %q, want %q", op, got, tok)
		}
	}
}
