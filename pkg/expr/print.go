package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// binding strength, loosest first
const (
	precComparison = iota + 1
	precAdditive
	precMultiplicative
	precUnary
	precPower
	precAtom
)

var unaryOpNames = map[UnaryOp]string{
	OpNegate:      "-",
	OpSine:        "sin",
	OpCosine:      "cos",
	OpTangent:     "tan",
	OpCosecant:    "csc",
	OpSecant:      "sec",
	OpCotangent:   "cot",
	OpNaturalLog:  "ln",
	OpSquareRoot:  "sqrt",
	OpExponential: "exp",
	OpInvert:      "inv",
	OpDeterminant: "det",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd:         "+",
	OpSubtract:    "-",
	OpMultiply:    "*",
	OpDivide:      "/",
	OpPower:       "^",
	OpRoot:        "root",
	OpLessThan:    "<",
	OpGreaterThan: ">",
}

func (op UnaryOp) String() string {
	if s, ok := unaryOpNames[op]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

func (op MultinaryOp) String() string {
	switch op {
	case OpEquate:
		return "="
	case OpSummation:
		return "sum"
	}
	return fmt.Sprintf("MultinaryOp(%d)", int(op))
}

// formatValue renders a constant without needing the facade.
func formatValue[T any](v T) string {
	switch x := any(v).(type) {
	case *big.Rat:
		if x == nil {
			return "<nil>"
		}
		if x.IsInt() {
			return x.Num().String()
		}
		return x.RatString()
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func precedence[T any](node Node[T]) int {
	switch n := node.(type) {
	case *Constant[T]:
		if strings.HasPrefix(formatValue(n.Value), "-") {
			return precUnary
		}
		return precAtom
	case *Unary[T]:
		if n.Op == OpNegate {
			return precUnary
		}
		return precAtom
	case *Binary[T]:
		switch n.Op {
		case OpAdd, OpSubtract:
			return precAdditive
		case OpMultiply, OpDivide:
			return precMultiplicative
		case OpPower:
			return precPower
		case OpLessThan, OpGreaterThan:
			return precComparison
		}
	case *Multinary[T]:
		if n.Op == OpEquate {
			return precComparison
		}
	}
	return precAtom
}

// wrap renders child, parenthesised when it binds looser than limit.
func wrap[T any](child Node[T], limit int) string {
	if precedence(child) < limit {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// String methods

func (c *Constant[T]) String() string { return formatValue(c.Value) }

func (v *Variable[T]) String() string { return v.Name }

func (u *Unary[T]) String() string {
	if u.Op == OpNegate {
		return "-" + wrap(u.Operand, precUnary+1)
	}
	return fmt.Sprintf("%s(%s)", u.Op, u.Operand.String())
}

func (b *Binary[T]) String() string {
	switch b.Op {
	case OpAdd:
		// x + (-3) reads as x - 3
		if c, ok := b.Right.(*Constant[T]); ok {
			if s := formatValue(c.Value); strings.HasPrefix(s, "-") {
				return fmt.Sprintf("%s - %s", wrap(b.Left, precAdditive), s[1:])
			}
		}
		return fmt.Sprintf("%s + %s", wrap(b.Left, precAdditive), wrap(b.Right, precAdditive+1))
	case OpSubtract:
		return fmt.Sprintf("%s - %s", wrap(b.Left, precAdditive), wrap(b.Right, precAdditive+1))
	case OpMultiply, OpDivide:
		return fmt.Sprintf("%s %s %s", wrap(b.Left, precMultiplicative), b.Op, wrap(b.Right, precMultiplicative+1))
	case OpPower:
		return fmt.Sprintf("%s^%s", wrap(b.Left, precPower+1), wrap(b.Right, precPower))
	case OpLessThan, OpGreaterThan:
		return fmt.Sprintf("%s %s %s", wrap(b.Left, precComparison+1), b.Op, wrap(b.Right, precComparison+1))
	default:
		return fmt.Sprintf("%s(%s, %s)", b.Op, b.Left.String(), b.Right.String())
	}
}

func (m *Multinary[T]) String() string {
	parts := make([]string, len(m.Operands))
	switch m.Op {
	case OpEquate:
		for i, o := range m.Operands {
			parts[i] = wrap(o, precComparison+1)
		}
		return strings.Join(parts, " = ")
	default:
		for i, o := range m.Operands {
			parts[i] = o.String()
		}
		return fmt.Sprintf("%s(%s)", m.Op, strings.Join(parts, ", "))
	}
}

// LaTeX renders node as a LaTeX math fragment.
func LaTeX[T any](node Node[T]) string {
	switch n := node.(type) {
	case *Constant[T]:
		s := formatValue(n.Value)
		if num, den, ok := strings.Cut(s, "/"); ok {
			if strings.HasPrefix(num, "-") {
				return fmt.Sprintf("-\\frac{%s}{%s}", num[1:], den)
			}
			return fmt.Sprintf("\\frac{%s}{%s}", num, den)
		}
		return s
	case *Variable[T]:
		return n.Name
	case *Unary[T]:
		child := LaTeX(n.Operand)
		switch n.Op {
		case OpNegate:
			if precedence(n.Operand) <= precUnary {
				return fmt.Sprintf("-\\left(%s\\right)", child)
			}
			return "-" + child
		case OpSquareRoot:
			return fmt.Sprintf("\\sqrt{%s}", child)
		case OpExponential:
			return fmt.Sprintf("e^{%s}", child)
		case OpInvert:
			return fmt.Sprintf("{%s}^{-1}", child)
		case OpDeterminant:
			return fmt.Sprintf("\\det\\left(%s\\right)", child)
		default:
			return fmt.Sprintf("\\%s\\left(%s\\right)", n.Op, child)
		}
	case *Binary[T]:
		left := LaTeX(n.Left)
		right := LaTeX(n.Right)
		switch n.Op {
		case OpAdd:
			return fmt.Sprintf("{%s} + {%s}", left, right)
		case OpSubtract:
			return fmt.Sprintf("{%s} - {%s}", left, right)
		case OpMultiply:
			return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
		case OpDivide:
			return fmt.Sprintf("\\frac{%s}{%s}", left, right)
		case OpPower:
			return fmt.Sprintf("{%s}^{%s}", left, right)
		case OpRoot:
			return fmt.Sprintf("\\sqrt[%s]{%s}", right, left)
		case OpLessThan:
			return fmt.Sprintf("{%s} < {%s}", left, right)
		case OpGreaterThan:
			return fmt.Sprintf("{%s} > {%s}", left, right)
		}
	case *Multinary[T]:
		parts := make([]string, len(n.Operands))
		for i, o := range n.Operands {
			parts[i] = LaTeX(o)
		}
		if n.Op == OpEquate {
			return strings.Join(parts, " = ")
		}
		return fmt.Sprintf("\\sum\\left(%s\\right)", strings.Join(parts, ", "))
	}
	return ""
}

// Prefix renders node in the token(arg, ...) grammar understood by the parse
// package. Constants are written as the facade would print them, so only
// non-negative decimal values parse back.
func Prefix[T any](node Node[T]) string {
	var sb strings.Builder
	writePrefix(&sb, node)
	return sb.String()
}

func writePrefix[T any](sb *strings.Builder, node Node[T]) {
	switch n := node.(type) {
	case *Constant[T]:
		sb.WriteString(formatValue(n.Value))
		return
	case *Variable[T]:
		sb.WriteString("[" + n.Name + "]")
		return
	}

	sb.WriteString(PrefixToken(node))
	sb.WriteByte('(')
	first := true
	node.Step(func(child Node[T]) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		writePrefix(sb, child)
	})
	sb.WriteByte(')')
}

var (
	unaryTokens = map[UnaryOp]string{
		OpNegate:      "negate",
		OpSine:        "sin",
		OpCosine:      "cos",
		OpTangent:     "tan",
		OpCosecant:    "csc",
		OpSecant:      "sec",
		OpCotangent:   "cot",
		OpNaturalLog:  "ln",
		OpSquareRoot:  "sqrt",
		OpExponential: "exp",
		OpInvert:      "inv",
		OpDeterminant: "det",
	}
	binaryTokens = map[BinaryOp]string{
		OpAdd:         "add",
		OpSubtract:    "subtract",
		OpMultiply:    "multiply",
		OpDivide:      "divide",
		OpPower:       "power",
		OpRoot:        "root",
		OpLessThan:    "less",
		OpGreaterThan: "greater",
	}
	multinaryTokens = map[MultinaryOp]string{
		OpEquate:    "equate",
		OpSummation: "sum",
	}
)

// PrefixToken returns the prefix-grammar token for an operation node, or ""
// for leaves.
func PrefixToken[T any](node Node[T]) string {
	switch n := node.(type) {
	case *Unary[T]:
		return unaryTokens[n.Op]
	case *Binary[T]:
		return binaryTokens[n.Op]
	case *Multinary[T]:
		return multinaryTokens[n.Op]
	}
	return ""
}

// UnaryTokens returns the token table for unary operations.
func UnaryTokens() map[string]UnaryOp {
	out := make(map[string]UnaryOp, len(unaryTokens))
	for op, tok := range unaryTokens {
		out[tok] = op
	}
	return out
}

// BinaryTokens returns the token table for binary operations.
func BinaryTokens() map[string]BinaryOp {
	out := make(map[string]BinaryOp, len(binaryTokens))
	for op, tok := range binaryTokens {
		out[tok] = op
	}
	return out
}

// MultinaryTokens returns the token table for multinary operations.
func MultinaryTokens() map[string]MultinaryOp {
	out := make(map[string]MultinaryOp, len(multinaryTokens))
	for op, tok := range multinaryTokens {
		out[tok] = op
	}
	return out
}
