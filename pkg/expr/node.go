// Package expr is a symbolic algebra engine over a generic numeric type. It
// models expressions as owned trees, offers structural services over them
// (equality, cloning, substitution), recognises canonical algebraic shapes and
// rewrites trees into a simplified form.
package expr

// Node is the interface for all expression tree nodes. The set of variants is
// closed: Constant, Variable, Unary, Binary and Multinary.
type Node[T any] interface {
	// Kind reports which variant this node is.
	Kind() Kind

	// Step invokes fn once per immediate child, in order. Leaves never
	// invoke it.
	Step(fn func(Node[T]))

	String() string
	NodeCount() int
	Depth() int

	sealed()
}

// Kind identifies a node variant.
type Kind int

const (
	KindConstant Kind = iota
	KindVariable
	KindUnary
	KindBinary
	KindMultinary
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindMultinary:
		return "multinary"
	}
	return "unknown"
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpSine
	OpCosine
	OpTangent
	OpCosecant
	OpSecant
	OpCotangent
	OpNaturalLog
	OpSquareRoot
	OpExponential
	OpInvert
	OpDeterminant
)

// IsTrigonometric reports whether op is one of the six trig functions.
func (op UnaryOp) IsTrigonometric() bool {
	switch op {
	case OpSine, OpCosine, OpTangent, OpCosecant, OpSecant, OpCotangent:
		return true
	}
	return false
}

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpRoot
	OpLessThan
	OpGreaterThan
)

// IsAdditive groups addition and subtraction.
func (op BinaryOp) IsAdditive() bool { return op == OpAdd || op == OpSubtract }

// IsMultiplicative groups multiplication and division.
func (op BinaryOp) IsMultiplicative() bool { return op == OpMultiply || op == OpDivide }

// MultinaryOp identifies an operation over a sequence of operands.
type MultinaryOp int

const (
	OpEquate MultinaryOp = iota // a = b = c ...
	OpSummation
)

// Constant holds a single scalar value.
type Constant[T any] struct {
	Value T
}

// Variable is a named unknown.
type Variable[T any] struct {
	Name string
}

// Unary applies a unary operation to one operand.
type Unary[T any] struct {
	Op      UnaryOp
	Operand Node[T]
}

// Binary applies a binary operation to two operands.
type Binary[T any] struct {
	Op          BinaryOp
	Left, Right Node[T]
}

// Multinary applies an operation to an ordered sequence of operands.
type Multinary[T any] struct {
	Op       MultinaryOp
	Operands []Node[T]
}

func (*Constant[T]) Kind() Kind  { return KindConstant }
func (*Variable[T]) Kind() Kind  { return KindVariable }
func (*Unary[T]) Kind() Kind     { return KindUnary }
func (*Binary[T]) Kind() Kind    { return KindBinary }
func (*Multinary[T]) Kind() Kind { return KindMultinary }

func (*Constant[T]) sealed()  {}
func (*Variable[T]) sealed()  {}
func (*Unary[T]) sealed()     {}
func (*Binary[T]) sealed()    {}
func (*Multinary[T]) sealed() {}
