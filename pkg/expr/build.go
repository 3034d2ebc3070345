package expr

// Const builds a constant leaf.
func Const[T any](v T) *Constant[T] { return &Constant[T]{Value: v} }

// Var builds a variable leaf.
func Var[T any](name string) *Variable[T] { return &Variable[T]{Name: name} }

// NewUnary builds a unary node. It panics on a nil operand.
func NewUnary[T any](op UnaryOp, operand Node[T]) *Unary[T] {
	mustNode(operand)
	return &Unary[T]{Op: op, Operand: operand}
}

// NewBinary builds a binary node. It panics on a nil operand.
func NewBinary[T any](op BinaryOp, left, right Node[T]) *Binary[T] {
	mustNode(left)
	mustNode(right)
	return &Binary[T]{Op: op, Left: left, Right: right}
}

// NewMultinary builds a multinary node over a copy of operands. It panics on
// a nil operand.
func NewMultinary[T any](op MultinaryOp, operands ...Node[T]) *Multinary[T] {
	ops := make([]Node[T], len(operands))
	for i, o := range operands {
		mustNode(o)
		ops[i] = o
	}
	return &Multinary[T]{Op: op, Operands: ops}
}

func mustNode[T any](n Node[T]) {
	if n == nil {
		panic("expr: nil operand")
	}
}

func Neg[T any](x Node[T]) *Unary[T]  { return NewUnary(OpNegate, x) }
func Sin[T any](x Node[T]) *Unary[T]  { return NewUnary(OpSine, x) }
func Cos[T any](x Node[T]) *Unary[T]  { return NewUnary(OpCosine, x) }
func Tan[T any](x Node[T]) *Unary[T]  { return NewUnary(OpTangent, x) }
func Csc[T any](x Node[T]) *Unary[T]  { return NewUnary(OpCosecant, x) }
func Sec[T any](x Node[T]) *Unary[T]  { return NewUnary(OpSecant, x) }
func Cot[T any](x Node[T]) *Unary[T]  { return NewUnary(OpCotangent, x) }
func Ln[T any](x Node[T]) *Unary[T]   { return NewUnary(OpNaturalLog, x) }
func Sqrt[T any](x Node[T]) *Unary[T] { return NewUnary(OpSquareRoot, x) }
func Exp[T any](x Node[T]) *Unary[T]  { return NewUnary(OpExponential, x) }
func Inv[T any](x Node[T]) *Unary[T]  { return NewUnary(OpInvert, x) }
func Det[T any](x Node[T]) *Unary[T]  { return NewUnary(OpDeterminant, x) }

func Add[T any](a, b Node[T]) *Binary[T]     { return NewBinary(OpAdd, a, b) }
func Sub[T any](a, b Node[T]) *Binary[T]     { return NewBinary(OpSubtract, a, b) }
func Mul[T any](a, b Node[T]) *Binary[T]     { return NewBinary(OpMultiply, a, b) }
func Div[T any](a, b Node[T]) *Binary[T]     { return NewBinary(OpDivide, a, b) }
func Pow[T any](a, b Node[T]) *Binary[T]     { return NewBinary(OpPower, a, b) }
func Root[T any](a, b Node[T]) *Binary[T]    { return NewBinary(OpRoot, a, b) }
func Less[T any](a, b Node[T]) *Binary[T]    { return NewBinary(OpLessThan, a, b) }
func Greater[T any](a, b Node[T]) *Binary[T] { return NewBinary(OpGreaterThan, a, b) }

func Equate[T any](operands ...Node[T]) *Multinary[T] { return NewMultinary(OpEquate, operands...) }
func Sum[T any](operands ...Node[T]) *Multinary[T]    { return NewMultinary(OpSummation, operands...) }
