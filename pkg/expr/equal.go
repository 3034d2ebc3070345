package expr

// AreEqual reports whether a and b are structurally identical. Constants are
// compared with the facade's Equal and variables by name. There is no
// algebraic reasoning: Neg(Const(1)) is not equal to Const(-1).
func (s *Symbolics[T]) AreEqual(a, b Node[T]) bool {
	switch x := a.(type) {
	case *Constant[T]:
		y, ok := b.(*Constant[T])
		return ok && s.num.Equal(x.Value, y.Value)

	case *Variable[T]:
		y, ok := b.(*Variable[T])
		return ok && x.Name == y.Name

	case *Unary[T]:
		y, ok := b.(*Unary[T])
		return ok && x.Op == y.Op && s.AreEqual(x.Operand, y.Operand)

	case *Binary[T]:
		y, ok := b.(*Binary[T])
		return ok && x.Op == y.Op && s.AreEqual(x.Left, y.Left) && s.AreEqual(x.Right, y.Right)

	case *Multinary[T]:
		y, ok := b.(*Multinary[T])
		if !ok || x.Op != y.Op || len(x.Operands) != len(y.Operands) {
			return false
		}
		for i := range x.Operands {
			if !s.AreEqual(x.Operands[i], y.Operands[i]) {
				return false
			}
		}
		return true
	}
	return false
}
