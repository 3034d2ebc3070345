package expr

import "sort"

func (c *Constant[T]) NodeCount() int { return 1 }
func (v *Variable[T]) NodeCount() int { return 1 }
func (u *Unary[T]) NodeCount() int    { return 1 + u.Operand.NodeCount() }
func (b *Binary[T]) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}
func (m *Multinary[T]) NodeCount() int {
	n := 1
	for _, o := range m.Operands {
		n += o.NodeCount()
	}
	return n
}

func (c *Constant[T]) Depth() int { return 1 }
func (v *Variable[T]) Depth() int { return 1 }
func (u *Unary[T]) Depth() int    { return 1 + u.Operand.Depth() }
func (b *Binary[T]) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
func (m *Multinary[T]) Depth() int {
	d := 0
	for _, o := range m.Operands {
		if od := o.Depth(); od > d {
			d = od
		}
	}
	return 1 + d
}

// WeightedComplexity returns a complexity score with heavier weight for
// operations that are more "expensive" (powers, trig, logs).
func WeightedComplexity[T any](node Node[T]) float64 {
	switch n := node.(type) {
	case *Constant[T], *Variable[T]:
		return 1.0
	case *Unary[T]:
		return unaryWeight(n.Op) + WeightedComplexity(n.Operand)
	case *Binary[T]:
		return binaryWeight(n.Op) + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	case *Multinary[T]:
		w := 1.0
		for _, o := range n.Operands {
			w += WeightedComplexity(o)
		}
		return w
	default:
		return 1.0
	}
}

func unaryWeight(op UnaryOp) float64 {
	switch {
	case op == OpNegate:
		return 1.0
	case op.IsTrigonometric(), op == OpNaturalLog, op == OpExponential:
		return 3.0
	default:
		return 2.0
	}
}

func binaryWeight(op BinaryOp) float64 {
	switch op {
	case OpAdd, OpSubtract:
		return 1.0
	case OpMultiply, OpDivide:
		return 1.5
	case OpPower, OpRoot:
		return 2.0
	default:
		return 1.5
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
