package expr

import (
	"errors"

	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// Simplify applies rewrite rules to reduce an expression tree. It is a single
// post-order pass: children are simplified first, then the rule table for the
// node's operation is tried in order and the first match wins. When a rule
// builds a new binary node, that node goes through the table again. The input
// is never modified.
//
// Only the listed identities fire, so the result is not a canonical form. A
// literal zero divisor fails with ErrDivideByZero.
func (s *Symbolics[T]) Simplify(node Node[T]) (Node[T], error) {
	return s.simplify(node, 0)
}

func (s *Symbolics[T]) simplify(node Node[T], depth int) (Node[T], error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *Constant[T]:
		return &Constant[T]{Value: n.Value}, nil

	case *Variable[T]:
		return &Variable[T]{Name: n.Name}, nil

	case *Unary[T]:
		operand, err := s.simplify(n.Operand, depth+1)
		if err != nil {
			return nil, err
		}
		return s.simplifyUnary(n.Op, operand), nil

	case *Binary[T]:
		left, err := s.simplify(n.Left, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := s.simplify(n.Right, depth+1)
		if err != nil {
			return nil, err
		}
		return s.simplifyBinary(n.Op, left, right, depth)

	case *Multinary[T]:
		operands := make([]Node[T], len(n.Operands))
		for i, o := range n.Operands {
			c, err := s.simplify(o, depth+1)
			if err != nil {
				return nil, err
			}
			operands[i] = c
		}
		return &Multinary[T]{Op: n.Op, Operands: operands}, nil
	}

	return nil, errwrap.Wrapf(ErrInternal, "unknown node variant %T", node)
}

func (s *Symbolics[T]) simplifyUnary(op UnaryOp, operand Node[T]) Node[T] {
	// -(k) = -k
	if op == OpNegate {
		if c, ok := operand.(*Constant[T]); ok {
			return &Constant[T]{Value: s.num.Negate(c.Value)}
		}
	}
	// no trig identities are applied
	return &Unary[T]{Op: op, Operand: operand}
}

// simplifyBinary applies the rule table for op to operands that are already
// simplified.
func (s *Symbolics[T]) simplifyBinary(op BinaryOp, left, right Node[T], depth int) (Node[T], error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}
	again := func(op BinaryOp, l, r Node[T]) (Node[T], error) {
		return s.simplifyBinary(op, l, r, depth+1)
	}

	lc, lok := left.(*Constant[T])
	rc, rok := right.(*Constant[T])

	if op == OpDivide && s.isConst(right, 0) {
		return nil, errwrap.Wrapf(ErrDivideByZero, "simplify %s / 0", left)
	}

	// Constant folding
	if lok && rok {
		v, ok, err := s.fold(op, lc.Value, rc.Value)
		if err != nil {
			return nil, errwrap.Wrapf(err, "fold %s %s %s", left, op, right)
		}
		if ok {
			return &Constant[T]{Value: v}, nil
		}
	}

	num := s.num
	switch op {
	case OpAdd:
		// x + 0 = x
		if s.isConst(right, 0) {
			return left, nil
		}
		// 0 + x = x
		if s.isConst(left, 0) {
			return right, nil
		}
		if rok {
			k := rc.Value
			// (x + a) + k = x + (a + k)
			if x, a, _, ok := s.splitConst(left, OpAdd); ok {
				return again(OpAdd, x, Const(num.Add(a, k)))
			}
			if x, a, constLeft, ok := s.splitConst(left, OpSubtract); ok {
				// (a - x) + k = (a + k) - x
				if constLeft {
					return again(OpSubtract, Const(num.Add(a, k)), x)
				}
				// (x - a) + k = x + (k - a)
				return again(OpAdd, x, Const(num.Subtract(k, a)))
			}
		}
		if lok {
			k := lc.Value
			// k + (x + a) = x + (a + k)
			if x, a, _, ok := s.splitConst(right, OpAdd); ok {
				return again(OpAdd, x, Const(num.Add(a, k)))
			}
			if x, a, constLeft, ok := s.splitConst(right, OpSubtract); ok {
				// k + (a - x) = (a + k) - x
				if constLeft {
					return again(OpSubtract, Const(num.Add(a, k)), x)
				}
				// k + (x - a) = x + (k - a)
				return again(OpAdd, x, Const(num.Subtract(k, a)))
			}
		}

	case OpSubtract:
		// x - 0 = x
		if s.isConst(right, 0) {
			return left, nil
		}
		// 0 - x = -x
		if s.isConst(left, 0) {
			return s.simplifyUnary(OpNegate, right), nil
		}
		if rok {
			k := rc.Value
			if x, a, constLeft, ok := s.splitConst(left, OpSubtract); ok {
				// (a - x) - k = (a - k) - x
				if constLeft {
					return again(OpSubtract, Const(num.Subtract(a, k)), x)
				}
				// (x - a) - k = x - (a + k)
				return again(OpSubtract, x, Const(num.Add(a, k)))
			}
			if x, a, constLeft, ok := s.splitConst(left, OpAdd); ok {
				// (a + x) - k = (a - k) + x
				if constLeft {
					return again(OpAdd, Const(num.Subtract(a, k)), x)
				}
				// (x + a) - k = x + (a - k)
				return again(OpAdd, x, Const(num.Subtract(a, k)))
			}
		}
		if lok {
			k := lc.Value
			if x, a, constLeft, ok := s.splitConst(right, OpSubtract); ok {
				// k - (a - x) = (k - a) + x
				if constLeft {
					return again(OpAdd, Const(num.Subtract(k, a)), x)
				}
				// k - (x - a) = (k + a) - x
				return again(OpSubtract, Const(num.Add(k, a)), x)
			}
			// k - (x + a) = k - (a + x) = (k - a) - x
			if x, a, _, ok := s.splitConst(right, OpAdd); ok {
				return again(OpSubtract, Const(num.Subtract(k, a)), x)
			}
		}

	case OpMultiply:
		// x * 0 = 0, 0 * x = 0
		if s.isConst(right, 0) || s.isConst(left, 0) {
			return Const(s.zero()), nil
		}
		// x * 1 = x
		if s.isConst(right, 1) {
			return left, nil
		}
		// 1 * x = x
		if s.isConst(left, 1) {
			return right, nil
		}
		if rok {
			if r, ok, err := s.multiplyChain(left, rc.Value, again); ok || err != nil {
				return r, err
			}
		}
		if lok {
			if r, ok, err := s.multiplyChain(right, lc.Value, again); ok || err != nil {
				return r, err
			}
		}
		// v * (a ± b) = v*a ± v*b
		if v, ok := left.(*Variable[T]); ok {
			if sum, ok := right.(*Binary[T]); ok && sum.Op.IsAdditive() {
				l, err := again(OpMultiply, v, sum.Left)
				if err != nil {
					return nil, err
				}
				r, err := again(OpMultiply, Var[T](v.Name), sum.Right)
				if err != nil {
					return nil, err
				}
				return again(sum.Op, l, r)
			}
		}
		// (a ± b) * v = a*v ± b*v
		if v, ok := right.(*Variable[T]); ok {
			if sum, ok := left.(*Binary[T]); ok && sum.Op.IsAdditive() {
				l, err := again(OpMultiply, sum.Left, v)
				if err != nil {
					return nil, err
				}
				r, err := again(OpMultiply, sum.Right, Var[T](v.Name))
				if err != nil {
					return nil, err
				}
				return again(sum.Op, l, r)
			}
		}

	case OpDivide:
		// 0 / x = 0
		if s.isConst(left, 0) {
			return Const(s.zero()), nil
		}
		// x / 1 = x
		if s.isConst(right, 1) {
			return left, nil
		}
		if rok {
			k := rc.Value
			if x, a, constLeft, ok := s.splitConst(left, OpDivide); ok {
				// (a / x) / k = (a / k) / x
				if constLeft {
					q, err := num.Divide(a, k)
					if err != nil {
						return nil, err
					}
					return again(OpDivide, Const(q), x)
				}
				// (x / a) / k = x / (a * k)
				return again(OpDivide, x, Const(num.Multiply(a, k)))
			}
			// (x * a) / k = (a * x) / k = x * (a / k)
			if x, a, _, ok := s.splitConst(left, OpMultiply); ok {
				q, err := num.Divide(a, k)
				if err != nil {
					return nil, err
				}
				return again(OpMultiply, x, Const(q))
			}
		}
		if lok {
			k := lc.Value
			if x, a, constLeft, ok := s.splitConst(right, OpDivide); ok {
				// k / (a / x) = (k / a) * x
				if constLeft {
					q, err := num.Divide(k, a)
					if err != nil {
						return nil, err
					}
					return again(OpMultiply, Const(q), x)
				}
				// k / (x / a) = (k * a) / x
				return again(OpDivide, Const(num.Multiply(k, a)), x)
			}
			// k / (x * a) = k / (a * x) = (k / a) / x
			if x, a, _, ok := s.splitConst(right, OpMultiply); ok {
				q, err := num.Divide(k, a)
				if err != nil {
					return nil, err
				}
				return again(OpDivide, Const(q), x)
			}
		}

	case OpPower:
		// 0^x = 0, unless x is a negative constant
		if s.isConst(left, 0) && !s.isNegativeConst(right) {
			return Const(s.zero()), nil
		}
		// x^1 = x
		if s.isConst(right, 1) {
			return left, nil
		}
		// x^0 = 1
		if s.isConst(right, 0) {
			return Const(s.one()), nil
		}
	}

	return &Binary[T]{Op: op, Left: left, Right: right}, nil
}

// multiplyChain folds a constant factor k into a multiplicative neighbour:
// (x * a) * k, (x / a) * k and (a / x) * k, in either operand order.
func (s *Symbolics[T]) multiplyChain(other Node[T], k T, again func(BinaryOp, Node[T], Node[T]) (Node[T], error)) (Node[T], bool, error) {
	num := s.num
	// (x * a) * k = x * (a * k)
	if x, a, _, ok := s.splitConst(other, OpMultiply); ok {
		r, err := again(OpMultiply, x, Const(num.Multiply(a, k)))
		return r, true, err
	}
	if x, a, constLeft, ok := s.splitConst(other, OpDivide); ok {
		// (a / x) * k = (a * k) / x
		if constLeft {
			r, err := again(OpDivide, Const(num.Multiply(a, k)), x)
			return r, true, err
		}
		// (x / a) * k = x * (k / a)
		q, err := num.Divide(k, a)
		if err != nil {
			return nil, true, err
		}
		r, err := again(OpMultiply, x, Const(q))
		return r, true, err
	}
	return nil, false, nil
}

// splitConst matches node against op with exactly one constant operand. It
// returns the other operand, the constant and whether the constant was on the
// left.
func (s *Symbolics[T]) splitConst(node Node[T], op BinaryOp) (Node[T], T, bool, bool) {
	var zero T
	b, ok := node.(*Binary[T])
	if !ok || b.Op != op {
		return nil, zero, false, false
	}
	lc, lok := b.Left.(*Constant[T])
	rc, rok := b.Right.(*Constant[T])
	switch {
	case lok && !rok:
		return b.Right, lc.Value, true, true
	case rok && !lok:
		return b.Left, rc.Value, false, true
	}
	return nil, zero, false, false
}

// fold evaluates a binary operation over two constants. It reports false when
// the operation does not fold (comparisons, roots, or a power whose result
// the facade cannot represent).
func (s *Symbolics[T]) fold(op BinaryOp, a, b T) (T, bool, error) {
	var zero T
	switch op {
	case OpAdd:
		return s.num.Add(a, b), true, nil
	case OpSubtract:
		return s.num.Subtract(a, b), true, nil
	case OpMultiply:
		return s.num.Multiply(a, b), true, nil
	case OpDivide:
		v, err := s.num.Divide(a, b)
		if err != nil {
			return zero, false, err
		}
		return v, true, nil
	case OpPower:
		v, err := s.num.Power(a, b)
		if errors.Is(err, numeric.ErrNotRepresentable) {
			return zero, false, nil
		}
		if err != nil {
			return zero, false, err
		}
		return v, true, nil
	}
	return zero, false, nil
}
