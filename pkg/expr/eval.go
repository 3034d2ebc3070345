package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// Evaluate computes the value of node with each variable taken from bindings.
// Transcendental operations need a facade that implements
// numeric.Transcendental, otherwise they return ErrUnsupported.
func (s *Symbolics[T]) Evaluate(node Node[T], bindings map[string]T) (T, error) {
	return s.eval(node, bindings, 0)
}

func (s *Symbolics[T]) eval(node Node[T], bindings map[string]T, depth int) (T, error) {
	var zero T
	if err := s.checkDepth(depth); err != nil {
		return zero, err
	}

	switch n := node.(type) {
	case *Constant[T]:
		return n.Value, nil

	case *Variable[T]:
		v, ok := bindings[n.Name]
		if !ok {
			return zero, errwrap.Wrapf(ErrUnbound, "variable %s", n.Name)
		}
		return v, nil

	case *Unary[T]:
		x, err := s.eval(n.Operand, bindings, depth+1)
		if err != nil {
			return zero, err
		}
		return s.evalUnary(n.Op, x)

	case *Binary[T]:
		l, err := s.eval(n.Left, bindings, depth+1)
		if err != nil {
			return zero, err
		}
		r, err := s.eval(n.Right, bindings, depth+1)
		if err != nil {
			return zero, err
		}
		return s.evalBinary(n.Op, l, r)

	case *Multinary[T]:
		values := make([]T, len(n.Operands))
		for i, o := range n.Operands {
			v, err := s.eval(o, bindings, depth+1)
			if err != nil {
				return zero, err
			}
			values[i] = v
		}
		switch n.Op {
		case OpSummation:
			total := s.zero()
			for _, v := range values {
				total = s.num.Add(total, v)
			}
			return total, nil
		case OpEquate:
			for i := 1; i < len(values); i++ {
				if !s.num.Equal(values[0], values[i]) {
					return s.zero(), nil
				}
			}
			return s.one(), nil
		}
	}

	return zero, errwrap.Wrapf(ErrInternal, "cannot evaluate %T", node)
}

func (s *Symbolics[T]) evalUnary(op UnaryOp, x T) (T, error) {
	var zero T
	switch op {
	case OpNegate:
		return s.num.Negate(x), nil
	case OpInvert:
		return s.num.Divide(s.one(), x)
	case OpDeterminant:
		// a scalar is its own 1x1 determinant
		return x, nil
	}

	tr, ok := s.num.(numeric.Transcendental[T])
	if !ok {
		return zero, errwrap.Wrapf(ErrUnsupported, "%s needs a transcendental facade", op)
	}
	switch op {
	case OpSine:
		return tr.Sin(x)
	case OpCosine:
		return tr.Cos(x)
	case OpTangent:
		return tr.Tan(x)
	case OpCosecant:
		return s.reciprocal(tr.Sin(x))
	case OpSecant:
		return s.reciprocal(tr.Cos(x))
	case OpCotangent:
		return s.reciprocal(tr.Tan(x))
	case OpNaturalLog:
		return tr.Log(x)
	case OpSquareRoot:
		return tr.Sqrt(x)
	case OpExponential:
		return tr.Exp(x)
	}
	return zero, errwrap.Wrapf(ErrInternal, "unknown unary op %d", int(op))
}

func (s *Symbolics[T]) reciprocal(x T, err error) (T, error) {
	if err != nil {
		return x, err
	}
	return s.num.Divide(s.one(), x)
}

func (s *Symbolics[T]) evalBinary(op BinaryOp, l, r T) (T, error) {
	var zero T
	switch op {
	case OpAdd:
		return s.num.Add(l, r), nil
	case OpSubtract:
		return s.num.Subtract(l, r), nil
	case OpMultiply:
		return s.num.Multiply(l, r), nil
	case OpDivide:
		return s.num.Divide(l, r)
	case OpPower:
		return s.num.Power(l, r)
	case OpRoot:
		inv, err := s.num.Divide(s.one(), r)
		if err != nil {
			return zero, err
		}
		return s.num.Power(l, inv)
	case OpLessThan:
		return s.truth(s.num.Compare(l, r) < 0), nil
	case OpGreaterThan:
		return s.truth(s.num.Compare(l, r) > 0), nil
	}
	return zero, errwrap.Wrapf(ErrInternal, "unknown binary op %d", int(op))
}

func (s *Symbolics[T]) truth(b bool) T {
	if b {
		return s.one()
	}
	return s.zero()
}
