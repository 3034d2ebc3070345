package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"
)

// termShape records what a product chain is made of.
type termShape[T any] struct {
	coefficient bool
	exponents   map[string]T
}

func (s *Symbolics[T]) addFactor(shape *termShape[T], name string, exp T) bool {
	if _, seen := shape.exponents[name]; seen {
		return false
	}
	shape.exponents[name] = exp
	return true
}

// collectTerm walks a multiplication chain. It fails on a second constant, a
// repeated variable, or anything that is not a factor.
func (s *Symbolics[T]) collectTerm(node Node[T], shape *termShape[T], depth int) bool {
	if depth > s.maxDepth {
		return false
	}
	switch n := node.(type) {
	case *Constant[T]:
		if shape.coefficient {
			return false
		}
		shape.coefficient = true
		return true

	case *Variable[T]:
		return s.addFactor(shape, n.Name, s.one())

	case *Unary[T]:
		if n.Op != OpNegate {
			return false
		}
		return s.collectTerm(n.Operand, shape, depth+1)

	case *Binary[T]:
		switch n.Op {
		case OpMultiply:
			return s.collectTerm(n.Left, shape, depth+1) && s.collectTerm(n.Right, shape, depth+1)
		case OpPower:
			v, ok := n.Left.(*Variable[T])
			if !ok {
				return false
			}
			c, ok := n.Right.(*Constant[T])
			if !ok || !s.num.IsInteger(c.Value) || !s.num.IsNonNegative(c.Value) {
				return false
			}
			return s.addFactor(shape, v.Name, c.Value)
		}
	}
	return false
}

func (s *Symbolics[T]) termShape(node Node[T], depth int) (*termShape[T], bool) {
	shape := &termShape[T]{exponents: make(map[string]T)}
	if !s.collectTerm(node, shape, depth) {
		return nil, false
	}
	return shape, true
}

// IsSimplifiedTerm reports whether node is a product of at most one constant
// and distinct variables or variable powers with non-negative integer
// exponents.
func (s *Symbolics[T]) IsSimplifiedTerm(node Node[T]) bool {
	_, ok := s.termShape(node, 0)
	return ok
}

// collectPolynomial splits an additive tree into term shapes. Each term gets
// its own variable set.
func (s *Symbolics[T]) collectPolynomial(node Node[T], shapes *[]*termShape[T], depth int) bool {
	if depth > s.maxDepth {
		return false
	}
	switch n := node.(type) {
	case *Binary[T]:
		if n.Op.IsAdditive() {
			return s.collectPolynomial(n.Left, shapes, depth+1) &&
				s.collectPolynomial(n.Right, shapes, depth+1)
		}
	case *Unary[T]:
		if n.Op == OpNegate {
			return s.collectPolynomial(n.Operand, shapes, depth+1)
		}
	}
	shape, ok := s.termShape(node, depth)
	if !ok {
		return false
	}
	*shapes = append(*shapes, shape)
	return true
}

func (s *Symbolics[T]) polynomialShapes(node Node[T]) ([]*termShape[T], bool) {
	var shapes []*termShape[T]
	if !s.collectPolynomial(node, &shapes, 0) || len(shapes) == 0 {
		return nil, false
	}

	used := make(map[string]map[string]bool) // variable -> exponents
	for _, shape := range shapes {
		for _, name := range sortedKeys(shape.exponents) {
			key := s.num.Format(shape.exponents[name])
			if used[name] == nil {
				used[name] = make(map[string]bool)
			}
			if used[name][key] {
				return nil, false
			}
			used[name][key] = true
		}
	}
	return shapes, true
}

// IsSimplifiedPolynomial reports whether node is a sum or difference of
// simplified terms in which no variable/exponent pair appears in two terms.
// Negate passes through.
func (s *Symbolics[T]) IsSimplifiedPolynomial(node Node[T]) bool {
	_, ok := s.polynomialShapes(node)
	return ok
}

// Degree returns the largest exponent on any variable of a simplified
// polynomial. A bare variable counts as exponent one and a constant as zero.
func (s *Symbolics[T]) Degree(node Node[T]) (T, error) {
	var zero T
	shapes, ok := s.polynomialShapes(node)
	if !ok {
		return zero, errwrap.Wrapf(ErrPrecondition, "Degree requires IsSimplifiedPolynomial: %s", node)
	}
	degree := s.zero()
	for _, shape := range shapes {
		for _, exp := range shape.exponents {
			if s.num.Compare(exp, degree) > 0 {
				degree = exp
			}
		}
	}
	return degree, nil
}

// Coefficient returns the constant multiplicand of a simplified term, or one
// when there is none. Each Negate flips the sign.
func (s *Symbolics[T]) Coefficient(node Node[T]) (T, error) {
	var zero T
	if !s.IsSimplifiedTerm(node) {
		return zero, errwrap.Wrapf(ErrPrecondition, "Coefficient requires IsSimplifiedTerm: %s", node)
	}
	if c, ok := s.coefficient(node); ok {
		return c, nil
	}
	return s.one(), nil
}

func (s *Symbolics[T]) coefficient(node Node[T]) (T, bool) {
	var zero T
	switch n := node.(type) {
	case *Constant[T]:
		return n.Value, true
	case *Unary[T]:
		if n.Op == OpNegate {
			if c, ok := s.coefficient(n.Operand); ok {
				return s.num.Negate(c), true
			}
			return s.num.FromInt64(-1), true
		}
	case *Binary[T]:
		if n.Op == OpMultiply {
			l, lok := s.coefficient(n.Left)
			r, rok := s.coefficient(n.Right)
			switch {
			case lok && rok:
				return s.num.Multiply(l, r), true
			case lok:
				return l, true
			case rok:
				return r, true
			}
		}
	}
	return zero, false
}

// Terms splits an additive tree into its terms. A term on the right of a
// Subtraction comes back wrapped in Negate. A product with a sum among its
// factors is rejected since it has not been distributed. Sums nested inside
// other operations, as in x*sin(y+1), are opaque.
func (s *Symbolics[T]) Terms(node Node[T]) ([]Node[T], error) {
	var out []Node[T]
	if err := s.terms(node, false, &out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Symbolics[T]) terms(node Node[T], negated bool, out *[]Node[T], depth int) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	switch n := node.(type) {
	case *Binary[T]:
		switch n.Op {
		case OpAdd:
			if err := s.terms(n.Left, negated, out, depth+1); err != nil {
				return err
			}
			return s.terms(n.Right, negated, out, depth+1)
		case OpSubtract:
			if err := s.terms(n.Left, negated, out, depth+1); err != nil {
				return err
			}
			return s.terms(n.Right, !negated, out, depth+1)
		case OpMultiply:
			if hasSumFactor(node) {
				return errwrap.Wrapf(ErrPrecondition, "Terms requires a distributed product: %s", node)
			}
		}
	case *Unary[T]:
		if n.Op == OpNegate {
			return s.terms(n.Operand, !negated, out, depth+1)
		}
	}

	term, err := Clone(node)
	if err != nil {
		return err
	}
	if negated {
		term = Neg(term)
	}
	*out = append(*out, term)
	return nil
}

// hasSumFactor reports whether a multiplicative factor of node, looking
// through Multiply and Negate only, is an Add or Subtract.
func hasSumFactor[T any](node Node[T]) bool {
	for {
		switch n := node.(type) {
		case *Binary[T]:
			if n.Op.IsAdditive() {
				return true
			}
			if n.Op != OpMultiply {
				return false
			}
			if hasSumFactor(n.Left) {
				return true
			}
			node = n.Right
		case *Unary[T]:
			if n.Op != OpNegate {
				return false
			}
			node = n.Operand
		default:
			return false
		}
	}
}
