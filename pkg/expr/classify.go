package expr

// fixedDegree reports whether node is a single-variable simplified polynomial
// of exactly the given degree.
func (s *Symbolics[T]) fixedDegree(node Node[T], degree int64) bool {
	d, err := s.Degree(node)
	if err != nil {
		return false
	}
	return s.num.Equal(d, s.num.FromInt64(degree)) && len(Variables(node)) == 1
}

func (s *Symbolics[T]) IsSimplifiedLinearFunction(node Node[T]) bool {
	return s.fixedDegree(node, 1)
}

func (s *Symbolics[T]) IsSimplifiedQuadraticFunction(node Node[T]) bool {
	return s.fixedDegree(node, 2)
}

func (s *Symbolics[T]) IsSimplifiedCubicFunction(node Node[T]) bool {
	return s.fixedDegree(node, 3)
}

func (s *Symbolics[T]) IsSimplifiedQuarticFunction(node Node[T]) bool {
	return s.fixedDegree(node, 4)
}

func (s *Symbolics[T]) IsSimplifiedQuinticFunction(node Node[T]) bool {
	return s.fixedDegree(node, 5)
}

func (s *Symbolics[T]) IsSimplifiedSexticFunction(node Node[T]) bool {
	return s.fixedDegree(node, 6)
}

// IsSimplifiedPowerFunction reports whether node is a single simplified term
// in one variable, such as 3x^4.
func (s *Symbolics[T]) IsSimplifiedPowerFunction(node Node[T]) bool {
	shapes, ok := s.polynomialShapes(node)
	return ok && len(shapes) == 1 && len(Variables(node)) == 1
}

// IsSimplifiedRationalFunction reports whether node is a quotient of two
// simplified polynomials.
func (s *Symbolics[T]) IsSimplifiedRationalFunction(node Node[T]) bool {
	b, ok := node.(*Binary[T])
	if !ok || b.Op != OpDivide {
		return false
	}
	return s.IsSimplifiedPolynomial(b.Left) && s.IsSimplifiedPolynomial(b.Right)
}

// IsValidAlgebraicExpression reports whether node uses only algebraic
// operations: arithmetic, negation, square roots, powers with a constant
// exponent and roots with a constant index.
func (s *Symbolics[T]) IsValidAlgebraicExpression(node Node[T]) bool {
	return s.algebraic(node, 0)
}

func (s *Symbolics[T]) algebraic(node Node[T], depth int) bool {
	if depth > s.maxDepth {
		return false
	}
	switch n := node.(type) {
	case *Constant[T], *Variable[T]:
		return true
	case *Unary[T]:
		switch n.Op {
		case OpNegate, OpSquareRoot:
			return s.algebraic(n.Operand, depth+1)
		}
	case *Binary[T]:
		switch n.Op {
		case OpAdd, OpSubtract, OpMultiply, OpDivide:
			return s.algebraic(n.Left, depth+1) && s.algebraic(n.Right, depth+1)
		case OpPower, OpRoot:
			_, ok := n.Right.(*Constant[T])
			return ok && s.algebraic(n.Left, depth+1)
		}
	}
	return false
}

// IsSimplifiableToPolynomial reports whether expanding node would give a
// polynomial: sums and products of constants and variables, non-negative
// integer powers, and division by a non-zero constant.
func (s *Symbolics[T]) IsSimplifiableToPolynomial(node Node[T]) bool {
	return s.polynomialLike(node, 0)
}

func (s *Symbolics[T]) polynomialLike(node Node[T], depth int) bool {
	if depth > s.maxDepth {
		return false
	}
	switch n := node.(type) {
	case *Constant[T], *Variable[T]:
		return true
	case *Unary[T]:
		return n.Op == OpNegate && s.polynomialLike(n.Operand, depth+1)
	case *Binary[T]:
		switch n.Op {
		case OpAdd, OpSubtract, OpMultiply:
			return s.polynomialLike(n.Left, depth+1) && s.polynomialLike(n.Right, depth+1)
		case OpDivide:
			c, ok := n.Right.(*Constant[T])
			return ok && s.num.Sign(c.Value) != 0 && s.polynomialLike(n.Left, depth+1)
		case OpPower:
			c, ok := n.Right.(*Constant[T])
			return ok && s.num.IsInteger(c.Value) && s.num.IsNonNegative(c.Value) &&
				s.polynomialLike(n.Left, depth+1)
		}
	}
	return false
}

// unscaled strips a leading negation or a constant factor.
func (s *Symbolics[T]) unscaled(node Node[T]) Node[T] {
	switch n := node.(type) {
	case *Unary[T]:
		if n.Op == OpNegate {
			return n.Operand
		}
	case *Binary[T]:
		if n.Op != OpMultiply {
			break
		}
		if _, ok := n.Left.(*Constant[T]); ok {
			return n.Right
		}
		if _, ok := n.Right.(*Constant[T]); ok {
			return n.Left
		}
	}
	return node
}

// IsSimplifiedExponentialFunction matches c*exp(p) and c*b^p where p is
// linear in a single variable and b is a constant.
func (s *Symbolics[T]) IsSimplifiedExponentialFunction(node Node[T]) bool {
	switch n := s.unscaled(node).(type) {
	case *Unary[T]:
		return n.Op == OpExponential && s.IsSimplifiedLinearFunction(n.Operand)
	case *Binary[T]:
		_, ok := n.Left.(*Constant[T])
		return n.Op == OpPower && ok && s.IsSimplifiedLinearFunction(n.Right)
	}
	return false
}

// IsSimplifiedLogarithmicFunction matches c*ln(p) with p a polynomial in a
// single variable.
func (s *Symbolics[T]) IsSimplifiedLogarithmicFunction(node Node[T]) bool {
	u, ok := s.unscaled(node).(*Unary[T])
	if !ok || u.Op != OpNaturalLog {
		return false
	}
	return s.IsSimplifiedPolynomial(u.Operand) && len(Variables(u.Operand)) == 1
}

// IsSimplifiedSinusoidalFunction matches c*sin(p) + d and c*cos(p) + d, with
// the offset optional and p linear in a single variable.
func (s *Symbolics[T]) IsSimplifiedSinusoidalFunction(node Node[T]) bool {
	if b, ok := node.(*Binary[T]); ok && b.Op.IsAdditive() {
		if _, ok := b.Right.(*Constant[T]); ok {
			node = b.Left
		} else if _, ok := b.Left.(*Constant[T]); ok {
			node = b.Right
		}
	}
	u, ok := s.unscaled(node).(*Unary[T])
	if !ok || (u.Op != OpSine && u.Op != OpCosine) {
		return false
	}
	return s.IsSimplifiedLinearFunction(u.Operand)
}
