package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"
)

// Derive is not implemented and always returns ErrUnsupported.
func (s *Symbolics[T]) Derive(node Node[T], variable string) (Node[T], error) {
	return nil, errwrap.Wrapf(ErrUnsupported, "derive %s with respect to %s", node, variable)
}

// Integrate returns an antiderivative of node with respect to variable. No
// integration constant is added.
//
// A variable-free algebraic expression c integrates to c*variable. A
// simplified polynomial is integrated term by term with the power rule and the
// result is simplified. Anything else returns ErrUnsupported. A tree deeper
// than the configured limit returns ErrDepthExceeded.
func (s *Symbolics[T]) Integrate(node Node[T], variable string) (Node[T], error) {
	if err := s.CheckDepth(node); err != nil {
		return nil, err
	}
	if !ContainsVariable(node, variable) && s.IsValidAlgebraicExpression(node) {
		c, err := Clone(node)
		if err != nil {
			return nil, err
		}
		return Mul(c, Node[T](Var[T](variable))), nil
	}

	if !s.IsSimplifiedPolynomial(node) {
		return nil, errwrap.Wrapf(ErrUnsupported, "integrate %s with respect to %s", node, variable)
	}

	terms, err := s.Terms(node)
	if err != nil {
		return nil, err
	}
	var sum Node[T]
	for _, term := range terms {
		t, err := s.integrateTerm(term, variable)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = t
			continue
		}
		sum = Add(sum, t)
	}
	return s.Simplify(sum)
}

// integrateTerm applies the power rule to one simplified term.
func (s *Symbolics[T]) integrateTerm(term Node[T], variable string) (Node[T], error) {
	var (
		exp   T
		found bool
		power bool
	)
	Walk(term, func(n Node[T]) bool {
		switch n := n.(type) {
		case *Binary[T]:
			if v, ok := n.Left.(*Variable[T]); ok && n.Op == OpPower && v.Name == variable {
				if c, ok := n.Right.(*Constant[T]); ok {
					exp, found, power = c.Value, true, true
				}
				return false
			}
		case *Variable[T]:
			if n.Name == variable {
				exp, found = s.one(), true
			}
		}
		return !found
	})

	if !found {
		c, err := Clone(term)
		if err != nil {
			return nil, err
		}
		return Mul(c, Node[T](Var[T](variable))), nil
	}

	next := s.num.Add(exp, s.one())
	raised := func() Node[T] { return Pow(Node[T](Var[T](variable)), Node[T](Const(next))) }

	var replaced Node[T]
	var err error
	if power {
		replaced, err = replaceDepth(term, func(b *Binary[T]) bool {
			v, ok := b.Left.(*Variable[T])
			return ok && b.Op == OpPower && v.Name == variable
		}, func(*Binary[T]) Node[T] { return raised() }, s.maxDepth)
	} else {
		replaced, err = replaceDepth(term, func(v *Variable[T]) bool {
			return v.Name == variable
		}, func(*Variable[T]) Node[T] { return raised() }, s.maxDepth)
	}
	if err != nil {
		return nil, err
	}
	return Div(replaced, Node[T](Const(next))), nil
}
