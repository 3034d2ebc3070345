package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"
)

// Clone returns a deep structural copy of node.
func Clone[T any](node Node[T]) (Node[T], error) {
	return rebuild(node, nil, 0, DefaultMaxDepth)
}

// Replace returns a new tree identical to node except that every subtree whose
// root is of variant N and satisfies pred is swapped for the node factory
// builds from it. A replaced subtree is not descended into. The input tree is
// never modified.
func Replace[T any, N Node[T]](node Node[T], pred func(N) bool, factory func(N) Node[T]) (Node[T], error) {
	return replaceDepth(node, pred, factory, DefaultMaxDepth)
}

func replaceDepth[T any, N Node[T]](node Node[T], pred func(N) bool, factory func(N) Node[T], maxDepth int) (Node[T], error) {
	swap := func(n Node[T]) (Node[T], bool) {
		m, ok := n.(N)
		if !ok || (pred != nil && !pred(m)) {
			return nil, false
		}
		return factory(m), true
	}
	return rebuild(node, swap, 0, maxDepth)
}

// rebuild walks node pre-order and reconstructs it on the way back. When swap
// is non-nil it gets a chance to substitute each node before descent.
func rebuild[T any](node Node[T], swap func(Node[T]) (Node[T], bool), depth, maxDepth int) (Node[T], error) {
	if depth > maxDepth {
		return nil, errwrap.Wrapf(ErrDepthExceeded, "depth %d > %d", depth, maxDepth)
	}
	if swap != nil {
		if r, ok := swap(node); ok {
			if r == nil {
				return nil, errwrap.Wrapf(ErrInternal, "replacement factory returned nil")
			}
			return r, nil
		}
	}

	switch n := node.(type) {
	case *Constant[T]:
		return &Constant[T]{Value: n.Value}, nil

	case *Variable[T]:
		return &Variable[T]{Name: n.Name}, nil

	case *Unary[T]:
		operand, err := rebuild(n.Operand, swap, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		return &Unary[T]{Op: n.Op, Operand: operand}, nil

	case *Binary[T]:
		left, err := rebuild(n.Left, swap, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		right, err := rebuild(n.Right, swap, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		return &Binary[T]{Op: n.Op, Left: left, Right: right}, nil

	case *Multinary[T]:
		operands := make([]Node[T], len(n.Operands))
		for i, o := range n.Operands {
			c, err := rebuild(o, swap, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			operands[i] = c
		}
		return &Multinary[T]{Op: n.Op, Operands: operands}, nil
	}

	return nil, errwrap.Wrapf(ErrInternal, "unknown node variant %T", node)
}

// Substitute replaces every occurrence of the variable name with a constant.
func (s *Symbolics[T]) Substitute(node Node[T], name string, value T) (Node[T], error) {
	return s.SubstituteNode(node, name, Const(value))
}

// SubstituteNode replaces every occurrence of the variable name with a fresh
// clone of replacement.
func (s *Symbolics[T]) SubstituteNode(node Node[T], name string, replacement Node[T]) (Node[T], error) {
	var cloneErr error
	out, err := replaceDepth(node,
		func(v *Variable[T]) bool { return v.Name == name },
		func(*Variable[T]) Node[T] {
			c, err := rebuild(replacement, nil, 0, s.maxDepth)
			if err != nil {
				cloneErr = err
				return &Constant[T]{} // discarded below
			}
			return c
		},
		s.maxDepth,
	)
	if err != nil {
		return nil, err
	}
	if cloneErr != nil {
		return nil, cloneErr
	}
	return out, nil
}
