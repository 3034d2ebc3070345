package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// DefaultMaxDepth is the recursion limit used when none is configured.
const DefaultMaxDepth = 2048

// Symbolics binds the engine to a numeric facade. It holds no mutable state
// and is safe for concurrent use.
type Symbolics[T any] struct {
	num      numeric.Arithmetic[T]
	maxDepth int
}

// Option configures a Symbolics.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth caps how deep a tree the recursive services will descend.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// New returns an engine that folds constants through num.
func New[T any](num numeric.Arithmetic[T], opts ...Option) *Symbolics[T] {
	o := &options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxDepth <= 0 {
		o.maxDepth = DefaultMaxDepth
	}
	return &Symbolics[T]{num: num, maxDepth: o.maxDepth}
}

// Numeric returns the facade this engine was built with.
func (s *Symbolics[T]) Numeric() numeric.Arithmetic[T] { return s.num }

func (s *Symbolics[T]) checkDepth(depth int) error {
	if depth > s.maxDepth {
		return errwrap.Wrapf(ErrDepthExceeded, "depth %d > %d", depth, s.maxDepth)
	}
	return nil
}

// CheckDepth returns ErrDepthExceeded when node nests deeper than the
// configured limit. It walks with an explicit stack so it is safe to call on
// trees of any depth.
func (s *Symbolics[T]) CheckDepth(node Node[T]) error {
	type frame struct {
		node  Node[T]
		depth int
	}
	stack := []frame{{node, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := s.checkDepth(f.depth); err != nil {
			return err
		}
		f.node.Step(func(child Node[T]) {
			stack = append(stack, frame{child, f.depth + 1})
		})
	}
	return nil
}

func (s *Symbolics[T]) zero() T { return s.num.FromInt64(0) }
func (s *Symbolics[T]) one() T  { return s.num.FromInt64(1) }

// isConst reports whether n is a constant whose value equals v.
func (s *Symbolics[T]) isConst(n Node[T], v int64) bool {
	c, ok := n.(*Constant[T])
	return ok && s.num.Equal(c.Value, s.num.FromInt64(v))
}

func (s *Symbolics[T]) isNegativeConst(n Node[T]) bool {
	c, ok := n.(*Constant[T])
	return ok && s.num.Sign(c.Value) < 0
}
