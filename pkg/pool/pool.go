// Package pool holds named sets of building blocks for generating random
// expression trees.
package pool

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// ErrUnknownPool is returned by Get for a name nobody registered.
var ErrUnknownPool = errors.New("unknown pool")

// Leaf describes a leaf node independent of the numeric type. A leaf with a
// Variable name is a variable, otherwise it is the constant Value.
type Leaf struct {
	Variable string
	Value    int64
}

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) Leaf
	RandomUnary(rng *rand.Rand) expr.UnaryOp
	RandomBinary(rng *rand.Rand) expr.BinaryOp
}

// ExponentPool is implemented by pools that want powers raised to a small
// constant rather than to an arbitrary subtree.
type ExponentPool interface {
	RandomExponent(rng *rand.Rand) int64
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errwrap.Wrapf(ErrUnknownPool, "%s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RandomTree builds a random tree no deeper than maxDepth from the blocks p
// supplies.
func RandomTree[T any](p Pool, num numeric.Arithmetic[T], rng *rand.Rand, maxDepth int) expr.Node[T] {
	if maxDepth <= 1 {
		return leaf(p.RandomLeaf(rng), num)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.4:
		return leaf(p.RandomLeaf(rng), num)
	case r < 0.6:
		return expr.NewUnary(p.RandomUnary(rng), RandomTree(p, num, rng, maxDepth-1))
	default:
		op := p.RandomBinary(rng)
		left := RandomTree(p, num, rng, maxDepth-1)
		if ep, ok := p.(ExponentPool); ok && op == expr.OpPower {
			return expr.NewBinary(op, left, expr.Node[T](expr.Const(num.FromInt64(ep.RandomExponent(rng)))))
		}
		return expr.NewBinary(op, left, RandomTree(p, num, rng, maxDepth-1))
	}
}

func leaf[T any](l Leaf, num numeric.Arithmetic[T]) expr.Node[T] {
	if l.Variable != "" {
		return expr.Var[T](l.Variable)
	}
	return expr.Const(num.FromInt64(l.Value))
}
