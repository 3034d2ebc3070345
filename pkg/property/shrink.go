package property

import (
	"errors"
	"sort"

	"github.com/wildfunctions/symbolics/pkg/expr"
)

// Fails reports whether err is a real failure rather than a pass or a skip.
func Fails(err error) bool {
	return err != nil && !errors.Is(err, ErrSkip)
}

// Shrink reduces a tree that fails check to a smaller one that still fails.
// Each round tries hoisting every subtree to the root and replacing every
// operation with one of its operands, smallest and then lightest candidate
// first, and keeps the
// first that fails. It stops when no candidate fails, and returns the last
// failing tree, freshly cloned, with its error. If tree does not fail, it is
// returned as is.
func Shrink[T any](s *expr.Symbolics[T], tree expr.Node[T], check Check[T]) (expr.Node[T], error) {
	err := check(s, tree)
	if !Fails(err) {
		return tree, err
	}
	for {
		next, nextErr := shrinkOnce(s, tree, check)
		if next == nil {
			break
		}
		tree, err = next, nextErr
	}
	out, cerr := expr.Clone(tree)
	if cerr != nil {
		return nil, cerr
	}
	return out, err
}

// shrinkOnce returns the first smaller failing candidate and its failure, or
// nil when there is none.
func shrinkOnce[T any](s *expr.Symbolics[T], tree expr.Node[T], check Check[T]) (expr.Node[T], error) {
	size := tree.NodeCount()
	for _, candidate := range candidates(tree) {
		if candidate.NodeCount() >= size {
			continue
		}
		if err := check(s, candidate); Fails(err) {
			return candidate, err
		}
	}
	return nil, nil
}

// candidates lists the hoist and shrink mutations of tree, smallest first.
// Equal sizes are ordered by weighted complexity, so cheaper operations are
// tried before trig, logs and powers.
func candidates[T any](tree expr.Node[T]) []expr.Node[T] {
	var out []expr.Node[T]
	for _, target := range collectNodes(tree) {
		if target == tree {
			continue
		}
		// hoist
		out = append(out, target)
	}
	for _, target := range collectNodes(tree) {
		target.Step(func(child expr.Node[T]) {
			// shrink: the operation collapses to this operand
			r, err := expr.Replace[T, expr.Node[T]](tree,
				func(n expr.Node[T]) bool { return n == target },
				func(expr.Node[T]) expr.Node[T] { return child })
			if err == nil {
				out = append(out, r)
			}
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ni, nj := out[i].NodeCount(), out[j].NodeCount()
		if ni != nj {
			return ni < nj
		}
		return expr.WeightedComplexity(out[i]) < expr.WeightedComplexity(out[j])
	})
	return out
}

// collectNodes returns every node in the tree, pre-order.
func collectNodes[T any](root expr.Node[T]) []expr.Node[T] {
	var result []expr.Node[T]
	expr.Walk(root, func(n expr.Node[T]) bool {
		result = append(result, n)
		return true
	})
	return result
}
