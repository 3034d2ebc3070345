// Package property holds named invariants of the symbolic engine that can be
// checked against arbitrary trees, and a shrinker that reduces a failing tree
// to a small counterexample.
package property

import (
	"errors"
	"sort"

	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/parse"
)

var (
	// ErrViolated is returned by a check whose property does not hold.
	ErrViolated = errors.New("property violated")

	// ErrSkip is returned by a check that could not be applied to a tree,
	// for example because it divides by zero.
	ErrSkip = errors.New("check skipped")
)

// Check verifies one property of tree. It returns nil when the property holds,
// an error wrapping ErrSkip when it does not apply, and any other error when
// it fails.
type Check[T any] func(s *expr.Symbolics[T], tree expr.Node[T]) error

// Checks returns the registry of named checks.
func Checks[T any]() map[string]Check[T] {
	return map[string]Check[T]{
		"idempotent": Idempotent[T],
		"clone":      CloneIndependent[T],
		"roundtrip":  RoundTrip[T],
		"substitute": SubstituteAll[T],
	}
}

// Names returns the sorted check names.
func Names() []string {
	names := make([]string, 0, 4)
	for k := range Checks[float64]() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// skippable reports whether err comes from the arithmetic rather than from the
// engine itself.
func skippable(err error) bool {
	return errors.Is(err, numeric.ErrDivideByZero) || errors.Is(err, numeric.ErrNotRepresentable)
}

// simplify runs Simplify, turning arithmetic failures into skips.
func simplify[T any](s *expr.Symbolics[T], tree expr.Node[T]) (expr.Node[T], error) {
	out, err := s.Simplify(tree)
	if err != nil && skippable(err) {
		return nil, errwrap.Wrapf(ErrSkip, "%v", err)
	}
	return out, err
}

// Idempotent checks that simplifying a simplified tree changes nothing.
func Idempotent[T any](s *expr.Symbolics[T], tree expr.Node[T]) error {
	once, err := simplify(s, tree)
	if err != nil {
		return err
	}
	twice, err := simplify(s, once)
	if err != nil {
		return err
	}
	if !s.AreEqual(once, twice) {
		return errwrap.Wrapf(ErrViolated, "simplify(%s) = %s but simplify again = %s", tree, once, twice)
	}
	return nil
}

// CloneIndependent checks that a clone equals its source and that rewriting
// the clone leaves the source untouched.
func CloneIndependent[T any](s *expr.Symbolics[T], tree expr.Node[T]) error {
	before := tree.String()
	dup, err := expr.Clone(tree)
	if err != nil {
		return err
	}
	if !s.AreEqual(dup, tree) {
		return errwrap.Wrapf(ErrViolated, "clone of %s is %s", tree, dup)
	}
	marker := expr.Var[T]("__clone_marker")
	replaced, err := expr.Replace[T, expr.Node[T]](dup, nil, func(expr.Node[T]) expr.Node[T] {
		return marker
	})
	if err != nil {
		return err
	}
	if !s.AreEqual(replaced, marker) {
		return errwrap.Wrapf(ErrViolated, "replacing the root of %s gave %s", dup, replaced)
	}
	if tree.String() != before || !s.AreEqual(dup, tree) {
		return errwrap.Wrapf(ErrViolated, "replace mutated its input %s", before)
	}
	return nil
}

// RoundTrip checks that parsing the prefix rendering gives back the tree. The
// grammar only has plain decimal numerals, so trees holding a negative or
// fractional constant are skipped.
func RoundTrip[T any](s *expr.Symbolics[T], tree expr.Node[T]) error {
	num := s.Numeric()
	if expr.Contains(tree, func(c *expr.Constant[T]) bool { return !plainNumeral(num.Format(c.Value)) }) {
		return errwrap.Wrapf(ErrSkip, "constant without a numeral form in %s", tree)
	}
	text := expr.Prefix(tree)
	got, err := parse.Parse(num, text)
	if err != nil {
		return errwrap.Wrapf(ErrViolated, "parse(%q): %v", text, err)
	}
	if !s.AreEqual(got, tree) {
		return errwrap.Wrapf(ErrViolated, "parse(%q) = %s", text, got)
	}
	return nil
}

// SubstituteAll checks that binding every variable to a constant and
// simplifying leaves no variable behind.
func SubstituteAll[T any](s *expr.Symbolics[T], tree expr.Node[T]) error {
	num := s.Numeric()
	out := tree
	for i, name := range expr.Variables(tree) {
		next, err := s.Substitute(out, name, num.FromInt64(int64(i+2)))
		if err != nil {
			return err
		}
		out = next
	}
	simplified, err := simplify(s, out)
	if err != nil {
		return err
	}
	if vars := expr.Variables(simplified); len(vars) > 0 {
		return errwrap.Wrapf(ErrViolated, "variables %v survive substitution in %s", vars, simplified)
	}
	// a variable-free polynomial must fold all the way down
	if _, ok := simplified.(*expr.Constant[T]); !ok && s.IsSimplifiableToPolynomial(out) {
		return errwrap.Wrapf(ErrViolated, "%s did not fold to a constant, got %s", out, simplified)
	}
	return nil
}

func plainNumeral(text string) bool {
	if text == "" {
		return false
	}
	dots := 0
	for _, r := range text {
		switch {
		case r == '.':
			dots++
		case r < '0' || r > '9':
			return false
		}
	}
	return dots <= 1
}
