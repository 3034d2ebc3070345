package expr

func (c *Constant[T]) Step(func(Node[T])) {}
func (v *Variable[T]) Step(func(Node[T])) {}

func (u *Unary[T]) Step(fn func(Node[T])) { fn(u.Operand) }

func (b *Binary[T]) Step(fn func(Node[T])) {
	fn(b.Left)
	fn(b.Right)
}

func (m *Multinary[T]) Step(fn func(Node[T])) {
	for _, o := range m.Operands {
		fn(o)
	}
}

// Walk visits node and all of its descendants in pre-order. Returning false
// from fn prunes the subtree below the node just visited.
func Walk[T any](node Node[T], fn func(Node[T]) bool) {
	if !fn(node) {
		return
	}
	node.Step(func(child Node[T]) {
		Walk(child, fn)
	})
}

// Contains reports whether node, or any of its descendants, is of variant N
// and satisfies pred. A nil pred matches every node of variant N.
func Contains[T any, N Node[T]](node Node[T], pred func(N) bool) bool {
	found := false
	Walk(node, func(n Node[T]) bool {
		if found {
			return false
		}
		if m, ok := n.(N); ok && (pred == nil || pred(m)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// ContainsVariable reports whether a variable called name appears in node.
func ContainsVariable[T any](node Node[T], name string) bool {
	return Contains(node, func(v *Variable[T]) bool { return v.Name == name })
}

// Variables returns the sorted set of distinct variable names in node.
func Variables[T any](node Node[T]) []string {
	seen := map[string]struct{}{}
	Walk(node, func(n Node[T]) bool {
		if v, ok := n.(*Variable[T]); ok {
			seen[v.Name] = struct{}{}
		}
		return true
	})
	return sortedKeys(seen)
}
