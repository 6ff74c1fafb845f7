package uia

// WalkSubtree visits every node up to maxDepth levels below from, calling fn
// with each node and its depth relative to from (from itself is depth 0).
// Traversal stops early when fn returns false. The walk is iterative so
// pathological provider trees cannot exhaust the call stack.
func WalkSubtree(from Node, maxDepth int, fn func(n Node, depth int) bool) {
	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{from, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			return
		}
		if f.depth >= maxDepth {
			continue
		}
		// Collect children, then push reversed to preserve sibling order.
		var children []Node
		for child, ok := f.node.FirstChild(); ok; child, ok = child.NextSibling() {
			children = append(children, child)
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
}

// FindAllByWalk is a reference implementation of Provider.FindAll built on
// WalkSubtree. Providers without a native bounded search can delegate to it.
func FindAllByWalk(from Node, c Constraint, maxDepth int) []Node {
	var found []Node
	WalkSubtree(from, maxDepth, func(n Node, depth int) bool {
		if depth > 0 && c.Matches(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}
