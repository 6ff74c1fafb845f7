// Package arena provides a generic indexed tree container. Nodes are stored
// in a flat slice and reference each other by index, so the tree can be
// copied, iterated, and cross-referenced from parallel structures (e.g. a
// document mirror) without pointer chasing. Indexes are stable only within
// one tree instance.
package arena

// Node is a single tree node. Index 0 is always the root, whose Parent is
// also 0 by convention.
type Node[T any] struct {
	Name     string
	Index    int
	Parent   int
	Children []int
	Data     T
}

// Tree is an append-only indexed tree. The zero value is not usable; create
// one with New.
type Tree[T any] struct {
	nodes []Node[T]
}

// New creates a tree containing only the root node.
func New[T any](rootName string, rootData T) *Tree[T] {
	return &Tree[T]{
		nodes: []Node[T]{{Name: rootName, Index: 0, Parent: 0, Data: rootData}},
	}
}

// Root returns the root index, which is always 0.
func (t *Tree[T]) Root() int { return 0 }

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Node returns the node at the given index.
func (t *Tree[T]) Node(index int) *Node[T] { return &t.nodes[index] }

// Children returns the child indexes of the node at the given index, in
// traversal (sibling) order.
func (t *Tree[T]) Children(index int) []int { return t.nodes[index].Children }

// AddChild appends a new node under parent and returns its index.
func (t *Tree[T]) AddChild(parent int, name string, data T) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, Node[T]{
		Name:   name,
		Index:  index,
		Parent: parent,
		Data:   data,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, index)
	return index
}

// PathTo returns the indexes from the root's child down to the given node.
// The root itself is not included; PathTo(0) returns an empty path.
func (t *Tree[T]) PathTo(index int) []int {
	var path []int
	for current := index; current != 0; current = t.nodes[current].Parent {
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Walk visits every node reachable from the root in depth-first order,
// calling fn with each node's index and data. The traversal is iterative and
// cycle-guarded: a node is visited at most once even if the tree was built
// from a provider that reported the same element twice.
func (t *Tree[T]) Walk(fn func(index int, data *T)) {
	t.WalkFrom(0, fn)
}

// WalkFrom is Walk starting at an arbitrary node.
func (t *Tree[T]) WalkFrom(start int, fn func(index int, data *T)) {
	if start < 0 || start >= len(t.nodes) {
		return
	}
	visited := make(map[int]bool, len(t.nodes))
	stack := []int{start}
	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[index] {
			continue
		}
		visited[index] = true
		fn(index, &t.nodes[index].Data)
		children := t.nodes[index].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
