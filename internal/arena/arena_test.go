package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *Tree[string] {
	t := New("root", "r")
	a := t.AddChild(0, "a", "A")
	t.AddChild(0, "b", "B")
	t.AddChild(a, "a1", "A1")
	t.AddChild(a, "a2", "A2")
	return t
}

func TestNew_RootIsIndexZero(t *testing.T) {
	tree := New("desktop", 42)
	require.Equal(t, 1, tree.Len())
	root := tree.Node(tree.Root())
	assert.Equal(t, 0, root.Index)
	assert.Equal(t, 0, root.Parent)
	assert.Equal(t, "desktop", root.Name)
	assert.Equal(t, 42, root.Data)
}

func TestAddChild_LinksParentAndOrder(t *testing.T) {
	tree := buildSample()
	require.Equal(t, 5, tree.Len())
	assert.Equal(t, []int{1, 2}, tree.Children(0))
	assert.Equal(t, []int{3, 4}, tree.Children(1))
	assert.Equal(t, 1, tree.Node(3).Parent)
}

func TestPathTo(t *testing.T) {
	tree := buildSample()
	assert.Empty(t, tree.PathTo(0))
	assert.Equal(t, []int{1, 4}, tree.PathTo(4))
	assert.Equal(t, []int{2}, tree.PathTo(2))
}

func TestWalk_DepthFirstOrder(t *testing.T) {
	tree := buildSample()
	var got []string
	tree.Walk(func(_ int, data *string) {
		got = append(got, *data)
	})
	assert.Equal(t, []string{"r", "A", "A1", "A2", "B"}, got)
}

func TestWalk_CycleGuarded(t *testing.T) {
	tree := buildSample()
	// Corrupt the tree so a descendant points back at its ancestor.
	tree.Node(4).Children = append(tree.Node(4).Children, 1)

	count := 0
	tree.Walk(func(int, *string) { count++ })
	assert.Equal(t, 5, count, "each node must be visited exactly once")
}

func TestWalkFrom_Subtree(t *testing.T) {
	tree := buildSample()
	var got []string
	tree.WalkFrom(1, func(_ int, data *string) {
		got = append(got, *data)
	})
	assert.Equal(t, []string{"A", "A1", "A2"}, got)
}
