// Package uiatest provides an in-memory accessibility provider for tests.
// Trees are declared as nested FakeNode literals; the provider supports the
// same walker and bounded-search primitives as a native backend, plus
// mutation helpers to simulate UI changes and runtime-id renumbering between
// snapshot builds.
package uiatest

import (
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/uia"
)

// FakeNode is one element of a scripted accessibility tree.
type FakeNode struct {
	Name                 string
	ClassName            string
	ControlType          string
	LocalizedControlType string
	FrameworkID          string
	AutomationID         string
	RuntimeID            model.RuntimeID
	Handle               model.Handle
	Bounds               model.Rect
	Children             []*FakeNode

	// AbsentAttrs lists attributes the node reports as unknown, to exercise
	// the absent-vs-empty distinction of the provider contract.
	AbsentAttrs []uia.Attr
	// NoClickablePoint makes ClickablePoint report no usable point.
	NoClickablePoint bool

	parent     *FakeNode
	siblingIdx int
}

var _ uia.Node = (*FakeNode)(nil)

// Attr implements uia.Node.
func (n *FakeNode) Attr(key uia.Attr) (string, bool) {
	for _, a := range n.AbsentAttrs {
		if a == key {
			return "", false
		}
	}
	switch key {
	case uia.AttrName:
		return n.Name, true
	case uia.AttrClassName:
		return n.ClassName, true
	case uia.AttrControlType:
		return n.ControlType, true
	case uia.AttrLocalizedControlType:
		return n.LocalizedControlType, true
	case uia.AttrFrameworkID:
		return n.FrameworkID, true
	case uia.AttrAutomationID:
		return n.AutomationID, true
	}
	return "", false
}

// ID implements uia.Node. A nil runtime id is reported as absent.
func (n *FakeNode) ID() (model.RuntimeID, bool) {
	if n.RuntimeID == nil {
		return nil, false
	}
	return n.RuntimeID, true
}

// Rect implements uia.Node.
func (n *FakeNode) Rect() (model.Rect, bool) { return n.Bounds, true }

// NativeHandle implements uia.Node. Handle 0 is reported as absent.
func (n *FakeNode) NativeHandle() (model.Handle, bool) { return n.Handle, n.Handle != 0 }

// ClickablePoint implements uia.Node; it reports the bounds center.
func (n *FakeNode) ClickablePoint() (int, int, bool) {
	if n.NoClickablePoint {
		return 0, 0, false
	}
	x, y := n.Bounds.Center()
	return x, y, true
}

// FirstChild implements uia.Node.
func (n *FakeNode) FirstChild() (uia.Node, bool) {
	if len(n.Children) == 0 {
		return nil, false
	}
	return n.Children[0], true
}

// NextSibling implements uia.Node.
func (n *FakeNode) NextSibling() (uia.Node, bool) {
	if n.parent == nil || n.siblingIdx+1 >= len(n.parent.Children) {
		return nil, false
	}
	return n.parent.Children[n.siblingIdx+1], true
}

// Provider is a scripted uia.Provider over a FakeNode tree.
type Provider struct {
	root *FakeNode
	// Err, when set, is returned by Root to simulate an unavailable session.
	Err error
}

var _ uia.Provider = (*Provider)(nil)

// NewProvider links the tree's parent/sibling pointers and wraps it.
func NewProvider(root *FakeNode) *Provider {
	p := &Provider{root: root}
	p.relink()
	return p
}

// Root implements uia.Provider.
func (p *Provider) Root() (uia.Node, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.root, nil
}

// FindAll implements uia.Provider by walking the subtree.
func (p *Provider) FindAll(from uia.Node, c uia.Constraint, maxDepth int) ([]uia.Node, error) {
	return uia.FindAllByWalk(from, c, maxDepth), nil
}

// Renumber adds delta to every component of every runtime id in the tree,
// simulating the provider renumbering elements across a rebuild.
func (p *Provider) Renumber(delta int32) {
	p.walk(func(n *FakeNode) {
		for i := range n.RuntimeID {
			n.RuntimeID[i] += delta
		}
	})
}

// Remove detaches the subtree whose root carries the given runtime id.
// It reports whether a node was removed.
func (p *Provider) Remove(id model.RuntimeID) bool {
	var target *FakeNode
	p.walk(func(n *FakeNode) {
		if target == nil && n.RuntimeID.Equal(id) {
			target = n
		}
	})
	if target == nil || target.parent == nil {
		return false
	}
	parent := target.parent
	parent.Children = append(parent.Children[:target.siblingIdx], parent.Children[target.siblingIdx+1:]...)
	p.relink()
	return true
}

// Attach adds child under the node with the given runtime id and relinks.
// It reports whether the parent was found.
func (p *Provider) Attach(parentID model.RuntimeID, child *FakeNode) bool {
	var target *FakeNode
	p.walk(func(n *FakeNode) {
		if target == nil && n.RuntimeID.Equal(parentID) {
			target = n
		}
	})
	if target == nil {
		return false
	}
	target.Children = append(target.Children, child)
	p.relink()
	return true
}

func (p *Provider) walk(fn func(*FakeNode)) {
	var rec func(n *FakeNode)
	rec = func(n *FakeNode) {
		fn(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	rec(p.root)
}

func (p *Provider) relink() {
	var rec func(n *FakeNode)
	rec = func(n *FakeNode) {
		for i, c := range n.Children {
			c.parent = n
			c.siblingIdx = i
			rec(c)
		}
	}
	p.root.parent = nil
	p.root.siblingIdx = 0
	rec(p.root)
}
