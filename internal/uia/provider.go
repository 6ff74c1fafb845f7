// Package uia defines the contract between the locator engine and the native
// accessibility provider. Concrete providers (UI Automation, AT-SPI, AX) live
// outside this repository and register themselves at init time; everything in
// here is expressed against interfaces so the engine can be driven by the
// in-memory fake in uiatest.
package uia

import (
	"fmt"
	"runtime"

	"github.com/mj1618/locator-cli/internal/model"
)

// Attr identifies one of the textual attributes a provider exposes per node.
type Attr int

const (
	AttrName Attr = iota
	AttrClassName
	AttrControlType
	AttrLocalizedControlType
	AttrFrameworkID
	AttrAutomationID
)

// Node is one live element in the provider's tree. Attribute getters return
// ok=false when the provider reports the attribute as unknown or absent,
// which is distinct from an empty string value.
//
// Nodes are weak references: every method may stop succeeding the moment the
// underlying element is destroyed.
type Node interface {
	Attr(key Attr) (string, bool)
	ID() (model.RuntimeID, bool)
	Rect() (model.Rect, bool)
	NativeHandle() (model.Handle, bool)
	// ClickablePoint returns a point guaranteed to hit the element, used for
	// locator regeneration during ambiguity resolution.
	ClickablePoint() (x, y int, ok bool)

	FirstChild() (Node, bool)
	NextSibling() (Node, bool)
}

// Constraint is one link of a structural search chain: a required control
// type plus optional attribute and identity filters. Nil optional fields
// match anything.
type Constraint struct {
	ControlType  string
	Name         *string
	ClassName    *string
	AutomationID *string
	// RuntimeID, when non-nil, matches by identity alone; used for the
	// resolver's first-tier live lookup.
	RuntimeID model.RuntimeID
}

// Matches reports whether a live node satisfies the constraint. Providers
// with native matchers may push the filters down instead of calling this.
func (c Constraint) Matches(n Node) bool {
	if c.RuntimeID != nil {
		id, ok := n.ID()
		return ok && id.Equal(c.RuntimeID)
	}
	if c.ControlType != "" {
		ct, ok := n.Attr(AttrControlType)
		if !ok || ct != c.ControlType {
			return false
		}
	}
	if c.Name != nil {
		v, ok := n.Attr(AttrName)
		if !ok || v != *c.Name {
			return false
		}
	}
	if c.ClassName != nil {
		v, ok := n.Attr(AttrClassName)
		if !ok || v != *c.ClassName {
			return false
		}
	}
	if c.AutomationID != nil {
		v, ok := n.Attr(AttrAutomationID)
		if !ok || v != *c.AutomationID {
			return false
		}
	}
	return true
}

// Provider is a live accessibility session.
type Provider interface {
	// Root returns the tree root, or ErrProviderUnavailable-wrapping error
	// when the session cannot be established.
	Root() (Node, error)
	// FindAll returns every node within maxDepth levels below from (from
	// itself excluded) that satisfies the constraint, in traversal order.
	FindAll(from Node, c Constraint, maxDepth int) ([]Node, error)
}

// ErrProviderUnavailable is returned when no native provider is registered
// for the current platform or the session cannot be initialized.
var ErrProviderUnavailable = fmt.Errorf("accessibility provider unavailable on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
var NewProviderFunc func() (Provider, error)

// NewProvider returns the registered provider for the current OS.
func NewProvider() (Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrProviderUnavailable
	}
	return NewProviderFunc()
}
