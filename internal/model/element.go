package model

import "fmt"

// Element is the caller-facing, long-lived reference to a UI element. It
// bundles everything needed to re-find the element later: a display name, the
// generated locator, and the best-effort native handle, runtime id, and
// bounds captured at lookup time. The handle and runtime id may go stale at
// any moment; resolution re-derives a fresh live handle instead of mutating
// the reference, so Element values are immutable and safe to share.
type Element struct {
	name      string
	locator   string
	handle    Handle
	runtimeID RuntimeID
	bounds    Rect
}

// NewElement builds an element reference from capture-time data.
func NewElement(name, locator string, handle Handle, runtimeID RuntimeID, bounds Rect) *Element {
	return &Element{
		name:      name,
		locator:   locator,
		handle:    handle,
		runtimeID: runtimeID,
		bounds:    bounds,
	}
}

// Name returns the element's display name at capture time.
func (e *Element) Name() string { return e.name }

// Locator returns the stored locator path string.
func (e *Element) Locator() string { return e.locator }

// Handle returns the native handle captured at lookup time. May be stale.
func (e *Element) Handle() Handle { return e.handle }

// RuntimeID returns the runtime id captured at lookup time. May be stale.
func (e *Element) RuntimeID() RuntimeID { return e.runtimeID }

// Bounds returns the bounding rectangle at capture time.
func (e *Element) Bounds() Rect { return e.bounds }

func (e *Element) String() string {
	return fmt.Sprintf("<Element name=%q handle=%d runtime_id=%s bounds=%s>",
		e.name, e.handle, e.runtimeID, e.bounds)
}
