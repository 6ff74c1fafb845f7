// Package locator implements the path notation used to re-find accessibility
// elements structurally: a parser for the segment grammar, a best-effort
// generator producing robust paths from the snapshot's document mirror, and
// an evaluator for the supported subset.
//
// The grammar:
//
//	path      = ("/" | "//") segment *("/" segment) ["/@RtID"]
//	segment   = tag *predicate
//	predicate = "[@" attr "=" quoted "]" / "[" 1*DIGIT "]"
//	attr      = "Name" / "ClassName" / "AutomationId" / "RtID"
//
// A path starting with "//" anchors its first segment at any depth
// (descendant axis); "//*" with an attribute predicate is the global
// attribute shortcut emitted by the generator. A trailing "/@RtID" requests
// identifier-only extraction.
package locator

import "fmt"

// Segment is one typed constraint of a locator chain.
type Segment struct {
	// Tag is the control-type tag, or "*" for the global shortcut.
	Tag string
	// Index is a 1-based position among same-tag siblings; 0 means none.
	Index int

	Name         *string
	ClassName    *string
	AutomationID *string
	RtID         *string
}

// Path is a parsed locator.
type Path struct {
	// Raw is the original expression.
	Raw string
	// Descendant marks a "//" anchor: the first segment matches at any depth.
	Descendant bool
	// SelectRtID marks a trailing "/@RtID" suffix.
	SelectRtID bool
	Segments   []Segment
}

// SyntaxError reports a malformed locator expression, as opposed to a
// well-formed one that matches nothing.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid locator %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}
