package locator

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// NotFound is returned by Generate when no document node carries the
// requested runtime id.
const NotFound = "UI Element not found - no xpath available"

// Generate produces a best-effort robust locator for the document node whose
// RtID attribute equals rtid. The strategy, in priority order:
//
//  1. A document-wide unique "id" or "Name" attribute on the target yields
//     the global shortcut //*[@Attr="value"].
//  2. Otherwise the path is built climbing from the target to the root. An
//     ancestor-or-self whose Name value is unique across the entire document
//     terminates the climb with Tag[@Name="value"], anchoring the path with
//     the descendant axis. Note the uniqueness check is against the document
//     the path is generated from; regenerating against a rebuilt document
//     may qualify the same element differently.
//  3. A node whose tag repeats among its siblings gets a 1-based position
//     index Tag[N]; otherwise the bare tag.
//
// Generate is pure with respect to the document: identical input always
// yields an identical locator.
func Generate(doc *etree.Document, rtid string) string {
	target := findByRtID(doc, rtid)
	if target == nil {
		return NotFound
	}

	// Rule 1: globally unique attribute shortcut.
	for _, attr := range []string{"id", "Name"} {
		if v, unique := uniqueAttr(doc, target, attr); unique {
			return fmt.Sprintf(`//*[@%s="%s"]`, attr, v)
		}
	}

	var parts []string
	anchored := false // true when the climb stopped before the root
	for cur := target; cur != nil && cur.Tag != ""; cur = parentElement(cur) {
		if v, unique := uniqueAttr(doc, cur, "Name"); unique {
			parts = append(parts, fmt.Sprintf(`%s[@Name="%s"]`, cur.Tag, v))
			anchored = parentElement(cur) != nil
			break
		}
		if n := sameTagIndex(cur); n > 0 {
			parts = append(parts, fmt.Sprintf("%s[%d]", cur.Tag, n))
		} else {
			parts = append(parts, cur.Tag)
		}
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	if anchored {
		return "//" + strings.Join(parts, "/")
	}
	return "/" + strings.Join(parts, "/")
}

// findByRtID returns the first element whose RtID attribute equals rtid.
func findByRtID(doc *etree.Document, rtid string) *etree.Element {
	var found *etree.Element
	walkDoc(doc, func(el *etree.Element) bool {
		if el.SelectAttrValue("RtID", "") == rtid {
			found = el
			return false
		}
		return true
	})
	return found
}

// uniqueAttr returns the element's value for attr and whether exactly one
// element in the whole document carries that value.
func uniqueAttr(doc *etree.Document, el *etree.Element, attr string) (string, bool) {
	a := el.SelectAttr(attr)
	if a == nil {
		return "", false
	}
	count := 0
	walkDoc(doc, func(e *etree.Element) bool {
		if other := e.SelectAttr(attr); other != nil && other.Value == a.Value {
			count++
		}
		return true
	})
	return a.Value, count == 1
}

// sameTagIndex returns the element's 1-based position among same-tag
// siblings, or 0 when its tag is unique under its parent.
func sameTagIndex(el *etree.Element) int {
	parent := parentElement(el)
	if parent == nil {
		return 0
	}
	count, index := 0, 0
	for _, sib := range parent.ChildElements() {
		if sib.Tag != el.Tag {
			continue
		}
		count++
		if sib == el {
			index = count
		}
	}
	if count > 1 {
		return index
	}
	return 0
}

// parentElement returns the parent element, or nil when el is the document
// root (etree parents the root under a tag-less document element).
func parentElement(el *etree.Element) *etree.Element {
	p := el.Parent()
	if p == nil || p.Tag == "" {
		return nil
	}
	return p
}

// walkDoc visits every element of the document in depth-first order until fn
// returns false.
func walkDoc(doc *etree.Document, fn func(*etree.Element) bool) {
	root := doc.Root()
	if root == nil {
		return
	}
	stack := []*etree.Element{root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(el) {
			return
		}
		children := el.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
