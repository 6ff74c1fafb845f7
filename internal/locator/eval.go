package locator

import "github.com/beevik/etree"

// Match is one document node matched by a locator evaluation. RtID
// cross-references the matched node back to the arena snapshot.
type Match struct {
	Tag  string `yaml:"tag"            json:"tag"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	RtID string `yaml:"rtid"           json:"rtid"`
}

// Result carries all matches of one evaluation. Zero matches is a normal
// outcome, not an error.
type Result struct {
	Matches []Match
}

// Count returns the number of matched nodes.
func (r *Result) Count() int { return len(r.Matches) }

// Eval evaluates a locator expression against a document mirror. Malformed
// expressions return a *SyntaxError; well-formed expressions that match
// nothing return an empty result.
func Eval(doc *etree.Document, expr string) (*Result, error) {
	path, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return EvalPath(doc, path), nil
}

// EvalPath evaluates an already-parsed locator.
func EvalPath(doc *etree.Document, path *Path) *Result {
	root := doc.Root()
	if root == nil || len(path.Segments) == 0 {
		return &Result{}
	}

	// Anchor the first segment: at the root for absolute paths, at any
	// depth for descendant-anchored ones.
	var current []*etree.Element
	first := path.Segments[0]
	if path.Descendant {
		walkDoc(doc, func(el *etree.Element) bool {
			if segmentMatches(el, first) {
				current = append(current, el)
			}
			return true
		})
	} else if segmentMatches(root, first) {
		current = []*etree.Element{root}
	}

	for _, seg := range path.Segments[1:] {
		var next []*etree.Element
		for _, parent := range current {
			next = append(next, childStep(parent, seg)...)
		}
		current = next
		if len(current) == 0 {
			break
		}
	}

	result := &Result{}
	for _, el := range current {
		m := Match{RtID: el.SelectAttrValue("RtID", "")}
		// A trailing /@RtID requests identifier-only extraction; otherwise
		// the full node content is returned.
		if !path.SelectRtID {
			m.Tag = el.Tag
			m.Name = el.SelectAttrValue("Name", "")
		}
		result.Matches = append(result.Matches, m)
	}
	return result
}

// childStep selects the children of parent satisfying the segment: tag
// filter first, then the positional index among same-tag children, then
// attribute predicates.
func childStep(parent *etree.Element, seg Segment) []*etree.Element {
	var tagged []*etree.Element
	for _, child := range parent.ChildElements() {
		if seg.Tag == "*" || child.Tag == seg.Tag {
			tagged = append(tagged, child)
		}
	}
	if seg.Index > 0 {
		if seg.Index > len(tagged) {
			return nil
		}
		tagged = tagged[seg.Index-1 : seg.Index]
	}
	var out []*etree.Element
	for _, el := range tagged {
		if attrsMatch(el, seg) {
			out = append(out, el)
		}
	}
	return out
}

// segmentMatches checks tag and attribute predicates against a single
// element, ignoring the positional index (anchors have no sibling context).
func segmentMatches(el *etree.Element, seg Segment) bool {
	if seg.Tag != "*" && el.Tag != seg.Tag {
		return false
	}
	return attrsMatch(el, seg)
}

func attrsMatch(el *etree.Element, seg Segment) bool {
	checks := []struct {
		attr string
		want *string
	}{
		{"Name", seg.Name},
		{"ClassName", seg.ClassName},
		{"AutomationId", seg.AutomationID},
		{"RtID", seg.RtID},
	}
	for _, c := range checks {
		if c.want == nil {
			continue
		}
		a := el.SelectAttr(c.attr)
		if a == nil || a.Value != *c.want {
			return false
		}
	}
	return true
}
