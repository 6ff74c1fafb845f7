// Package snapshot builds immutable captures of the live accessibility tree:
// an indexed arena of node records plus a parallel XML document mirror keyed
// by the same runtime identifiers, with a flat list sorted for hit-testing.
package snapshot

import (
	"github.com/beevik/etree"

	"github.com/mj1618/locator-cli/internal/arena"
	"github.com/mj1618/locator-cli/internal/model"
)

// NoName is serialized into the mirror's Name attribute when the provider
// reports no name for an element. Generated locators depend on this exact
// string, so it must not change.
const NoName = "No name defined"

// IndexedRecord pairs a node record with its arena index so hit-test results
// can be followed back into the tree.
type IndexedRecord struct {
	Record model.NodeRecord
	Index  int
}

// Snapshot is one fully built capture of the accessibility tree. It is
// immutable after Build returns; refreshing produces a new Snapshot rather
// than patching this one.
type Snapshot struct {
	// Tree holds every visited element; index 0 is the accessibility root.
	Tree *arena.Tree[model.NodeRecord]
	// Doc mirrors Tree element-for-element. Tags are control types; each
	// element carries RtID and Name attributes.
	Doc *etree.Document
	// Elements lists every record sorted by (z-order ascending, area
	// ascending), the hit-testing priority order.
	Elements []IndexedRecord

	byRtID map[string]int
}

// Len returns the number of captured elements.
func (s *Snapshot) Len() int { return s.Tree.Len() }

// RecordByRtID returns the record whose runtime identifier serializes to
// rtid, with its arena index.
func (s *Snapshot) RecordByRtID(rtid string) (model.NodeRecord, int, bool) {
	index, ok := s.byRtID[rtid]
	if !ok {
		return model.NodeRecord{}, 0, false
	}
	return s.Tree.Node(index).Data, index, true
}

// HitTest returns the highest-priority element containing the point: smaller
// area wins within a z-order group, lower z-order wins across groups, and the
// root (sentinel z-order) only matches when nothing else does.
func (s *Snapshot) HitTest(x, y int) (model.NodeRecord, int, bool) {
	for _, e := range s.Elements {
		if e.Record.Bounds.Contains(x, y) {
			return e.Record, e.Index, true
		}
	}
	return model.NodeRecord{}, 0, false
}
