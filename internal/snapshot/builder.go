package snapshot

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/beevik/etree"

	"github.com/mj1618/locator-cli/internal/arena"
	"github.com/mj1618/locator-cli/internal/logging"
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/uia"
)

// BuildOptions control one builder pass.
type BuildOptions struct {
	// MaxDepth limits how many levels below the root are visited; children
	// past the limit are never expanded. Zero or negative means unlimited.
	MaxDepth int
	// ExcludeName skips any non-root subtree whose element name equals it,
	// so an automation tool can hide its own window from the capture.
	ExcludeName string
}

// buildFrame is one pending element of the lockstep walk: the live node plus
// its already-captured record and the arena/document parents to attach under.
type buildFrame struct {
	node     uia.Node
	rec      model.NodeRecord
	parent   int
	parentEl *etree.Element
}

// Build walks the provider tree once, depth-first, populating the arena and
// the document mirror in lockstep. It returns the complete snapshot or an
// error; partial trees are never returned.
func Build(p uia.Provider, opts BuildOptions) (*Snapshot, error) {
	timer := logging.StartTimer("snapshot build")

	root, err := p.Root()
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	rootRec := capture(root, 0, model.RootZOrder)
	tree := arena.New(rootRec.DisplayName(), rootRec)
	doc := etree.NewDocument()
	rootEl := doc.CreateElement(mirrorTag(rootRec))
	rootEl.CreateAttr("RtID", rootRec.RtID)
	rootEl.CreateAttr("Name", rootRec.Name)
	byRtID := map[string]int{rootRec.RtID: 0}

	b := builder{opts: opts}
	stack := b.childFrames(root, rootRec, tree.Root(), rootEl)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		index := tree.AddChild(f.parent, f.rec.DisplayName(), f.rec)
		el := f.parentEl.CreateElement(mirrorTag(f.rec))
		el.CreateAttr("RtID", f.rec.RtID)
		el.CreateAttr("Name", f.rec.Name)
		if _, seen := byRtID[f.rec.RtID]; !seen {
			byRtID[f.rec.RtID] = index
		}

		if opts.MaxDepth <= 0 || f.rec.Level < opts.MaxDepth {
			stack = append(stack, b.childFrames(f.node, f.rec, index, el)...)
		}
	}

	snap := &Snapshot{Tree: tree, Doc: doc, byRtID: byRtID}
	snap.Elements = sortedElements(tree)

	elapsed := timer.Stop()
	slog.Info("snapshot built", "nodes", tree.Len(), "elapsed", elapsed)
	return snap, nil
}

type builder struct {
	opts BuildOptions
}

// childFrames captures parent's children and returns their frames in reverse
// sibling order, ready to push so the stack pops them left to right. Children
// of the root receive increasing z-orders starting at 0; deeper elements
// inherit their subtree's z-order. An excluded sibling still consumes its
// z-order slot, so the surviving siblings keep the z-orders they would have
// had without the filter.
func (b *builder) childFrames(parent uia.Node, parentRec model.NodeRecord, parentIndex int, parentEl *etree.Element) []buildFrame {
	var frames []buildFrame
	pos := 0
	for child, ok := parent.FirstChild(); ok; child, ok = child.NextSibling() {
		z := parentRec.ZOrder
		if parentRec.Level == 0 {
			z = pos
			pos++
		}
		rec := capture(child, parentRec.Level+1, z)
		if b.opts.ExcludeName != "" && rec.Name == b.opts.ExcludeName {
			continue
		}
		frames = append(frames, buildFrame{node: child, rec: rec, parent: parentIndex, parentEl: parentEl})
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return frames
}

// capture reads one live node into an immutable record, substituting the
// documented fallbacks for absent name and runtime id.
func capture(n uia.Node, level, z int) model.NodeRecord {
	rec := model.NodeRecord{Level: level, ZOrder: z}
	if v, ok := n.Attr(uia.AttrName); ok {
		rec.Name = v
	} else {
		rec.Name = NoName
	}
	rec.ClassName, _ = n.Attr(uia.AttrClassName)
	rec.ControlType, _ = n.Attr(uia.AttrControlType)
	rec.LocalizedControlType, _ = n.Attr(uia.AttrLocalizedControlType)
	rec.FrameworkID, _ = n.Attr(uia.AttrFrameworkID)
	rec.AutomationID, _ = n.Attr(uia.AttrAutomationID)

	if id, ok := n.ID(); ok {
		rec.RuntimeID = id
	} else {
		rec.RuntimeID = model.UnknownRuntimeID()
	}
	rec.RtID = rec.RuntimeID.String()

	if h, ok := n.NativeHandle(); ok {
		rec.Handle = h
	}
	if r, ok := n.Rect(); ok {
		rec.Bounds = r
	}
	rec.Area = rec.Bounds.Area()
	return rec
}

// mirrorTag returns the document tag for a record. Control type is the tag;
// elements without one still need a well-formed tag.
func mirrorTag(rec model.NodeRecord) string {
	if rec.ControlType == "" {
		return "Unknown"
	}
	return rec.ControlType
}

// sortedElements flattens the arena into hit-testing priority order. Two
// stable passes: area ascending first, then z-order ascending, so records
// within one z-order group keep the area ordering.
func sortedElements(tree *arena.Tree[model.NodeRecord]) []IndexedRecord {
	elements := make([]IndexedRecord, 0, tree.Len())
	tree.Walk(func(index int, data *model.NodeRecord) {
		elements = append(elements, IndexedRecord{Record: *data, Index: index})
	})
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Record.Area < elements[j].Record.Area
	})
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Record.ZOrder < elements[j].Record.ZOrder
	})
	return elements
}
