package driver

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/uia"
)

const (
	// chainSearchDepth bounds the per-link subtree search of the matcher.
	chainSearchDepth = 10
	// deepSearchDepth is the escalated bound used for the lucky-punch final
	// link search and for runtime-id lookups.
	deepSearchDepth = 99
)

// matchChain resolves a parsed locator against the live provider, one
// constraint link at a time. The first segment of an absolute path describes
// the root itself and anchors the chain, so the root must satisfy its
// constraints; descendant-anchored paths search their first segment at the
// escalated depth.
//
// Per-link outcomes: one match descends; zero fails; multiple matches on a
// non-final link escalate to a deep search for the final link alone (the
// lucky punch), falling back to clickable-point locator regeneration to pick
// among surviving candidates.
func (s *Session) matchChain(path *locator.Path) (uia.Node, error) {
	anchor, err := s.provider.Root()
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", path.Raw, err)
	}

	chain := path.Segments
	if !path.Descendant {
		if !constraintFor(chain[0]).Matches(anchor) {
			return nil, &ElementNotFoundError{Locator: path.Raw, Link: segmentString(chain[0])}
		}
		chain = chain[1:]
	}
	if len(chain) == 0 {
		return anchor, nil
	}
	final := chain[len(chain)-1]

	for i, seg := range chain {
		depth := chainSearchDepth
		if path.Descendant && i == 0 {
			depth = deepSearchDepth
		}
		matches, err := s.provider.FindAll(anchor, constraintFor(seg), depth)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", path.Raw, err)
		}

		switch {
		case len(matches) == 0:
			return nil, &ElementNotFoundError{Locator: path.Raw, Link: segmentString(seg)}

		case len(matches) == 1:
			anchor = matches[0]

		case i == len(chain)-1:
			// Final link ambiguous: disambiguate directly.
			return s.disambiguate(matches, path.Raw)

		default:
			// Intermediate link ambiguous: skip ahead and search only the
			// final link, much deeper, from the same anchor.
			slog.Debug("locator link ambiguous, escalating to final link",
				"locator", path.Raw, "link", segmentString(seg), "matches", len(matches))
			deep, err := s.provider.FindAll(anchor, constraintFor(final), deepSearchDepth)
			if err != nil {
				return nil, fmt.Errorf("match %q: %w", path.Raw, err)
			}
			switch len(deep) {
			case 0:
				return nil, &ElementNotFoundError{Locator: path.Raw, Link: segmentString(final)}
			case 1:
				return deep[0], nil
			default:
				return s.disambiguate(deep, path.Raw)
			}
		}
	}
	return anchor, nil
}

// disambiguate picks among candidates by regenerating a locator from each
// candidate's clickable point through the snapshot mirror and accepting the
// first whose regenerated locator equals the requested one textually.
func (s *Session) disambiguate(candidates []uia.Node, want string) (uia.Node, error) {
	snap := s.holder.Current()
	for _, cand := range candidates {
		x, y, ok := cand.ClickablePoint()
		if !ok {
			continue
		}
		rec, _, ok := snap.HitTest(x, y)
		if !ok {
			continue
		}
		regen := locator.Generate(snap.Doc, rec.RtID)
		if regen == want {
			slog.Debug("ambiguity resolved by point regeneration", "locator", want, "point", fmt.Sprintf("(%d,%d)", x, y))
			return cand, nil
		}
	}
	return nil, &AmbiguousMatchError{Locator: want, Candidates: len(candidates)}
}

// constraintFor converts one parsed segment into a live-search constraint.
// The wildcard tag imposes no control-type requirement.
func constraintFor(seg locator.Segment) uia.Constraint {
	c := uia.Constraint{
		Name:         seg.Name,
		ClassName:    seg.ClassName,
		AutomationID: seg.AutomationID,
	}
	if seg.Tag != "*" {
		c.ControlType = seg.Tag
	}
	if seg.RtID != nil {
		if id, err := model.ParseRuntimeID(*seg.RtID); err == nil {
			c.RuntimeID = id
		}
	}
	return c
}

// segmentString renders one segment for error messages.
func segmentString(seg locator.Segment) string {
	out := seg.Tag
	if seg.Index > 0 {
		out += fmt.Sprintf("[%d]", seg.Index)
	}
	for _, p := range []struct {
		attr  string
		value *string
	}{
		{"Name", seg.Name},
		{"ClassName", seg.ClassName},
		{"AutomationId", seg.AutomationID},
		{"RtID", seg.RtID},
	} {
		if p.value != nil {
			out += fmt.Sprintf(`[@%s="%s"]`, p.attr, *p.value)
		}
	}
	return out
}
