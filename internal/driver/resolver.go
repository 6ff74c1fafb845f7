package driver

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/uia"
)

// resolveState tracks the staleness protocol's progress for logging.
type resolveState int

const (
	stateResolvedLive resolveState = iota
	stateStale
	stateRefreshing
	stateFailed
)

func (st resolveState) String() string {
	switch st {
	case stateResolvedLive:
		return "resolved-live"
	case stateStale:
		return "stale"
	case stateRefreshing:
		return "refreshing"
	default:
		return "failed"
	}
}

// Resolve converts a stored element reference back into a live node, running
// the staleness protocol:
//
//  1. Live lookup by the stored runtime id alone, deep bounded search.
//  2. Miss with auto-refresh off fails as StaleElementError.
//  3. Otherwise a background rebuild replaces the snapshot (bounded wait).
//  4. The stored locator is re-evaluated against the new mirror; exactly one
//     match yields a fresh runtime id to look up (ids renumber across
//     rebuilds even when the locator still describes the same element).
//  5. One last lookup with the original id covers elements that were only
//     temporarily unreachable.
//  6. Everything failed: ErrElementPermanentlyNotFound.
//
// The returned node's NativeHandle is the live, actionable handle.
func (s *Session) Resolve(el *model.Element) (uia.Node, error) {
	if node, ok := s.findByRuntimeID(el.RuntimeID()); ok {
		logTier(stateResolvedLive, el, "live lookup hit")
		return node, nil
	}
	logTier(stateStale, el, "live lookup missed")

	if !s.opts.AutoRefresh {
		return nil, &StaleElementError{Name: el.Name(), Locator: el.Locator()}
	}

	logTier(stateRefreshing, el, "rebuilding tree")
	if err := s.Refresh(); err != nil {
		return nil, err
	}

	if node, ok := s.resolveByLocator(el); ok {
		logTier(stateResolvedLive, el, "recovered via locator re-evaluation")
		return node, nil
	}

	// The node may have been merely unreachable during the first pass.
	if node, ok := s.findByRuntimeID(el.RuntimeID()); ok {
		logTier(stateResolvedLive, el, "recovered via original runtime id")
		return node, nil
	}

	logTier(stateFailed, el, "all resolution tiers exhausted")
	return nil, fmt.Errorf("%w: %s", ErrElementPermanentlyNotFound, el.Locator())
}

// resolveByLocator re-evaluates the element's stored locator against the
// freshly built mirror and, on an unambiguous match, looks up the fresh
// runtime id live.
func (s *Session) resolveByLocator(el *model.Element) (uia.Node, bool) {
	snap := s.holder.Current()
	result, err := locator.Eval(snap.Doc, el.Locator())
	if err != nil || result.Count() != 1 {
		return nil, false
	}
	fresh, err := model.ParseRuntimeID(result.Matches[0].RtID)
	if err != nil {
		return nil, false
	}
	return s.findByRuntimeID(fresh)
}

// findByRuntimeID searches the live tree by identity alone. Anything other
// than exactly one match is a miss: zero means gone, several means the id is
// not the identity it claims to be.
func (s *Session) findByRuntimeID(id model.RuntimeID) (uia.Node, bool) {
	if id.IsZero() {
		return nil, false
	}
	root, err := s.provider.Root()
	if err != nil {
		return nil, false
	}
	matches, err := s.provider.FindAll(root, uia.Constraint{RuntimeID: id}, deepSearchDepth)
	if err != nil || len(matches) != 1 {
		return nil, false
	}
	return matches[0], true
}

func logTier(st resolveState, el *model.Element, msg string) {
	slog.Debug(msg, "state", st.String(), "element", el.Name(), "locator", el.Locator())
}
