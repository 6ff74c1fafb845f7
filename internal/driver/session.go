// Package driver orchestrates the locator engine against a live provider: a
// session owning the shared snapshot, the structural matcher for first-time
// lookups, and the staleness protocol that re-derives live handles for stored
// element references.
package driver

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/snapshot"
	"github.com/mj1618/locator-cli/internal/uia"
)

// DefaultTimeout bounds how long a caller waits on a background rebuild.
const DefaultTimeout = 10 * time.Second

// Options configure a session.
type Options struct {
	// Timeout bounds waits on background tree rebuilds; zero means
	// DefaultTimeout.
	Timeout time.Duration
	// AutoRefresh lets the resolver rebuild the snapshot when a stored
	// element goes stale. When disabled, staleness fails immediately.
	AutoRefresh bool
	// MaxDepth and ExcludeName are passed through to every snapshot build.
	MaxDepth    int
	ExcludeName string
}

// DefaultOptions returns the options used by the CLI: auto-refresh on,
// 10-second rebuild bound, unlimited depth.
func DefaultOptions() Options {
	return Options{Timeout: DefaultTimeout, AutoRefresh: true}
}

// Guard enforces the one-session-at-a-time policy for one scope. The package
// default guard covers the process; tests construct their own guards to run
// independent sessions side by side.
type Guard struct {
	mu     sync.Mutex
	active bool
}

var defaultGuard = &Guard{}

func (g *Guard) acquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return ErrSessionActive
	}
	g.active = true
	return nil
}

func (g *Guard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}

// Session is a live automation session: one provider, one shared snapshot
// slot, one singleton guard acquisition. Sessions are created with New and
// must be Closed to free the singleton slot.
type Session struct {
	provider uia.Provider
	opts     Options
	guard    *Guard
	holder   *snapshot.Holder

	closeOnce sync.Once
}

// New creates the process's session, building the initial snapshot before
// returning. A second concurrent session fails with ErrSessionActive.
func New(p uia.Provider, opts Options) (*Session, error) {
	return NewWithGuard(p, opts, defaultGuard)
}

// NewWithGuard is New with an explicit singleton scope.
func NewWithGuard(p uia.Provider, opts Options, guard *Guard) (*Session, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if err := guard.acquire(); err != nil {
		return nil, err
	}
	s := &Session{
		provider: p,
		opts:     opts,
		guard:    guard,
		holder:   snapshot.NewHolder(nil),
	}
	if err := s.Refresh(); err != nil {
		guard.release()
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}
	return s, nil
}

// Close releases the singleton slot so a new session may be constructed.
// Closing twice is a no-op.
func (s *Session) Close() {
	s.closeOnce.Do(s.guard.release)
}

// Snapshot returns the current snapshot (the last known good capture).
func (s *Session) Snapshot() *snapshot.Snapshot {
	return s.holder.Current()
}

// Refresh rebuilds the snapshot on a background worker and swaps it in,
// waiting at most the configured timeout. On timeout the build keeps running
// and its late result is discarded; the previous snapshot stays current.
func (s *Session) Refresh() error {
	timer := time.NewTimer(s.opts.Timeout)
	defer timer.Stop()
	select {
	case res := <-snapshot.BuildAsync(s.provider, snapshot.BuildOptions{
		MaxDepth:    s.opts.MaxDepth,
		ExcludeName: s.opts.ExcludeName,
	}):
		if res.Err != nil {
			return fmt.Errorf("refresh: %w", res.Err)
		}
		s.holder.Replace(res.Snapshot)
		return nil
	case <-timer.C:
		slog.Warn("tree rebuild timed out", "timeout", s.opts.Timeout)
		return &RefreshTimeoutError{Timeout: s.opts.Timeout}
	}
}

// ElementAt hit-tests the current snapshot at a point and returns an element
// reference for the best match, with its locator generated from the mirror.
func (s *Session) ElementAt(x, y int) (*model.Element, error) {
	snap := s.holder.Current()
	rec, _, ok := snap.HitTest(x, y)
	if !ok {
		return nil, &ElementNotFoundError{
			Locator: fmt.Sprintf("point (%d,%d)", x, y),
			Link:    "hit test",
		}
	}
	expr := locator.Generate(snap.Doc, rec.RtID)
	return model.NewElement(rec.Name, expr, rec.Handle, rec.RuntimeID, rec.Bounds), nil
}

// ElementByRtID returns an element reference for a node of the current
// snapshot identified by its serialized runtime id.
func (s *Session) ElementByRtID(rtid string) (*model.Element, error) {
	snap := s.holder.Current()
	rec, _, ok := snap.RecordByRtID(rtid)
	if !ok {
		return nil, &ElementNotFoundError{Locator: rtid, Link: "runtime id"}
	}
	expr := locator.Generate(snap.Doc, rec.RtID)
	return model.NewElement(rec.Name, expr, rec.Handle, rec.RuntimeID, rec.Bounds), nil
}

// ElementByLocator resolves a locator against the live provider via the
// structural matcher and returns an element reference for the match.
func (s *Session) ElementByLocator(expr string) (*model.Element, error) {
	path, err := locator.Parse(expr)
	if err != nil {
		return nil, err
	}
	node, err := s.matchChain(path)
	if err != nil {
		return nil, err
	}
	return s.elementFrom(node, expr), nil
}

// elementFrom captures a live node into an immutable element reference.
func (s *Session) elementFrom(n uia.Node, expr string) *model.Element {
	name, ok := n.Attr(uia.AttrName)
	if !ok {
		name = snapshot.NoName
	}
	id, ok := n.ID()
	if !ok {
		id = model.UnknownRuntimeID()
	}
	var handle model.Handle
	if h, ok := n.NativeHandle(); ok {
		handle = h
	}
	var bounds model.Rect
	if r, ok := n.Rect(); ok {
		bounds = r
	}
	return model.NewElement(name, expr, handle, id, bounds)
}
