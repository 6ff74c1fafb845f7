package snapshot

import "sync"

// Holder is the shared snapshot slot: single writer, many readers. Writers
// hold the lock only for the swap, never for the duration of a build, so
// readers always observe either the fully-old or fully-new snapshot.
type Holder struct {
	mu      sync.Mutex
	current *Snapshot
}

// NewHolder creates a holder seeded with an initial snapshot (may be nil).
func NewHolder(initial *Snapshot) *Holder {
	return &Holder{current: initial}
}

// Current returns the most recent successfully built snapshot, or nil when
// none has been built yet.
func (h *Holder) Current() *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Replace swaps in a new snapshot. A nil snapshot is ignored: a failed
// rebuild keeps the last known good capture available to readers instead of
// clearing it.
func (h *Holder) Replace(s *Snapshot) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = s
}
