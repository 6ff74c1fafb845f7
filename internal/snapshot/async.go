package snapshot

import (
	"log/slog"

	"github.com/mj1618/locator-cli/internal/uia"
)

// BuildResult is the outcome of one background build.
type BuildResult struct {
	Snapshot *Snapshot
	Err      error
}

// BuildAsync runs Build on a background goroutine and returns a one-shot
// result channel. The channel is buffered, so a caller that times out and
// walks away does not block the worker: the late result is simply dropped
// with the channel when it becomes unreachable. In-flight builds cannot be
// canceled.
func BuildAsync(p uia.Provider, opts BuildOptions) <-chan BuildResult {
	ch := make(chan BuildResult, 1)
	go func() {
		snap, err := Build(p, opts)
		if err != nil {
			slog.Debug("background build failed", "error", err)
		}
		ch <- BuildResult{Snapshot: snap, Err: err}
	}()
	return ch
}
