// Package logging configures the process-wide slog logger and provides a
// small duration timer for instrumenting tree builds and resolver tiers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Setup installs a text handler at the given level as the default logger.
// Level accepts "debug", "info", "warn" and "error"; anything else is an
// error so a typo does not silently drop to the default.
func Setup(level string, w io.Writer) error {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info", "":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}

// Timer measures one named operation. Start it, do the work, Stop it; the
// elapsed time is logged at Debug and returned for callers that report it.
type Timer struct {
	name  string
	start time.Time
}

// StartTimer begins timing the named operation.
func StartTimer(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop logs and returns the elapsed duration.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	slog.Debug("operation complete", "op", t.name, "elapsed", elapsed)
	return elapsed
}
