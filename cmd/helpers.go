package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/locator-cli/internal/driver"
	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/output"
	"github.com/mj1618/locator-cli/internal/snapshot"
	"github.com/mj1618/locator-cli/internal/uia"
)

// addSessionFlags adds the snapshot-scoping flags shared by every command
// that opens a session.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-depth", 0, "Max tree depth to capture (0 = unlimited)")
	cmd.Flags().String("exclude", "", "Skip subtrees whose element name equals this")
}

// addResolveFlags adds the staleness-protocol flags.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("timeout", driver.DefaultTimeout, "Bound on background tree rebuilds")
	cmd.Flags().Bool("no-auto-refresh", false, "Fail on staleness instead of rebuilding the tree")
}

// sessionOptions reads whichever session flags the command declares.
func sessionOptions(cmd *cobra.Command) driver.Options {
	opts := driver.DefaultOptions()
	if cmd.Flags().Lookup("max-depth") != nil {
		opts.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	if cmd.Flags().Lookup("exclude") != nil {
		opts.ExcludeName, _ = cmd.Flags().GetString("exclude")
	}
	if cmd.Flags().Lookup("timeout") != nil {
		opts.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Lookup("no-auto-refresh") != nil {
		noRefresh, _ := cmd.Flags().GetBool("no-auto-refresh")
		opts.AutoRefresh = !noRefresh
	}
	return opts
}

// openSession creates the process session against the registered native
// provider, building the initial snapshot.
func openSession(cmd *cobra.Command) (*driver.Session, error) {
	p, err := uia.NewProvider()
	if err != nil {
		return nil, err
	}
	return driver.New(p, sessionOptions(cmd))
}

// parsePoint parses an "X,Y" coordinate pair.
func parsePoint(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}

// snapshotStats summarizes a capture for the snapshot command and MCP tool.
func snapshotStats(snap *snapshot.Snapshot, elapsed time.Duration) output.SnapshotStats {
	maxLevel := 0
	snap.Tree.Walk(func(index int, data *model.NodeRecord) {
		if data.Level > maxLevel {
			maxLevel = data.Level
		}
	})
	return output.SnapshotStats{
		Nodes:    snap.Len(),
		MaxLevel: maxLevel,
		BuildMS:  elapsed.Milliseconds(),
	}
}

// resolveResult shapes a resolved live node for output.
func resolveResult(el *model.Element, node uia.Node) output.ResolveResult {
	res := output.ResolveResult{
		Name:    el.Name(),
		Locator: el.Locator(),
		Bounds:  el.Bounds(),
	}
	if id, ok := node.ID(); ok {
		res.RtID = id.String()
	}
	if h, ok := node.NativeHandle(); ok {
		res.Handle = h
	}
	if r, ok := node.Rect(); ok {
		res.Bounds = r
	}
	return res
}
