package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/locator-cli/internal/output"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the accessibility tree and report stats or dump the mirror",
	Long: `Build a full snapshot of the accessibility tree via the native provider.
By default prints capture statistics; with --out the XML document mirror is
written to a file for inspection.

Examples:
  locator-cli snapshot
  locator-cli snapshot --max-depth 3 --exclude "My Tool Window"
  locator-cli snapshot --out tree.xml --stats`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	addSessionFlags(snapshotCmd)
	snapshotCmd.Flags().Bool("stats", false, "Print capture statistics even when writing --out")
	snapshotCmd.Flags().String("out", "", "Write the XML document mirror to this file")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	outFile, _ := cmd.Flags().GetString("out")
	stats, _ := cmd.Flags().GetBool("stats")

	start := time.Now()
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	elapsed := time.Since(start)

	snap := s.Snapshot()
	if outFile != "" {
		snap.Doc.Indent(2)
		if err := snap.Doc.WriteToFile(outFile); err != nil {
			return fmt.Errorf("write mirror: %w", err)
		}
		if !stats {
			return nil
		}
	}
	return output.Print(snapshotStats(snap, elapsed))
}
