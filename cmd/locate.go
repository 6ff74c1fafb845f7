package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/locator-cli/internal/driver"
	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/output"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Generate a locator for an element by screen point or runtime id",
	Long: `Hit-test a screen point against the current snapshot (smallest area and
lowest z-order win ties) or look up a runtime id directly, then print the
generated locator together with the node record.

Examples:
  locator-cli locate --at 640,480
  locator-cli locate --rtid 42-7-3`,
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	addSessionFlags(locateCmd)
	locateCmd.Flags().String("at", "", "Screen point to hit-test, as X,Y")
	locateCmd.Flags().String("rtid", "", "Runtime id of a snapshot node")
}

func runLocate(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetString("at")
	rtid, _ := cmd.Flags().GetString("rtid")
	if (at == "") == (rtid == "") {
		return fmt.Errorf("exactly one of --at or --rtid is required")
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	snap := s.Snapshot()

	var result output.LocateResult
	if at != "" {
		x, y, err := parsePoint(at)
		if err != nil {
			return err
		}
		r, _, found := snap.HitTest(x, y)
		if !found {
			return &driver.ElementNotFoundError{Locator: fmt.Sprintf("point (%d,%d)", x, y), Link: "hit test"}
		}
		result = output.LocateResult{Locator: locator.Generate(snap.Doc, r.RtID), Node: r}
	} else {
		r, _, found := snap.RecordByRtID(rtid)
		if !found {
			return &driver.ElementNotFoundError{Locator: rtid, Link: "runtime id"}
		}
		result = output.LocateResult{Locator: locator.Generate(snap.Doc, r.RtID), Node: r}
	}

	if result.Locator == locator.NotFound {
		return fmt.Errorf("%s", locator.NotFound)
	}
	return output.Print(result)
}
