package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Render the snapshot's element geometry to a PNG",
	Long: `Build a snapshot and render every element's bounding rectangle with its
runtime id onto an image the size of the root element. Useful for checking
what the hit-tester sees without a screen capture.

Examples:
  locator-cli overlay --out tree.png
  locator-cli overlay --max-depth 2 --out windows.png`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(overlayCmd)
	addSessionFlags(overlayCmd)
	overlayCmd.Flags().String("out", "", "Output PNG file")
	overlayCmd.MarkFlagRequired("out")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	outFile, _ := cmd.Flags().GetString("out")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	img := renderOverlay(s.Snapshot())
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outFile, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", outFile, err)
	}
	return nil
}
