package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/locator-cli/internal/output"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a locator to a live element through the staleness protocol",
	Long: `Find a live element for the locator via the structural matcher, then run
the full resolver protocol on it: live runtime-id lookup, automatic tree
refresh on staleness, locator re-evaluation, and original-id fallback.

Examples:
  locator-cli resolve --path '//*[@Name="Save"]'
  locator-cli resolve --path '/Pane/Window/Button[2]' --timeout 30s
  locator-cli resolve --path '//*[@Name="Save"]' --no-auto-refresh`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	addSessionFlags(resolveCmd)
	addResolveFlags(resolveCmd)
	resolveCmd.Flags().String("path", "", "Locator expression to resolve")
	resolveCmd.MarkFlagRequired("path")
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	el, err := s.ElementByLocator(path)
	if err != nil {
		return err
	}
	node, err := s.Resolve(el)
	if err != nil {
		return err
	}
	return output.Print(resolveResult(el, node))
}
