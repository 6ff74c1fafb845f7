package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/locator-cli/internal/locator"
	"github.com/mj1618/locator-cli/internal/output"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a locator against a fresh snapshot's document mirror",
	Long: `Build a snapshot and evaluate the locator against its XML mirror. Zero
matches is a normal empty result; a malformed locator is an error.

Examples:
  locator-cli eval --path '/Pane/Window[@Name="App"]/Button[2]'
  locator-cli eval --path '//*[@Name="Save"]'`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	addSessionFlags(evalCmd)
	evalCmd.Flags().String("path", "", "Locator expression to evaluate")
	evalCmd.MarkFlagRequired("path")
}

func runEval(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := locator.Eval(s.Snapshot().Doc, path)
	if err != nil {
		return err
	}
	return output.Print(output.EvalResult{
		Locator: path,
		Count:   result.Count(),
		Matches: result.Matches,
	})
}
