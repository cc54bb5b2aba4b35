package cli

import (
	"github.com/ariel-frischer/bumpgen/internal/changeset"
	"github.com/ariel-frischer/bumpgen/internal/errors"
	"github.com/ariel-frischer/bumpgen/internal/output"
	"github.com/ariel-frischer/bumpgen/internal/progress"
	"github.com/spf13/cobra"
)

var generateDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate changesets from conventional commits",
	Long: `Analyze commit history since the last release point and write one
changeset per logical conventional commit that touches at least one
workspace package. Changesets already present on disk are not written
again.

Example:
  bumpgen generate
  bumpgen generate --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, generateDryRun)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false,
		"report the changesets without writing them")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	spin := progress.NewSpinner("Analyzing commit history...")
	spin.Start()
	result, err := analyze(cmd.Context(), cfg)
	spin.Stop()
	if err != nil {
		return err
	}

	reportAnalysis(cmd, result)
	if dryRun || len(result.Novel) == 0 {
		return nil
	}

	for _, cs := range result.Novel {
		name, err := changeset.Write(result.ChangesetDir, cs)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		output.PrintWritten(cmd.OutOrStdout(), name)
	}

	return nil
}

// reportAnalysis prints a human-readable summary of the run.
func reportAnalysis(cmd *cobra.Command, result *analysis) {
	out := cmd.OutOrStdout()
	symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())

	output.PrintRunSummary(out, symbols.Checkmark,
		result.Units, len(result.Novel), result.Duplicates)
	for _, cs := range result.Novel {
		output.PrintChangeset(out, cs)
	}
}
