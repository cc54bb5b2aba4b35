package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the changesets a generate run would produce",
	Long: `Run the full inference pipeline and print the resulting changesets
without writing anything. Useful as a pre-merge check in CI.

Example:
  bumpgen status`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, true)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
