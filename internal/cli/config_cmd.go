package cli

import (
	"fmt"

	"github.com/ariel-frischer/bumpgen/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect bumpgen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, user config,
project config, and environment variables.

Example:
  bumpgen config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(effectiveConfig(cfg))
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Print a commented starter config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig shapes the configuration for display, including the
// rule table actually in effect rather than an empty override.
func effectiveConfig(cfg *config.Configuration) map[string]any {
	return map[string]any{
		"base_branch":   cfg.BaseBranch,
		"changeset_dir": cfg.ChangesetDir,
		"ignore":        cfg.Ignore,
		"ignored_files": cfg.IgnoredFiles,
		"rules":         cfg.ReleaseRules(),
	}
}
