// Package cli wires the bumpgen commands: generate, status, and config.
package cli

import (
	"fmt"

	"github.com/ariel-frischer/bumpgen/internal/errors"
	"github.com/ariel-frischer/bumpgen/internal/git"
	"github.com/ariel-frischer/bumpgen/internal/version"
	"github.com/spf13/cobra"
)

var (
	debugMode         bool
	projectConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "bumpgen",
	Short: "Infer semver bumps from conventional commits",
	Long: `bumpgen analyzes git commit history written in the conventional
commits convention and emits changeset records declaring which packages
need a version bump, at what severity.

It is designed to run from automation on a multi-package repository:
commits since the last release point are grouped into logical units,
classified against an ordered release-rule table, mapped to the packages
they touch, and deduplicated against already-recorded changesets.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			git.SetDebugLogger(func(format string, a ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&projectConfigPath, "config", "",
		"path to project config file (default .bumpgen/config.yml)")
}

// Execute runs the root command and returns the process exit code.
// Structured errors are printed with category and remediation; plain
// errors fall back to a runtime category.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if cliErr, ok := err.(*errors.CLIError); ok {
		errors.PrintError(cliErr)
		return exitCodeFor(cliErr.Category)
	}

	errors.PrintError(errors.Wrap(err, errors.Runtime))
	return ExitFailure
}

// exitCodeFor maps an error category to a process exit code.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigError
	case errors.Git:
		return ExitGitError
	default:
		return ExitFailure
	}
}
