package cli

import (
	"context"
	"path/filepath"

	"github.com/ariel-frischer/bumpgen/internal/changeset"
	"github.com/ariel-frischer/bumpgen/internal/commits"
	"github.com/ariel-frischer/bumpgen/internal/config"
	"github.com/ariel-frischer/bumpgen/internal/errors"
	"github.com/ariel-frischer/bumpgen/internal/git"
	"github.com/ariel-frischer/bumpgen/internal/gitcmd"
	"github.com/ariel-frischer/bumpgen/internal/workspace"
)

// analysis is the outcome of one inference run, before any write.
type analysis struct {
	// Novel holds the changesets with no persisted counterpart.
	Novel []changeset.Changeset
	// Duplicates counts candidates filtered by dedup.
	Duplicates int
	// Units counts the logical commit units examined.
	Units int
	// ChangesetDir is the absolute persistence directory.
	ChangesetDir string
}

// loadConfig loads the effective configuration, surfacing failures as
// configuration errors before any git interaction happens.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(projectConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"check .bumpgen/config.yml for syntax errors",
			"run 'bumpgen config show' to inspect the effective config")
	}
	return cfg, nil
}

// analyze runs the full inference pipeline: commit listing, grouping,
// classification, impact resolution, and dedup against the persisted
// baseline. It writes nothing.
func analyze(ctx context.Context, cfg *config.Configuration) (*analysis, error) {
	repo, err := git.Open("")
	if err != nil {
		return nil, errors.Wrap(err, errors.Git,
			"run bumpgen from inside a git repository")
	}

	root, err := repo.Root()
	if err != nil {
		return nil, errors.Wrap(err, errors.Git)
	}
	exec := gitcmd.NewCLI(root)

	source := &commits.Source{Repo: repo, Exec: exec, Branch: cfg.BaseBranch}
	history, err := source.Since(ctx)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Git, "listing commits",
			"verify the base branch exists on origin",
			"check 'bumpgen config show' for the configured base_branch")
	}

	units := commits.Group(history)

	packages, err := workspace.Discover(root, cfg.Ignore)
	if err != nil {
		return nil, errors.Wrap(err, errors.Runtime)
	}

	assembler := &changeset.Assembler{
		Rules: cfg.ReleaseRules(),
		Resolver: &workspace.Resolver{
			Root:         root,
			Exec:         exec,
			IgnoredFiles: cfg.IgnoredFiles,
		},
		Packages: packages,
	}

	candidates, err := assembler.Assemble(ctx, units)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Git, "resolving package impact")
	}

	dir := filepath.Join(root, cfg.ChangesetDir)
	existing, err := changeset.Read(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.Runtime)
	}

	novel := changeset.Dedup(candidates, existing)

	return &analysis{
		Novel:        novel,
		Duplicates:   len(candidates) - len(novel),
		Units:        len(units),
		ChangesetDir: dir,
	}, nil
}
