package changeset

import (
	"context"
	"testing"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"github.com/ariel-frischer/bumpgen/internal/commits"
	"github.com/ariel-frischer/bumpgen/internal/testutil"
	"github.com/ariel-frischer/bumpgen/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssembler(exec *testutil.GitExecutor, ignored ...string) *Assembler {
	return &Assembler{
		Rules: classify.DefaultRules,
		Resolver: &workspace.Resolver{
			Root:         "/repo",
			Exec:         exec,
			IgnoredFiles: ignored,
		},
		Packages: []workspace.Package{
			{Dir: "/repo/packages/package1", Name: "package1", Version: "1.0.0"},
			{Dir: "/repo/packages/package2", Name: "package2", Version: "1.0.0"},
		},
	}
}

func TestAssemble_IndependentConventionalCommits(t *testing.T) {
	exec := testutil.NewGitExecutor()
	exec.Script("diff --name-only a1~1..a1", "packages/package1/src/x.ts\n", nil)
	exec.Script("diff --name-only b2~1..b2", "packages/package2/src/y.ts\n", nil)

	units := []commits.LogicalUnit{
		{Message: "feat: add X", Hashes: []string{"a1"}},
		{Message: "fix: bug Y", Hashes: []string{"b2"}},
	}

	sets, err := newAssembler(exec).Assemble(context.Background(), units)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, []Release{{Name: "package1", Bump: classify.Minor}}, sets[0].Releases)
	assert.Equal(t, "feat: add X", sets[0].Summary)
	assert.Equal(t, []Release{{Name: "package2", Bump: classify.Patch}}, sets[1].Releases)
	assert.Equal(t, "fix: bug Y", sets[1].Summary)
}

func TestAssemble_SharedBumpAcrossImpactedPackages(t *testing.T) {
	exec := testutil.NewGitExecutor()
	exec.Script("diff --name-only a1~1..a1",
		"packages/package1/src/x.ts\npackages/package2/src/y.ts\n", nil)

	units := []commits.LogicalUnit{
		{Message: "feat!: break API", Hashes: []string{"a1"}},
	}

	sets, err := newAssembler(exec).Assemble(context.Background(), units)
	require.NoError(t, err)
	require.Len(t, sets, 1)

	require.Len(t, sets[0].Releases, 2)
	for _, rel := range sets[0].Releases {
		assert.Equal(t, classify.Major, rel.Bump)
	}
	assert.Len(t, sets[0].Packages, 2)
}

func TestAssemble_UnclassifiableUnitDropped(t *testing.T) {
	// chore has no rule in the default table; no diff command may run.
	exec := testutil.NewGitExecutor()

	units := []commits.LogicalUnit{
		{Message: "chore: bump deps", Hashes: []string{"a1"}},
		{Message: "not conventional at all", Hashes: []string{"b2"}},
	}

	sets, err := newAssembler(exec).Assemble(context.Background(), units)
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Empty(t, exec.Calls())
}

func TestAssemble_NoImpactDropped(t *testing.T) {
	exec := testutil.NewGitExecutor()
	exec.Script("diff --name-only a1~1..a1", "docs/guide.md\n", nil)

	units := []commits.LogicalUnit{
		{Message: "feat: add X", Hashes: []string{"a1"}},
	}

	sets, err := newAssembler(exec).Assemble(context.Background(), units)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestAssemble_IgnoredFilesOnlyDropped(t *testing.T) {
	exec := testutil.NewGitExecutor()
	exec.Script("diff --name-only a1~1..a1", "packages/package1/yarn.lock\n", nil)

	// fix classifies to patch, but the only changed file is ignored.
	units := []commits.LogicalUnit{
		{Message: "fix: bump deps", Hashes: []string{"a1"}},
	}

	sets, err := newAssembler(exec, "*.lock").Assemble(context.Background(), units)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestDedup_EmptyBaselineSkipsComparison(t *testing.T) {
	candidates := []Changeset{
		{Releases: []Release{{Name: "package1", Bump: classify.Minor}}, Summary: "feat: add X"},
		{Releases: []Release{{Name: "package2", Bump: classify.Patch}}, Summary: "fix: bug Y"},
	}

	novel := Dedup(candidates, nil)
	assert.Equal(t, candidates, novel)
}

func TestDedup_FiltersEqualCounterparts(t *testing.T) {
	baseline := []Changeset{
		{Releases: []Release{{Name: "package2", Bump: classify.Patch}}, Summary: "fix: fix a bug"},
	}
	candidates := []Changeset{
		{Releases: []Release{{Name: "package2", Bump: classify.Patch}}, Summary: "fix: fix a bug"},
		{Releases: []Release{{Name: "package1", Bump: classify.Minor}}, Summary: "feat: add X"},
	}

	novel := Dedup(candidates, baseline)
	require.Len(t, novel, 1)
	assert.Equal(t, "feat: add X", novel[0].Summary)
}

func TestDedup_Idempotent(t *testing.T) {
	candidates := []Changeset{
		{Releases: []Release{{Name: "package1", Bump: classify.Minor}}, Summary: "feat: add X"},
	}

	// First run writes; second run compares against the union.
	novel := Dedup(candidates, nil)
	require.Len(t, novel, 1)

	baseline := append([]Changeset{}, novel...)
	second := Dedup(candidates, baseline)
	assert.Empty(t, second)
}
