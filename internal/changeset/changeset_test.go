package changeset

import (
	"testing"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"github.com/stretchr/testify/assert"
)

func TestEqual_IdenticalChangesets(t *testing.T) {
	a := Changeset{
		Releases: []Release{{Name: "package2", Bump: classify.Patch}},
		Summary:  "fix: fix a bug",
	}
	b := Changeset{
		Releases: []Release{{Name: "package2", Bump: classify.Patch}},
		Summary:  "fix: fix a bug",
	}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqual_TrailingNewlineInsensitive(t *testing.T) {
	a := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X",
	}
	b := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X\n",
	}

	assert.True(t, a.Equal(b))

	// Only one trailing newline is stripped.
	c := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X\n\n",
	}
	assert.False(t, a.Equal(c))
}

func TestEqual_DifferentSummaries(t *testing.T) {
	a := Changeset{Summary: "feat: add X"}
	b := Changeset{Summary: "feat: add Y"}
	assert.False(t, a.Equal(b))
}

func TestEqual_ReleasesOrderSensitive(t *testing.T) {
	a := Changeset{
		Releases: []Release{
			{Name: "app", Bump: classify.Minor},
			{Name: "lib", Bump: classify.Minor},
		},
		Summary: "feat: add X",
	}
	b := Changeset{
		Releases: []Release{
			{Name: "lib", Bump: classify.Minor},
			{Name: "app", Bump: classify.Minor},
		},
		Summary: "feat: add X",
	}

	assert.False(t, a.Equal(b))
}

func TestEqual_DifferentBumps(t *testing.T) {
	a := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X",
	}
	b := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Major}},
		Summary:  "feat: add X",
	}

	assert.False(t, a.Equal(b))
}

func TestEqual_DifferentReleaseCounts(t *testing.T) {
	a := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X",
	}
	b := Changeset{
		Releases: []Release{
			{Name: "app", Bump: classify.Minor},
			{Name: "lib", Bump: classify.Minor},
		},
		Summary: "feat: add X",
	}

	assert.False(t, a.Equal(b))
}

func TestFilename_Deterministic(t *testing.T) {
	cs := Changeset{
		Releases: []Release{{Name: "app", Bump: classify.Minor}},
		Summary:  "feat: add X",
	}

	assert.Equal(t, Filename(cs), Filename(cs))
}

func TestFilename_VariesWithContent(t *testing.T) {
	a := Changeset{Summary: "feat: add X"}
	b := Changeset{Summary: "fix: bug Y"}

	assert.NotEqual(t, Filename(a), Filename(b))
}
