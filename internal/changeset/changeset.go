// Package changeset assembles classification and package impact into
// changeset records and persists them as .changeset/*.md files in the
// format the downstream release tool consumes.
package changeset

import (
	"strings"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"github.com/ariel-frischer/bumpgen/internal/workspace"
)

// Release declares one package's pending version bump.
type Release struct {
	Name string
	Bump classify.Bump
}

// Changeset declares which packages need a version bump, at what
// severity, with a human-readable summary. Packages carries the full
// package records for reporting; it does not participate in equality.
type Changeset struct {
	Releases []Release
	Summary  string
	Packages []workspace.Package
}

// Equal reports whether two changesets are duplicates: summaries equal
// after stripping one trailing newline, and release sequences equal
// element-wise in order.
func (c Changeset) Equal(other Changeset) bool {
	if trimOneNewline(c.Summary) != trimOneNewline(other.Summary) {
		return false
	}
	if len(c.Releases) != len(other.Releases) {
		return false
	}
	for i, rel := range c.Releases {
		if rel != other.Releases[i] {
			return false
		}
	}
	return true
}

// trimOneNewline removes at most one trailing newline. Persisted
// summaries gain a newline from file formatting; stripping exactly one
// keeps intentional trailing blank lines significant.
func trimOneNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
