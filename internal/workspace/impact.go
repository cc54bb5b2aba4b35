package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/bumpgen/internal/commits"
	"github.com/ariel-frischer/bumpgen/internal/gitcmd"
)

// Resolver maps a logical unit's hash range to the subset of packages
// whose directory contains at least one changed file.
type Resolver struct {
	// Root is the absolute repository root, resolved once by the caller.
	Root string
	Exec gitcmd.Executor
	// IgnoredFiles are glob patterns (or literal paths) whose matches are
	// excluded from impact detection. A file is ignored when it matches
	// ANY pattern.
	IgnoredFiles []string
}

// Changed returns the packages touched by the unit's commit range.
// The range is expressed as first~1..last so that every commit folded
// into the unit contributes its file changes. An empty impact set is
// not an error; the caller drops such units.
func (r *Resolver) Changed(ctx context.Context, unit commits.LogicalUnit, pkgs []Package) ([]Package, error) {
	if len(unit.Hashes) == 0 {
		return nil, fmt.Errorf("logical unit %q has no hashes", unit.Message)
	}

	first := unit.Hashes[0]
	last := unit.Hashes[len(unit.Hashes)-1]

	files, err := gitcmd.Lines(ctx, r.Exec, "diff", "--name-only", first+"~1.."+last)
	if err != nil {
		return nil, err
	}

	files = r.filterIgnored(files)
	if len(files) == 0 {
		return nil, nil
	}

	var changed []Package
	for _, pkg := range pkgs {
		rel, err := r.relativeDir(pkg)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if fileInDir(file, rel) {
				changed = append(changed, pkg)
				break
			}
		}
	}

	return changed, nil
}

// filterIgnored drops every file matching any ignore pattern.
func (r *Resolver) filterIgnored(files []string) []string {
	if len(r.IgnoredFiles) == 0 {
		return files
	}

	kept := files[:0]
	for _, file := range files {
		if !r.isIgnored(file) {
			kept = append(kept, file)
		}
	}
	return kept
}

// isIgnored matches a file against the ignore patterns. A pattern hits on
// literal equality, a glob match on the full path, or a glob match on the
// base name (so "*.lock" ignores lock files at any depth).
func (r *Resolver) isIgnored(file string) bool {
	for _, pattern := range r.IgnoredFiles {
		if file == pattern {
			return true
		}
		if ok, _ := filepath.Match(pattern, file); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(file)); ok {
			return true
		}
	}
	return false
}

// relativeDir strips the repository root from the package directory.
// Diff output is root-relative, so package dirs must be too.
func (r *Resolver) relativeDir(pkg Package) (string, error) {
	rel, err := filepath.Rel(r.Root, pkg.Dir)
	if err != nil {
		return "", fmt.Errorf("relativizing package dir %s: %w", pkg.Dir, err)
	}
	return filepath.ToSlash(rel), nil
}

// fileInDir reports whether file sits inside dir using path-segment
// prefix matching. Segment comparison avoids the substring false
// positives of loose matching (packages/app vs packages/app-extra).
func fileInDir(file, dir string) bool {
	if dir == "." || dir == "" {
		return true
	}

	dirSegs := strings.Split(dir, "/")
	fileSegs := strings.Split(filepath.ToSlash(file), "/")
	if len(fileSegs) <= len(dirSegs) {
		return false
	}
	for i, seg := range dirSegs {
		if fileSegs[i] != seg {
			return false
		}
	}
	return true
}
