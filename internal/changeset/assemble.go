package changeset

import (
	"context"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"github.com/ariel-frischer/bumpgen/internal/commits"
	"github.com/ariel-frischer/bumpgen/internal/workspace"
)

// Assembler turns logical units into changeset candidates by combining
// release classification with package impact resolution.
type Assembler struct {
	Rules    []classify.Rule
	Resolver *workspace.Resolver
	Packages []workspace.Package
}

// Assemble produces one changeset per unit that both classifies to a
// release and touches at least one package. Units failing either test
// are silently dropped; that is expected behavior, not an error.
func (a *Assembler) Assemble(ctx context.Context, units []commits.LogicalUnit) ([]Changeset, error) {
	var sets []Changeset
	for _, unit := range units {
		bump := classify.Classify(unit.Message, a.Rules)
		if bump.IsNone() {
			continue
		}

		changed, err := a.Resolver.Changed(ctx, unit, a.Packages)
		if err != nil {
			return nil, err
		}
		if len(changed) == 0 {
			continue
		}

		releases := make([]Release, 0, len(changed))
		for _, pkg := range changed {
			releases = append(releases, Release{Name: pkg.Name, Bump: bump})
		}

		sets = append(sets, Changeset{
			Releases: releases,
			Summary:  unit.Message,
			Packages: changed,
		})
	}

	return sets, nil
}

// Dedup filters candidates that already have an equal persisted
// counterpart. An empty baseline short-circuits: every candidate is
// novel and no comparison runs. The comparison is O(candidates ×
// baseline) by choice; both counts stay small in practice and the
// quadratic scan keeps the equality rule in one obvious place.
func Dedup(candidates, existing []Changeset) []Changeset {
	if len(existing) == 0 {
		return candidates
	}

	var novel []Changeset
	for _, candidate := range candidates {
		duplicate := false
		for _, prior := range existing {
			if candidate.Equal(prior) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			novel = append(novel, candidate)
		}
	}
	return novel
}
