package commits

import "regexp"

// LogicalUnit is one or more commits folded together under a single
// representative conventional message. The first hash is the
// chronologically earliest commit of the unit; hashes preserve source order.
type LogicalUnit struct {
	Message string
	Hashes  []string
}

// conventionalPattern matches a recognized type prefix, an optional
// parenthesized scope, an optional breaking-change marker, then a colon.
var conventionalPattern = regexp.MustCompile(
	`^(feat|feature|fix|perf|revert|docs|style|chore|refactor|test|build|ci)(\([^)]*\))?!?:`)

// IsConventional reports whether the message starts with a recognized
// conventional-commit prefix.
func IsConventional(message string) bool {
	return conventionalPattern.MatchString(message)
}

// Group partitions an ordered commit sequence into logical units.
//
// Non-conventional commits (merge commits, fixups) are folded into the
// nearest conventional commit so that file-impact detection captures all
// changes logically belonging to that release unit:
//   - the first commit always starts a unit, conventional or not
//   - a conventional commit after a conventional unit starts a new unit
//   - a conventional commit after a non-conventional unit re-labels that
//     unit with its message and joins it
//   - a non-conventional commit joins the current unit unchanged
func Group(commits []Commit) []LogicalUnit {
	if len(commits) == 0 {
		return nil
	}

	units := make([]LogicalUnit, 0, len(commits))
	units = append(units, LogicalUnit{
		Message: commits[0].Message,
		Hashes:  []string{commits[0].Hash},
	})

	for _, c := range commits[1:] {
		last := &units[len(units)-1]

		switch {
		case IsConventional(c.Message) && IsConventional(last.Message):
			units = append(units, LogicalUnit{
				Message: c.Message,
				Hashes:  []string{c.Hash},
			})
		case IsConventional(c.Message):
			last.Message = c.Message
			last.Hashes = append(last.Hashes, c.Hash)
		default:
			last.Hashes = append(last.Hashes, c.Hash)
		}
	}

	return units
}
