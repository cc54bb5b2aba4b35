// Package classify maps conventional-commit messages to semver release
// severities via an ordered rule table. The first matching rule wins, so
// table order is part of the contract: the default table checks breaking
// changes before type matches, which is why "feat!:" classifies as major
// rather than minor.
package classify

import (
	"regexp"
	"strings"
)

// Bump is a semantic-version release severity.
type Bump string

const (
	// None signals that a message produces no release.
	None  Bump = "none"
	Patch Bump = "patch"
	Minor Bump = "minor"
	Major Bump = "major"
)

// IsNone reports whether the bump signals no release.
func (b Bump) IsNone() bool {
	return b == None || b == ""
}

// Rule is one entry of an ordered release-rule table. Exactly one of the
// match fields is normally set; a rule matches when any of its set
// predicates does.
type Rule struct {
	// Breaking matches messages carrying a breaking-change marker.
	Breaking bool `koanf:"breaking" yaml:"breaking,omitempty"`
	// Revert matches messages starting with "revert".
	Revert bool `koanf:"revert" yaml:"revert,omitempty"`
	// Type matches the extracted commit type token exactly.
	Type string `koanf:"type" yaml:"type,omitempty"`
	// Release is the severity assigned when the rule matches.
	Release Bump `koanf:"release" yaml:"release"`
}

// DefaultRules is the canonical ordered rule table. Breaking and revert
// rules precede type rules; unmatched types produce no release.
var DefaultRules = []Rule{
	{Breaking: true, Release: Major},
	{Revert: true, Release: Patch},
	{Type: "feat", Release: Minor},
	{Type: "feature", Release: Minor},
	{Type: "fix", Release: Patch},
	{Type: "perf", Release: Patch},
}

// typePattern extracts the leading commit type token: word characters
// before an optional parenthesized scope, an optional "!", and a colon.
// The third group captures the breaking marker.
var typePattern = regexp.MustCompile(`^(\w+)(\([^)]*\))?(!)?:`)

// Classify returns the release severity for a commit message under the
// given rule table, or None when the message yields no extractable type
// token or matches no rule.
func Classify(message string, rules []Rule) Bump {
	m := typePattern.FindStringSubmatch(message)
	if m == nil {
		return None
	}
	commitType := m[1]
	breaking := m[3] == "!" || strings.Contains(message, "BREAKING CHANGE:")
	revert := strings.HasPrefix(strings.ToLower(message), "revert")

	for _, rule := range rules {
		switch {
		case rule.Breaking && breaking:
			return rule.Release
		case rule.Revert && revert:
			return rule.Release
		case rule.Type != "" && rule.Type == commitType:
			return rule.Release
		}
	}

	return None
}
