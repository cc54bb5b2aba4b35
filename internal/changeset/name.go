package changeset

import (
	"fmt"
	"hash/fnv"
)

// Word lists for human-readable changeset file names, in the style the
// downstream release tool generates. Names are derived deterministically
// from the changeset content so repeated runs produce identical files.
var (
	adjectives = []string{
		"brave", "calm", "clever", "eager", "fancy", "gentle", "happy",
		"jolly", "kind", "lucky", "mighty", "neat", "proud", "quick",
		"shiny", "silent", "swift", "tidy", "warm", "witty",
	}
	nouns = []string{
		"badgers", "beans", "bears", "crabs", "doors", "eagles", "flowers",
		"foxes", "geese", "lamps", "lions", "melons", "otters", "owls",
		"pandas", "rivers", "stones", "tigers", "waves", "wolves",
	}
)

// Filename derives a stable human-readable name (without extension) from
// the changeset's summary and releases.
func Filename(cs Changeset) string {
	h := fnv.New64a()
	h.Write([]byte(cs.Summary))
	for _, rel := range cs.Releases {
		h.Write([]byte(rel.Name))
		h.Write([]byte(rel.Bump))
	}
	sum := h.Sum64()

	adjective := adjectives[sum%uint64(len(adjectives))]
	noun := nouns[(sum/uint64(len(adjectives)))%uint64(len(nouns))]
	return fmt.Sprintf("%s-%s-%06x", adjective, noun, sum&0xffffff)
}
