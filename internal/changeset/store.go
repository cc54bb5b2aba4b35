package changeset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/bumpgen/internal/classify"
	"gopkg.in/yaml.v3"
)

// frontmatterDelim separates the YAML release mapping from the summary.
const frontmatterDelim = "---"

// Read returns all changesets persisted in dir, in file-name order.
// A missing directory is an empty baseline, not an error. README.md and
// non-markdown files are skipped.
func Read(dir string) ([]Changeset, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading changeset dir %s: %w", dir, err)
	}

	var sets []Changeset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") || entry.Name() == "README.md" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading changeset %s: %w", path, err)
		}

		cs, err := parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing changeset %s: %w", path, err)
		}
		sets = append(sets, cs)
	}

	return sets, nil
}

// Write persists one changeset into dir and returns the created file
// name. The directory is created if needed.
func Write(dir string, cs Changeset) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating changeset dir %s: %w", dir, err)
	}

	name := Filename(cs) + ".md"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(render(cs)), 0644); err != nil {
		return "", fmt.Errorf("writing changeset %s: %w", path, err)
	}

	return name, nil
}

// render produces the on-disk changeset document:
//
//	---
//	"pkg-a": minor
//	---
//
//	feat: add X
func render(cs Changeset) string {
	var sb strings.Builder
	sb.WriteString(frontmatterDelim)
	sb.WriteString("\n")
	for _, rel := range cs.Releases {
		fmt.Fprintf(&sb, "%q: %s\n", rel.Name, rel.Bump)
	}
	sb.WriteString(frontmatterDelim)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimRight(cs.Summary, "\n"))
	sb.WriteString("\n")
	return sb.String()
}

// parse reads a changeset document back into a Changeset. The release
// mapping is decoded through yaml.Node so document order survives;
// ordinary map decoding would lose it and break order-sensitive dedup.
func parse(doc string) (Changeset, error) {
	front, summary, err := splitFrontmatter(doc)
	if err != nil {
		return Changeset{}, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(front), &node); err != nil {
		return Changeset{}, fmt.Errorf("parsing frontmatter: %w", err)
	}

	cs := Changeset{Summary: summary}
	if len(node.Content) == 0 {
		return cs, nil
	}

	mapping := node.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return Changeset{}, fmt.Errorf("frontmatter is not a mapping")
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1].Value
		cs.Releases = append(cs.Releases, Release{
			Name: key,
			Bump: classify.Bump(value),
		})
	}

	return cs, nil
}

// splitFrontmatter separates the YAML block from the summary text.
func splitFrontmatter(doc string) (string, string, error) {
	rest, ok := strings.CutPrefix(doc, frontmatterDelim+"\n")
	if !ok {
		return "", "", fmt.Errorf("missing frontmatter delimiter")
	}

	// Empty frontmatter renders as adjacent delimiters.
	if after, found := strings.CutPrefix(rest, frontmatterDelim+"\n"); found {
		return "", strings.TrimLeft(after, "\n"), nil
	}

	front, summary, ok := strings.Cut(rest, "\n"+frontmatterDelim+"\n")
	if !ok {
		return "", "", fmt.Errorf("unterminated frontmatter")
	}
	return front, strings.TrimLeft(summary, "\n"), nil
}
