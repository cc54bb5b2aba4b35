package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Bumpgen Configuration

base_branch: main              # Release branch commits are analyzed against
changeset_dir: .changeset      # Where changeset records live (relative to repo root)

ignore: []                     # Package names excluded from changeset generation
  # - internal-tooling

ignored_files: []              # File patterns excluded from impact detection
  # - "*.lock"
  # - "*.snap"

# Release rule table (ordered, first match wins). Omit to use defaults:
# rules:
#   - breaking: true
#     release: major
#   - revert: true
#     release: patch
#   - type: feat
#     release: minor
#   - type: fix
#     release: patch
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"base_branch":   "main",
		"changeset_dir": ".changeset",
		"ignore":        []string{},
		"ignored_files": []string{},
	}
}
