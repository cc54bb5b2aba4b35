// Package workspace discovers the packages of a multi-package repository
// and resolves which of them a logical commit unit touches.
package workspace

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Package is one workspace package: the directory holding its manifest
// and the name declared there.
type Package struct {
	Dir     string
	Name    string
	Version string
}

// manifest is the subset of package.json bumpgen reads.
type manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// skipDirs are directory names never descended into during discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Discover walks root for package.json manifests and returns the packages
// eligible for version bumps. A package is eligible when its manifest
// declares a name and a parseable semver version and the name is not in
// ignoreNames. Directories in Package.Dir are absolute.
func Discover(root string, ignoreNames []string) ([]Package, error) {
	ignored := make(map[string]bool, len(ignoreNames))
	for _, name := range ignoreNames {
		ignored[name] = true
	}

	var packages []Package
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "package.json" {
			return nil
		}

		pkg, ok, err := readManifest(path)
		if err != nil {
			return err
		}
		if !ok || ignored[pkg.Name] {
			return nil
		}

		packages = append(packages, pkg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering packages under %s: %w", root, err)
	}

	return packages, nil
}

// readManifest parses one package.json. Manifests without a name or a
// valid semver version are skipped rather than treated as errors since
// workspace roots and tooling fixtures commonly omit them.
func readManifest(path string) (Package, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Package{}, false, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Package{}, false, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if m.Name == "" || strings.TrimSpace(m.Version) == "" {
		return Package{}, false, nil
	}
	if _, err := goversion.NewSemver(m.Version); err != nil {
		return Package{}, false, nil
	}

	return Package{
		Dir:     filepath.Dir(path),
		Name:    m.Name,
		Version: m.Version,
	}, true, nil
}
