package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest creates dir/package.json with the given content.
func writeManifest(t *testing.T, root, dir, content string) {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "package.json"), []byte(content), 0644))
}

func TestDiscover_FindsVersionedPackages(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "packages/app", `{"name": "app", "version": "1.0.0"}`)
	writeManifest(t, root, "packages/lib", `{"name": "lib", "version": "0.3.1"}`)

	pkgs, err := Discover(root, nil)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	names := []string{pkgs[0].Name, pkgs[1].Name}
	assert.ElementsMatch(t, []string{"app", "lib"}, names)
	for _, pkg := range pkgs {
		assert.True(t, filepath.IsAbs(pkg.Dir))
	}
}

func TestDiscover_SkipsUnversionedManifests(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, ".", `{"name": "workspace-root", "private": true}`)
	writeManifest(t, root, "packages/app", `{"name": "app", "version": "1.0.0"}`)

	pkgs, err := Discover(root, nil)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "app", pkgs[0].Name)
}

func TestDiscover_SkipsInvalidSemver(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "packages/bad", `{"name": "bad", "version": "not-a-version"}`)

	pkgs, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestDiscover_HonorsIgnoreNames(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "packages/app", `{"name": "app", "version": "1.0.0"}`)
	writeManifest(t, root, "packages/docs", `{"name": "docs-site", "version": "2.0.0"}`)

	pkgs, err := Discover(root, []string{"docs-site"})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "app", pkgs[0].Name)
}

func TestDiscover_SkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "node_modules/dep", `{"name": "dep", "version": "9.9.9"}`)
	writeManifest(t, root, "packages/app", `{"name": "app", "version": "1.0.0"}`)

	pkgs, err := Discover(root, nil)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "app", pkgs[0].Name)
}

func TestDiscover_MalformedManifestIsFatal(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "packages/app", `{not json`)

	_, err := Discover(root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}
