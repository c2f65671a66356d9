package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportPathFromGoMod(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/app\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "store", "store.go"), "package store\n")

	resolver := NewModuleResolver("")

	path, err := resolver.ImportPath(filepath.Join(root, "store"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/app/store", path)

	path, err = resolver.ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", path)
}

func TestImportPathOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/app\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "store", "store.go"), "package store\n")

	resolver := NewModuleResolver("example.com/other")

	path, err := resolver.ImportPath(filepath.Join(root, "store"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/other/store", path)
}

func TestImportPathNoGoMod(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "store", "store.go"), "package store\n")

	_, err := NewModuleResolver("").ImportPath(filepath.Join(root, "store"))
	require.Error(t, err)
}
