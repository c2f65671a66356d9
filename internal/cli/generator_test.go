package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/utils"
)

const generatorTestSource = `package store

//weld::func Double
func double(deps interface{ Factor() int }, n int) int {
	return deps.Factor() * n
}
`

func TestGeneratorWritesGeneratedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/app\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "store", "store.go"), generatorTestSource)

	generator := NewGenerator(utils.NewQuietDiagnostics(), "")

	summary, err := generator.Run([]string{root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PackagesProcessed)
	assert.Equal(t, 1, summary.DeclarationsFound)
	assert.Equal(t, 1, summary.InterfacesEmitted)
	assert.Equal(t, 0, summary.FailedDecls)
	require.Len(t, summary.GeneratedFiles, 1)

	content, err := os.ReadFile(filepath.Join(root, "store", GeneratedFileName))
	require.NoError(t, err)

	source := string(content)
	assert.Contains(t, source, "// Code generated by weld. DO NOT EDIT.")
	assert.Contains(t, source, "type Double interface {")
	assert.Contains(t, source, "func (e *Env[T]) Double(n int) int {")
	assert.Contains(t, source, "return double(e, n)")
}

func TestGeneratorReportsFailedDeclarations(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/app\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "store", "store.go"), `package store

//weld::func Broken -Bogus
func broken(deps any) error { return nil }

//weld::func Works
func works(deps any) error { return nil }
`)

	generator := NewGenerator(utils.NewQuietDiagnostics(), "")

	summary, err := generator.Run([]string{root + "/..."})
	require.Error(t, err)
	assert.Equal(t, 1, summary.FailedDecls)

	// the healthy declaration still generated
	content, readErr := os.ReadFile(filepath.Join(root, "store", GeneratedFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "type Works interface {")
}

func TestGeneratorSkipsUnannotatedPackages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "plain", "plain.go"), "package plain\n\nfunc Noop() {}\n")

	generator := NewGenerator(utils.NewQuietDiagnostics(), "")

	summary, err := generator.Run([]string{root + "/..."})
	require.NoError(t, err)
	assert.Empty(t, summary.GeneratedFiles)

	_, statErr := os.Stat(filepath.Join(root, "plain", GeneratedFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCleanerRemovesGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "store", "store.go"), "package store\n")
	writeFile(t, filepath.Join(root, "store", GeneratedFileName), "package store\n")

	cleaner := NewCleaner(utils.NewQuietDiagnostics())
	require.NoError(t, cleaner.Clean([]string{root + "/..."}))

	_, err := os.Stat(filepath.Join(root, "store", GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
}
