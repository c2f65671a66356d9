package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/weld/internal/utils"
)

// ModuleResolver maps package directories to their full import paths by
// locating and parsing the enclosing go.mod.
type ModuleResolver struct {
	gomod *utils.GoModParser

	// explicit module path given on the command line overrides discovery
	override string
}

// NewModuleResolver creates a resolver; override may be empty
func NewModuleResolver(override string) *ModuleResolver {
	return &ModuleResolver{
		gomod:    utils.NewGoModParser(utils.NewFileReader()),
		override: override,
	}
}

// ImportPath resolves the full import path of a package directory
func (r *ModuleResolver) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	goModPath, err := r.gomod.FindGoModFile(abs)
	if err != nil {
		if r.override != "" {
			return joinImportPath(r.override, dir), nil
		}
		return "", fmt.Errorf("no go.mod found above %s; pass --module to set the import path", dir)
	}

	modulePath := r.override
	if modulePath == "" {
		modulePath, err = r.gomod.ParseModuleName(goModPath)
		if err != nil {
			return "", err
		}
	}

	moduleRoot := filepath.Dir(goModPath)
	rel, err := filepath.Rel(moduleRoot, abs)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to module root %s: %w", abs, moduleRoot, err)
	}
	return joinImportPath(modulePath, rel), nil
}

func joinImportPath(modulePath, rel string) string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == "" {
		return modulePath
	}
	return modulePath + "/" + strings.TrimPrefix(rel, "./")
}
