package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner expands package patterns into the package directories the
// generator processes. Patterns follow the go tool's shape: a plain
// directory, or a directory followed by /... for a recursive walk.
type Scanner struct{}

// NewScanner creates a package directory scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Expand resolves each pattern to the directories containing Go files. The
// result is sorted and deduplicated so generation order is stable.
func (s *Scanner) Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) error {
		ok, err := containsGoFiles(dir)
		if err != nil {
			return err
		}
		if ok && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
		return nil
	}

	for _, pattern := range patterns {
		if root, recursive := strings.CutSuffix(pattern, "/..."); recursive {
			if root == "" {
				root = "."
			}
			err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !entry.IsDir() {
					return nil
				}
				if skipDir(entry.Name(), path != root) {
					return filepath.SkipDir
				}
				return add(path)
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve package pattern %s: %w", pattern, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("package pattern %s is not a directory", pattern)
		}
		if err := add(pattern); err != nil {
			return nil, err
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// skipDir filters directories the go tool itself would never descend into
func skipDir(name string, nested bool) bool {
	if !nested {
		return false
	}
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func containsGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
			return true, nil
		}
	}
	return false, nil
}
