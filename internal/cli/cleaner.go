package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/weld/internal/utils"
)

// Cleaner removes the generated files weld maintains
type Cleaner struct {
	diag    *utils.DiagnosticSystem
	scanner *Scanner
}

// NewCleaner creates a cleaner
func NewCleaner(diag *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{
		diag:    diag,
		scanner: NewScanner(),
	}
}

// Clean removes every weld_gen.go under the matched packages
func (c *Cleaner) Clean(patterns []string) error {
	dirs, err := c.scanner.Expand(patterns)
	if err != nil {
		return err
	}

	removed := 0
	for _, dir := range dirs {
		path := filepath.Join(dir, GeneratedFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		c.diag.PhaseItem(fmt.Sprintf("Removed %s", path))
		removed++
	}

	c.diag.Success("removed %d generated file(s)", removed)
	return nil
}
