package templates

import (
	"fmt"
	"sort"
	"strings"
)

// WeldRuntimeImport is the runtime package generated code leans on
const WeldRuntimeImport = "github.com/toyz/weld/pkg/weld"

// ImportManager tracks the import paths a generated file needs and renders
// them grouped the way gofmt leaves them: standard library first, then
// everything else. The goimports pass in the formatter picks up anything the
// signatures drag in beyond these.
type ImportManager struct {
	imports map[string]string // path -> alias ("" for none)
}

// NewImportManager creates an empty import set
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make(map[string]string),
	}
}

// Add records an import path with no alias
func (m *ImportManager) Add(path string) {
	m.AddWithAlias(path, "")
}

// AddWithAlias records an import path under an alias
func (m *ImportManager) AddWithAlias(path, alias string) {
	if path == "" {
		return
	}
	m.imports[path] = alias
}

// Has reports whether the path is already recorded
func (m *ImportManager) Has(path string) bool {
	_, ok := m.imports[path]
	return ok
}

// Render produces the import declaration, or an empty string when nothing
// was recorded
func (m *ImportManager) Render() string {
	if len(m.imports) == 0 {
		return ""
	}

	var stdlib, external []string
	for path := range m.imports {
		if isStdlib(path) {
			stdlib = append(stdlib, path)
		} else {
			external = append(external, path)
		}
	}
	sort.Strings(stdlib)
	sort.Strings(external)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, path := range stdlib {
		b.WriteString(m.renderLine(path))
	}
	if len(stdlib) > 0 && len(external) > 0 {
		b.WriteString("\n")
	}
	for _, path := range external {
		b.WriteString(m.renderLine(path))
	}
	b.WriteString(")")
	return b.String()
}

func (m *ImportManager) renderLine(path string) string {
	if alias := m.imports[path]; alias != "" {
		return fmt.Sprintf("\t%s %q\n", alias, path)
	}
	return fmt.Sprintf("\t%q\n", path)
}

// isStdlib mirrors the grouping heuristic gofmt users expect: no dot in the
// first path element means standard library
func isStdlib(path string) bool {
	first := path
	if idx := strings.Index(path, "/"); idx >= 0 {
		first = path[:idx]
	}
	return !strings.Contains(first, ".")
}
