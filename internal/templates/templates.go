package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/toyz/weld/internal/models"
)

// FileModel is everything rendered into one package's generated file
type FileModel struct {
	PackageName string
	ImportPath  string // full import path of the package, for mock directives
	NeedsEnv    bool
	Interfaces  []*models.InterfaceDefinition
	Forwardings []*models.ForwardingImplementation
	Splits      []*models.SplitResult
	Mocks       []*models.MockRequest
}

const generatedFileTemplate = `// Code generated by weld. DO NOT EDIT.

package {{.PackageName}}

{{.Imports}}
{{if .NeedsEnv}}
// Env wraps this package's dependency value. Generated forwarding methods
// rewrite each function's dependency slot to this wrapper.
type Env[T any] struct {
	weld.Env[T]
}

// NewEnv wraps a dependency value in the package environment.
func NewEnv[T any](deps T) *Env[T] {
	return &Env[T]{Env: weld.NewEnv(deps)}
}
{{end}}
{{- range .Interfaces}}
// {{.Name}} is the dependency surface synthesized by weld.
type {{.Name}} interface {
{{- range .Methods}}
	{{.Signature}}
{{- end}}
}
{{end}}
{{- range $f := .Forwardings}}
{{- range $f.Futures}}
// {{.Name}} resolves one pending {{$f.InterfaceName}} call.
type {{.Name}} struct {
	*weld.Future[{{.Value}}]
}
{{end}}
{{- with $f.AccessorInterface}}
// {{.Name}} provides dynamic access to a {{$f.InterfaceName}} implementation.
type {{.Name}} interface {
{{- range .Methods}}
	{{.Signature}}
{{- end}}
}
{{end}}
{{- with $f.TargetInterface}}
// {{.Name}} is the delegation target for {{$f.InterfaceName}}: the same
// surface restated as static functions taking the environment by reference.
type {{.Name}}[T any] interface {
{{- range .Methods}}
	{{.Signature}}
{{- end}}
}

// {{$f.RegisterFunc}} installs the {{.Name}} delegate for environments
// wrapping T. Call it once at startup, before the first forwarding call.
func {{$f.RegisterFunc}}[T any](delegate {{.Name}}[T]) {
	weld.RegisterDelegate[*Env[T]](delegate)
}
{{end}}
{{- range $leaf := $f.LeafImpls}}
{{- range $leaf.Methods}}
func ({{.Spec.Source.DepsSlot.Name}} {{$leaf.TargetType}}) {{.Spec.Signature}} {
	{{.Body}}
}
{{end}}
{{- end}}
{{- if $f.Methods}}
// {{$f.InterfaceName}} forwarding: {{$f.Constraint}}.
{{- range $f.Methods}}
func (e *Env[T]) {{.Spec.Signature}} {
	{{.Body}}
}
{{end}}
{{- end}}
{{- end}}
{{- range $s := .Splits}}
// {{weldTypeName $s}} claims {{$s.TargetInterface}} for {{$s.ImplType}},
// forwarding each call to the block's own method.
type {{genericDecl $s.Forwarding.Wrapper}} struct {
	impl {{$s.ImplType}}
}

// New{{weldTypeName $s}} wraps an implementation value as a
// {{$s.TargetInterface}} delegate.
func New{{weldTypeName $s}}{{typeParams $s}}(impl {{$s.ImplType}}) {{$s.Forwarding.Wrapper}} {
	return {{$s.Forwarding.Wrapper}}{impl: impl}
}
{{range $s.Forwarding.Methods}}
func (w {{$s.Forwarding.Wrapper}}) {{.Spec.Signature}} {
	{{.Body}}
}
{{end}}
{{- end}}
{{- range .MockDirectives}}
{{.}}
{{- end}}
`

var fileTemplate = template.Must(template.New("weld_gen").Funcs(template.FuncMap{
	"genericDecl":  genericDecl,
	"weldTypeName": weldTypeName,
	"typeParams":   typeParams,
}).Parse(generatedFileTemplate))

// fileContext is the resolved data handed to the template
type fileContext struct {
	FileModel
	Imports        string
	MockDirectives []string
}

// Render produces the full generated-file source for one package. The output
// is valid Go but unformatted; the formatter pass owns gofmt and goimports.
func Render(model FileModel) (string, error) {
	imports := NewImportManager()
	if needsRuntime(model) {
		imports.Add(WeldRuntimeImport)
	}

	ctx := fileContext{
		FileModel:      model,
		Imports:        imports.Render(),
		MockDirectives: mockDirectives(model),
	}

	var b strings.Builder
	if err := fileTemplate.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("failed to render generated file: %w", err)
	}
	return b.String(), nil
}

// needsRuntime reports whether the file references the weld runtime package
func needsRuntime(model FileModel) bool {
	if model.NeedsEnv {
		return true
	}
	for _, f := range model.Forwardings {
		if f.TargetInterface != nil || len(f.Futures) > 0 {
			return true
		}
		for _, m := range f.Methods {
			if strings.Contains(m.Body, "weld.") {
				return true
			}
		}
	}
	return false
}

// mockDirectives renders the go:generate lines realizing each mock request
func mockDirectives(model FileModel) []string {
	var out []string
	for _, req := range model.Mocks {
		if req == nil || !req.Requested {
			continue
		}
		suffix := "_mock_test.go"
		if req.Exported {
			// -Export: the surface ships to library consumers, not just tests
			suffix = "_mock.go"
		}
		file := snakeCase(req.SurfaceName) + suffix

		switch req.Library {
		case models.MockLibraryMoq:
			out = append(out, fmt.Sprintf(
				"//go:generate go run github.com/matryer/moq@latest -out %s -pkg %s . %s:%s",
				file, model.PackageName, req.InterfaceName, req.SurfaceName))
		case models.MockLibraryGoMock:
			out = append(out, fmt.Sprintf(
				"//go:generate go run go.uber.org/mock/mockgen@latest -destination=%s -package=%s -mock_names=%s=%s %s %s",
				file, model.PackageName, req.InterfaceName, req.SurfaceName, model.ImportPath, req.InterfaceName))
		}
	}
	return out
}

// genericDecl turns a wrapper usage like "FooWeld[T]" into its declaration
// form "FooWeld[T any]"
func genericDecl(wrapper string) string {
	if strings.HasSuffix(wrapper, "[T]") {
		return strings.TrimSuffix(wrapper, "[T]") + "[T any]"
	}
	return wrapper
}

// weldTypeName strips the type-parameter list from a wrapper usage
func weldTypeName(s *models.SplitResult) string {
	return strings.TrimSuffix(s.Forwarding.Wrapper, "[T]")
}

// typeParams renders the type-parameter list a split delegate's constructor
// needs
func typeParams(s *models.SplitResult) string {
	if s.Dynamic {
		return ""
	}
	return "[T any]"
}

// snakeCase converts an identifier to the snake_case file stem mock tools
// conventionally use
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
