package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/models"
	"github.com/toyz/weld/internal/utils"
)

func doubleForwarding() *models.ForwardingImplementation {
	return &models.ForwardingImplementation{
		InterfaceName: "Double",
		Strategy:      models.DelegateSelf,
		Wrapper:       "Env[T]",
		Constraint:    "the wrapped dependency value satisfies Double",
		Methods: []models.ForwardingMethod{{
			Spec: models.MethodSpec{
				Name:    "Double",
				Params:  []models.Param{{Name: "n", Type: "int"}},
				Results: []string{"int"},
			},
			Body: "return double(e, n)",
		}},
	}
}

func TestRenderSelfBoundFile(t *testing.T) {
	model := FileModel{
		PackageName: "petstore",
		NeedsEnv:    true,
		Interfaces: []*models.InterfaceDefinition{{
			Name:     "Double",
			Exported: true,
			Methods: []models.MethodSpec{{
				Name:    "Double",
				Params:  []models.Param{{Name: "n", Type: "int"}},
				Results: []string{"int"},
			}},
		}},
		Forwardings: []*models.ForwardingImplementation{doubleForwarding()},
	}

	source, err := Render(model)
	require.NoError(t, err)

	assert.Contains(t, source, "// Code generated by weld. DO NOT EDIT.")
	assert.Contains(t, source, "package petstore")
	assert.Contains(t, source, `"github.com/toyz/weld/pkg/weld"`)
	assert.Contains(t, source, "type Env[T any] struct {")
	assert.Contains(t, source, "type Double interface {")
	assert.Contains(t, source, "Double(n int) int")
	assert.Contains(t, source, "func (e *Env[T]) Double(n int) int {")
	assert.Contains(t, source, "return double(e, n)")

	require.NoError(t, utils.ValidateGoCode(source), "rendered source must be valid Go:\n%s", source)
}

func TestRenderNamedDelegation(t *testing.T) {
	fwd := &models.ForwardingImplementation{
		InterfaceName: "Repository",
		Strategy:      models.DelegateNamed,
		Wrapper:       "Env[T]",
		Constraint:    "a RepositoryImpl delegate is registered for the wrapped type",
		RegisterFunc:  "RegisterRepository",
		TargetInterface: &models.InterfaceDefinition{
			Name: "RepositoryImpl",
			Methods: []models.MethodSpec{{
				Name: "Fetch",
				Params: []models.Param{
					{Name: "e", Type: "*Env[T]"},
					{Name: "id", Type: "string"},
				},
				Results: []string{"string", "error"},
			}},
		},
		Methods: []models.ForwardingMethod{{
			Spec: models.MethodSpec{
				Name:    "Fetch",
				Params:  []models.Param{{Name: "id", Type: "string"}},
				Results: []string{"string", "error"},
			},
			Body: "return weld.ResolveDelegate[RepositoryImpl[T]](e).Fetch(e, id)",
		}},
	}

	source, err := Render(FileModel{PackageName: "store", NeedsEnv: true, Forwardings: []*models.ForwardingImplementation{fwd}})
	require.NoError(t, err)

	assert.Contains(t, source, "type RepositoryImpl[T any] interface {")
	assert.Contains(t, source, "Fetch(e *Env[T], id string) (string, error)")
	assert.Contains(t, source, "func RegisterRepository[T any](delegate RepositoryImpl[T]) {")
	assert.Contains(t, source, "weld.RegisterDelegate[*Env[T]](delegate)")

	require.NoError(t, utils.ValidateGoCode(source))
}

func TestRenderSplitDelegate(t *testing.T) {
	split := &models.SplitResult{
		ImplType:        "MemRepo",
		TargetInterface: "RepositoryImpl",
		Forwarding: models.ForwardingImplementation{
			InterfaceName: "RepositoryImpl",
			Wrapper:       "MemRepoWeld[T]",
			Methods: []models.ForwardingMethod{{
				Spec: models.MethodSpec{
					Name: "Fetch",
					Params: []models.Param{
						{Name: "e", Type: "*Env[T]"},
						{Name: "id", Type: "string"},
					},
					Results: []string{"string", "error"},
				},
				Body: "return w.impl.Fetch(e, id)",
			}},
		},
	}

	source, err := Render(FileModel{PackageName: "store", NeedsEnv: true, Splits: []*models.SplitResult{split}})
	require.NoError(t, err)

	assert.Contains(t, source, "type MemRepoWeld[T any] struct {")
	assert.Contains(t, source, "func NewMemRepoWeld[T any](impl MemRepo) MemRepoWeld[T] {")
	assert.Contains(t, source, "func (w MemRepoWeld[T]) Fetch(e *Env[T], id string) (string, error) {")

	require.NoError(t, utils.ValidateGoCode(source))
}

func TestRenderMockDirectives(t *testing.T) {
	model := FileModel{
		PackageName: "store",
		ImportPath:  "example.com/app/store",
		NeedsEnv:    true,
		Forwardings: []*models.ForwardingImplementation{doubleForwarding()},
		Mocks: []*models.MockRequest{
			{Requested: true, InterfaceName: "Double", SurfaceName: "DoubleMock", Library: models.MockLibraryMoq},
			{Requested: true, InterfaceName: "Double", SurfaceName: "MockDouble", Library: models.MockLibraryGoMock, Exported: true},
		},
	}

	source, err := Render(model)
	require.NoError(t, err)

	assert.Contains(t, source,
		"//go:generate go run github.com/matryer/moq@latest -out double_mock_mock_test.go -pkg store . Double:DoubleMock")
	assert.Contains(t, source, "go.uber.org/mock/mockgen@latest")
	assert.Contains(t, source, "-mock_names=Double=MockDouble example.com/app/store Double")
	// exported surfaces ship outside _test.go
	assert.Contains(t, source, "-destination=mock_double_mock.go")
}

func TestImportManagerGrouping(t *testing.T) {
	m := NewImportManager()
	m.Add("context")
	m.Add(WeldRuntimeImport)
	m.AddWithAlias("go/parser", "goparser")

	rendered := m.Render()
	assert.True(t, strings.Contains(rendered, "\t\"context\"\n"))
	assert.Contains(t, rendered, "goparser \"go/parser\"")
	// stdlib group comes first
	assert.Less(t, strings.Index(rendered, "\"context\""), strings.Index(rendered, WeldRuntimeImport))
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "double_mock", snakeCase("DoubleMock"))
	assert.Equal(t, "mock_double", snakeCase("MockDouble"))
}
