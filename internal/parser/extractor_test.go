package parser

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

func extractFrom(t *testing.T, src string, noDeps bool) (*models.SignatureModel, error) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", "package p\n\n"+src, 0)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return ExtractSignature(fn, fset, noDeps)
		}
	}
	t.Fatal("no function declaration in source")
	return nil, nil
}

func TestExtractRewritesDependencySlot(t *testing.T) {
	model, err := extractFrom(t, `func fetchUser(deps any, ctx context.Context, id string) (string, error) { return "", nil }`, false)
	require.NoError(t, err)

	assert.Equal(t, "fetchUser", model.OwnerName)
	assert.Equal(t, "FetchUser", model.MethodName())
	assert.True(t, model.HasDepsSlot)
	assert.Equal(t, "deps", model.DepsSlot.Name)
	assert.Equal(t, models.DepsGeneric, model.DepsKind)
	assert.True(t, model.IsAsync)

	// arity law: one parameter fewer than the original
	require.Len(t, model.Params, 2)
	assert.Equal(t, models.Param{Name: "ctx", Type: "context.Context"}, model.Params[0])
	assert.Equal(t, models.Param{Name: "id", Type: "string"}, model.Params[1])
	assert.Equal(t, []string{"string", "error"}, model.Results)
}

func TestExtractCallArgumentIdentity(t *testing.T) {
	model, err := extractFrom(t, `func score(deps any, a int, b int) int { return 0 }`, false)
	require.NoError(t, err)

	// receiver first, then every argument by identifier, in order
	assert.Equal(t, []string{"e", "a", "b"}, model.CallArgs("e"))
}

func TestExtractNoDeps(t *testing.T) {
	model, err := extractFrom(t, `func now() int64 { return 0 }`, true)
	require.NoError(t, err)

	assert.False(t, model.HasDepsSlot)
	assert.Empty(t, model.Params)
	assert.Empty(t, model.CallArgs("e"))
}

func TestExtractClassifiesConcreteLeaf(t *testing.T) {
	model, err := extractFrom(t, `func load(cfg *Config, key string) string { return "" }`, false)
	require.NoError(t, err)

	assert.Equal(t, models.DepsConcrete, model.DepsKind)
	assert.Equal(t, "*Config", model.DepsSlot.Type)
}

func TestExtractClassifiesInterfaceLiteral(t *testing.T) {
	model, err := extractFrom(t, `func run(deps interface{ Now() int64 }) int64 { return 0 }`, false)
	require.NoError(t, err)

	assert.Equal(t, models.DepsGeneric, model.DepsKind)
}

func TestExtractClassifiesTypeParam(t *testing.T) {
	model, err := extractFrom(t, `func run[D any](deps D, n int) int { return n }`, false)
	require.NoError(t, err)

	assert.Equal(t, models.DepsGeneric, model.DepsKind)
}

func TestExtractMissingDependencyParameter(t *testing.T) {
	_, err := extractFrom(t, `func orphan() {}`, false)
	require.Error(t, err)
	assert.Equal(t, errors.MissingDependencyParameterCode, err.(errors.WeldError).ErrorCode())
}

func TestExtractRejectsUnnamedParameters(t *testing.T) {
	_, err := extractFrom(t, `func f(any, int) {}`, false)
	require.Error(t, err)
	assert.Equal(t, errors.NonIdentifierParameterPatternCode, err.(errors.WeldError).ErrorCode())
}

func TestExtractRejectsBlankParameter(t *testing.T) {
	_, err := extractFrom(t, `func f(deps any, _ int) {}`, false)
	require.Error(t, err)
	assert.Equal(t, errors.NonIdentifierParameterPatternCode, err.(errors.WeldError).ErrorCode())
}

func TestExtractRejectsReceiverShapedParameter(t *testing.T) {
	_, err := extractFrom(t, `func f(deps any, e *Env[T]) {}`, false)
	require.Error(t, err)
	assert.Equal(t, errors.UnexpectedReceiverParameterCode, err.(errors.WeldError).ErrorCode())
}

func TestExtractNamedResultsExpand(t *testing.T) {
	model, err := extractFrom(t, `func pair(deps any) (x, y int) { return }`, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"int", "int"}, model.Results)
}
