package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

func asyncDef(results ...string) *models.InterfaceDefinition {
	return &models.InterfaceDefinition{
		Name: "Fetch",
		Methods: []models.MethodSpec{{
			Name:    "Fetch",
			Params:  []models.Param{{Name: "ctx", Type: "context.Context"}},
			Results: results,
			Async:   true,
		}},
	}
}

func TestAdaptAsyncNoneIsIdentity(t *testing.T) {
	def := asyncDef("string", "error")
	require.NoError(t, AdaptAsync(def, models.Config{}, errors.SourceLocation{}))
	assert.Equal(t, []string{"string", "error"}, def.Methods[0].Results)
}

func TestAdaptAsyncBoxed(t *testing.T) {
	def := asyncDef("string", "error")
	cfg := models.Config{Async: models.AsyncBoxed}

	require.NoError(t, AdaptAsync(def, cfg, errors.SourceLocation{}))
	assert.Equal(t, []string{"*weld.Future[string]"}, def.Methods[0].Results)
}

func TestAdaptAsyncBoxedErrorOnly(t *testing.T) {
	def := asyncDef("error")
	cfg := models.Config{Async: models.AsyncBoxed}

	require.NoError(t, AdaptAsync(def, cfg, errors.SourceLocation{}))
	assert.Equal(t, []string{"*weld.Future[struct{}]"}, def.Methods[0].Results)
}

func TestAdaptAsyncInline(t *testing.T) {
	def := asyncDef("int", "error")
	cfg := models.Config{Async: models.AsyncInline}

	require.NoError(t, AdaptAsync(def, cfg, errors.SourceLocation{}))
	assert.Equal(t, []string{"*FetchFuture"}, def.Methods[0].Results)
}

func TestAdaptAsyncSkipsSynchronousMethods(t *testing.T) {
	def := &models.InterfaceDefinition{
		Name: "Fetch",
		Methods: []models.MethodSpec{{
			Name:    "Fetch",
			Results: []string{"int"},
		}},
	}
	cfg := models.Config{Async: models.AsyncBoxed}

	require.NoError(t, AdaptAsync(def, cfg, errors.SourceLocation{}))
	assert.Equal(t, []string{"int"}, def.Methods[0].Results)
}

func TestAdaptAsyncRequiresTrailingError(t *testing.T) {
	def := asyncDef("int")
	cfg := models.Config{Async: models.AsyncBoxed}

	err := AdaptAsync(def, cfg, errors.SourceLocation{})
	require.Error(t, err)
}

func TestAdaptAsyncRejectsMultipleValues(t *testing.T) {
	def := asyncDef("int", "string", "error")
	cfg := models.Config{Async: models.AsyncBoxed}

	err := AdaptAsync(def, cfg, errors.SourceLocation{})
	require.Error(t, err)
}
