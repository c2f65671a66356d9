package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

func TestRequestMockNotRequested(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}

	req, err := RequestMock(def, models.Config{}, errors.SourceLocation{})
	require.NoError(t, err)
	assert.False(t, req.Requested)
	assert.NotEmpty(t, req.ID)
}

func TestRequestMockDefaultsToGoMock(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}

	req, err := RequestMock(def, models.Config{Mockable: true}, errors.SourceLocation{})
	require.NoError(t, err)

	assert.True(t, req.Requested)
	assert.Equal(t, models.MockLibraryGoMock, req.Library)
	assert.Equal(t, "MockFetch", req.SurfaceName)
}

func TestRequestMockMoqRequiresSurfaceName(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}
	cfg := models.Config{Mockable: true, MockLib: models.MockLibraryMoq}

	_, err := RequestMock(def, cfg, errors.SourceLocation{File: "x.go", Line: 2})
	require.Error(t, err)
	assert.Equal(t, errors.MissingSurfaceNameCode, err.(errors.WeldError).ErrorCode())
}

func TestRequestMockMoqWithExplicitName(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}
	cfg := models.Config{MockLib: models.MockLibraryMoq, MockName: "FetchMock"}

	req, err := RequestMock(def, cfg, errors.SourceLocation{})
	require.NoError(t, err)
	assert.True(t, req.Requested)
	assert.Equal(t, "FetchMock", req.SurfaceName)
	assert.Equal(t, models.MockLibraryMoq, req.Library)
}

func TestRequestMockExportImpliesRequest(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}

	req, err := RequestMock(def, models.Config{Export: true}, errors.SourceLocation{})
	require.NoError(t, err)
	assert.True(t, req.Requested)
	assert.True(t, req.Exported)
}

func TestRequestMockUniqueIDs(t *testing.T) {
	def := &models.InterfaceDefinition{Name: "Fetch"}

	a, err := RequestMock(def, models.Config{}, errors.SourceLocation{})
	require.NoError(t, err)
	b, err := RequestMock(def, models.Config{}, errors.SourceLocation{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
