package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

func mustParse(t *testing.T, comment string) *ParsedAnnotation {
	t.Helper()
	parsed, err := testParser(t).ParseAnnotation(comment, errors.SourceLocation{File: "x.go", Line: 1})
	require.NoError(t, err)
	return parsed
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(mustParse(t, "//weld::func FetchUser"), DefaultRegistry())
	require.NoError(t, err)

	assert.Equal(t, "FetchUser", cfg.InterfaceName)
	assert.False(t, cfg.NoDeps)
	assert.False(t, cfg.Mockable)
	assert.Equal(t, models.DelegateSelf, cfg.DelegateBy)
	assert.Equal(t, models.AsyncNone, cfg.Async)
	assert.Equal(t, models.MockLibraryNone, cfg.MockLib)
}

func TestResolveIsPure(t *testing.T) {
	annotation := mustParse(t, "//weld::module pub Accounts -Mock -MockLib=gomock -Async=boxed")

	first, err := Resolve(annotation, DefaultRegistry())
	require.NoError(t, err)
	second, err := Resolve(annotation, DefaultRegistry())
	require.NoError(t, err)

	// same tokens, same configuration, no hidden state
	assert.Equal(t, first, second)
	assert.True(t, first.Exported)
	assert.True(t, first.Mockable)
	assert.Equal(t, models.MockLibraryGoMock, first.MockLib)
	assert.Equal(t, models.AsyncBoxed, first.Async)
}

func TestResolveRejectsUnknownOption(t *testing.T) {
	_, err := Resolve(mustParse(t, "//weld::func F -Bogus"), DefaultRegistry())
	require.Error(t, err)
	assert.Equal(t, errors.UnknownOptionCode, err.(errors.WeldError).ErrorCode())
}

func TestResolveRejectsDuplicateOption(t *testing.T) {
	_, err := Resolve(mustParse(t, "//weld::func F -NoDeps -NoDeps"), DefaultRegistry())
	require.Error(t, err)
	assert.Equal(t, errors.DuplicateOptionCode, err.(errors.WeldError).ErrorCode())
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"//weld::func F -Async=sometimes",
		"//weld::func F -MockLib=fakes",
		"//weld::func F -NoDeps=maybe",
		"//weld::func F -MockName",
	}

	for _, comment := range cases {
		t.Run(comment, func(t *testing.T) {
			_, err := Resolve(mustParse(t, comment), DefaultRegistry())
			require.Error(t, err)
			assert.Equal(t, errors.InvalidOptionValueCode, err.(errors.WeldError).ErrorCode())
		})
	}
}

func TestResolveRequiresName(t *testing.T) {
	_, err := Resolve(mustParse(t, "//weld::func -NoDeps"), DefaultRegistry())
	require.Error(t, err)
}

func TestResolveDelegateModes(t *testing.T) {
	cfg, err := Resolve(mustParse(t, "//weld::interface -DelegateBy=Self"), DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, models.DelegateSelf, cfg.DelegateBy)

	cfg, err = Resolve(mustParse(t, "//weld::interface -DelegateBy=ref"), DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, models.DelegateRef, cfg.DelegateBy)

	cfg, err = Resolve(mustParse(t, "//weld::interface Target -DelegateBy=RegisterTarget"), DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, models.DelegateNamed, cfg.DelegateBy)
	assert.Equal(t, "RegisterTarget", cfg.DelegateName)
	assert.Equal(t, "Target", cfg.InterfaceName)
}

func TestResolveBoolValues(t *testing.T) {
	cfg, err := Resolve(mustParse(t, "//weld::func F -NoDeps=false -Mock=true"), DefaultRegistry())
	require.NoError(t, err)
	assert.False(t, cfg.NoDeps)
	assert.True(t, cfg.Mockable)
}
