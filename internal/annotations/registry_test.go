package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	for _, kind := range []AnnotationKind{FuncAnnotation, ModuleAnnotation, InterfaceAnnotation, ImplAnnotation} {
		assert.True(t, registry.IsRegistered(kind), "kind %s", kind.String())

		schema, err := registry.GetSchema(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, schema.Kind)
	}

	assert.Len(t, registry.ListKinds(), 4)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(FuncAnnotation, FuncAnnotationSchema))

	err := registry.Register(FuncAnnotation, FuncAnnotationSchema)
	require.Error(t, err)
}

func TestRegisterRejectsMismatchedKind(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(ModuleAnnotation, FuncAnnotationSchema)
	require.Error(t, err)
}

func TestRegisterValidatesSchema(t *testing.T) {
	registry := NewRegistry()

	bad := AnnotationSchema{
		Kind: FuncAnnotation,
		Parameters: map[string]ParameterSpec{
			"Choices": {Type: EnumType}, // enum with no values
		},
	}
	err := registry.Register(FuncAnnotation, bad)
	require.Error(t, err)
}
