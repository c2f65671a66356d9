package annotations

import "fmt"

// Built-in annotation schemas. Option keys are fixed; the resolver rejects
// anything outside these tables.

var delegateByOptions = ParameterSpec{
	Type:        IdentType,
	Description: "Delegation strategy: 'Self' (inner value implements the interface), 'ref' (dynamic dispatch through a generated accessor), or a custom selector identifier (registration-table delegation)",
}

var asyncOptions = ParameterSpec{
	Type:        EnumType,
	Enum:        []string{"none", "boxed", "inline"},
	Description: "Return representation for context-taking methods: carried through, weld.Future, or a generated per-method future type",
}

var mockLibOptions = ParameterSpec{
	Type:        EnumType,
	Enum:        []string{"none", "moq", "gomock"},
	Description: "Mock library the surface request is addressed to",
}

var mockOptions = map[string]ParameterSpec{
	"Mock": {
		Type:        BoolType,
		Description: "Request a mock surface for the synthesized interface",
	},
	"MockName": {
		Type:        IdentType,
		Description: "Explicit identifier for the mock surface",
	},
	"MockLib": mockLibOptions,
	"Debug": {
		Type:        BoolType,
		Description: "Dump the synthesized declarations while generating",
	},
	"Local": {
		Type:        BoolType,
		Description: "Generated futures are confined to the calling goroutine",
	},
}

// FuncAnnotationSchema defines the schema for //weld::func annotations
var FuncAnnotationSchema = AnnotationSchema{
	Kind:         FuncAnnotation,
	Description:  "Derives a single-method interface from a function and wires the wrapper type to it",
	RequiresName: true,
	AllowsName:   true,
	Parameters: withMockOptions(map[string]ParameterSpec{
		"NoDeps": {
			Type:        BoolType,
			Description: "The first parameter is a plain parameter, not the dependency slot",
		},
		"Export": {
			Type:        BoolType,
			Description: "Emit mock surfaces unconditionally, for library consumers",
		},
		"Async": asyncOptions,
	}),
	Examples: []string{
		"//weld::func FetchUser",
		"//weld::func pub FetchUser -Mock -MockName=FetchUserMock",
		"//weld::func PingUpstream -NoDeps -Async=boxed",
	},
}

// ModuleAnnotationSchema defines the schema for //weld::module annotations
var ModuleAnnotationSchema = AnnotationSchema{
	Kind:         ModuleAnnotation,
	Description:  "Groups a file's exported functions into one multi-method interface",
	RequiresName: true,
	AllowsName:   true,
	Parameters: withMockOptions(map[string]ParameterSpec{
		"NoDeps": {
			Type:        BoolType,
			Description: "No function in the group has a dependency slot",
		},
		"Export": {
			Type:        BoolType,
			Description: "Emit mock surfaces unconditionally, for library consumers",
		},
		"Async": asyncOptions,
	}),
	Examples: []string{
		"//weld::module AccountService",
		"//weld::module pub AccountService -MockLib=moq -MockName=AccountServiceMock",
	},
}

// InterfaceAnnotationSchema defines the schema for //weld::interface annotations
var InterfaceAnnotationSchema = AnnotationSchema{
	Kind:        InterfaceAnnotation,
	Description: "Wires the wrapper type to a hand-written interface through a delegation strategy",
	AllowsName:  true,
	Parameters: withMockOptions(map[string]ParameterSpec{
		"DelegateBy": delegateByOptions,
	}),
	Examples: []string{
		"//weld::interface",
		"//weld::interface -DelegateBy=ref",
		"//weld::interface RepositoryImpl -DelegateBy=RegisterRepository",
	},
}

// ImplAnnotationSchema defines the schema for //weld::impl annotations
var ImplAnnotationSchema = AnnotationSchema{
	Kind:         ImplAnnotation,
	Description:  "Splits an implementation block into its inherent methods plus a forwarding delegation-target implementation",
	RequiresName: true, // the claimed delegation-target interface
	AllowsName:   true,
	Parameters: map[string]ParameterSpec{
		"DelegateBy": delegateByOptions,
		"Debug": {
			Type:        BoolType,
			Description: "Dump the synthesized declarations while generating",
		},
	},
	Examples: []string{
		"//weld::impl RepositoryImpl",
		"//weld::impl RepositoryImpl -DelegateBy=ref",
	},
}

func withMockOptions(params map[string]ParameterSpec) map[string]ParameterSpec {
	merged := make(map[string]ParameterSpec, len(params)+len(mockOptions))
	for k, v := range mockOptions {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}

// RegisterBuiltinSchemas registers all built-in annotation schemas with the
// given registry
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		FuncAnnotationSchema,
		ModuleAnnotationSchema,
		InterfaceAnnotationSchema,
		ImplAnnotationSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Kind, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Kind.String(), err)
		}
	}
	return nil
}

// GetBuiltinSchemas returns all built-in annotation schemas
func GetBuiltinSchemas() []AnnotationSchema {
	return []AnnotationSchema{
		FuncAnnotationSchema,
		ModuleAnnotationSchema,
		InterfaceAnnotationSchema,
		ImplAnnotationSchema,
	}
}
