package annotations

import (
	"fmt"

	"github.com/toyz/weld/internal/errors"
)

// AnnotationKind represents the kind of weld annotation
type AnnotationKind int

const (
	FuncAnnotation AnnotationKind = iota
	ModuleAnnotation
	InterfaceAnnotation
	ImplAnnotation
)

// String returns the string representation of the annotation kind
func (k AnnotationKind) String() string {
	switch k {
	case FuncAnnotation:
		return "func"
	case ModuleAnnotation:
		return "module"
	case InterfaceAnnotation:
		return "interface"
	case ImplAnnotation:
		return "impl"
	default:
		return "unknown"
	}
}

// ParseAnnotationKind converts a string to an AnnotationKind
func ParseAnnotationKind(s string) (AnnotationKind, error) {
	switch s {
	case "func":
		return FuncAnnotation, nil
	case "module":
		return ModuleAnnotation, nil
	case "interface":
		return InterfaceAnnotation, nil
	case "impl":
		return ImplAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation kind: %s", s)
	}
}

// Option is one `-Key` or `-Key=Value` token, in source order. A nil Value
// means the key was given bare, which implies boolean true for bool-typed
// keys.
type Option struct {
	Key   string
	Value *string
}

// HasValue reports whether the option carried an explicit value
func (o Option) HasValue() bool {
	return o.Value != nil
}

// ParsedAnnotation is the structured form of one `//weld::` comment before
// configuration resolution. Options keep their source order so the resolver
// can fail on the first offending token.
type ParsedAnnotation struct {
	Kind     AnnotationKind
	Pub      bool   // `pub` visibility token preceding the name
	Name     string // positional identifier, empty when omitted
	Options  []Option
	Location errors.SourceLocation
	Raw      string // original annotation text
}

// ParameterType represents the expected shape of an option value
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
	IdentType
	EnumType
)

// String returns the string representation of the parameter type
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case IdentType:
		return "identifier"
	case EnumType:
		return "enum"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for an annotation option
type ParameterSpec struct {
	Type        ParameterType
	Description string
	Enum        []string // allowed values for EnumType
}

// Expected describes the value shape for diagnostics
func (s ParameterSpec) Expected() string {
	if s.Type == EnumType {
		return fmt.Sprintf("one of %v", s.Enum)
	}
	return s.Type.String()
}

// AnnotationSchema defines the schema for an annotation kind
type AnnotationSchema struct {
	Kind         AnnotationKind
	Description  string
	RequiresName bool // positional identifier is mandatory
	AllowsName   bool
	Parameters   map[string]ParameterSpec
	Examples     []string
}
