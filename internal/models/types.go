package models

import "fmt"

// DeclKind identifies the kind of annotated declaration being transformed.
type DeclKind int

const (
	FuncDecl DeclKind = iota
	ModuleDecl
	InterfaceDecl
	ImplDecl
)

// String returns the string representation of the declaration kind
func (k DeclKind) String() string {
	switch k {
	case FuncDecl:
		return "func"
	case ModuleDecl:
		return "module"
	case InterfaceDecl:
		return "interface"
	case ImplDecl:
		return "impl"
	default:
		return "unknown"
	}
}

// DelegateMode selects the delegation strategy the wrapper uses to satisfy a
// synthesized interface.
type DelegateMode int

const (
	// DelegateSelf requires the wrapper's inner value to itself satisfy the
	// interface; forwarding calls the original function directly.
	DelegateSelf DelegateMode = iota
	// DelegateRef forwards through a dynamically-dispatched interface value
	// obtained from the inner value via a generated accessor interface.
	DelegateRef
	// DelegateNamed introduces a delegation-target interface and resolves the
	// concrete target through the runtime registration table. The wrapper's
	// type parameter stays unresolved at the declaration point.
	DelegateNamed
)

// String returns the string representation of the delegation mode
func (m DelegateMode) String() string {
	switch m {
	case DelegateSelf:
		return "Self"
	case DelegateRef:
		return "ref"
	case DelegateNamed:
		return "named"
	default:
		return "unknown"
	}
}

// ParseDelegateMode interprets a -DelegateBy value. Anything other than
// "Self" and "ref" is a custom selector identifier and yields DelegateNamed.
func ParseDelegateMode(value string) (DelegateMode, string) {
	switch value {
	case "", "Self":
		return DelegateSelf, ""
	case "ref":
		return DelegateRef, ""
	default:
		return DelegateNamed, value
	}
}

// AsyncMode controls how a context-taking method's return type is
// represented in the synthesized interface. The actual rewrite is performed
// by the async adapter; the engine only threads the resolved enum through.
type AsyncMode int

const (
	// AsyncNone carries the signature through unchanged.
	AsyncNone AsyncMode = iota
	// AsyncBoxed rewrites the result to a weld.Future value.
	AsyncBoxed
	// AsyncInline rewrites the result to a generated per-method future type.
	AsyncInline
)

// String returns the string representation of the async mode
func (m AsyncMode) String() string {
	switch m {
	case AsyncNone:
		return "none"
	case AsyncBoxed:
		return "boxed"
	case AsyncInline:
		return "inline"
	default:
		return "unknown"
	}
}

// ParseAsyncMode converts an -Async option value to an AsyncMode
func ParseAsyncMode(value string) (AsyncMode, error) {
	switch value {
	case "", "none":
		return AsyncNone, nil
	case "boxed":
		return AsyncBoxed, nil
	case "inline":
		return AsyncInline, nil
	default:
		return AsyncNone, fmt.Errorf("unknown async mode: %s", value)
	}
}

// MockLibrary identifies the external mocking collaborator a MockRequest is
// addressed to.
type MockLibrary int

const (
	MockLibraryNone MockLibrary = iota
	MockLibraryMoq
	MockLibraryGoMock
)

// String returns the string representation of the mock library
func (l MockLibrary) String() string {
	switch l {
	case MockLibraryMoq:
		return "moq"
	case MockLibraryGoMock:
		return "gomock"
	default:
		return "none"
	}
}

// ParseMockLibrary converts a -MockLib option value to a MockLibrary
func ParseMockLibrary(value string) (MockLibrary, error) {
	switch value {
	case "", "none":
		return MockLibraryNone, nil
	case "moq":
		return MockLibraryMoq, nil
	case "gomock":
		return MockLibraryGoMock, nil
	default:
		return MockLibraryNone, fmt.Errorf("unknown mock library: %s", value)
	}
}

// RequiresSurfaceName reports whether the library insists on an explicit
// mock surface identifier. moq renders into the annotated package, so weld
// must hand it a collision-free name chosen by the user.
func (l MockLibrary) RequiresSurfaceName() bool {
	return l == MockLibraryMoq
}

// DepsKind classifies the dependency slot's declared type, which decides the
// SelfBound forwarding shape.
type DepsKind int

const (
	// DepsGeneric is an abstract dependency: a type parameter reference, an
	// interface literal, or `any`. Forwarding passes the wrapper itself.
	DepsGeneric DepsKind = iota
	// DepsConcrete is a named concrete type, a leaf in the dependency graph.
	// Forwarding goes through the leaf implementation on that type.
	DepsConcrete
)

// String returns the string representation of the dependency kind
func (k DepsKind) String() string {
	switch k {
	case DepsConcrete:
		return "concrete"
	default:
		return "generic"
	}
}
