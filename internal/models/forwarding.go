package models

// ForwardingMethod is one generated wrapper method. Body is the single
// forwarding statement; the forwarding layer adds no allocation and no side
// effect of its own, so calling the method is observationally equivalent to
// calling the original function.
type ForwardingMethod struct {
	Spec MethodSpec
	Body string
}

// LeafImplementation is the extra implementation emitted for a concrete
// dependency slot: the interface implemented directly on the concrete type,
// terminating the dependency graph.
type LeafImplementation struct {
	TargetType string // receiver type, e.g. "*Config"
	Methods    []ForwardingMethod
}

// ForwardingImplementation describes how the generic wrapper type satisfies
// a synthesized interface under one delegation strategy.
type ForwardingImplementation struct {
	InterfaceName string
	Strategy      DelegateMode
	Wrapper       string // wrapper type the methods are attached to, e.g. "Env[T]"

	// Constraint is the capability bound the strategy places on the
	// wrapper's inner type, emitted as documentation on the method set.
	Constraint string

	Methods []ForwardingMethod

	// AccessorInterface is the generated As<Name> accessor the inner value
	// must satisfy under DelegateRef.
	AccessorInterface *InterfaceDefinition

	// TargetInterface is the generated delegation-target interface under
	// DelegateNamed: the same methods as static functions taking the wrapper
	// by reference instead of a receiver.
	TargetInterface *InterfaceDefinition

	// RegisterFunc is the generated startup registration function name under
	// DelegateNamed; it feeds the runtime delegate table that stands in for
	// the delegation selector.
	RegisterFunc string

	// LeafImpls carries the concrete-type implementations emitted when the
	// dependency slot names a concrete type under DelegateSelf.
	LeafImpls []LeafImplementation

	// Futures lists the per-method future types generated under AsyncInline.
	Futures []FutureDecl
}

// FutureDecl is a generated nominal future type for one async method
type FutureDecl struct {
	Name  string // e.g. "FetchPetFuture"
	Value string // resolved value type carried by the future
}
