package errors

import "fmt"

// Constructors for the structural diagnostics raised while transforming a
// single declaration. Every one of these aborts only the declaration that
// produced it.

// NewMissingDependencyParameter reports a function with an empty parameter
// list where the first parameter was expected to be the dependency slot.
func NewMissingDependencyParameter(funcName string, loc SourceLocation) *BaseError {
	return Newf(MissingDependencyParameterCode,
		"function %q must take at least one parameter; the first parameter is the dependency slot", funcName).
		WithLocation(loc).
		WithSuggestion("add a dependency parameter as the first parameter").
		WithSuggestion("or pass -NoDeps to treat every parameter as a plain method parameter")
}

// NewUnexpectedReceiverParameter reports a receiver-shaped parameter outside
// position 0.
func NewUnexpectedReceiverParameter(funcName string, position int, loc SourceLocation) *BaseError {
	return Newf(UnexpectedReceiverParameterCode,
		"function %q has a receiver-shaped parameter at position %d; only the first parameter may act as the dependency slot",
		funcName, position).
		WithLocation(loc)
}

// NewNonIdentifierParameterPattern reports a parameter that does not bind a
// plain identifier. Call arguments are reconstructed positionally by
// identifier, so anonymous and underscore parameters cannot be forwarded.
func NewNonIdentifierParameterPattern(funcName string, position int, loc SourceLocation) *BaseError {
	return Newf(NonIdentifierParameterPatternCode,
		"parameter %d of function %q does not bind a plain identifier", position, funcName).
		WithLocation(loc).
		WithSuggestion("name every non-dependency parameter so the forwarding call can reference it")
}

// NewUnknownOption reports an unrecognized option key.
func NewUnknownOption(name string, loc SourceLocation) *BaseError {
	return Newf(UnknownOptionCode, "unknown option %q", name).
		WithLocation(loc).
		WithSuggestion("run 'weld schemas' to list the options each annotation kind accepts")
}

// NewDuplicateOption reports the same option key assigned twice within one
// annotation.
func NewDuplicateOption(name string, loc SourceLocation) *BaseError {
	return Newf(DuplicateOptionCode, "option %q assigned more than once", name).
		WithLocation(loc)
}

// NewInvalidOptionValue reports a value of the wrong shape for a known key.
func NewInvalidOptionValue(name, expected string, loc SourceLocation) *BaseError {
	return Newf(InvalidOptionValueCode, "invalid value for option %q: expected %s", name, expected).
		WithLocation(loc)
}

// NewDuplicateMethodName reports two grouped functions resolving to the same
// interface method name.
func NewDuplicateMethodName(methodName, interfaceName string, loc SourceLocation) *BaseError {
	return Newf(DuplicateMethodNameCode,
		"method %q appears more than once in interface %q", methodName, interfaceName).
		WithLocation(loc)
}

// NewSignatureMismatch reports an implementation-block method that does not
// structurally match its declared delegation-target interface method.
func NewSignatureMismatch(methodName, interfaceName, detail string, loc SourceLocation) *BaseError {
	err := Newf(SignatureMismatchCode,
		"method %q does not match interface %q", methodName, interfaceName).
		WithLocation(loc)
	if detail != "" {
		err.Message = fmt.Sprintf("%s: %s", err.Message, detail)
	}
	return err.WithSuggestion("the method must match the interface method, with the receiver replaced by a dependency parameter")
}

// NewMissingSurfaceName reports a mock library that requires an explicit
// surface name when none was supplied.
func NewMissingSurfaceName(library string, loc SourceLocation) *BaseError {
	return Newf(MissingSurfaceNameCode,
		"mock library %q requires an explicit surface name", library).
		WithLocation(loc).
		WithSuggestion("pass -MockName=<identifier> alongside -MockLib")
}
