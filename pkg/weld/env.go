// Package weld is the runtime support library for generated code. It carries
// the dependency wrapper, the delegate table backing named delegation, and
// the future values returned by async forwarding methods.
//
// Application code rarely imports this package directly; the generated
// per-package Env type embeds weld.Env and the generated registration
// functions feed the delegate table.
package weld

// Env wraps the application's dependency value. Generated forwarding methods
// are attached to a package-local alias of this type, rewriting each
// function's dependency slot to the wrapper.
type Env[T any] struct {
	deps T
}

// NewEnv wraps a dependency value
func NewEnv[T any](deps T) Env[T] {
	return Env[T]{deps: deps}
}

// Deps returns the wrapped dependency value unchanged
func (e *Env[T]) Deps() T {
	return e.deps
}
