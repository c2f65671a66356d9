package weld

import (
	"fmt"
	"reflect"
	"sync"
)

// The delegate table resolves named delegation at runtime: each wrapper type
// maps to the delegate values registered for it, and forwarding methods look
// up the one implementing their delegation-target interface. Registration
// happens once at startup; a missing delegate is a wiring bug and panics at
// the first forwarding call.

var delegates sync.Map // reflect.Type -> *delegateSet

type delegateSet struct {
	mu     sync.Mutex
	values []reflect.Value
}

// RegisterDelegate installs a delegate for the wrapper type K. Registering a
// second delegate for the same target interface replaces the first.
func RegisterDelegate[K any](delegate any) {
	if delegate == nil {
		panic("weld: RegisterDelegate called with nil delegate")
	}
	key := reflect.TypeOf((*K)(nil)).Elem()
	entry, _ := delegates.LoadOrStore(key, &delegateSet{})
	set := entry.(*delegateSet)

	value := reflect.ValueOf(delegate)
	set.mu.Lock()
	defer set.mu.Unlock()
	for i, existing := range set.values {
		if existing.Type() == value.Type() {
			set.values[i] = value
			return
		}
	}
	set.values = append(set.values, value)
}

// ResolveDelegate returns the delegate registered for key's type that
// implements the delegation-target interface D. It panics when no such
// delegate was registered.
func ResolveDelegate[D any](key any) D {
	target := reflect.TypeOf((*D)(nil)).Elem()
	wrapper := reflect.TypeOf(key)

	if entry, ok := delegates.Load(wrapper); ok {
		set := entry.(*delegateSet)
		set.mu.Lock()
		defer set.mu.Unlock()
		for _, value := range set.values {
			if value.Type().Implements(target) {
				return value.Interface().(D)
			}
		}
	}

	panic(fmt.Sprintf("weld: no %s delegate registered for %s", target, wrapper))
}

// HasDelegate reports whether a delegate implementing D is registered for
// key's type. Startup checks use it to fail fast before serving traffic.
func HasDelegate[D any](key any) bool {
	target := reflect.TypeOf((*D)(nil)).Elem()
	wrapper := reflect.TypeOf(key)

	entry, ok := delegates.Load(wrapper)
	if !ok {
		return false
	}
	set := entry.(*delegateSet)
	set.mu.Lock()
	defer set.mu.Unlock()
	for _, value := range set.values {
		if value.Type().Implements(target) {
			return true
		}
	}
	return false
}
