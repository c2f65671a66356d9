package annotations

import (
	"fmt"
	"sync"
)

// AnnotationRegistry defines the interface for managing annotation schemas
type AnnotationRegistry interface {
	// Register a new annotation kind with its schema
	Register(kind AnnotationKind, schema AnnotationSchema) error

	// GetSchema retrieves the schema for an annotation kind
	GetSchema(kind AnnotationKind) (AnnotationSchema, error)

	// ListKinds returns all registered annotation kinds
	ListKinds() []AnnotationKind

	// IsRegistered checks if an annotation kind is registered
	IsRegistered(kind AnnotationKind) bool
}

// registry is the concrete implementation of AnnotationRegistry
type registry struct {
	mu      sync.RWMutex
	schemas map[AnnotationKind]AnnotationSchema
}

// NewRegistry creates a new annotation registry
func NewRegistry() AnnotationRegistry {
	return &registry{
		schemas: make(map[AnnotationKind]AnnotationSchema),
	}
}

var (
	defaultRegistry     AnnotationRegistry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global annotation registry with the built-in
// schemas registered
func DefaultRegistry() AnnotationRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltinSchemas(defaultRegistry); err != nil {
			panic(fmt.Sprintf("failed to register builtin schemas: %v", err))
		}
	})
	return defaultRegistry
}

// Register adds a new annotation kind with its schema to the registry
func (r *registry) Register(kind AnnotationKind, schema AnnotationSchema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schema.Kind != kind {
		return fmt.Errorf("schema kind %s does not match annotation kind %s",
			schema.Kind.String(), kind.String())
	}

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("annotation kind %s is already registered", kind.String())
	}

	if err := validateSchema(schema); err != nil {
		return fmt.Errorf("invalid schema for %s: %w", kind.String(), err)
	}

	r.schemas[kind] = schema
	return nil
}

// GetSchema retrieves the schema for an annotation kind
func (r *registry) GetSchema(kind AnnotationKind) (AnnotationSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[kind]
	if !exists {
		return AnnotationSchema{}, fmt.Errorf("annotation kind %s is not registered", kind.String())
	}
	return schema, nil
}

// ListKinds returns all registered annotation kinds
func (r *registry) ListKinds() []AnnotationKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]AnnotationKind, 0, len(r.schemas))
	for kind := range r.schemas {
		kinds = append(kinds, kind)
	}
	return kinds
}

// IsRegistered checks if an annotation kind is registered
func (r *registry) IsRegistered(kind AnnotationKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[kind]
	return exists
}

// validateSchema performs basic validation on a schema
func validateSchema(schema AnnotationSchema) error {
	for paramName, paramSpec := range schema.Parameters {
		if paramName == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}
		if paramSpec.Type < StringType || paramSpec.Type > EnumType {
			return fmt.Errorf("invalid parameter type for %s: %d", paramName, paramSpec.Type)
		}
		if paramSpec.Type == EnumType && len(paramSpec.Enum) == 0 {
			return fmt.Errorf("enum parameter %s has no allowed values", paramName)
		}
	}
	if schema.RequiresName && !schema.AllowsName {
		return fmt.Errorf("schema requires a name but does not allow one")
	}
	return nil
}
