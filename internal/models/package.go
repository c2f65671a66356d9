package models

import "github.com/toyz/weld/internal/errors"

// Declaration is one annotated declaration extracted from a package,
// together with its resolved configuration. Declarations are transformed
// independently of one another.
type Declaration struct {
	Kind     DeclKind
	Name     string // annotated identifier (function, type, or module name)
	Config   Config
	Location errors.SourceLocation

	// Models carries the signature models: one for the func variant, one per
	// group-visible function for the module variant.
	Models []*SignatureModel

	// Interface is the pre-existing interface definition for the interface
	// variant.
	Interface *InterfaceDefinition

	// ImplTarget and ImplMethods describe the impl variant: the claimed
	// delegation-target interface name and the block's hand-written methods.
	ImplTarget  string
	ImplMethods []InherentMethod
}

// PackageMetadata holds everything extracted from one package directory
type PackageMetadata struct {
	PackageName  string
	PackagePath  string
	Declarations []Declaration

	// Interfaces indexes interface definitions emitted earlier in the same
	// unit, by name. A later impl block resolves its delegation target here;
	// ordering is declaration order, the responsibility of the program.
	Interfaces map[string]*InterfaceDefinition
}

// LookupInterface resolves an interface name declared earlier in the unit
func (p *PackageMetadata) LookupInterface(name string) (*InterfaceDefinition, bool) {
	if p.Interfaces == nil {
		return nil, false
	}
	def, ok := p.Interfaces[name]
	return def, ok
}

// RecordInterface makes an interface definition visible to later
// declarations in the same unit
func (p *PackageMetadata) RecordInterface(def *InterfaceDefinition) {
	if p.Interfaces == nil {
		p.Interfaces = make(map[string]*InterfaceDefinition)
	}
	p.Interfaces[def.Name] = def
}

// GeneratedFile is a rendered output file for one package
type GeneratedFile struct {
	PackageName string
	FilePath    string
	Content     string
}

// GenerationSummary aggregates statistics for one generator run
type GenerationSummary struct {
	RunID             string
	PackagesProcessed int
	DeclarationsFound int
	InterfacesEmitted int
	MocksRequested    int
	GeneratedFiles    []string
	FailedDecls       int
}
