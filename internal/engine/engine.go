package engine

import (
	"github.com/toyz/weld/internal/models"
)

// Output is everything the transformation produced for one declaration.
// Fields are nil when the variant does not produce them: an interface
// declaration contributes no synthesized interface of its own, an impl block
// contributes only a split.
type Output struct {
	Interface  *models.InterfaceDefinition
	Forwarding *models.ForwardingImplementation
	Split      *models.SplitResult
	Mock       *models.MockRequest
}

// Engine runs the transformation pipeline for one declaration at a time.
// Declarations are independent: a failure affects only its own output.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Transform runs synthesis, async adaptation, strategy selection, and mock
// requesting for one declaration. Interfaces produced along the way are
// recorded in the package metadata so later impl blocks can resolve them.
func (e *Engine) Transform(decl models.Declaration, pkg *models.PackageMetadata) (*Output, error) {
	switch decl.Kind {
	case models.FuncDecl, models.ModuleDecl:
		return e.transformFunctions(decl, pkg)
	case models.InterfaceDecl:
		return e.transformInterface(decl, pkg)
	case models.ImplDecl:
		split, err := SplitImpl(decl, pkg)
		if err != nil {
			return nil, err
		}
		return &Output{Split: split}, nil
	default:
		return &Output{}, nil
	}
}

func (e *Engine) transformFunctions(decl models.Declaration, pkg *models.PackageMetadata) (*Output, error) {
	def, err := SynthesizeInterface(decl)
	if err != nil {
		return nil, err
	}
	if err := AdaptAsync(def, decl.Config, decl.Location); err != nil {
		return nil, err
	}

	fwd, err := SelectStrategy(def, decl.Config, decl.Kind)
	if err != nil {
		return nil, err
	}

	mock, err := RequestMock(def, decl.Config, decl.Location)
	if err != nil {
		return nil, err
	}

	pkg.RecordInterface(def)
	return &Output{Interface: def, Forwarding: fwd, Mock: mock}, nil
}

func (e *Engine) transformInterface(decl models.Declaration, pkg *models.PackageMetadata) (*Output, error) {
	fwd, err := SelectStrategy(decl.Interface, decl.Config, decl.Kind)
	if err != nil {
		return nil, err
	}
	if fwd.TargetInterface != nil {
		pkg.RecordInterface(fwd.TargetInterface)
	}

	mock, err := RequestMock(decl.Interface, decl.Config, decl.Location)
	if err != nil {
		return nil, err
	}

	return &Output{Forwarding: fwd, Mock: mock}, nil
}
