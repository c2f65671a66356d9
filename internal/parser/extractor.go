package parser

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// ExtractSignature builds the normalized structural model for one function
// declaration. It is a pure structural check: no type information is
// resolved, no output is produced on failure.
//
// Unless noDeps is set, the first parameter is the dependency slot and is
// rewritten to the implicit receiver of the synthesized interface method.
// Every remaining parameter must bind a plain identifier, because the
// forwarding call is reconstructed positionally by identifier.
func ExtractSignature(fn *ast.FuncDecl, fset *token.FileSet, noDeps bool) (*models.SignatureModel, error) {
	loc := locationOf(fset, fn.Pos())

	model := &models.SignatureModel{
		OwnerName: fn.Name.Name,
		Exported:  fn.Name.IsExported(),
		Location:  loc,
	}

	params := flattenParams(fn.Type.Params)

	if !noDeps {
		if len(params) == 0 {
			return nil, errors.NewMissingDependencyParameter(fn.Name.Name, loc)
		}
		slot := params[0]
		if slot.name == "" {
			return nil, errors.NewNonIdentifierParameterPattern(fn.Name.Name, 0, loc)
		}
		model.HasDepsSlot = true
		model.DepsSlot = models.Param{Name: slot.name, Type: slot.typ}
		model.DepsKind = classifyDeps(slot.typ, fn.Type.TypeParams)
		params = params[1:]
	}

	for i, p := range params {
		position := i
		if !noDeps {
			position = i + 1
		}
		if isReceiverShaped(p.typ) {
			return nil, errors.NewUnexpectedReceiverParameter(fn.Name.Name, position, loc)
		}
		if p.name == "" || p.name == "_" {
			return nil, errors.NewNonIdentifierParameterPattern(fn.Name.Name, position, loc)
		}
		model.Params = append(model.Params, models.Param{Name: p.name, Type: p.typ})
	}

	if len(model.Params) > 0 && model.Params[0].Type == "context.Context" {
		model.IsAsync = true
	}

	if fn.Type.Results != nil {
		for _, field := range fn.Type.Results.List {
			typ := types.ExprString(field.Type)
			// named results share one type expression per field
			n := len(field.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				model.Results = append(model.Results, typ)
			}
		}
	}

	return model, nil
}

// flatParam is one expanded parameter entry; a field with several names
// yields several entries sharing the type
type flatParam struct {
	name string
	typ  string
}

func flattenParams(fields *ast.FieldList) []flatParam {
	if fields == nil {
		return nil
	}
	var out []flatParam
	for _, field := range fields.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			out = append(out, flatParam{name: "", typ: typ})
			continue
		}
		for _, name := range field.Names {
			out = append(out, flatParam{name: name.Name, typ: typ})
		}
	}
	return out
}

// classifyDeps decides whether the dependency slot is abstract or a concrete
// leaf. A type-parameter reference, `any`, or an interface literal is
// generic; any named type terminates the dependency graph.
func classifyDeps(typ string, typeParams *ast.FieldList) models.DepsKind {
	base := strings.TrimPrefix(typ, "*")
	if base == "any" || strings.HasPrefix(base, "interface{") {
		return models.DepsGeneric
	}
	if typeParams != nil {
		for _, field := range typeParams.List {
			for _, name := range field.Names {
				if name.Name == base {
					return models.DepsGeneric
				}
			}
		}
	}
	return models.DepsConcrete
}

// isReceiverShaped reports whether a parameter type references the generated
// wrapper type. The wrapper may only appear as the dependency slot itself.
func isReceiverShaped(typ string) bool {
	base := strings.TrimPrefix(typ, "*")
	return base == "Env" || strings.HasPrefix(base, "Env[") ||
		base == "weld.Env" || strings.HasPrefix(base, "weld.Env[")
}

func locationOf(fset *token.FileSet, pos token.Pos) errors.SourceLocation {
	if fset == nil || !pos.IsValid() {
		return errors.SourceLocation{}
	}
	p := fset.Position(pos)
	return errors.SourceLocation{File: p.Filename, Line: p.Line, Column: p.Column}
}
