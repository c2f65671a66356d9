package engine

import (
	"strings"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// SynthesizeInterface derives the dependency interface for a func or module
// declaration. Each signature model contributes exactly one method: same
// name (capitalized), same parameters minus the dependency slot, same
// results in order.
func SynthesizeInterface(decl models.Declaration) (*models.InterfaceDefinition, error) {
	name := decl.Config.InterfaceName
	if name == "" {
		if len(decl.Models) != 1 {
			return nil, errors.New(errors.ValidationErrorCode,
				"module annotation requires an explicit interface name").
				WithLocation(decl.Location)
		}
		name = decl.Models[0].MethodName()
	}

	def := &models.InterfaceDefinition{
		Name:     name,
		Exported: decl.Config.Exported || isExportedName(name),
	}

	for _, model := range decl.Models {
		methodName := model.MethodName()
		if def.HasMethod(methodName) {
			return nil, errors.NewDuplicateMethodName(methodName, name, model.Location)
		}
		def.Methods = append(def.Methods, models.MethodSpec{
			Name:    methodName,
			Params:  model.Params,
			Results: model.Results,
			Async:   model.IsAsync,
			Source:  model,
		})
	}

	return def, nil
}

func isExportedName(name string) bool {
	return name != "" && strings.ToUpper(name[:1]) == name[:1]
}
