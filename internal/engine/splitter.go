package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// SplitImpl validates an annotated implementation block against its claimed
// delegation-target interface and produces the forwarding delegate for it.
//
// The inherent methods stay verbatim in the user's source; the split only
// emits a thin delegate type whose methods call the inherent ones statically,
// forwarding the wrapper reference unchanged. Every target method must be
// covered and every covered method must match the target structurally, the
// dependency parameter excepted.
func SplitImpl(decl models.Declaration, pkg *models.PackageMetadata) (*models.SplitResult, error) {
	target, ok := pkg.LookupInterface(decl.ImplTarget)
	if !ok {
		return nil, errors.Newf(errors.ValidationErrorCode,
			"implementation block %s claims unknown delegation target %s", decl.Name, decl.ImplTarget).
			WithLocation(decl.Location).
			WithSuggestion("declare the target interface with //weld::interface before the implementation block")
	}

	dynamic := decl.Config.DelegateBy == models.DelegateRef

	split := &models.SplitResult{
		ImplType:        decl.Name,
		TargetInterface: target.Name,
		Dynamic:         dynamic,
		Inherent:        decl.ImplMethods,
	}

	byName := make(map[string]models.InherentMethod, len(decl.ImplMethods))
	for _, method := range decl.ImplMethods {
		byName[method.Name] = method
	}

	delegate := models.ForwardingImplementation{
		InterfaceName: target.Name,
		Strategy:      decl.Config.DelegateBy,
		Wrapper:       delegateTypeName(decl.Name, dynamic),
	}

	for _, want := range target.Methods {
		have, covered := byName[want.Name]
		if !covered {
			return nil, errors.NewSignatureMismatch(want.Name, target.Name,
				fmt.Sprintf("%s declares no method %s", decl.Name, want.Name), decl.Location)
		}
		delete(byName, want.Name)

		if err := checkMethodShape(have, want, decl); err != nil {
			return nil, err
		}

		// first parameter of the delegate method: the env reference in
		// static mode, the inherent method's own dependency surface in
		// dynamic mode
		slot := models.Param{Name: "e", Type: "*Env[T]"}
		if dynamic {
			slot = have.Params[0]
		}

		params := make([]models.Param, 0, len(have.Params))
		params = append(params, slot)
		params = append(params, have.Params[1:]...)

		args := make([]string, 0, len(params))
		for _, p := range params {
			args = append(args, p.Name)
		}
		call := fmt.Sprintf("w.impl.%s(%s)", have.Name, strings.Join(args, ", "))

		delegate.Methods = append(delegate.Methods, models.ForwardingMethod{
			Spec: models.MethodSpec{
				Name:    have.Name,
				Params:  params,
				Results: have.Results,
			},
			Body: forwardStmt(call, have.Results),
		})
	}

	// leftover exported methods were meant for the target; unexported ones
	// are the block's private helpers
	extras := make([]string, 0, len(byName))
	for name := range byName {
		if isExportedName(name) {
			extras = append(extras, name)
		}
	}
	if len(extras) > 0 {
		sort.Strings(extras)
		return nil, errors.NewSignatureMismatch(extras[0], target.Name,
			fmt.Sprintf("%s is not part of the delegation target", extras[0]), decl.Location)
	}

	split.Forwarding = delegate
	return split, nil
}

// checkMethodShape compares one inherent method against the target's method
// of the same name. Parameters after the dependency slot and all results
// must agree exactly; the slot itself only has to exist and bind a name.
func checkMethodShape(have models.InherentMethod, want models.MethodSpec, decl models.Declaration) error {
	if len(have.Params) == 0 {
		return errors.NewSignatureMismatch(have.Name, decl.ImplTarget,
			"method takes no dependency parameter", decl.Location)
	}
	if have.Params[0].Name == "" || have.Params[0].Name == "_" {
		return errors.NewNonIdentifierParameterPattern(decl.Name+"."+have.Name, 0, decl.Location)
	}

	wantParams := want.Params
	if len(wantParams) > 0 && isEnvParam(wantParams[0].Type) {
		wantParams = wantParams[1:]
	}
	if len(have.Params)-1 != len(wantParams) {
		return errors.NewSignatureMismatch(have.Name, decl.ImplTarget,
			fmt.Sprintf("expected %d forwarded parameters, got %d", len(wantParams), len(have.Params)-1),
			decl.Location)
	}
	for i, p := range have.Params[1:] {
		if p.Name == "" || p.Name == "_" {
			return errors.NewNonIdentifierParameterPattern(decl.Name+"."+have.Name, i+1, decl.Location)
		}
		if p.Type != wantParams[i].Type {
			return errors.NewSignatureMismatch(have.Name, decl.ImplTarget,
				fmt.Sprintf("parameter %d is %s, target wants %s", i+1, p.Type, wantParams[i].Type),
				decl.Location)
		}
	}

	if len(have.Results) != len(want.Results) {
		return errors.NewSignatureMismatch(have.Name, decl.ImplTarget,
			fmt.Sprintf("expected %d results, got %d", len(want.Results), len(have.Results)),
			decl.Location)
	}
	for i, r := range have.Results {
		if r != want.Results[i] {
			return errors.NewSignatureMismatch(have.Name, decl.ImplTarget,
				fmt.Sprintf("result %d is %s, target wants %s", i, r, want.Results[i]),
				decl.Location)
		}
	}

	return nil
}

// delegateTypeName names the generated forwarding delegate. The static form
// is generic over the wrapped type; the dynamic form is registered as a plain
// interface value.
func delegateTypeName(implType string, dynamic bool) string {
	if dynamic {
		return implType + "Weld"
	}
	return implType + "Weld[T]"
}

func isEnvParam(typ string) bool {
	base := strings.TrimPrefix(typ, "*")
	return base == "Env" || strings.HasPrefix(base, "Env[")
}
