package engine

import (
	"fmt"
	"strings"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// SelectStrategy decides how the wrapper type satisfies a synthesized or
// hand-written interface and produces the forwarding implementation for it.
//
// DelegateSelf forwards straight to the original function (or to the inner
// value's own implementation). DelegateRef routes through a generated
// accessor interface for dynamic dispatch. DelegateNamed introduces a
// delegation-target interface whose concrete implementation is resolved
// through the runtime delegate table.
func SelectStrategy(def *models.InterfaceDefinition, cfg models.Config, kind models.DeclKind) (*models.ForwardingImplementation, error) {
	mode := cfg.DelegateBy
	if kind == models.FuncDecl || kind == models.ModuleDecl {
		// function-derived interfaces always bind to the inner value
		mode = models.DelegateSelf
	}

	fwd := &models.ForwardingImplementation{
		InterfaceName: def.Name,
		Strategy:      mode,
		Wrapper:       "Env[T]",
	}

	switch mode {
	case models.DelegateSelf:
		if err := buildSelfBound(fwd, def, cfg); err != nil {
			return nil, err
		}
	case models.DelegateRef:
		buildRefUpcast(fwd, def)
	case models.DelegateNamed:
		buildNamedDelegation(fwd, def, cfg)
	}

	return fwd, nil
}

// buildSelfBound attaches methods that require the inner dependency value to
// satisfy the interface itself. A generic dependency slot forwards the
// wrapper; a concrete slot additionally emits the leaf implementation on the
// concrete type, terminating the dependency graph there.
func buildSelfBound(fwd *models.ForwardingImplementation, def *models.InterfaceDefinition, cfg models.Config) error {
	fwd.Constraint = "the wrapped dependency value satisfies " + def.Name

	leafByType := make(map[string]int)

	for _, method := range def.Methods {
		src := method.Source
		if src == nil {
			fwd.Methods = append(fwd.Methods, models.ForwardingMethod{
				Spec: method,
				Body: forwardStmt(innerCall(def.Name, method), method.Results),
			})
			continue
		}

		if src.HasDepsSlot && src.DepsKind == models.DepsConcrete {
			if cfg.Async != models.AsyncNone && method.Async {
				return errors.Newf(errors.ValidationErrorCode,
					"async forwarding is not supported for the concrete dependency %s", src.DepsSlot.Type).
					WithLocation(src.Location)
			}
			leaf := models.ForwardingMethod{
				Spec: method,
				Body: forwardStmt(directCall(src, src.DepsSlot.Name), method.Results),
			}
			idx, seen := leafByType[src.DepsSlot.Type]
			if !seen {
				fwd.LeafImpls = append(fwd.LeafImpls, models.LeafImplementation{TargetType: src.DepsSlot.Type})
				idx = len(fwd.LeafImpls) - 1
				leafByType[src.DepsSlot.Type] = idx
			}
			fwd.LeafImpls[idx].Methods = append(fwd.LeafImpls[idx].Methods, leaf)

			fwd.Methods = append(fwd.Methods, models.ForwardingMethod{
				Spec: method,
				Body: forwardStmt(innerCall(def.Name, method), method.Results),
			})
			continue
		}

		body, futures, err := asyncBody(src, method, cfg, directCall(src, "e"))
		if err != nil {
			return err
		}
		fwd.Futures = append(fwd.Futures, futures...)
		fwd.Methods = append(fwd.Methods, models.ForwardingMethod{Spec: method, Body: body})
	}

	return nil
}

// buildRefUpcast attaches methods that reach the implementation through a
// generated accessor interface, trading the static bound for dynamic
// dispatch on the returned interface value.
func buildRefUpcast(fwd *models.ForwardingImplementation, def *models.InterfaceDefinition) {
	accessor := "As" + def.Name
	fwd.Constraint = "the wrapped dependency value satisfies " + accessor
	fwd.AccessorInterface = &models.InterfaceDefinition{
		Name:     accessor,
		Exported: def.Exported,
		Methods: []models.MethodSpec{{
			Name:    accessor,
			Results: []string{def.Name},
		}},
	}

	for _, method := range def.Methods {
		call := fmt.Sprintf("any(e.Deps()).(%s).%s().%s(%s)",
			accessor, accessor, method.Name, strings.Join(paramNames(method.Params), ", "))
		fwd.Methods = append(fwd.Methods, models.ForwardingMethod{
			Spec: method,
			Body: forwardStmt(call, method.Results),
		})
	}
}

// buildNamedDelegation attaches methods that resolve their implementation
// through the delegate table. The target interface restates every method as a
// static function taking the wrapper by reference, so implementations stay
// decoupled from the wrapped type.
func buildNamedDelegation(fwd *models.ForwardingImplementation, def *models.InterfaceDefinition, cfg models.Config) {
	targetName := cfg.InterfaceName
	if targetName == "" || targetName == def.Name {
		targetName = def.Name + "Impl"
	}
	registerName := cfg.DelegateName
	if registerName == "" {
		registerName = "Register" + def.Name
	}

	fwd.Constraint = "a " + targetName + " delegate is registered for the wrapped type"
	fwd.RegisterFunc = registerName

	target := &models.InterfaceDefinition{
		Name:     targetName,
		Exported: def.Exported,
	}
	for _, method := range def.Methods {
		params := make([]models.Param, 0, len(method.Params)+1)
		params = append(params, models.Param{Name: "e", Type: "*Env[T]"})
		params = append(params, method.Params...)
		target.Methods = append(target.Methods, models.MethodSpec{
			Name:    method.Name,
			Params:  params,
			Results: method.Results,
			Async:   method.Async,
		})

		args := append([]string{"e"}, paramNames(method.Params)...)
		call := fmt.Sprintf("weld.ResolveDelegate[%s[T]](e).%s(%s)",
			targetName, method.Name, strings.Join(args, ", "))
		fwd.Methods = append(fwd.Methods, models.ForwardingMethod{
			Spec: method,
			Body: forwardStmt(call, method.Results),
		})
	}
	fwd.TargetInterface = target
}

// directCall renders the forwarding call to the original function with the
// dependency slot rewritten to receiverExpr and every other argument
// forwarded by identifier, unchanged and in order.
func directCall(src *models.SignatureModel, receiverExpr string) string {
	args := src.CallArgs(receiverExpr)
	return fmt.Sprintf("%s(%s)", src.OwnerName, strings.Join(args, ", "))
}

// innerCall renders the dispatch through the inner value's own
// implementation of the interface
func innerCall(interfaceName string, method models.MethodSpec) string {
	return fmt.Sprintf("any(e.Deps()).(%s).%s(%s)",
		interfaceName, method.Name, strings.Join(paramNames(method.Params), ", "))
}

// asyncBody wraps a forwarding call according to the async mode. The inner
// function keeps the original result shape; only the method's declared
// surface carries the future.
func asyncBody(src *models.SignatureModel, method models.MethodSpec, cfg models.Config, call string) (string, []models.FutureDecl, error) {
	if cfg.Async == models.AsyncNone || !method.Async {
		return forwardStmt(call, method.Results), nil, nil
	}

	value, _, err := futureValueType(src.Results)
	if err != nil {
		return "", nil, err
	}

	spawn := "weld.Go"
	if cfg.Local {
		spawn = "weld.Sync"
	}

	var inner string
	if value == "struct{}" {
		inner = fmt.Sprintf("func() (struct{}, error) {\n\t\treturn struct{}{}, %s\n\t}", call)
	} else {
		inner = fmt.Sprintf("func() (%s, error) {\n\t\treturn %s\n\t}", value, call)
	}

	switch cfg.Async {
	case models.AsyncInline:
		future := models.FutureDecl{Name: method.Name + "Future", Value: value}
		body := fmt.Sprintf("return &%s{%s(%s)}", future.Name, spawn, inner)
		return body, []models.FutureDecl{future}, nil
	default:
		return fmt.Sprintf("return %s(%s)", spawn, inner), nil, nil
	}
}

func forwardStmt(call string, results []string) string {
	if len(results) > 0 {
		return "return " + call
	}
	return call
}

func paramNames(params []models.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
