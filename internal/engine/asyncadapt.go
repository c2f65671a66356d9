package engine

import (
	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// AdaptAsync rewrites the result types of context-taking methods according to
// the declaration's async mode. Under AsyncBoxed every async method returns a
// shared future type; under AsyncInline each method gets its own named future
// type so callers keep a nominal handle. Methods without a leading
// context.Context pass through untouched.
func AdaptAsync(def *models.InterfaceDefinition, cfg models.Config, loc errors.SourceLocation) error {
	if cfg.Async == models.AsyncNone {
		return nil
	}

	for i := range def.Methods {
		method := &def.Methods[i]
		if !method.Async {
			continue
		}

		value, hasErr, err := futureValueType(method.Results)
		if err != nil {
			return errors.Wrap(errors.ValidationErrorCode, method.Name, err).WithLocation(loc)
		}
		if !hasErr {
			return errors.Newf(errors.ValidationErrorCode,
				"async method %s must return an error as its last result", method.Name).
				WithLocation(loc)
		}

		switch cfg.Async {
		case models.AsyncBoxed:
			method.Results = []string{"*weld.Future[" + value + "]"}
		case models.AsyncInline:
			method.Results = []string{"*" + method.Name + "Future"}
		}
	}

	return nil
}

// futureValueType folds a method's result list into the future's value type.
// At most one value result plus a trailing error is representable.
func futureValueType(results []string) (value string, hasErr bool, err error) {
	if len(results) == 0 {
		return "", false, nil
	}
	if results[len(results)-1] != "error" {
		return "", false, nil
	}
	values := results[:len(results)-1]
	switch len(values) {
	case 0:
		return "struct{}", true, nil
	case 1:
		return values[0], true, nil
	default:
		return "", true, errors.Newf(errors.ValidationErrorCode,
			"async methods support at most one value result, got %d", len(values))
	}
}
