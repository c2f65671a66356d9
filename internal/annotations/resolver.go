package annotations

import (
	"go/token"
	"strconv"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// Resolve validates an annotation's option list against its kind's schema
// and produces the configuration record. Resolution is order-insensitive,
// pure, and fail-fast: the first unknown key, duplicate key, or malformed
// value aborts the whole resolution with no partial configuration.
func Resolve(annotation *ParsedAnnotation, registry AnnotationRegistry) (models.Config, error) {
	schema, err := registry.GetSchema(annotation.Kind)
	if err != nil {
		return models.Config{}, errors.Wrap(errors.SyntaxErrorCode, "unregistered annotation kind", err).
			WithLocation(annotation.Location)
	}

	if annotation.Name != "" && !schema.AllowsName {
		return models.Config{}, errors.NewInvalidOptionValue("name", "no positional identifier", annotation.Location)
	}
	if annotation.Name == "" && schema.RequiresName {
		return models.Config{}, errors.Newf(errors.ValidationErrorCode,
			"%s annotation requires a name", annotation.Kind.String()).
			WithLocation(annotation.Location).
			WithSuggestion("write the identifier right after the annotation kind, e.g. //weld::" + annotation.Kind.String() + " MyName")
	}
	if annotation.Name != "" && !token.IsIdentifier(annotation.Name) {
		return models.Config{}, errors.NewInvalidOptionValue("name", "identifier", annotation.Location)
	}

	cfg := models.Config{
		InterfaceName: annotation.Name,
		Exported:      annotation.Pub,
	}

	seen := make(map[string]bool, len(annotation.Options))
	for _, opt := range annotation.Options {
		if seen[opt.Key] {
			return models.Config{}, errors.NewDuplicateOption(opt.Key, annotation.Location)
		}
		seen[opt.Key] = true

		spec, known := schema.Parameters[opt.Key]
		if !known {
			return models.Config{}, errors.NewUnknownOption(opt.Key, annotation.Location)
		}

		if err := applyOption(&cfg, opt, spec, annotation.Location); err != nil {
			return models.Config{}, err
		}
	}

	if cfg.MockName != "" && !token.IsIdentifier(cfg.MockName) {
		return models.Config{}, errors.NewInvalidOptionValue("MockName", "identifier", annotation.Location)
	}

	return cfg, nil
}

// applyOption converts one validated option token into its Config field
func applyOption(cfg *models.Config, opt Option, spec ParameterSpec, loc errors.SourceLocation) error {
	switch spec.Type {
	case BoolType:
		enabled := true
		if opt.HasValue() {
			parsed, err := strconv.ParseBool(*opt.Value)
			if err != nil {
				return errors.NewInvalidOptionValue(opt.Key, "bool", loc)
			}
			enabled = parsed
		}
		return applyBool(cfg, opt.Key, enabled, loc)

	case IdentType:
		if !opt.HasValue() || *opt.Value == "" {
			return errors.NewInvalidOptionValue(opt.Key, "identifier", loc)
		}
		return applyValue(cfg, opt.Key, *opt.Value, loc)

	case EnumType:
		if !opt.HasValue() {
			return errors.NewInvalidOptionValue(opt.Key, spec.Expected(), loc)
		}
		for _, allowed := range spec.Enum {
			if *opt.Value == allowed {
				return applyValue(cfg, opt.Key, *opt.Value, loc)
			}
		}
		return errors.NewInvalidOptionValue(opt.Key, spec.Expected(), loc)

	default: // StringType
		if !opt.HasValue() {
			return errors.NewInvalidOptionValue(opt.Key, "string", loc)
		}
		return applyValue(cfg, opt.Key, *opt.Value, loc)
	}
}

func applyBool(cfg *models.Config, key string, enabled bool, loc errors.SourceLocation) error {
	switch key {
	case "NoDeps":
		cfg.NoDeps = enabled
	case "Export":
		cfg.Export = enabled
	case "Debug":
		cfg.Debug = enabled
	case "Mock":
		cfg.Mockable = enabled
	case "Local":
		cfg.Local = enabled
	default:
		return errors.NewUnknownOption(key, loc)
	}
	return nil
}

func applyValue(cfg *models.Config, key, value string, loc errors.SourceLocation) error {
	switch key {
	case "MockName":
		cfg.MockName = value
	case "MockLib":
		lib, err := models.ParseMockLibrary(value)
		if err != nil {
			return errors.NewInvalidOptionValue(key, "one of [none moq gomock]", loc)
		}
		cfg.MockLib = lib
	case "DelegateBy":
		if !token.IsIdentifier(value) && value != "ref" {
			return errors.NewInvalidOptionValue(key, "'Self', 'ref', or identifier", loc)
		}
		cfg.DelegateBy, cfg.DelegateName = models.ParseDelegateMode(value)
	case "Async":
		mode, err := models.ParseAsyncMode(value)
		if err != nil {
			return errors.NewInvalidOptionValue(key, "one of [none boxed inline]", loc)
		}
		cfg.Async = mode
	default:
		return errors.NewUnknownOption(key, loc)
	}
	return nil
}
