package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/weld/internal/errors"
)

// AnnotationPrefix is the marker every weld annotation starts with
const AnnotationPrefix = "weld::"

// annotationAST is the participle grammar for a weld annotation body:
//
//	weld::kind [pub] [Name] (-Flag | -Key=Value)*
type annotationAST struct {
	Kind    string      `parser:"'weld' Separator @Ident"`
	Pub     bool        `parser:"@'pub'?"`
	Name    string      `parser:"@Ident?"`
	Options []optionAST `parser:"@@*"`
}

type optionAST struct {
	Key   string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(Ident | String))?"`
}

// Parser parses `//weld::` comments into ParsedAnnotation values
type Parser struct {
	parser   *participle.Parser[annotationAST]
	registry AnnotationRegistry
}

// NewParser creates a new annotation parser backed by the given schema
// registry
func NewParser(registry AnnotationRegistry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationAST](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// IsAnnotation reports whether a comment line carries a weld annotation
func IsAnnotation(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(text, AnnotationPrefix)
}

// ParseAnnotation parses one annotation comment. The returned annotation
// keeps its option tokens in source order; configuration resolution happens
// separately in Resolve.
func (p *Parser) ParseAnnotation(comment string, location errors.SourceLocation) (*ParsedAnnotation, error) {
	text := strings.TrimSpace(comment)
	if !strings.HasPrefix(text, "//") {
		return nil, errors.New(errors.SyntaxErrorCode, "annotation must start with '//'").WithLocation(location)
	}
	body := strings.TrimSpace(strings.TrimPrefix(text, "//"))
	if !strings.HasPrefix(body, AnnotationPrefix) {
		return nil, errors.Newf(errors.SyntaxErrorCode, "annotation must start with %q", "//"+AnnotationPrefix).WithLocation(location)
	}

	ast, err := p.parser.ParseString(location.File, body)
	if err != nil {
		return nil, errors.Wrap(errors.SyntaxErrorCode,
			fmt.Sprintf("malformed annotation %q", body), err).WithLocation(location)
	}

	kind, err := ParseAnnotationKind(ast.Kind)
	if err != nil {
		return nil, errors.Wrap(errors.SyntaxErrorCode, "invalid annotation kind", err).
			WithLocation(location).
			WithSuggestion("expected one of: func, module, interface, impl")
	}
	if p.registry != nil && !p.registry.IsRegistered(kind) {
		return nil, errors.Newf(errors.SyntaxErrorCode,
			"annotation kind %q is not registered", ast.Kind).WithLocation(location)
	}

	parsed := &ParsedAnnotation{
		Kind:     kind,
		Pub:      ast.Pub,
		Name:     ast.Name,
		Location: location,
		Raw:      text,
	}
	for _, opt := range ast.Options {
		value := opt.Value
		if value != nil {
			unquoted := unquote(*value)
			value = &unquoted
		}
		parsed.Options = append(parsed.Options, Option{Key: opt.Key, Value: value})
	}

	return parsed, nil
}

// unquote strips surrounding double quotes from a String token value
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
