package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGeneratedFile runs the rendered source through goimports: it fixes
// up the import declaration for whatever types the signatures dragged in,
// then formats like gofmt.
func FormatGeneratedFile(filename, source string) (string, error) {
	formatted, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		// fall back to plain formatting; an unresolvable import is not fatal
		plain, fmtErr := format.Source([]byte(source))
		if fmtErr != nil {
			return source, fmt.Errorf("failed to format generated code: %w", err)
		}
		return string(plain), nil
	}
	return string(formatted), nil
}

// FormatGoCodeString formats Go source code from a string and returns a string
func FormatGoCodeString(source string) (string, error) {
	formatted, err := format.Source([]byte(source))
	if err != nil {
		// distinguish bad syntax from formatter trouble
		fset := token.NewFileSet()
		_, parseErr := parser.ParseFile(fset, "", source, parser.ParseComments)
		if parseErr != nil {
			return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
		}
		return source, err
	}
	return string(formatted), nil
}

// FormatAndWriteGoFile formats generated code and writes it to a file. When
// formatting fails the unformatted source is still written so the user can
// inspect what went wrong.
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGeneratedFile(filename, code)
	if err != nil {
		if writeErr := os.WriteFile(filename, []byte(code), 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted code to %s: %w (format error: %v)", filename, writeErr, err)
		}
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}
	return os.WriteFile(filename, []byte(formatted), 0644)
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
