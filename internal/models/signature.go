package models

import (
	"strings"

	"github.com/toyz/weld/internal/errors"
)

// Param is a single named parameter of a function signature
type Param struct {
	Name string // bound identifier
	Type string // rendered type expression
}

// SignatureModel is the normalized structural model extracted from a
// function declaration. It carries everything the synthesizer and the
// strategy selector need: the dependency slot, the remaining parameters, and
// enough metadata to reconstruct the forwarding call positionally.
type SignatureModel struct {
	OwnerName   string  // function name
	Exported    bool    // group-visibility for the module variant
	HasDepsSlot bool    // false when -NoDeps was given
	DepsSlot    Param   // first parameter, valid only when HasDepsSlot
	DepsKind    DepsKind
	Params      []Param  // parameters excluding the dependency slot
	Results     []string // rendered result types
	IsAsync     bool     // first non-slot parameter is a context.Context
	Location    errors.SourceLocation
}

// MethodName returns the interface method name derived from the owner.
// Method names are exported regardless of the original function's case;
// the interface's own visibility governs what callers can reach.
func (m *SignatureModel) MethodName() string {
	if m.OwnerName == "" {
		return ""
	}
	return strings.ToUpper(m.OwnerName[:1]) + m.OwnerName[1:]
}

// CallArgs reconstructs the positional argument list for a forwarding call
// to the original function. The dependency slot is rewritten to the given
// receiver expression; every other argument is forwarded by identifier,
// unchanged and in order.
func (m *SignatureModel) CallArgs(receiverExpr string) []string {
	args := make([]string, 0, len(m.Params)+1)
	if m.HasDepsSlot {
		args = append(args, receiverExpr)
	}
	for _, p := range m.Params {
		args = append(args, p.Name)
	}
	return args
}

// ParamList renders the method parameter list as it appears in a signature
func ParamList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// ResultList renders result types as they appear after a signature
func ResultList(results []string) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + results[0]
	default:
		return " (" + strings.Join(results, ", ") + ")"
	}
}
