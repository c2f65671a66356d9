package models

// InterfaceDefinition represents a synthesized interface
type InterfaceDefinition struct {
	Name     string
	Exported bool
	Methods  []MethodSpec
}

// MethodSpec represents one method of a synthesized interface. The
// dependency slot is already rewritten to the implicit receiver, so Params
// holds only the forwarded parameters.
type MethodSpec struct {
	Name    string
	Params  []Param
	Results []string
	Async   bool
	// Source is the signature model the method was derived from. The
	// strategy selector needs it to reconstruct the forwarding call.
	Source *SignatureModel
}

// Signature renders the method as it appears inside an interface body
func (m MethodSpec) Signature() string {
	return m.Name + "(" + ParamList(m.Params) + ")" + ResultList(m.Results)
}

// HasMethod reports whether the interface defines a method with that name
func (d *InterfaceDefinition) HasMethod(name string) bool {
	for _, m := range d.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Method returns the named method spec, if present
func (d *InterfaceDefinition) Method(name string) (MethodSpec, bool) {
	for _, m := range d.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return MethodSpec{}, false
}
