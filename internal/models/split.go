package models

// InherentMethod records one hand-written method of an annotated
// implementation block. The body stays untouched in the user's source; the
// splitter only records the structure it matched against the delegation
// target.
type InherentMethod struct {
	Name    string
	Params  []Param // including the dependency parameter in position 0
	Results []string
}

// SplitResult is the output of the implementation block splitter: the
// inherent block (left verbatim in the source) plus a forwarding delegate
// that calls each inherent method statically with the wrapper reference
// forwarded unchanged.
type SplitResult struct {
	ImplType        string // the annotated concrete type
	TargetInterface string // the delegation-target interface being claimed
	Dynamic         bool   // ref-style delegation: forwarding must be dynamically dispatchable
	Inherent        []InherentMethod
	Forwarding      ForwardingImplementation
}
