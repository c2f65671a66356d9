package models

// MockRequest is the descriptor handed to the external mocking collaborator.
// Weld decides whether and under what name a mock surface is requested; the
// collaborator (moq or mockgen, invoked through an emitted go:generate
// directive) produces the call-interceptor type itself.
type MockRequest struct {
	ID            string // correlation id for diagnostics
	Requested     bool
	SurfaceName   string
	Library       MockLibrary
	InterfaceName string
	Exported      bool // -Export: emit even for library (non-test) consumers
}
