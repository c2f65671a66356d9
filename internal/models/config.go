package models

// Config is the validated configuration resolved from one annotation's
// option list. Resolution is pure: the same option tokens always produce the
// same Config value.
type Config struct {
	InterfaceName string // absent when decorating an interface without renaming
	Exported      bool   // `pub` visibility token given before the name
	NoDeps        bool   // first parameter is a plain parameter, not the slot
	Export        bool   // emit mock surfaces unconditionally
	Debug         bool   // dump the synthesized declarations during generation
	Mockable      bool   // request a mock surface
	MockName      string // explicit mock surface identifier
	MockLib       MockLibrary
	DelegateBy    DelegateMode
	DelegateName  string // selector identifier for DelegateNamed
	Async         AsyncMode
	Local         bool // generated futures stay on the calling goroutine
}

// MockRequested reports whether any mock surface should be requested for
// this declaration. -Export implies mock generation for library consumers.
func (c Config) MockRequested() bool {
	return c.Mockable || c.Export || c.MockLib != MockLibraryNone
}
