package emitter

// Target describes the output dialect.
type Target struct {
	Immutable string // binding keyword for var
	Mutable   string // binding keyword for var mut

	// PrintOpen and PrintClose wrap the rendered template.
	PrintOpen  string
	PrintClose string

	TemplateQuote string
	SpliceOpen    string
	SpliceClose   string

	StringQuote string
}

// JavaScript targets Node and browsers.
var JavaScript = Target{
	Immutable:     "const",
	Mutable:       "let",
	PrintOpen:     "console.log(",
	PrintClose:    ")",
	TemplateQuote: "`",
	SpliceOpen:    "${",
	SpliceClose:   "}",
	StringQuote:   "'",
}

// BindingKeyword returns the keyword introducing a binding of the given
// mutability.
func (t Target) BindingKeyword(mutable bool) string {
	if mutable {
		return t.Mutable
	}
	return t.Immutable
}
