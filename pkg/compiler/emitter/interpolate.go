package emitter

import (
	"strings"

	"github.com/agenthands/mcjs/pkg/compiler/lexer"
)

// Interpolate rewrites every {name} placeholder in s into the target's
// splice syntax. Text between braces that is not a bare identifier, such as
// {123} or {a b}, is left as written.
func (t Target) Interpolate(s string) string {
	var pairs []string
	seen := make(map[string]bool)
	for _, seg := range strings.FieldsFunc(s, isBrace) {
		if seen[seg] || !lexer.IsIdentifier(seg) {
			continue
		}
		seen[seg] = true
		pairs = append(pairs, "{"+seg+"}", t.SpliceOpen+seg+t.SpliceClose)
	}
	if len(pairs) == 0 {
		return s
	}
	// Replacements are matched against s only, never against earlier output.
	return strings.NewReplacer(pairs...).Replace(s)
}

func isBrace(r rune) bool {
	return r == '{' || r == '}'
}
