package emitter

import (
	"fmt"
	"strings"

	"github.com/agenthands/mcjs/pkg/compiler/ast"
	"github.com/agenthands/mcjs/pkg/core/value"
)

type Emitter struct {
	target Target
	out    strings.Builder
}

func NewEmitter(target Target) *Emitter {
	return &Emitter{target: target}
}

// Emit renders prog as target source, one line per emitted statement.
func (e *Emitter) Emit(prog *ast.Program) (string, error) {
	e.out.Reset()
	for _, stmt := range prog.Statements {
		if err := e.emitStatement(stmt); err != nil {
			return "", err
		}
	}
	return e.out.String(), nil
}

func (e *Emitter) emitStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		fmt.Fprintf(&e.out, "%s %s = %s\n", e.target.BindingKeyword(s.Mutable), s.Name, e.literal(s.Value))

	case *ast.FunctionCall:
		if s.Name != ast.PrintFunction {
			return fmt.Errorf("emitter: unknown function %q", s.Name)
		}
		for _, arg := range s.Arguments {
			// Only string arguments produce output for now.
			if !arg.IsString() {
				continue
			}
			t := e.target
			e.out.WriteString(t.PrintOpen + t.TemplateQuote + t.Interpolate(arg.Str) + t.TemplateQuote + t.PrintClose + "\n")
		}

	default:
		return fmt.Errorf("emitter: unsupported statement %T", stmt)
	}
	return nil
}

func (e *Emitter) literal(v value.Value) string {
	if v.IsString() {
		return e.target.StringQuote + v.Str + e.target.StringQuote
	}
	return v.String()
}
