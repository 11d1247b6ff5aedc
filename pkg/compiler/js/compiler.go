package js

import (
	"fmt"

	"github.com/agenthands/mcjs/pkg/compiler/emitter"
	"github.com/agenthands/mcjs/pkg/compiler/lexer"
	"github.com/agenthands/mcjs/pkg/compiler/parser"
)

// Compiler translates mc source into JavaScript. It performs no I/O and keeps
// no state between calls.
type Compiler struct {
	Target emitter.Target
}

func NewCompiler() *Compiler {
	return &Compiler{Target: emitter.JavaScript}
}

// Compile runs the lexer, parser and emitter over src.
func (c *Compiler) Compile(src string) (string, error) {
	tokens, err := lexer.Lex([]byte(src))
	if err != nil {
		return "", fmt.Errorf("lex: %w", err)
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	out, err := emitter.NewEmitter(c.Target).Emit(prog)
	if err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	return out, nil
}
