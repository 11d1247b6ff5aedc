package parser

import (
	"errors"
	"fmt"

	"github.com/agenthands/mcjs/pkg/compiler/lexer"
)

var (
	ErrUnexpectedToken = errors.New("parser: unexpected token")
	ErrTruncatedInput  = errors.New("parser: unexpected end of input")
)

// UnexpectedTokenError reports a token that does not fit the statement being
// parsed.
type UnexpectedTokenError struct {
	Expected string
	Found    lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("parser: expected %s at line %d, found %v", e.Expected, e.Found.Line, e.Found)
}

func (e *UnexpectedTokenError) Is(target error) bool {
	return target == ErrUnexpectedToken
}
