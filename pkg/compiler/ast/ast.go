package ast

import "github.com/agenthands/mcjs/pkg/core/value"

// PrintFunction is the only callable name the parser produces.
const PrintFunction = "print"

// Statement represents a standalone unit of execution.
type Statement interface {
	stmtNode()
}

// Program is the root node. Statements are kept in source order.
type Program struct {
	Statements []Statement
}

// VariableDeclaration: var [mut] NAME = LITERAL ;
type VariableDeclaration struct {
	Mutable bool
	Name    string
	Value   value.Value
}

func (*VariableDeclaration) stmtNode() {}

// FunctionCall: NAME LITERAL
type FunctionCall struct {
	Name      string
	Arguments []value.Value
}

func (*FunctionCall) stmtNode() {}
