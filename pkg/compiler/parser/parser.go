package parser

import (
	"fmt"

	"github.com/agenthands/mcjs/pkg/compiler/ast"
	"github.com/agenthands/mcjs/pkg/compiler/lexer"
	"github.com/agenthands/mcjs/pkg/core/value"
)

type Parser struct {
	tokens []lexer.Token
	pos    int

	curTok  lexer.Token
	peekTok lexer.Token
}

// Parse builds a program from a token stream in one forward pass.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return NewParser(tokens).Parse()
}

func NewParser(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.pos < len(p.tokens) {
		p.peekTok = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekTok = lexer.Token{Kind: lexer.KindEOF, Line: p.curTok.Line}
	}
}

func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curTok.Kind != lexer.KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curTok.Kind {
	case lexer.KindVar:
		return p.parseDeclaration()
	case lexer.KindPrint:
		return p.parsePrint()
	default:
		// Tokens that cannot start a statement are dropped.
		p.nextToken()
		return nil, nil
	}
}

func (p *Parser) parseDeclaration() (ast.Statement, error) {
	p.nextToken() // skip var

	decl := &ast.VariableDeclaration{}
	if p.curTok.Kind == lexer.KindMut {
		decl.Mutable = true
		p.nextToken()
	}

	name, err := p.expect(lexer.KindIdentifier, "identifier after var")
	if err != nil {
		return nil, err
	}
	decl.Name = name.Text

	if _, err := p.expect(lexer.KindEquals, "'=' after "+decl.Name); err != nil {
		return nil, err
	}

	decl.Value, err = p.parseLiteral("literal value for " + decl.Name)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.KindSemicolon, "';' after declaration of "+decl.Name); err != nil {
		return nil, err
	}

	return decl, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	p.nextToken() // skip print

	arg, err := p.parseLiteral("literal argument to print")
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind == lexer.KindSemicolon {
		p.nextToken()
	}

	return &ast.FunctionCall{
		Name:      ast.PrintFunction,
		Arguments: []value.Value{arg},
	}, nil
}

func (p *Parser) parseLiteral(what string) (value.Value, error) {
	tok := p.curTok
	switch tok.Kind {
	case lexer.KindString:
		p.nextToken()
		return value.String(tok.Text), nil
	case lexer.KindInt:
		p.nextToken()
		return value.Int(tok.Int), nil
	case lexer.KindEOF:
		return value.Value{}, fmt.Errorf("%w: expected %s", ErrTruncatedInput, what)
	default:
		return value.Value{}, &UnexpectedTokenError{Expected: what, Found: tok}
	}
}

func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	tok := p.curTok
	if tok.Kind == kind {
		p.nextToken()
		return tok, nil
	}
	if tok.Kind == lexer.KindEOF {
		return tok, fmt.Errorf("%w: expected %s", ErrTruncatedInput, what)
	}
	return tok, &UnexpectedTokenError{Expected: what, Found: tok}
}
