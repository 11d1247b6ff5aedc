package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindVar
	KindMut
	KindPrint
	KindIdentifier
	KindString
	KindInt
	KindEquals    // =
	KindSemicolon // ;
	KindLBrace    // {
	KindRBrace    // }
)

var kindNames = [...]string{
	KindEOF:        "EOF",
	KindVar:        "var",
	KindMut:        "mut",
	KindPrint:      "print",
	KindIdentifier: "identifier",
	KindString:     "string literal",
	KindInt:        "integer literal",
	KindEquals:     "'='",
	KindSemicolon:  "';'",
	KindLBrace:     "'{'",
	KindRBrace:     "'}'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one lexical unit. Text holds the identifier name or the string
// body; Int holds the value of an integer literal. Line is diagnostic only.
type Token struct {
	Kind Kind
	Text string
	Int  int64
	Line uint32
}

func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return fmt.Sprintf("identifier %q", t.Text)
	case KindString:
		return fmt.Sprintf("string %q", t.Text)
	case KindInt:
		return fmt.Sprintf("integer %d", t.Int)
	}
	return t.Kind.String()
}
