package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedInteger is returned when a digit run does not fit a 32-bit
// signed integer.
var ErrMalformedInteger = errors.New("lexer: malformed integer literal")

// Scanner performs lexical analysis on mc source.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Lex scans the whole source and returns its tokens, without the trailing EOF.
func Lex(source []byte) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token from the source. Characters that start no
// token are skipped.
func (s *Scanner) Next() (Token, error) {
	for {
		s.skipWhitespace()

		if s.cursor >= len(s.source) {
			return Token{Kind: KindEOF, Line: uint32(s.line)}, nil
		}

		ch := s.source[s.cursor]

		if isAlpha(ch) {
			return s.scanWord(), nil
		}

		if ch == '"' {
			return s.scanString(), nil
		}

		if isDigit(ch) {
			return s.scanInt()
		}

		s.cursor++
		switch ch {
		case '=':
			return s.token(KindEquals), nil
		case ';':
			return s.token(KindSemicolon), nil
		case '{':
			return s.token(KindLBrace), nil
		case '}':
			return s.token(KindRBrace), nil
		}
	}
}

func (s *Scanner) token(kind Kind) Token {
	return Token{Kind: kind, Line: uint32(s.line)}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.line++
			s.cursor++
		} else {
			break
		}
	}
}

func (s *Scanner) scanWord() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isAlpha(s.source[s.cursor]) {
		s.cursor++
	}

	word := string(s.source[start:s.cursor])
	if kind, ok := keywords[word]; ok {
		return s.token(kind)
	}
	tok := s.token(KindIdentifier)
	tok.Text = word
	return tok
}

func (s *Scanner) scanString() Token {
	line := s.line
	s.cursor++ // Skip opening '"'
	start := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		if s.source[s.cursor] == '\n' {
			s.line++
		}
		s.cursor++
	}

	body := string(s.source[start:s.cursor])
	if s.cursor < len(s.source) {
		s.cursor++ // Skip closing '"'
	}
	return Token{Kind: KindString, Text: body, Line: uint32(line)}
}

func (s *Scanner) scanInt() (Token, error) {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}

	digits := string(s.source[start:s.cursor])
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return Token{}, fmt.Errorf("%w at line %d: %w", ErrMalformedInteger, s.line, err)
	}
	tok := s.token(KindInt)
	tok.Int = n
	return tok, nil
}

var keywords = map[string]Kind{
	"var":   KindVar,
	"mut":   KindMut,
	"print": KindPrint,
}

// IsIdentifier reports whether text, scanned on its own, is exactly one
// identifier token spelling text: a non-empty run of ASCII letters that is
// not a reserved word.
func IsIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isAlpha(text[i]) {
			return false
		}
	}
	_, reserved := keywords[text]
	return !reserved
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
