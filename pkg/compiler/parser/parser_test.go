package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/agenthands/mcjs/pkg/compiler/ast"
	"github.com/agenthands/mcjs/pkg/compiler/lexer"
	"github.com/agenthands/mcjs/pkg/compiler/parser"
	"github.com/agenthands/mcjs/pkg/core/value"
)

func parseSource(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	tokens, err := lexer.Lex([]byte(src))
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	return parser.Parse(tokens)
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []ast.Statement
	}{
		{
			name: "Immutable string",
			src:  `var name = "text";`,
			want: []ast.Statement{
				&ast.VariableDeclaration{Name: "name", Value: value.String("text")},
			},
		},
		{
			name: "Mutable int",
			src:  `var mut name = 5;`,
			want: []ast.Statement{
				&ast.VariableDeclaration{Mutable: true, Name: "name", Value: value.Int(5)},
			},
		},
		{
			name: "Print with parens",
			src:  `print("Hello {name}")`,
			want: []ast.Statement{
				&ast.FunctionCall{Name: "print", Arguments: []value.Value{value.String("Hello {name}")}},
			},
		},
		{
			name: "Print int with semicolon",
			src:  `print(7);`,
			want: []ast.Statement{
				&ast.FunctionCall{Name: "print", Arguments: []value.Value{value.Int(7)}},
			},
		},
		{
			name: "Sequence keeps source order",
			src:  "var a = 1;\nprint(\"{a}\")\nvar mut b = \"x\";",
			want: []ast.Statement{
				&ast.VariableDeclaration{Name: "a", Value: value.Int(1)},
				&ast.FunctionCall{Name: "print", Arguments: []value.Value{value.String("{a}")}},
				&ast.VariableDeclaration{Mutable: true, Name: "b", Value: value.String("x")},
			},
		},
		{
			name: "Leading garbage skipped",
			src:  `= ; { } stray 9 "s" mut var x = 1;`,
			want: []ast.Statement{
				&ast.VariableDeclaration{Name: "x", Value: value.Int(1)},
			},
		},
		{
			name: "Empty",
			src:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parseSource(t, tt.src)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(prog.Statements, tt.want) {
				t.Errorf("statements mismatch\n got: %#v\nwant: %#v", prog.Statements, tt.want)
			}
		})
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	compact := `var mut a=1;print("{a}")`
	spread := "\n\n  var \t mut\r\n a \n=\n 1 \n;\n\n\tprint  (  \"{a}\"  )\n\n"

	want, err := parseSource(t, compact)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := parseSource(t, spread)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("whitespace changed the AST\n got: %#v\nwant: %#v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"Missing identifier", `var = 5;`, parser.ErrUnexpectedToken},
		{"Keyword as name", `var print = 5;`, parser.ErrUnexpectedToken},
		{"Missing equals", `var x 5 5;`, parser.ErrUnexpectedToken},
		{"Non-literal value", `var x = y;`, parser.ErrUnexpectedToken},
		{"Missing semicolon", `var x = 5 var y = 6;`, parser.ErrUnexpectedToken},
		{"Non-literal print argument", `print(name)`, parser.ErrUnexpectedToken},
		{"Truncated after var", `var x`, parser.ErrTruncatedInput},
		{"Truncated after mut", `var mut`, parser.ErrTruncatedInput},
		{"Truncated before semicolon", `var x = 5`, parser.ErrTruncatedInput},
		{"Truncated print", `print()`, parser.ErrTruncatedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSource(t, tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnexpectedTokenDetails(t *testing.T) {
	_, err := parseSource(t, "var x = 1;\nvar y 2;")

	var ute *parser.UnexpectedTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnexpectedTokenError, got %v", err)
	}
	if ute.Found.Kind != lexer.KindInt || ute.Found.Int != 2 {
		t.Errorf("expected found integer 2, got %v", ute.Found)
	}
	if ute.Found.Line != 2 {
		t.Errorf("expected line 2, got %d", ute.Found.Line)
	}
	if ute.Expected != "'=' after y" {
		t.Errorf("unexpected expectation %q", ute.Expected)
	}
}
