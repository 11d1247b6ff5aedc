package value

import "strconv"

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeString Type = iota
	TypeInt
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Value is a literal attached to a declaration or passed to a call.
type Value struct {
	Type Type
	Str  string
	Int  int64
}

// String builds a string literal value.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// Int builds an integer literal value.
func Int(n int64) Value {
	return Value{Type: TypeInt, Int: n}
}

// IsString reports whether v holds a string literal.
func (v Value) IsString() bool {
	return v.Type == TypeString
}

func (v Value) String() string {
	if v.Type == TypeInt {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.Quote(v.Str)
}
