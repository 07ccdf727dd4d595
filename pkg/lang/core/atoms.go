package core

import "strconv"

// Number is a fixed-width signed integer.  It doubles as the language's
// boolean:  zero is false, anything else is true.
type Number int64

// Bool encodes b as a Number.
func Bool(b bool) Number {
	if b {
		return 1
	}

	return 0
}

func (Number) Kind() Kind     { return KindNumber }
func (n Number) Copy() Value  { return n }
func (n Number) Truthy() bool { return n != 0 }

func (n Number) Equal(other Value) bool {
	m, ok := other.(Number)
	return ok && n == m
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (Number) value() {}

// Symbol is a name used for lookup and binding.
type Symbol string

func (Symbol) Kind() Kind       { return KindSymbol }
func (s Symbol) Copy() Value    { return s }
func (s Symbol) String() string { return string(s) }

func (s Symbol) Equal(other Value) bool {
	t, ok := other.(Symbol)
	return ok && s == t
}

func (Symbol) value() {}

// String is a literal text datum.
type String string

func (String) Kind() Kind       { return KindString }
func (s String) Copy() Value    { return s }
func (s String) String() string { return string(s) }

func (s String) Equal(other Value) bool {
	t, ok := other.(String)
	return ok && s == t
}

func (String) value() {}
