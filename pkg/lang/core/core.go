// Package core contains the runtime model of the lispy language:  values,
// lexical environments and the evaluator.
package core

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindError Kind = iota
	KindNumber
	KindSymbol
	KindString
	KindSExpr
	KindQExpr
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "Error"
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindSExpr:
		return "S-Expression"
	case KindQExpr:
		return "Q-Expression"
	case KindFunc:
		return "Function"
	}

	return "Unknown"
}

// Value is the datum the language operates on.  The set of implementations
// is closed; see Number, Symbol, String, *Error, SExpr, QExpr, *Builtin and
// *Lambda.
//
// Values are trees.  Lists own their cells, and a Lambda owns its formals,
// body and local bindings.  Copy returns a deep copy that shares nothing
// mutable with the receiver.
type Value interface {
	Kind() Kind
	Copy() Value
	Equal(Value) bool
	String() string

	value()
}

// IsError returns true if v is an error value.
func IsError(v Value) bool {
	return v != nil && v.Kind() == KindError
}
