package core

import "fmt"

// ErrorType classifies an error value.
type ErrorType uint8

const (
	// SyntaxError is reported by the reader.  The evaluator never produces it.
	SyntaxError ErrorType = iota
	TypeMismatch
	ArityError
	UnboundSymbol
	DivisionByZero
	EmptyListAccess
	UnknownFunction
	BadNumber
	BadString
	LoadError

	// Closed is returned by an interpreter after it has been released.
	Closed

	// UserError is raised by the 'error' builtin.
	UserError
)

func (t ErrorType) String() string {
	switch t {
	case SyntaxError:
		return "SyntaxError"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityError:
		return "ArityError"
	case UnboundSymbol:
		return "UnboundSymbol"
	case DivisionByZero:
		return "DivisionByZero"
	case EmptyListAccess:
		return "EmptyListAccess"
	case UnknownFunction:
		return "UnknownFunction"
	case BadNumber:
		return "BadNumber"
	case BadString:
		return "BadString"
	case LoadError:
		return "LoadError"
	case Closed:
		return "Closed"
	case UserError:
		return "UserError"
	}

	return "UnknownError"
}

// Error is a language-level error.  It is an ordinary value:  it is returned,
// never raised, and every composite operation short-circuits on the first
// one it encounters.
//
// Error also satisfies the error interface so that host code can surface it.
type Error struct {
	Type ErrorType
	Msg  string
}

// Errorf returns an error value of the given type with a formatted message.
func Errorf(t ErrorType, format string, args ...any) *Error {
	return &Error{Type: t, Msg: fmt.Sprintf(format, args...)}
}

func (*Error) Kind() Kind { return KindError }

func (e *Error) Copy() Value {
	return &Error{Type: e.Type, Msg: e.Msg}
}

func (e *Error) Equal(other Value) bool {
	f, ok := other.(*Error)
	return ok && e.Type == f.Type && e.Msg == f.Msg
}

func (e *Error) String() string { return "Error: " + e.Msg }
func (e *Error) Error() string  { return e.Msg }

// Is reports whether target is an *Error of the same type.  It allows
// errors.Is to match on the error class alone.
func (e *Error) Is(target error) bool {
	f, ok := target.(*Error)
	return ok && e.Type == f.Type
}

func (*Error) value() {}

// Unbound returns an UnboundSymbol error for name.
func Unbound(name string) *Error {
	return Errorf(UnboundSymbol, "Unbound Symbol '%s'", name)
}

// IncorrectType returns a TypeMismatch error for the i-th argument of the
// named function.
func IncorrectType(fn string, i int, got, want Kind) *Error {
	return Errorf(TypeMismatch,
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		fn, i, got, want)
}

// IncorrectCount returns an ArityError for the named function.
func IncorrectCount(fn string, got, want int) *Error {
	return Errorf(ArityError,
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		fn, got, want)
}

// EmptyList returns an EmptyListAccess error for the i-th argument of the
// named function.
func EmptyList(fn string, i int) *Error {
	return Errorf(EmptyListAccess, "Function '%s' passed {} for argument %d.", fn, i)
}
