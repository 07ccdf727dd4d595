package core

// Function is a callable value.
type Function interface {
	Value

	// Call applies the function to args in the caller's scope.  The callee
	// takes ownership of args.
	Call(env *Env, args []Value) Value
}

// Variadic is the formal that binds all remaining arguments as a QExpr.
const Variadic Symbol = "&"

// Func is the signature of a native builtin.
type Func func(env *Env, args []Value) Value

// Builtin is a native function.  Builtins are immutable, so copies share the
// same instance and two builtins are equal only if they are the same one.
type Builtin struct {
	Name string
	Fn   Func
}

func (*Builtin) Kind() Kind { return KindFunc }

func (b *Builtin) Copy() Value { return b }

func (b *Builtin) Equal(other Value) bool {
	c, ok := other.(*Builtin)
	return ok && b == c
}

func (b *Builtin) String() string { return "<builtin>" }

func (b *Builtin) Call(env *Env, args []Value) Value {
	return b.Fn(env, args)
}

func (*Builtin) value() {}

// Lambda is a user-defined closure.  It owns its formals, its body and a
// private scope holding the arguments bound so far.
type Lambda struct {
	Formals QExpr
	Body    QExpr
	Env     *Env
}

// NewLambda returns a closure with a fresh, parentless scope.  Callers are
// expected to have checked that formals contains only symbols.
func NewLambda(formals, body QExpr) *Lambda {
	return &Lambda{
		Formals: formals,
		Body:    body,
		Env:     NewEnv(nil),
	}
}

func (*Lambda) Kind() Kind { return KindFunc }

// Copy duplicates the formals, the body and the local bindings.  The copy
// keeps the same parent link.
func (l *Lambda) Copy() Value {
	return &Lambda{
		Formals: l.Formals.Copy().(QExpr),
		Body:    l.Body.Copy().(QExpr),
		Env:     l.Env.Copy(),
	}
}

// Equal compares formals and bodies.  Bound arguments and the parent link
// are not taken into account.
func (l *Lambda) Equal(other Value) bool {
	m, ok := other.(*Lambda)
	return ok && l.Formals.Equal(m.Formals) && l.Body.Equal(m.Body)
}

func (l *Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

// Call binds args to the formals from left to right.  If formals remain
// unbound, it returns a new, partially applied Lambda.  Otherwise it links
// the lambda's scope to env and evaluates the body there.
//
// The receiver is never modified, so a Lambda can be called any number of
// times.
func (l *Lambda) Call(env *Env, args []Value) Value {
	fn := l.Copy().(*Lambda)

	given, total := len(args), len(fn.Formals)
	for len(args) > 0 {
		if len(fn.Formals) == 0 {
			return Errorf(ArityError,
				"Function passed too many arguments. Got %d, Expected %d.",
				given, total)
		}

		sym, err := formal(fn.Formals[0])
		if err != nil {
			return err
		}
		fn.Formals = fn.Formals[1:]

		if sym == Variadic {
			if len(fn.Formals) != 1 {
				return errVariadic()
			}

			rest, err := formal(fn.Formals[0])
			if err != nil {
				return err
			}
			fn.Formals = fn.Formals[1:]

			fn.Env.Put(string(rest), QExpr(args))
			args = nil
			break
		}

		fn.Env.Put(string(sym), args[0])
		args = args[1:]
	}

	// '&' was reached with no arguments left to collect
	if len(fn.Formals) > 0 && Variadic.Equal(fn.Formals[0]) {
		if len(fn.Formals) != 2 {
			return errVariadic()
		}

		rest, err := formal(fn.Formals[1])
		if err != nil {
			return err
		}
		fn.Formals = fn.Formals[2:]

		fn.Env.Put(string(rest), QExpr{})
	}

	if len(fn.Formals) > 0 {
		return fn
	}

	fn.Env.link(env)
	return Eval(fn.Env, SExpr(fn.Body))
}

func (*Lambda) value() {}

func formal(v Value) (Symbol, *Error) {
	if sym, ok := v.(Symbol); ok {
		return sym, nil
	}

	return "", Errorf(TypeMismatch,
		"Cannot bind non-symbol. Got %s, Expected %s.",
		v.Kind(), KindSymbol)
}

func errVariadic() *Error {
	return Errorf(ArityError,
		"Function format invalid. Symbol '&' not followed by single symbol.")
}
