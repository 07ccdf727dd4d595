package builtin

import "github.com/wetware/lispy/pkg/lang/core"

// Def binds each symbol in the first argument to the corresponding value
// among the remaining arguments.  Bindings are made in the global scope.
func Def(env *core.Env, args []core.Value) core.Value {
	return bind("def", env.Root(), args)
}

// Put is like Def, but binds in the current scope.
func Put(env *core.Env, args []core.Value) core.Value {
	return bind("=", env, args)
}

func bind(fn string, env *core.Env, args []core.Value) core.Value {
	if err := atLeast(fn, args, 1); err != nil {
		return err
	}

	if err := kind(fn, args, 0, core.KindQExpr); err != nil {
		return err
	}

	syms := args[0].(core.QExpr)
	if err := symbols(fn, syms); err != nil {
		return err
	}

	vals := args[1:]
	if len(syms) != len(vals) {
		return core.Errorf(core.ArityError,
			"Function '%s' passed incorrect number of values to symbols. Got %d, Expected %d.",
			fn, len(vals), len(syms))
	}

	for i, sym := range syms {
		env.Put(string(sym.(core.Symbol)), vals[i])
	}

	return core.SExpr{}
}

// Lambda builds a closure from a QExpr of formal symbols and a QExpr body.
func Lambda(_ *core.Env, args []core.Value) core.Value {
	if err := count("\\", args, 2); err != nil {
		return err
	}

	if err := kind("\\", args, 0, core.KindQExpr); err != nil {
		return err
	}

	if err := kind("\\", args, 1, core.KindQExpr); err != nil {
		return err
	}

	formals := args[0].(core.QExpr)
	if err := symbols("\\", formals); err != nil {
		return err
	}

	return core.NewLambda(formals, args[1].(core.QExpr))
}

func symbols(fn string, q core.QExpr) *core.Error {
	for _, v := range q {
		if v.Kind() != core.KindSymbol {
			return core.Errorf(core.TypeMismatch,
				"Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				fn, v.Kind(), core.KindSymbol)
		}
	}

	return nil
}
