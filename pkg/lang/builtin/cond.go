package builtin

import "github.com/wetware/lispy/pkg/lang/core"

// Gt returns 1 if the first argument is greater than the second, else 0.
func Gt(_ *core.Env, args []core.Value) core.Value {
	return order(">", args, func(x, y core.Number) bool { return x > y })
}

// Lt returns 1 if the first argument is less than the second, else 0.
func Lt(_ *core.Env, args []core.Value) core.Value {
	return order("<", args, func(x, y core.Number) bool { return x < y })
}

// Ge returns 1 if the first argument is greater than or equal to the second.
func Ge(_ *core.Env, args []core.Value) core.Value {
	return order(">=", args, func(x, y core.Number) bool { return x >= y })
}

// Le returns 1 if the first argument is less than or equal to the second.
func Le(_ *core.Env, args []core.Value) core.Value {
	return order("<=", args, func(x, y core.Number) bool { return x <= y })
}

func order(fn string, args []core.Value, cmp func(x, y core.Number) bool) core.Value {
	if err := count(fn, args, 2); err != nil {
		return err
	}

	if err := allKind(fn, args, core.KindNumber); err != nil {
		return err
	}

	return core.Bool(cmp(args[0].(core.Number), args[1].(core.Number)))
}

// Eq tests two values of any kind for structural equality.
func Eq(_ *core.Env, args []core.Value) core.Value {
	if err := count("==", args, 2); err != nil {
		return err
	}

	return core.Bool(args[0].Equal(args[1]))
}

// Ne is the negation of Eq.
func Ne(_ *core.Env, args []core.Value) core.Value {
	if err := count("!=", args, 2); err != nil {
		return err
	}

	return core.Bool(!args[0].Equal(args[1]))
}

// If evaluates the second argument when the first is non-zero and the third
// otherwise.  The branch that is not taken is never evaluated.
func If(env *core.Env, args []core.Value) core.Value {
	if err := count("if", args, 3); err != nil {
		return err
	}

	if err := kind("if", args, 0, core.KindNumber); err != nil {
		return err
	}

	if err := kind("if", args, 1, core.KindQExpr); err != nil {
		return err
	}

	if err := kind("if", args, 2, core.KindQExpr); err != nil {
		return err
	}

	branch := args[2].(core.QExpr)
	if args[0].(core.Number).Truthy() {
		branch = args[1].(core.QExpr)
	}

	return core.Eval(env, core.SExpr(branch))
}
