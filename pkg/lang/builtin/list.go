package builtin

import "github.com/wetware/lispy/pkg/lang/core"

// List returns its arguments as a QExpr.
func List(_ *core.Env, args []core.Value) core.Value {
	return core.QExpr(args)
}

// Head returns a QExpr holding the first element of its argument.
func Head(_ *core.Env, args []core.Value) core.Value {
	if err := count("head", args, 1); err != nil {
		return err
	}

	if err := kind("head", args, 0, core.KindQExpr); err != nil {
		return err
	}

	if err := nonEmpty("head", args, 0); err != nil {
		return err
	}

	return args[0].(core.QExpr)[:1]
}

// Tail returns its argument without the first element.
func Tail(_ *core.Env, args []core.Value) core.Value {
	if err := count("tail", args, 1); err != nil {
		return err
	}

	if err := kind("tail", args, 0, core.KindQExpr); err != nil {
		return err
	}

	if err := nonEmpty("tail", args, 0); err != nil {
		return err
	}

	return args[0].(core.QExpr)[1:]
}

// Join concatenates one or more QExprs.
func Join(_ *core.Env, args []core.Value) core.Value {
	if err := atLeast("join", args, 1); err != nil {
		return err
	}

	if err := allKind("join", args, core.KindQExpr); err != nil {
		return err
	}

	var n int
	for _, arg := range args {
		n += len(arg.(core.QExpr))
	}

	joined := make(core.QExpr, 0, n)
	for _, arg := range args {
		joined = append(joined, arg.(core.QExpr)...)
	}

	return joined
}

// Eval evaluates a QExpr as if it were an SExpr.
func Eval(env *core.Env, args []core.Value) core.Value {
	if err := count("eval", args, 1); err != nil {
		return err
	}

	if err := kind("eval", args, 0, core.KindQExpr); err != nil {
		return err
	}

	return core.Eval(env, core.SExpr(args[0].(core.QExpr)))
}
