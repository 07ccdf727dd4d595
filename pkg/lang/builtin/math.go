package builtin

import "github.com/wetware/lispy/pkg/lang/core"

type binop func(x, y core.Number) (core.Number, *core.Error)

// Add sums its arguments.
func Add(_ *core.Env, args []core.Value) core.Value {
	return fold("+", args, func(x, y core.Number) (core.Number, *core.Error) {
		return x + y, nil
	})
}

// Sub subtracts the remaining arguments from the first.  With a single
// argument, it returns the negation.
func Sub(_ *core.Env, args []core.Value) core.Value {
	if len(args) == 1 {
		if err := kind("-", args, 0, core.KindNumber); err != nil {
			return err
		}

		return -args[0].(core.Number)
	}

	return fold("-", args, func(x, y core.Number) (core.Number, *core.Error) {
		return x - y, nil
	})
}

// Mul multiplies its arguments.
func Mul(_ *core.Env, args []core.Value) core.Value {
	return fold("*", args, func(x, y core.Number) (core.Number, *core.Error) {
		return x * y, nil
	})
}

// Div divides the first argument by the remaining ones, truncating toward
// zero.
func Div(_ *core.Env, args []core.Value) core.Value {
	return fold("/", args, func(x, y core.Number) (core.Number, *core.Error) {
		if y == 0 {
			return 0, core.Errorf(core.DivisionByZero, "Division By Zero!")
		}

		return x / y, nil
	})
}

// fold op over args, left to right, starting from the first argument.
func fold(fn string, args []core.Value, op binop) core.Value {
	if err := atLeast(fn, args, 1); err != nil {
		return err
	}

	if err := allKind(fn, args, core.KindNumber); err != nil {
		return err
	}

	acc := args[0].(core.Number)
	for _, arg := range args[1:] {
		var err *core.Error
		if acc, err = op(acc, arg.(core.Number)); err != nil {
			return err
		}
	}

	return acc
}
