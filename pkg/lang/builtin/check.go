package builtin

import "github.com/wetware/lispy/pkg/lang/core"

// Argument validation.  Every builtin runs its checks before acting, so a
// failed call never has partial effects.

func count(fn string, args []core.Value, want int) *core.Error {
	if len(args) != want {
		return core.IncorrectCount(fn, len(args), want)
	}

	return nil
}

func atLeast(fn string, args []core.Value, want int) *core.Error {
	if len(args) < want {
		return core.Errorf(core.ArityError,
			"Function '%s' passed too few arguments. Got %d, Expected at least %d.",
			fn, len(args), want)
	}

	return nil
}

func kind(fn string, args []core.Value, i int, want core.Kind) *core.Error {
	if got := args[i].Kind(); got != want {
		return core.IncorrectType(fn, i, got, want)
	}

	return nil
}

func allKind(fn string, args []core.Value, want core.Kind) *core.Error {
	for i := range args {
		if err := kind(fn, args, i, want); err != nil {
			return err
		}
	}

	return nil
}

func nonEmpty(fn string, args []core.Value, i int) *core.Error {
	if len(args[i].(core.QExpr)) == 0 {
		return core.EmptyList(fn, i)
	}

	return nil
}
