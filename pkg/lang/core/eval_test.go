package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/lang/reader"
)

// newEnv returns a global scope with a minimal set of natives.
func newEnv() *core.Env {
	env := core.NewEnv(nil)

	env.Put("+", &core.Builtin{Name: "+", Fn: func(_ *core.Env, args []core.Value) core.Value {
		var sum core.Number
		for _, arg := range args {
			n, ok := arg.(core.Number)
			if !ok {
				return core.IncorrectType("+", 0, arg.Kind(), core.KindNumber)
			}
			sum += n
		}
		return sum
	}})

	env.Put("\\", &core.Builtin{Name: "\\", Fn: func(_ *core.Env, args []core.Value) core.Value {
		return core.NewLambda(args[0].(core.QExpr), args[1].(core.QExpr))
	}})

	env.Put("list", &core.Builtin{Name: "list", Fn: func(_ *core.Env, args []core.Value) core.Value {
		return core.QExpr(args)
	}})

	env.Put("fail", &core.Builtin{Name: "fail", Fn: func(_ *core.Env, args []core.Value) core.Value {
		return core.Errorf(core.UserError, "fail %d", len(args))
	}})

	return env
}

// eval src as a line of input.
func eval(t *testing.T, env *core.Env, src string) core.Value {
	t.Helper()

	tree, err := reader.ParseString(src, "test")
	require.NoError(t, err)

	return core.Eval(env, core.Read(tree))
}

func TestEval(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc, src, want string
	}{
		{"SelfEvaluating", "5", "5"},
		{"String", `"hi"`, "hi"},
		{"QExpr", "{+ 1 2}", "{+ 1 2}"},
		{"Empty", "()", "()"},
		{"EmptyLine", "", "()"},
		{"Single", "(5)", "5"},
		{"Line", "+ 1 2", "3"},
		{"Nested", "(+ 1 (+ 2 3) (+ 4))", "10"},
		{"Symbol", "+", "<builtin>"},
		{"Unbound", "(+ 1 x)", "Error: Unbound Symbol 'x'"},
		{"NotAFunction", "(1 2 3)", "Error: S-Expression starts with incorrect type. Got Number, Expected Function."},
		{"FirstErrorWins", "(list (fail 1) (fail 1 2) y)", "Error: fail 1"},
		{"QuotedNotEvaluated", "(list {x y} 1)", "{{x y} 1}"},
	} {
		assert.Equal(t, tt.want, eval(t, newEnv(), tt.src).String(), tt.desc)
	}
}

func TestLambda(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc, src, want string
	}{
		{"Apply", `((\ {x y} {+ x y}) 1 2)`, "3"},
		{"NoArgs", `((\ {} {+ 1 1}))`, `(\ {} {+ 1 1})`},
		{"Partial", `((\ {a b} {+ a b}) 1)`, `(\ {b} {+ a b})`},
		{"Curried", `(((\ {a b} {+ a b}) 1) 2)`, "3"},
		{"TooMany", `((\ {x} {x}) 1 2)`, "Error: Function passed too many arguments. Got 2, Expected 1."},
		{"Variadic", `((\ {x & xs} {list x xs}) 1 2 3)`, "{1 {2 3}}"},
		{"VariadicEmpty", `((\ {x & xs} {list x xs}) 1)`, "{1 {}}"},
		{"VariadicOnly", `((\ {& xs} {xs}) 1 2)`, "{1 2}"},
		{"VariadicMalformed", `((\ {& a b} {a}) 1)`, "Error: Function format invalid. Symbol '&' not followed by single symbol."},
		{"NonSymbolFormal", `((\ {1} {1}) 1)`, "Error: Cannot bind non-symbol. Got Number, Expected Symbol."},
		{"BodyError", `((\ {x} {+ x y}) 1)`, "Error: Unbound Symbol 'y'"},
	} {
		assert.Equal(t, tt.want, eval(t, newEnv(), tt.src).String(), tt.desc)
	}
}

func TestLambdaReuse(t *testing.T) {
	t.Parallel()

	env := newEnv()
	add := core.NewLambda(
		core.QExpr{core.Symbol("a"), core.Symbol("b")},
		core.QExpr{core.Symbol("+"), core.Symbol("a"), core.Symbol("b")})
	env.Put("add", add)

	inc := core.Apply(env, add, core.Number(1))
	require.IsType(t, &core.Lambda{}, inc)
	assert.Zero(t, add.Env.Len(), "application must not modify the callee")

	assert.Equal(t, core.Number(3), core.Apply(env, inc.(core.Function), core.Number(2)))
	assert.Equal(t, core.Number(11), core.Apply(env, inc.(core.Function), core.Number(10)),
		"partial application can be reused")
	assert.Equal(t, core.Number(7), eval(t, env, "add 3 4"))
}

func TestDynamicParent(t *testing.T) {
	t.Parallel()

	// The body sees the caller's scope through the parent link.
	env := newEnv()
	env.Put("k", core.Number(100))
	env.Put("addk", core.NewLambda(
		core.QExpr{core.Symbol("x")},
		core.QExpr{core.Symbol("+"), core.Symbol("x"), core.Symbol("k")}))

	assert.Equal(t, core.Number(101), eval(t, env, "addk 1"))
}

func TestFirstErrorStopsEvaluation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc, src string
		calls     int
	}{
		{"Leading", "(list (fail 1) (tick 1) (tick 2))", 0},
		{"Middle", "(list (tick 1) (fail 1) (tick 2))", 1},
		{"Nested", "(+ (tick 1) (+ (fail 1) (tick 2)) (tick 3))", 1},
		{"Head", "((fail 1) (tick 1))", 0},
	} {
		var calls int
		env := newEnv()
		env.Put("tick", &core.Builtin{Name: "tick", Fn: func(_ *core.Env, args []core.Value) core.Value {
			calls++
			return core.Number(calls)
		}})

		assert.Equal(t, "Error: fail 1", eval(t, env, tt.src).String(), tt.desc)
		assert.Equal(t, tt.calls, calls, "%s: siblings after the error must not run", tt.desc)
	}
}
