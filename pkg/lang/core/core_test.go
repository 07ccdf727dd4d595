package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wetware/lispy/pkg/lang/core"
)

func TestKind(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		val  core.Value
		kind core.Kind
		name string
	}{
		{core.Errorf(core.UserError, "x"), core.KindError, "Error"},
		{core.Number(1), core.KindNumber, "Number"},
		{core.Symbol("x"), core.KindSymbol, "Symbol"},
		{core.String("x"), core.KindString, "String"},
		{core.SExpr{}, core.KindSExpr, "S-Expression"},
		{core.QExpr{}, core.KindQExpr, "Q-Expression"},
		{&core.Builtin{Name: "f"}, core.KindFunc, "Function"},
		{core.NewLambda(core.QExpr{}, core.QExpr{}), core.KindFunc, "Function"},
	} {
		assert.Equal(t, tt.kind, tt.val.Kind())
		assert.Equal(t, tt.name, tt.val.Kind().String())
	}

	assert.Equal(t, "Unknown", core.Kind(255).String())
}

func TestRender(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc string
		val  core.Value
		want string
	}{
		{"Number", core.Number(-42), "-42"},
		{"Error", core.Errorf(core.DivisionByZero, "Division By Zero!"), "Error: Division By Zero!"},
		{"Symbol", core.Symbol("foo"), "foo"},
		{"String", core.String("hello world"), "hello world"},
		{"EmptySExpr", core.SExpr{}, "()"},
		{"EmptyQExpr", core.QExpr{}, "{}"},
		{"Nested", core.SExpr{core.Symbol("+"), core.Number(1), core.QExpr{core.Number(2), core.SExpr{}}}, "(+ 1 {2 ()})"},
		{"Builtin", &core.Builtin{Name: "head"}, "<builtin>"},
		{"Lambda",
			core.NewLambda(
				core.QExpr{core.Symbol("x"), core.Symbol("y")},
				core.QExpr{core.Symbol("+"), core.Symbol("x"), core.Symbol("y")}),
			`(\ {x y} {+ x y})`},
	} {
		assert.Equal(t, tt.want, tt.val.String(), tt.desc)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	head := &core.Builtin{Name: "head"}
	lambda := func(formals ...core.Value) *core.Lambda {
		return core.NewLambda(formals, core.QExpr{core.Symbol("x")})
	}

	bound := lambda(core.Symbol("x"))
	bound.Env.Put("y", core.Number(1))

	for _, tt := range []struct {
		desc string
		a, b core.Value
		want bool
	}{
		{"Number", core.Number(1), core.Number(1), true},
		{"NumberDiffers", core.Number(1), core.Number(2), false},
		{"KindDiffers", core.Number(1), core.String("1"), false},
		{"SymbolVsString", core.Symbol("a"), core.String("a"), false},
		{"QExpr", core.QExpr{core.Number(1), core.Symbol("a")}, core.QExpr{core.Number(1), core.Symbol("a")}, true},
		{"QExprLength", core.QExpr{core.Number(1)}, core.QExpr{core.Number(1), core.Number(1)}, false},
		{"SExprVsQExpr", core.SExpr{core.Number(1)}, core.QExpr{core.Number(1)}, false},
		{"Error", core.Errorf(core.UserError, "x"), core.Errorf(core.UserError, "x"), true},
		{"ErrorType", core.Errorf(core.UserError, "x"), core.Errorf(core.LoadError, "x"), false},
		{"SameBuiltin", head, head.Copy(), true},
		{"OtherBuiltin", head, &core.Builtin{Name: "head"}, false},
		{"Lambda", lambda(core.Symbol("x")), lambda(core.Symbol("x")), true},
		{"LambdaIgnoresBindings", bound, lambda(core.Symbol("x")), true},
		{"LambdaFormals", lambda(core.Symbol("x")), lambda(core.Symbol("y")), false},
	} {
		assert.Equal(t, tt.want, tt.a.Equal(tt.b), tt.desc)
	}
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("List", func(t *testing.T) {
		t.Parallel()

		inner := core.QExpr{core.Number(2)}
		orig := core.QExpr{core.Number(1), inner}

		cp := orig.Copy().(core.QExpr)
		assert.True(t, orig.Equal(cp))

		cp[0] = core.Number(100)
		cp[1].(core.QExpr)[0] = core.Number(200)

		assert.Equal(t, "{1 {2}}", orig.String(), "original must be unaffected")
		assert.Equal(t, "{100 {200}}", cp.String())
	})

	t.Run("Lambda", func(t *testing.T) {
		t.Parallel()

		parent := core.NewEnv(nil)
		orig := core.NewLambda(core.QExpr{core.Symbol("x")}, core.QExpr{core.Symbol("x")})
		orig.Env = core.NewEnv(parent)
		orig.Env.Put("y", core.QExpr{core.Number(1)})

		cp := orig.Copy().(*core.Lambda)
		assert.Same(t, parent, cp.Env.Parent(), "copy should keep the parent link")
		assert.NotSame(t, orig.Env, cp.Env)

		cp.Formals[0] = core.Symbol("z")
		cp.Env.Put("y", core.Number(2))

		assert.Equal(t, core.Symbol("x"), orig.Formals[0])
		assert.Equal(t, "{1}", orig.Env.Get("y").String())
	})

	t.Run("Error", func(t *testing.T) {
		t.Parallel()

		orig := core.Errorf(core.UserError, "boom")
		cp := orig.Copy().(*core.Error)
		assert.NotSame(t, orig, cp)
		assert.Equal(t, orig, cp)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, core.Number(1), core.Bool(true))
	assert.Equal(t, core.Number(0), core.Bool(false))
	assert.True(t, core.Number(-3).Truthy())
	assert.False(t, core.Number(0).Truthy())
}

func TestError(t *testing.T) {
	t.Parallel()

	err := core.Unbound("x")
	assert.Equal(t, core.UnboundSymbol, err.Type)
	assert.Equal(t, "Unbound Symbol 'x'", err.Error())
	assert.Equal(t, "Error: Unbound Symbol 'x'", err.String())
	assert.True(t, core.IsError(err))
	assert.False(t, core.IsError(core.Number(0)))
	assert.False(t, core.IsError(nil))

	var wrapped error = err
	assert.True(t, errors.Is(wrapped, &core.Error{Type: core.UnboundSymbol}))
	assert.False(t, errors.Is(wrapped, &core.Error{Type: core.TypeMismatch}))

	assert.Equal(t,
		"Function 'head' passed incorrect type for argument 0. Got Number, Expected Q-Expression.",
		core.IncorrectType("head", 0, core.KindNumber, core.KindQExpr).Msg)
	assert.Equal(t,
		"Function 'eval' passed incorrect number of arguments. Got 2, Expected 1.",
		core.IncorrectCount("eval", 2, 1).Msg)
	assert.Equal(t,
		"Function 'tail' passed {} for argument 0.",
		core.EmptyList("tail", 0).Msg)

	assert.Equal(t, "DivisionByZero", core.DivisionByZero.String())
	assert.Equal(t, "UnknownError", core.ErrorType(255).String())
}
