package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetware/lispy/pkg/lang/ast"
	"github.com/wetware/lispy/pkg/lang/core"
	"github.com/wetware/lispy/pkg/lang/reader"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc, src, want string
	}{
		{"Empty", "", "()"},
		{"Atoms", `1 -2 foo "bar"`, "(1 -2 foo bar)"},
		{"Line", "+ 1 (* 2 3)", "(+ 1 (* 2 3))"},
		{"QExpr", "{head {1 2}}", "({head {1 2}})"},
		{"Lambda", `\ {x} {x}`, `(\ {x} {x})`},
		{"Operators", "== != >= <= / - &", "(== != >= <= / - &)"},
		{"Comment", "1 ; one\n2 ; two", "(1 2)"},
		{"CommentInList", "{1 ; inner\n 2}", "({1 2})"},
		{"Multiline", "(+ 1\n   2)", "((+ 1 2))"},
	} {
		tree, err := reader.ParseString(tt.src, "test")
		require.NoError(t, err, tt.desc)
		assert.Equal(t, tt.want, core.Read(tree).String(), tt.desc)
	}
}

func TestTree(t *testing.T) {
	t.Parallel()

	tree, err := reader.ParseString(`(+ 1 "a") ; c`, "line")
	require.NoError(t, err)

	assert.True(t, tree.Is(ast.Root))
	require.Len(t, tree.Children, 2)

	sexpr := tree.Children[0]
	assert.Equal(t, ast.SExpr, sexpr.Tag)
	require.Len(t, sexpr.Children, 5)
	assert.True(t, sexpr.Children[0].Delim())
	assert.True(t, sexpr.Children[4].Delim())

	sym, num, str := sexpr.Children[1], sexpr.Children[2], sexpr.Children[3]
	assert.Equal(t, ast.Symbol, sym.Tag)
	assert.Equal(t, "+", sym.Contents)
	assert.Equal(t, ast.Number, num.Tag)
	assert.Equal(t, "1", num.Contents)
	assert.Equal(t, ast.String, str.Tag)
	assert.Equal(t, `"a"`, str.Contents, "strings keep their literal text")

	comment := tree.Children[1]
	assert.Equal(t, ast.Comment, comment.Tag)
	assert.Equal(t, "; c", comment.Contents)

	assert.Equal(t, "line", num.Pos.File)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	tree, err := reader.ParseString(`"tab\there" "quote\"d" "multi
line"`, "test")
	require.NoError(t, err)

	assert.Equal(t, core.SExpr{
		core.String("tab\there"),
		core.String(`quote"d`),
		core.String("multi\nline"),
	}, core.Read(tree))
}

func TestBadNumber(t *testing.T) {
	t.Parallel()

	tree, err := reader.ParseString("123456789012345678901234567890", "test")
	require.NoError(t, err, "range is checked when reading values")

	v := core.Read(tree).(core.SExpr)[0]
	require.IsType(t, &core.Error{}, v)
	assert.Equal(t, core.BadNumber, v.(*core.Error).Type)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		desc, src  string
		incomplete bool
	}{
		{"OpenParen", "(+ 1", true},
		{"OpenBrace", "{1 {2}", true},
		{"OpenString", `"abc`, true},
		{"CloseParen", ")", false},
		{"CloseBrace", "1 }", false},
		{"Vector", "[1 2]", false},
		{"BadEscape", `"\q"`, false},
		{"QuoteInSymbol", "(def {don't} 1)", false},
		{"Quote", "'x", false},
		{"SyntaxQuote", "`x", false},
		{"Unquote", "~x", false},
		{"Keyword", ":k", false},
	} {
		_, err := reader.ParseString(tt.src, "test")
		require.Error(t, err, tt.desc)
		assert.Equal(t, tt.incomplete, reader.IsIncomplete(err), tt.desc)

		v := reader.AsError(err)
		assert.Equal(t, core.SyntaxError, v.Type, tt.desc)
		assert.NotEmpty(t, v.Msg, tt.desc)
	}

	assert.False(t, reader.IsIncomplete(nil))
}
