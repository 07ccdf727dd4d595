// Package reader parses lispy source text into syntax trees.
//
// It is built on the slurp reader:  every reader macro produces an *ast.Node,
// so the forms returned by the underlying reader are untyped trees rather
// than runtime values.  See core.Read for the conversion.
package reader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	score "github.com/spy16/slurp/core"
	"github.com/spy16/slurp/reader"

	"github.com/wetware/lispy/pkg/lang/ast"
	"github.com/wetware/lispy/pkg/lang/core"
)

var macroTable = map[rune]reader.Macro{
	'"': readString,
	';': readComment,
	'(': readList(ast.SExpr, ')'),
	')': reader.UnmatchedDelimiter(),
	'{': readList(ast.QExpr, '}'),
	'}': reader.UnmatchedDelimiter(),
	'[': unsupported,
	']': unsupported,

	// Quoting and keywords are not part of the grammar.  These also end a
	// token, so "don't" is an error.
	'\'': unsupported,
	'`':  unsupported,
	'~':  unsupported,
	':':  unsupported,

	// '\' is the lambda builtin, a plain symbol.
	'\\': readSymbol,
}

// New returns a reader whose forms are *ast.Node values.
func New(r io.Reader) *reader.Reader {
	rd := reader.New(r,
		reader.WithNumReader(readNumber),
		reader.WithSymbolReader(readSymbol))

	for init, macro := range macroTable {
		rd.SetMacro(init, false, macro)
	}

	return rd
}

// Parse every form in r.  The forms are returned as the children of a
// single ast.Root node.  The name is recorded in node positions.
func Parse(r io.Reader, name string) (*ast.Node, error) {
	var (
		rd   = New(r)
		root = &ast.Node{Tag: ast.Root, Pos: ast.Pos{File: name, Line: 1}}
	)

	for {
		form, err := rd.One()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		n, err := asNode(form)
		if err != nil {
			return nil, err
		}

		root.Add(n)
	}

	setFile(root, name)
	return root, nil
}

// ParseString is a convenience function that parses src.
func ParseString(src, name string) (*ast.Node, error) {
	return Parse(strings.NewReader(src), name)
}

// IsIncomplete returns true if err was caused by input ending in the middle
// of a form, e.g. because of an unbalanced delimiter.  Reading more input may
// resolve it.
func IsIncomplete(err error) bool {
	if errors.Is(err, reader.ErrEOF) {
		return true
	}

	var rerr reader.Error
	if errors.As(err, &rerr) {
		return errors.Is(rerr.Cause, reader.ErrEOF)
	}

	return false
}

// AsError converts a parse failure into a SyntaxError value.
func AsError(err error) *core.Error {
	return core.Errorf(core.SyntaxError, "%v", err)
}

func asNode(form score.Any) (*ast.Node, error) {
	if n, ok := form.(*ast.Node); ok {
		return n, nil
	}

	return nil, fmt.Errorf("unsupported form %T", form)
}

func position(rd *reader.Reader) ast.Pos {
	p := rd.Position()
	return ast.Pos{File: p.File, Line: p.Ln, Col: p.Col}
}

func setFile(n *ast.Node, name string) {
	n.Pos.File = name
	for _, child := range n.Children {
		setFile(child, name)
	}
}
