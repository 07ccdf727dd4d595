package core

import (
	"strconv"
	"strings"

	"github.com/wetware/lispy/pkg/lang/ast"
)

// Read converts a syntax tree into a value.  Numbers that do not fit into a
// Number are read as BadNumber errors.  Delimiters and comments are skipped.
// The root node is read as an SExpr holding the top-level forms.
func Read(n *ast.Node) Value {
	switch n.Tag {
	case ast.Number:
		return readNumber(n)

	case ast.Symbol:
		return Symbol(n.Contents)

	case ast.String:
		return readString(n)

	case ast.QExpr:
		return QExpr(readCells(n))
	}

	// ast.Root, ast.SExpr
	return SExpr(readCells(n))
}

func readNumber(n *ast.Node) Value {
	i, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return Errorf(BadNumber, "Invalid number '%s'", n.Contents)
	}

	return Number(i)
}

// readString decodes escape sequences in a double-quoted literal.  Unlike
// strconv.Unquote, it accepts raw newlines.
func readString(n *ast.Node) Value {
	lit := n.Contents
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return Errorf(BadString, "Invalid string %s", lit)
	}

	var b strings.Builder
	for s := lit[1 : len(lit)-1]; len(s) > 0; {
		r, _, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return Errorf(BadString, "Invalid string %s", lit)
		}

		b.WriteRune(r)
		s = tail
	}

	return String(b.String())
}

func readCells(n *ast.Node) []Value {
	cells := make([]Value, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Delim() || child.Is(ast.Comment) {
			continue
		}

		cells = append(cells, Read(child))
	}

	return cells
}
