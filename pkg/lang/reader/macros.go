package reader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	score "github.com/spy16/slurp/core"
	"github.com/spy16/slurp/reader"

	"github.com/wetware/lispy/pkg/lang/ast"
)

// escapes accepted inside string literals
var escapes = map[rune]struct{}{
	'"':  {},
	'\\': {},
	'n':  {},
	't':  {},
	'r':  {},
	'a':  {},
	'b':  {},
	'f':  {},
	'v':  {},
}

func readNumber(rd *reader.Reader, init rune) (score.Any, error) {
	pos := position(rd)

	token, err := rd.Token(init)
	if err != nil {
		return nil, err
	}

	// Range and format are checked by core.Read, which reports a BadNumber
	// error value instead of failing the whole parse.
	return ast.Leaf(ast.Number, token, pos), nil
}

func readSymbol(rd *reader.Reader, init rune) (score.Any, error) {
	pos := position(rd)

	token, err := rd.Token(init)
	if err != nil {
		return nil, err
	}

	return ast.Leaf(ast.Symbol, token, pos), nil
}

// readString reads a string literal.  The node contents hold the literal as
// written, quotes and escape sequences included.
func readString(rd *reader.Reader, init rune) (score.Any, error) {
	pos := position(rd)

	var b strings.Builder
	b.WriteRune(init)

	for {
		r, err := rd.NextRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: while reading string", reader.ErrEOF)
			}

			return nil, err
		}

		b.WriteRune(r)

		if r == '"' {
			break
		}

		if r == '\\' {
			if r, err = rd.NextRune(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: while reading string", reader.ErrEOF)
				}

				return nil, err
			}

			if _, ok := escapes[r]; !ok {
				return nil, fmt.Errorf("invalid escape sequence '\\%c'", r)
			}

			b.WriteRune(r)
		}
	}

	return ast.Leaf(ast.String, b.String(), pos), nil
}

func readComment(rd *reader.Reader, init rune) (score.Any, error) {
	pos := position(rd)

	var b strings.Builder
	b.WriteRune(init)

	for {
		r, err := rd.NextRune()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		if r == '\n' || r == '\r' {
			break
		}

		b.WriteRune(r)
	}

	return ast.Leaf(ast.Comment, b.String(), pos), nil
}

func readList(tag string, end rune) reader.Macro {
	return func(rd *reader.Reader, init rune) (score.Any, error) {
		pos := position(rd)

		n := &ast.Node{Tag: tag, Pos: pos}
		n.Add(ast.Leaf(ast.Char, string(init), pos))

		if err := rd.Container(end, tag, func(form score.Any) error {
			child, err := asNode(form)
			if err == nil {
				n.Add(child)
			}

			return err
		}); err != nil {
			return nil, err
		}

		return n.Add(ast.Leaf(ast.Char, string(end), position(rd))), nil
	}
}

func unsupported(_ *reader.Reader, init rune) (score.Any, error) {
	return nil, fmt.Errorf("unexpected '%c'", init)
}
