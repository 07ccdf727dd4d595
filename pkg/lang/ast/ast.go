// Package ast contains the syntax tree produced by the reader.
//
// The tree is deliberately untyped:  every node carries a grammar tag and the
// literal text it was read from.  Turning nodes into runtime values is the job
// of core.Read.
package ast

import (
	"fmt"
	"strings"
)

// Grammar tags.
const (
	Root    = ">"
	Number  = "number"
	Symbol  = "symbol"
	String  = "string"
	Comment = "comment"
	SExpr   = "sexpr"
	QExpr   = "qexpr"

	// Char tags literal delimiter tokens, i.e. '(', ')', '{' and '}'.
	Char = "char"
)

// Pos is a location in the source.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Node in the syntax tree.
type Node struct {
	Tag      string
	Contents string
	Pos      Pos
	Children []*Node
}

// Leaf returns a childless node.
func Leaf(tag, contents string, pos Pos) *Node {
	return &Node{Tag: tag, Contents: contents, Pos: pos}
}

// Add appends children to the node and returns it.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Is returns true if the node has the given tag.
func (n *Node) Is(tag string) bool { return n.Tag == tag }

// Delim returns true if the node is a literal delimiter token.
func (n *Node) Delim() bool {
	if n.Tag != Char {
		return false
	}

	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}

	return false
}

// String renders the tree in an indented, mpc-like format.  It is intended
// for debugging.
func (n *Node) String() string {
	var b strings.Builder
	n.print(&b, 0)
	return b.String()
}

func (n *Node) print(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, ":%d:%d '%s'", n.Pos.Line, n.Pos.Col, n.Contents)
	}
	b.WriteByte('\n')

	for _, child := range n.Children {
		child.print(b, depth+1)
	}
}
