package core

import "strings"

// SExpr is a list that is evaluated as a call when reduced.
type SExpr []Value

func (SExpr) Kind() Kind { return KindSExpr }

func (s SExpr) Copy() Value { return SExpr(copyCells(s)) }

func (s SExpr) Equal(other Value) bool {
	t, ok := other.(SExpr)
	return ok && cellsEqual(s, t)
}

func (s SExpr) String() string { return render('(', ')', s) }

func (SExpr) value() {}

// QExpr is a quoted list.  It is inert data and is never evaluated unless it
// is explicitly converted into an SExpr, e.g. by the 'eval' builtin.
type QExpr []Value

func (QExpr) Kind() Kind { return KindQExpr }

func (q QExpr) Copy() Value { return QExpr(copyCells(q)) }

func (q QExpr) Equal(other Value) bool {
	r, ok := other.(QExpr)
	return ok && cellsEqual(q, r)
}

func (q QExpr) String() string { return render('{', '}', q) }

func (QExpr) value() {}

func copyCells(cells []Value) []Value {
	out := make([]Value, len(cells))
	for i, cell := range cells {
		out[i] = cell.Copy()
	}

	return out
}

func cellsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func render(lhs, rhs byte, cells []Value) string {
	var b strings.Builder
	b.WriteByte(lhs)
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cell.String())
	}
	b.WriteByte(rhs)

	return b.String()
}
