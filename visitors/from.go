package visitors

import (
	"strconv"
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// SQL keywords for JoinType values.
var joinTypeSQL = [...]string{
	nodes.InnerJoin:      "INNER JOIN",
	nodes.CrossJoin:      "CROSS JOIN",
	nodes.LeftOuterJoin:  "LEFT OUTER JOIN",
	nodes.RightOuterJoin: "RIGHT OUTER JOIN",
	nodes.FullOuterJoin:  "FULL OUTER JOIN",
	nodes.UnionJoin:      "UNION JOIN",
	nodes.SemiJoin:       "SEMI JOIN",
	nodes.AntiSemiJoin:   "ANTI SEMI JOIN",
}

func joinKeyword(t nodes.JoinType) string {
	return keyword(joinTypeSQL[:], t, "join type")
}

// fromHint renders the hint comment placed in front of a FROM item.
func fromHint(h nodes.FromHints) string {
	if !h.HasHint() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("/*+ ")
	for _, tok := range []struct {
		set  bool
		word string
	}{
		{h.Optional, "OPTIONAL"},
		{h.MakeDep, "MAKEDEP"},
		{h.MakeNotDep, "MAKENOTDEP"},
		{h.MakeInd, "MAKEIND"},
		{h.NoUnnest, "NO_UNNEST"},
		{h.Preserve, "PRESERVE"},
	} {
		if tok.set {
			sb.WriteString(tok.word)
			sb.WriteString(" ")
		}
	}
	sb.WriteString("*/ ")
	return sb.String()
}

func (v *SQLStringVisitor) VisitFrom(n *nodes.From) string {
	return "FROM " + visitList(v, n.Clauses, ", ")
}

func (v *SQLStringVisitor) VisitUnaryFromClause(n *nodes.UnaryFromClause) string {
	return fromHint(n.FromHints) + v.visit(n.Group)
}

func (v *SQLStringVisitor) VisitJoinPredicate(n *nodes.JoinPredicate) string {
	var sb strings.Builder
	hinted := n.HasHint()
	sb.WriteString(fromHint(n.FromHints))
	if hinted {
		sb.WriteString("(")
	}
	sb.WriteString(v.joinOperand(n.Left))
	sb.WriteString(" ")
	sb.WriteString(joinKeyword(n.Type))
	sb.WriteString(" ")
	sb.WriteString(v.joinOperand(n.Right))
	if len(n.Criteria) > 0 {
		sb.WriteString(" ON ")
		parts := make([]string, len(n.Criteria))
		for i, c := range n.Criteria {
			parts[i] = v.joinCriteria(c)
		}
		sb.WriteString(strings.Join(parts, " AND "))
	}
	if hinted {
		sb.WriteString(")")
	}
	return sb.String()
}

// joinOperand wraps a nested join in parentheses unless its own hint
// comment already delimits it.
func (v *SQLStringVisitor) joinOperand(c nodes.FromClause) string {
	if isNil(c) {
		return undefined
	}
	if j, ok := c.(*nodes.JoinPredicate); ok && !j.HasHint() {
		return "(" + v.visit(j) + ")"
	}
	return v.visit(c)
}

func (v *SQLStringVisitor) joinCriteria(c nodes.Criteria) string {
	switch c.(type) {
	case nodes.PredicateCriteria, *nodes.NotCriteria:
		return v.visit(c)
	}
	return "(" + v.visit(c) + ")"
}

func (v *SQLStringVisitor) VisitSubqueryFromClause(n *nodes.SubqueryFromClause) string {
	var sb strings.Builder
	sb.WriteString(fromHint(n.FromHints))
	if n.Table {
		sb.WriteString("TABLE")
	}
	sb.WriteString("(")
	sb.WriteString(v.visit(n.Command))
	sb.WriteString(") AS ")
	sb.WriteString(quoting.EscapeSinglePart(n.Name))
	return sb.String()
}

func (v *SQLStringVisitor) VisitTextTable(n *nodes.TextTable) string {
	var sb strings.Builder
	sb.WriteString(fromHint(n.FromHints))
	sb.WriteString("TEXTTABLE(")
	sb.WriteString(v.visit(n.File))
	if n.Selector != "" {
		sb.WriteString(" SELECTOR ")
		sb.WriteString(quoting.QuoteString(n.Selector))
	}
	sb.WriteString(" COLUMNS")
	for i, col := range n.Columns {
		sb.WriteString(" ")
		sb.WriteString(textColumn(col))
		if i < len(n.Columns)-1 {
			sb.WriteString(",")
		}
	}
	if n.NoRowDelimiter {
		sb.WriteString(" NO ROW DELIMITER")
	}
	if n.Delimiter != 0 {
		sb.WriteString(" DELIMITER ")
		sb.WriteString(quoting.QuoteString(string(n.Delimiter)))
	}
	if n.Quote != 0 {
		if n.Escape {
			sb.WriteString(" ESCAPE ")
		} else {
			sb.WriteString(" QUOTE ")
		}
		sb.WriteString(quoting.QuoteString(string(n.Quote)))
	}
	if n.Header > 0 {
		sb.WriteString(" HEADER")
		if n.Header != 1 {
			sb.WriteString(" ")
			sb.WriteString(strconv.Itoa(n.Header))
		}
	}
	if n.Skip > 0 {
		sb.WriteString(" SKIP ")
		sb.WriteString(strconv.Itoa(n.Skip))
	}
	sb.WriteString(") AS ")
	sb.WriteString(quoting.EscapeSinglePart(n.Name))
	return sb.String()
}

func textColumn(col *nodes.TextColumn) string {
	if col == nil {
		return undefined
	}
	var sb strings.Builder
	sb.WriteString(quoting.EscapeSinglePart(col.Name))
	sb.WriteString(" ")
	if col.Ordinal {
		sb.WriteString("FOR ORDINALITY")
		return sb.String()
	}
	sb.WriteString(col.Type)
	if col.Width > 0 {
		sb.WriteString(" WIDTH ")
		sb.WriteString(strconv.Itoa(col.Width))
		if col.NoTrim {
			sb.WriteString(" NO TRIM")
		}
	}
	if col.Selector != "" {
		sb.WriteString(" SELECTOR ")
		sb.WriteString(quoting.QuoteString(col.Selector))
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col.Position))
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitXMLTable(n *nodes.XMLTable) string {
	var sb strings.Builder
	sb.WriteString(fromHint(n.FromHints))
	sb.WriteString("XMLTABLE(")
	if n.Namespaces != nil {
		sb.WriteString(v.visit(n.Namespaces))
		sb.WriteString(", ")
	}
	sb.WriteString(quoting.QuoteString(n.XQuery))
	if len(n.Passing) > 0 {
		sb.WriteString(" PASSING ")
		sb.WriteString(visitList(v, n.Passing, ", "))
	}
	if !n.UsingDefaultColumn && len(n.Columns) > 0 {
		sb.WriteString(" COLUMNS ")
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = v.xmlColumn(c)
		}
		sb.WriteString(strings.Join(cols, ", "))
	}
	sb.WriteString(") AS ")
	sb.WriteString(quoting.EscapeSinglePart(n.Name))
	return sb.String()
}

func (v *SQLStringVisitor) xmlColumn(col *nodes.XMLColumn) string {
	if col == nil {
		return undefined
	}
	s := quoting.EscapeSinglePart(col.Name) + " "
	if col.Ordinal {
		return s + "FOR ORDINALITY"
	}
	s += col.Type
	if !isNil(col.Default) {
		s += " DEFAULT " + v.visit(col.Default)
	}
	if col.Path != "" {
		s += " PATH " + quoting.QuoteString(col.Path)
	}
	return s
}

func (v *SQLStringVisitor) VisitArrayTable(n *nodes.ArrayTable) string {
	cols := make([]string, len(n.Columns))
	for i, c := range n.Columns {
		if c == nil {
			cols[i] = undefined
			continue
		}
		cols[i] = quoting.EscapeSinglePart(c.Name) + " " + c.Type
	}
	return fromHint(n.FromHints) + "ARRAYTABLE(" + v.visit(n.Array) + " COLUMNS " +
		strings.Join(cols, ", ") + ") AS " + quoting.EscapeSinglePart(n.Name)
}
