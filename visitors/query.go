package visitors

import (
	"strconv"
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// cacheHint renders a /*+ cache(...) */ comment followed by a space.
func cacheHint(h *nodes.CacheHint) string {
	if h == nil {
		return ""
	}
	var opts []string
	if h.PrefersMemory {
		opts = append(opts, "pref_mem")
	}
	if h.TTL != nil {
		opts = append(opts, "ttl:"+strconv.FormatInt(*h.TTL, 10))
	}
	if h.Updatable {
		opts = append(opts, "updatable")
	}
	if h.Scope != "" {
		opts = append(opts, "scope:"+h.Scope)
	}
	if h.MinRows != nil {
		opts = append(opts, "min:"+strconv.FormatInt(*h.MinRows, 10))
	}
	s := "/*+ cache"
	if len(opts) > 0 {
		s += "(" + strings.Join(opts, " ") + ")"
	}
	return s + " */ "
}

func (v *SQLStringVisitor) VisitQuery(n *nodes.Query) string {
	var sb strings.Builder
	sb.WriteString(cacheHint(n.CacheHint))
	if len(n.With) > 0 {
		sb.WriteString("WITH ")
		sb.WriteString(visitList(v, n.With, ", "))
		sb.WriteString(v.beginClause(0))
	}
	sb.WriteString(v.visit(n.Select))
	if n.Into != nil {
		v.writeClause(&sb, "", n.Into)
	}
	if n.From != nil {
		v.writeClause(&sb, "", n.From)
	}
	if !isNil(n.Where) {
		v.writeClause(&sb, "WHERE ", n.Where)
	}
	if n.GroupBy != nil {
		v.writeClause(&sb, "", n.GroupBy)
	}
	if !isNil(n.Having) {
		v.writeClause(&sb, "HAVING ", n.Having)
	}
	v.writeTail(&sb, n.OrderBy, n.Limit, n.Option)
	return sb.String()
}

// writeClause starts a new clause and writes keyword followed by node.
func (v *SQLStringVisitor) writeClause(sb *strings.Builder, keyword string, node nodes.Node) {
	sb.WriteString(v.beginClause(1))
	sb.WriteString(keyword)
	sb.WriteString(v.visit(node))
}

// writeTail writes the ORDER BY, LIMIT and OPTION clauses shared by queries
// and set queries.
func (v *SQLStringVisitor) writeTail(sb *strings.Builder, order *nodes.OrderBy, limit *nodes.Limit, option *nodes.Option) {
	if order != nil {
		v.writeClause(sb, "", order)
	}
	if limit != nil {
		v.writeClause(sb, "", limit)
	}
	if option != nil {
		v.writeClause(sb, "", option)
	}
}

func (v *SQLStringVisitor) VisitSelect(n *nodes.Select) string {
	s := "SELECT "
	if n.Distinct {
		s += "DISTINCT "
	}
	return s + visitList(v, n.Symbols, ", ")
}

func (v *SQLStringVisitor) VisitInto(n *nodes.Into) string {
	return "INTO " + v.visit(n.Group)
}

func (v *SQLStringVisitor) VisitGroupBy(n *nodes.GroupBy) string {
	list := visitList(v, n.Symbols, ", ")
	if n.Rollup {
		return "GROUP BY ROLLUP(" + list + ")"
	}
	return "GROUP BY " + list
}

func (v *SQLStringVisitor) VisitOrderBy(n *nodes.OrderBy) string {
	return "ORDER BY " + visitList(v, n.Items, ", ")
}

func (v *SQLStringVisitor) VisitOrderByItem(n *nodes.OrderByItem) string {
	var s string
	if alias, ok := n.Symbol.(*nodes.AliasSymbol); ok && alias != nil {
		s = quoting.EscapeSinglePart(alias.Name)
	} else {
		s = v.visit(n.Symbol)
	}
	if n.Descending {
		s += " DESC"
	}
	switch n.Nulls {
	case nodes.NullsFirst:
		s += " NULLS FIRST"
	case nodes.NullsLast:
		s += " NULLS LAST"
	}
	return s
}

func (v *SQLStringVisitor) VisitLimit(n *nodes.Limit) string {
	var sb strings.Builder
	if n.NonStrict {
		sb.WriteString("/*+ NON_STRICT */ ")
	}
	if isNil(n.RowLimit) {
		sb.WriteString("OFFSET ")
		sb.WriteString(v.visit(n.Offset))
		sb.WriteString(" ROWS")
		return sb.String()
	}
	sb.WriteString("LIMIT ")
	if !isNil(n.Offset) {
		sb.WriteString(v.visit(n.Offset))
		sb.WriteString(", ")
	}
	sb.WriteString(v.visit(n.RowLimit))
	return sb.String()
}

func (v *SQLStringVisitor) VisitOption(n *nodes.Option) string {
	var sb strings.Builder
	sb.WriteString("OPTION")
	if len(n.MakeDep) > 0 {
		sb.WriteString(" MAKEDEP ")
		sb.WriteString(escapeNames(n.MakeDep))
	}
	if len(n.MakeNotDep) > 0 {
		sb.WriteString(" MAKENOTDEP ")
		sb.WriteString(escapeNames(n.MakeNotDep))
	}
	if len(n.NoCacheGroups) > 0 {
		sb.WriteString(" NOCACHE ")
		sb.WriteString(escapeNames(n.NoCacheGroups))
	} else if n.NoCache {
		sb.WriteString(" NOCACHE")
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitWithQueryCommand(n *nodes.WithQueryCommand) string {
	var sb strings.Builder
	if n.Group == nil {
		sb.WriteString(undefined)
	} else {
		sb.WriteString(quoting.EscapeSinglePart(n.Group.Name))
	}
	if len(n.Columns) > 0 {
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = v.shortName(c)
		}
		sb.WriteString(" (")
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString(")")
	}
	sb.WriteString(" AS (")
	sb.WriteString(v.visit(n.Command))
	sb.WriteString(")")
	return sb.String()
}

// SQL keywords for SetOp values.
var setOpSQL = [...]string{
	nodes.Union:     "UNION",
	nodes.Intersect: "INTERSECT",
	nodes.Except:    "EXCEPT",
}

func (v *SQLStringVisitor) VisitSetQuery(n *nodes.SetQuery) string {
	var sb strings.Builder
	sb.WriteString(cacheHint(n.CacheHint))
	sb.WriteString(v.setOperand(n, n.Left, false))
	sb.WriteString(v.beginClause(0))
	sb.WriteString(keyword(setOpSQL[:], n.Op, "set operation"))
	if n.All {
		sb.WriteString(" ALL")
	}
	sb.WriteString(v.beginClause(0))
	sb.WriteString(v.setOperand(n, n.Right, true))
	v.writeTail(&sb, n.OrderBy, n.Limit, n.Option)
	return sb.String()
}

// setOperand parenthesises an operand that carries its own ORDER BY or
// LIMIT, and a right operand whose set operation groups differently from
// the parent's.
func (v *SQLStringVisitor) setOperand(parent *nodes.SetQuery, operand nodes.QueryCommand, right bool) string {
	if isNil(operand) {
		return undefined
	}
	wrap := operand.OrderClause() != nil || operand.LimitClause() != nil
	if sq, ok := operand.(*nodes.SetQuery); ok && right {
		wrap = wrap || sq.All != parent.All || sq.Op != parent.Op
	}
	if wrap {
		return "(" + v.visit(operand) + ")"
	}
	return v.visit(operand)
}
