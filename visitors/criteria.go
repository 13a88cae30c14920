package visitors

import (
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// Operator SQL strings for CompareOp values.
var compareOpSQL = [...]string{
	nodes.OpEq: "=",
	nodes.OpNe: "<>",
	nodes.OpLt: "<",
	nodes.OpGt: ">",
	nodes.OpLe: "<=",
	nodes.OpGe: ">=",
}

// SQL keywords for LogicalOp values.
var logicalOpSQL = [...]string{
	nodes.OpAnd: " AND ",
	nodes.OpOr:  " OR ",
}

// SQL keywords for MatchMode values.
var matchModeSQL = [...]string{
	nodes.MatchLike:    "LIKE",
	nodes.MatchSimilar: "SIMILAR TO",
	nodes.MatchRegex:   "LIKE_REGEX",
}

// SQL keywords for Quantifier values.
var quantifierSQL = [...]string{
	nodes.QuantifierAny:  "ANY",
	nodes.QuantifierSome: "SOME",
	nodes.QuantifierAll:  "ALL",
}

func not(negated bool) string {
	if negated {
		return "NOT "
	}
	return ""
}

// subqueryHint renders the planner hint of a subquery predicate with a
// leading space.
func subqueryHint(h nodes.SubqueryHint) string {
	switch {
	case h.NoUnnest:
		return " /*+ NO_UNNEST */"
	case h.DepJoin:
		return " /*+ DJ */"
	case h.MergeJoin:
		return " /*+ MJ */"
	}
	return ""
}

func compareOp(op nodes.CompareOp) string {
	return keyword(compareOpSQL[:], op, "comparison operator")
}

func (v *SQLStringVisitor) VisitCompareCriteria(n *nodes.CompareCriteria) string {
	return v.visit(n.Left) + " " + compareOp(n.Op) + " " + v.visit(n.Right)
}

func (v *SQLStringVisitor) VisitCompoundCriteria(n *nodes.CompoundCriteria) string {
	sep := keyword(logicalOpSQL[:], n.Op, "logical operator")
	switch len(n.Criteria) {
	case 0:
		return ""
	case 1:
		return v.visit(n.Criteria[0])
	}
	parts := make([]string, len(n.Criteria))
	for i, c := range n.Criteria {
		parts[i] = "(" + v.visit(c) + ")"
	}
	return strings.Join(parts, sep)
}

func (v *SQLStringVisitor) VisitNotCriteria(n *nodes.NotCriteria) string {
	return "NOT (" + v.visit(n.Criteria) + ")"
}

func (v *SQLStringVisitor) VisitIsNullCriteria(n *nodes.IsNullCriteria) string {
	return v.visit(n.Expr) + " IS " + not(n.Negated) + "NULL"
}

func (v *SQLStringVisitor) VisitMatchCriteria(n *nodes.MatchCriteria) string {
	var sb strings.Builder
	sb.WriteString(v.visit(n.Left))
	sb.WriteString(" ")
	sb.WriteString(not(n.Negated))
	sb.WriteString(keyword(matchModeSQL[:], n.Mode, "match mode"))
	sb.WriteString(" ")
	sb.WriteString(v.visit(n.Right))
	if n.Escape != 0 {
		sb.WriteString(" ESCAPE ")
		sb.WriteString(quoting.QuoteString(string(n.Escape)))
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitSetCriteria(n *nodes.SetCriteria) string {
	return v.visit(n.Expr) + " " + not(n.Negated) + "IN (" + visitList(v, n.Values, ", ") + ")"
}

func (v *SQLStringVisitor) VisitSubquerySetCriteria(n *nodes.SubquerySetCriteria) string {
	return v.visit(n.Expr) + " " + not(n.Negated) + "IN" + subqueryHint(n.Hint) +
		" (" + v.visit(n.Command) + ")"
}

func (v *SQLStringVisitor) VisitBetweenCriteria(n *nodes.BetweenCriteria) string {
	return v.visit(n.Expr) + " " + not(n.Negated) + "BETWEEN " +
		v.visit(n.Lower) + " AND " + v.visit(n.Upper)
}

func (v *SQLStringVisitor) VisitExistsCriteria(n *nodes.ExistsCriteria) string {
	return not(n.Negated) + "EXISTS" + subqueryHint(n.Hint) + " (" + v.visit(n.Command) + ")"
}

func (v *SQLStringVisitor) VisitSubqueryCompareCriteria(n *nodes.SubqueryCompareCriteria) string {
	return v.visit(n.Left) + " " + compareOp(n.Op) + " " +
		keyword(quantifierSQL[:], n.Quantifier, "quantifier") + " (" + v.visit(n.Command) + ")"
}

func (v *SQLStringVisitor) VisitIsDistinctCriteria(n *nodes.IsDistinctCriteria) string {
	return v.visit(n.Left) + " IS " + not(n.Negated) + "DISTINCT FROM " + v.visit(n.Right)
}

func (v *SQLStringVisitor) VisitExpressionCriteria(n *nodes.ExpressionCriteria) string {
	return v.visit(n.Expr)
}
