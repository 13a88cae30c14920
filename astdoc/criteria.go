package astdoc

import (
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var criteriaBuilders = map[string]builder{
	"compare":             buildCompare,
	"and":                 buildCompound(nodes.OpAnd),
	"or":                  buildCompound(nodes.OpOr),
	"not":                 buildNot,
	"is_null":             buildIsNull,
	"like":                buildMatch(nodes.MatchLike),
	"similar":             buildMatch(nodes.MatchSimilar),
	"like_regex":          buildMatch(nodes.MatchRegex),
	"in":                  buildSet,
	"in_subquery":         buildSubquerySet,
	"between":             buildBetween,
	"exists":              buildExists,
	"subquery_compare":    buildSubqueryCompare,
	"is_distinct":         buildIsDistinct,
	"expression_criteria": buildExpressionCriteria,
}

// decodeCriteria accepts a criteria mapping, or any other expression which
// is wrapped as expression criteria.
func decodeCriteria(n *yaml.Node) (nodes.Criteria, error) {
	e, err := decodeExpression(n)
	if err != nil {
		return nil, err
	}
	if c, ok := e.(nodes.Criteria); ok {
		return c, nil
	}
	return &nodes.ExpressionCriteria{Expr: e}, nil
}

var compareOps = map[string]nodes.CompareOp{
	"=":  nodes.OpEq,
	"<>": nodes.OpNe,
	"!=": nodes.OpNe,
	"<":  nodes.OpLt,
	">":  nodes.OpGt,
	"<=": nodes.OpLe,
	">=": nodes.OpGe,
}

func compareOp(o *object) nodes.CompareOp {
	if o.require("op") == nil {
		return nodes.OpEq
	}
	return enum(o, "op", compareOps, nodes.OpEq)
}

func buildCompare(o *object) nodes.Node {
	return &nodes.CompareCriteria{Left: o.reqExpr("left"), Op: compareOp(o), Right: o.reqExpr("right")}
}

func buildCompound(op nodes.LogicalOp) builder {
	return func(o *object) nodes.Node {
		return &nodes.CompoundCriteria{Op: op, Criteria: o.criteriaList("criteria")}
	}
}

func buildNot(o *object) nodes.Node {
	return &nodes.NotCriteria{Criteria: o.reqCriteria("criteria")}
}

func buildIsNull(o *object) nodes.Node {
	return &nodes.IsNullCriteria{Expr: o.reqExpr("expr"), Negated: o.boolean("negated")}
}

func buildMatch(mode nodes.MatchMode) builder {
	return func(o *object) nodes.Node {
		return &nodes.MatchCriteria{
			Left:    o.reqExpr("left"),
			Right:   o.reqExpr("right"),
			Negated: o.boolean("negated"),
			Mode:    mode,
			Escape:  o.char("escape"),
		}
	}
}

func buildSet(o *object) nodes.Node {
	return &nodes.SetCriteria{Expr: o.reqExpr("expr"), Values: o.exprs("values"), Negated: o.boolean("negated")}
}

// subqueryHint reads hints: [no_unnest, dj, mj].
func subqueryHint(o *object) nodes.SubqueryHint {
	var h nodes.SubqueryHint
	for _, s := range o.strs("hints") {
		switch s {
		case "no_unnest":
			h.NoUnnest = true
		case "dj":
			h.DepJoin = true
		case "mj":
			h.MergeJoin = true
		default:
			o.fail(errorAt(o.get("hints"), "%w: subquery hint %q", ErrInvalidValue, s))
		}
	}
	return h
}

func buildSubquerySet(o *object) nodes.Node {
	return &nodes.SubquerySetCriteria{
		Expr:    o.reqExpr("expr"),
		Command: o.queryCommand("query"),
		Negated: o.boolean("negated"),
		Hint:    subqueryHint(o),
	}
}

func buildBetween(o *object) nodes.Node {
	return &nodes.BetweenCriteria{
		Expr:    o.reqExpr("expr"),
		Lower:   o.reqExpr("lower"),
		Upper:   o.reqExpr("upper"),
		Negated: o.boolean("negated"),
	}
}

func buildExists(o *object) nodes.Node {
	return &nodes.ExistsCriteria{Command: o.queryCommand("query"), Negated: o.boolean("negated"), Hint: subqueryHint(o)}
}

var quantifiers = map[string]nodes.Quantifier{
	"any":  nodes.QuantifierAny,
	"some": nodes.QuantifierSome,
	"all":  nodes.QuantifierAll,
}

func buildSubqueryCompare(o *object) nodes.Node {
	return &nodes.SubqueryCompareCriteria{
		Left:       o.reqExpr("left"),
		Op:         compareOp(o),
		Quantifier: enum(o, "quantifier", quantifiers, nodes.QuantifierAny),
		Command:    o.queryCommand("query"),
	}
}

func buildIsDistinct(o *object) nodes.Node {
	return &nodes.IsDistinctCriteria{Left: o.reqExpr("left"), Right: o.reqExpr("right"), Negated: o.boolean("negated")}
}

func buildExpressionCriteria(o *object) nodes.Node {
	return &nodes.ExpressionCriteria{Expr: o.reqExpr("expr")}
}
