package visitors

import (
	"strings"
	"testing"

	"github.com/johnathonlee/sqltext/internal/testutil"
	"github.com/johnathonlee/sqltext/nodes"
)

func subquery() *nodes.Query {
	return &nodes.Query{
		Select: nodes.NewSelect(el("e1")),
		From:   nodes.NewFrom(nodes.NewUnaryFromClause(nodes.NewGroupSymbol("pm1.g2"))),
	}
}

func TestVisitCompareCriteria(t *testing.T) {
	t.Parallel()
	a := el("a")
	cases := []struct {
		node nodes.Node
		want string
	}{
		{a.Eq(1), "a = 1"},
		{a.NotEq("x"), "a <> 'x'"},
		{a.Lt(1), "a < 1"},
		{a.Gt(1), "a > 1"},
		{a.LtEq(1), "a <= 1"},
		{a.GtEq(1), "a >= 1"},
		{a.Eq(el("b")), "a = b"},
	}
	for _, tc := range cases {
		testutil.AssertSQL(t, newVisitor(), tc.node, tc.want)
	}
}

func TestVisitCompoundCriteria(t *testing.T) {
	t.Parallel()
	a, b := el("a"), el("b")
	testutil.AssertSQL(t, newVisitor(), nodes.And(a.Eq(1), b.Eq(2)), "(a = 1) AND (b = 2)")
	testutil.AssertSQL(t, newVisitor(), nodes.Or(a.Eq(1), b.Eq(2), a.IsNull()), "(a = 1) OR (b = 2) OR (a IS NULL)")
	testutil.AssertSQL(t, newVisitor(), nodes.And(a.Eq(1)), "a = 1")
	testutil.AssertSQL(t, newVisitor(), nodes.And(), "")
	testutil.AssertSQL(t, newVisitor(),
		nodes.Or(nodes.And(a.Eq(1), b.Eq(2)), a.Eq(3)),
		"((a = 1) AND (b = 2)) OR (a = 3)")
}

func TestCompoundCriteriaGroupCount(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 6; n++ {
		crits := make([]nodes.Criteria, n)
		for i := range crits {
			crits[i] = el("e1").Eq(i)
		}
		got := Render(nodes.And(crits...))
		if c := strings.Count(got, "("); c != n {
			t.Errorf("n=%d: expected %d groups, got %d in %q", n, n, c, got)
		}
		if c := strings.Count(got, " AND "); c != n-1 {
			t.Errorf("n=%d: expected %d AND, got %d in %q", n, n-1, c, got)
		}
	}
}

func TestVisitNotCriteria(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), nodes.Not(el("a").Eq(1)), "NOT (a = 1)")
}

func TestVisitPredicates(t *testing.T) {
	t.Parallel()
	a := el("a")
	cases := []struct {
		name string
		node nodes.Node
		want string
	}{
		{"is null", a.IsNull(), "a IS NULL"},
		{"is not null", a.IsNotNull(), "a IS NOT NULL"},
		{"like", a.Like("x%"), "a LIKE 'x%'"},
		{"not like", a.NotLike("x%"), "a NOT LIKE 'x%'"},
		{"like escape", &nodes.MatchCriteria{Left: a, Right: lit("x\\%"), Escape: '\\'}, `a LIKE 'x\%' ESCAPE '\'`},
		{"similar", &nodes.MatchCriteria{Left: a, Right: lit("[ab]"), Mode: nodes.MatchSimilar}, "a SIMILAR TO '[ab]'"},
		{"regex", &nodes.MatchCriteria{Left: a, Right: lit("^a"), Mode: nodes.MatchRegex, Negated: true}, "a NOT LIKE_REGEX '^a'"},
		{"in", a.In(1, 2, 3), "a IN (1, 2, 3)"},
		{"not in", a.NotIn("x"), "a NOT IN ('x')"},
		{"between", a.Between(1, 5), "a BETWEEN 1 AND 5"},
		{"not between", a.NotBetween(1, 5), "a NOT BETWEEN 1 AND 5"},
		{"distinct", a.IsDistinctFrom(el("b")), "a IS DISTINCT FROM b"},
		{"not distinct", a.IsNotDistinctFrom(el("b")), "a IS NOT DISTINCT FROM b"},
		{"expression", &nodes.ExpressionCriteria{Expr: el("flag")}, "flag"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSQL(t, newVisitor(), tc.node, tc.want)
		})
	}
}

func TestVisitSubqueryPredicates(t *testing.T) {
	t.Parallel()
	a := el("a")
	testutil.AssertSQL(t, newVisitor(), a.InQuery(subquery()), "a IN (SELECT e1 FROM pm1.g2)")
	testutil.AssertSQL(t, newVisitor(),
		&nodes.SubquerySetCriteria{Expr: a, Command: subquery(), Negated: true, Hint: nodes.SubqueryHint{DepJoin: true}},
		"a NOT IN /*+ DJ */ (SELECT e1 FROM pm1.g2)")
	testutil.AssertSQL(t, newVisitor(), nodes.Exists(subquery()), "EXISTS (SELECT e1 FROM pm1.g2)")
	testutil.AssertSQL(t, newVisitor(),
		&nodes.ExistsCriteria{Command: subquery(), Negated: true, Hint: nodes.SubqueryHint{NoUnnest: true}},
		"NOT EXISTS /*+ NO_UNNEST */ (SELECT e1 FROM pm1.g2)")
	testutil.AssertSQL(t, newVisitor(),
		&nodes.SubqueryCompareCriteria{Left: a, Op: nodes.OpGe, Quantifier: nodes.QuantifierAll, Command: subquery()},
		"a >= ALL (SELECT e1 FROM pm1.g2)")
	testutil.AssertSQL(t, newVisitor(),
		&nodes.SubqueryCompareCriteria{Left: a, Op: nodes.OpEq, Quantifier: nodes.QuantifierSome, Command: subquery()},
		"a = SOME (SELECT e1 FROM pm1.g2)")
}
