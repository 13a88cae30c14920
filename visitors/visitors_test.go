package visitors

import (
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/johnathonlee/sqltext/internal/testutil"
	"github.com/johnathonlee/sqltext/nodes"
)

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}

func newVisitor() *SQLStringVisitor { return NewSQLStringVisitor() }

func el(name string) *nodes.ElementSymbol { return nodes.NewElementSymbol(name) }

func lit(v any) *nodes.Constant { return nodes.NewConstant(v) }

// --- Symbols ---

func TestVisitGroupSymbol(t *testing.T) {
	t.Parallel()
	g := nodes.NewGroupSymbol("pm1.g1")
	testutil.AssertSQL(t, newVisitor(), g, "pm1.g1")
	testutil.AssertSQL(t, newVisitor(), g.Alias("x"), "pm1.g1 AS x")
	testutil.AssertSQL(t, newVisitor(), nodes.NewGroupSymbol("pm1.g1").Alias("select"), `pm1.g1 AS "select"`)
}

func TestVisitElementSymbol(t *testing.T) {
	t.Parallel()
	g := nodes.NewGroupSymbol("pm1.g1")
	testutil.AssertSQL(t, newVisitor(), g.Col("e1"), "pm1.g1.e1")
	testutil.AssertSQL(t, newVisitor(), g.Col("e1").Typed(nodes.DisplayShortName), "e1")
	testutil.AssertSQL(t, newVisitor(), g.Alias("x").Col("e1"), "x.e1")
	testutil.AssertSQL(t, newVisitor(), g.Col("my col"), `pm1.g1."my col"`)
}

func TestReservedIdentifierIsQuoted(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), el("select"), `"select"`)
}

func TestVisitAliasSymbol(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), el("e1").As("a"), "e1 AS a")
	testutil.AssertSQL(t, newVisitor(), el("e1").As("from"), `e1 AS "from"`)
}

func TestVisitExpressionSymbol(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), &nodes.ExpressionSymbol{Name: "expr1", Expr: lit(1)}, "1")
}

func TestVisitMultipleElementSymbol(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), nodes.Star(), "*")
	testutil.AssertSQL(t, newVisitor(), nodes.NewGroupSymbol("pm1.g1").Star(), "pm1.g1.*")
}

func TestVisitReference(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), &nodes.Reference{Index: 3}, "?")
}

// --- Constants ---

func TestVisitConstant(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 5, 13, 4, 5, 120000000, time.UTC)
	price := decimal.RequireFromString("-0.50")
	cases := []struct {
		name string
		node *nodes.Constant
		want string
	}{
		{"string", lit("abc"), "'abc'"},
		{"quoted string", lit("O'Brien"), "'O''Brien'"},
		{"int", lit(42), "42"},
		{"negative long", lit(int64(-7)), "-7"},
		{"double", lit(1.5), "1.5"},
		{"integral double", lit(2.0), "2.0"},
		{"float32", lit(float32(0.25)), "0.25"},
		{"infinity", lit(math.Inf(1)), "CAST('Infinity' AS double)"},
		{"negative infinity", lit(math.Inf(-1)), "CAST('-Infinity' AS double)"},
		{"nan", lit(math.NaN()), "CAST('NaN' AS double)"},
		{"float32 nan", lit(float32(math.NaN())), "CAST('NaN' AS float)"},
		{"big integer", lit(new(big.Int).Lsh(big.NewInt(1), 70)), "1180591620717411303424"},
		{"decimal keeps scale", lit(decimal.RequireFromString("12.50")), "12.50"},
		{"decimal pointer", lit(&price), "-0.50"},
		{"integral decimal", lit(decimal.RequireFromString("1E+3")), "1000"},
		{"numeric text", nodes.NewTypedConstant("1e10", nodes.TypeDouble), "1e10"},
		{"non-numeric text", &nodes.Constant{Value: "1; DROP TABLE x", Type: nodes.TypeInteger}, "'1; DROP TABLE x'"},
		{"quoted numeric text", &nodes.Constant{Value: "it's", Type: nodes.TypeBigDecimal}, "'it''s'"},
		{"true", lit(true), "TRUE"},
		{"false", lit(false), "FALSE"},
		{"null", lit(nil), "NULL"},
		{"typed null", nodes.NewTypedConstant(nil, nodes.TypeString), "NULL"},
		{"null boolean", nodes.NewTypedConstant(nil, nodes.TypeBoolean), "UNKNOWN"},
		{"multi valued", &nodes.Constant{Value: []int{1, 2}, Type: nodes.TypeInteger, MultiValued: true}, "?"},
		{"timestamp", lit(ts), "{ts'2024-03-05 13:04:05.12'}"},
		{"whole second timestamp", lit(ts.Truncate(time.Second)), "{ts'2024-03-05 13:04:05.0'}"},
		{"date", nodes.NewTypedConstant(ts, nodes.TypeDate), "{d'2024-03-05'}"},
		{"time", nodes.NewTypedConstant(ts, nodes.TypeTime), "{t'13:04:05'}"},
		{"date text", nodes.NewTypedConstant("2024-01-01", nodes.TypeDate), "{d'2024-01-01'}"},
		{"varbinary", lit([]byte{0x0a, 0xff}), "X'0AFF'"},
		{"char", nodes.NewTypedConstant('x', nodes.TypeChar), "'x'"},
		{"object", lit(struct{ A int }{1}), "'{1}'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSQL(t, newVisitor(), tc.node, tc.want)
		})
	}
}

func TestNullBooleanNeverRendersNull(t *testing.T) {
	t.Parallel()
	for _, c := range []*nodes.Constant{
		nodes.NewTypedConstant(nil, nodes.TypeBoolean),
		{Type: nodes.TypeBoolean},
	} {
		if got := Render(c); got != "UNKNOWN" {
			t.Errorf("expected UNKNOWN, got %q", got)
		}
	}
}

func TestStringLiteralQuoteCount(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "'", "a'b'c", "''''", "no quotes"} {
		got := Render(lit(s))
		k := strings.Count(s, "'")
		if n := strings.Count(got, "'"); n != 2*k+2 {
			t.Errorf("Render(%q) = %q has %d quotes, want %d", s, got, n, 2*k+2)
		}
	}
}

// --- Functions ---

func TestVisitFunction(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		node nodes.Node
		want string
	}{
		{"generic", nodes.NewFunction("concat", el("a"), lit("b")), "concat(a, 'b')"},
		{"no args", nodes.NewFunction("now"), "now()"},
		{"plus", nodes.NewFunction("+", el("a"), lit(1)), "(a + 1)"},
		{"nested arithmetic", nodes.NewFunction("*", nodes.NewFunction("+", el("a"), lit(1)), lit(2)), "((a + 1) * 2)"},
		{"concat operator", nodes.NewFunction("||", el("a"), el("b"), el("c")), "(a || b || c)"},
		{"cast", nodes.Cast(el("x"), "integer"), "CAST(x AS integer)"},
		{"convert", nodes.Convert(el("x"), "integer"), "CONVERT(x, integer)"},
		{"lower case cast", nodes.NewFunction("cast", el("x"), lit("string")), "cast(x AS string)"},
		{"cast without type", nodes.NewFunction("CAST", el("x")), "CAST(x AS <undefined>)"},
		{"cast with non constant type", nodes.NewFunction("convert", el("x"), el("y")), "convert(x, <undefined>)"},
		{"implicit", &nodes.Function{Name: "convert", Args: []nodes.Expression{el("x"), lit("long")}, Implicit: true}, "x"},
		{"timestampadd", nodes.NewFunction("TIMESTAMPADD", lit("SQL_TSI_DAY"), lit(1), el("d")), "TIMESTAMPADD(SQL_TSI_DAY, 1, d)"},
		{"trim leading", nodes.NewFunction("TRIM", lit("LEADING"), lit("x"), el("s")), "TRIM(LEADING 'x' FROM s)"},
		{"trim both", nodes.NewFunction("trim", lit("BOTH"), lit(" "), el("s")), "trim(' ' FROM s)"},
		{"trim single arg", nodes.NewFunction("trim", el("s")), "trim(s)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSQL(t, newVisitor(), tc.node, tc.want)
		})
	}
}

func TestVisitAggregateSymbol(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), nodes.Count(nil), "COUNT(*)")
	testutil.AssertSQL(t, newVisitor(), nodes.Sum(el("e2")), "SUM(e2)")
	testutil.AssertSQL(t, newVisitor(), &nodes.AggregateSymbol{Name: "COUNT", Args: []nodes.Expression{el("e1")}, Distinct: true}, "COUNT(DISTINCT e1)")
	testutil.AssertSQL(t, newVisitor(), &nodes.AggregateSymbol{Name: "myagg", Args: []nodes.Expression{el("e1")}, UserDefined: true}, "myagg(ALL e1)")
	testutil.AssertSQL(t, newVisitor(), &nodes.AggregateSymbol{
		Name:    "STRING_AGG",
		Args:    []nodes.Expression{el("e1"), lit(",")},
		OrderBy: nodes.NewOrderBy(el("e2").Desc()),
		Filter:  el("e3").Gt(0),
	}, "STRING_AGG(e1, ',' ORDER BY e2 DESC) FILTER(WHERE e3 > 0)")
}

func TestVisitWindowFunction(t *testing.T) {
	t.Parallel()
	w := nodes.NewAggregate("ROW_NUMBER").Over(&nodes.WindowSpecification{
		PartitionBy: []nodes.Expression{el("e1")},
		OrderBy:     nodes.NewOrderBy(el("e2").Asc()),
	})
	testutil.AssertSQL(t, newVisitor(), w, "ROW_NUMBER() OVER (PARTITION BY e1 ORDER BY e2)")

	framed := nodes.Max(el("e3")).Over(&nodes.WindowSpecification{
		OrderBy: nodes.NewOrderBy(el("e2").Asc()),
		Frame: &nodes.WindowFrame{
			Mode:  nodes.FrameRows,
			Start: nodes.FrameBound{Type: nodes.BoundPreceding, Offset: 2},
			End:   &nodes.FrameBound{Type: nodes.BoundCurrentRow},
		},
	})
	testutil.AssertSQL(t, newVisitor(), framed, "MAX(e3) OVER (ORDER BY e2 ROWS BETWEEN 2 PRECEDING AND CURRENT ROW)")

	testutil.AssertSQL(t, newVisitor(), nodes.Count(nil).Over(&nodes.WindowSpecification{}), "COUNT(*) OVER ()")
}

func TestVisitCaseExpressions(t *testing.T) {
	t.Parallel()
	c := &nodes.CaseExpression{
		Expr:  el("e1"),
		Whens: []nodes.Expression{lit(1), lit(2)},
		Thens: []nodes.Expression{lit("a"), lit("b")},
		Else:  lit("c"),
	}
	testutil.AssertSQL(t, newVisitor(), c, "CASE e1 WHEN 1 THEN 'a' WHEN 2 THEN 'b' ELSE 'c' END")

	sc := &nodes.SearchedCaseExpression{
		Whens: []nodes.Criteria{el("e1").Gt(0)},
		Thens: []nodes.Expression{lit(1)},
	}
	testutil.AssertSQL(t, newVisitor(), sc, "CASE WHEN e1 > 0 THEN 1 END")
}

func TestVisitArray(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, newVisitor(), &nodes.Array{Exprs: []nodes.Expression{lit(1), lit(2)}}, "(1, 2)")
	testutil.AssertSQL(t, newVisitor(), &nodes.Array{Exprs: []nodes.Expression{lit(1)}}, "(1,)")
	testutil.AssertSQL(t, newVisitor(), &nodes.Array{Exprs: []nodes.Expression{lit(1), lit(2)}, Implicit: true}, "1, 2")
}

func TestVisitScalarSubquery(t *testing.T) {
	t.Parallel()
	q := &nodes.Query{Select: nodes.NewSelect(el("e1")), From: nodes.NewFrom(nodes.NewUnaryFromClause(nodes.NewGroupSymbol("g")))}
	testutil.AssertSQL(t, newVisitor(), &nodes.ScalarSubquery{Command: q}, "(SELECT e1 FROM g)")
}

// --- Missing children ---

func TestMissingChildrenRenderUndefined(t *testing.T) {
	t.Parallel()
	var nilGroup *nodes.GroupSymbol
	testutil.AssertSQL(t, newVisitor(), &nodes.CompareCriteria{Left: el("a")}, "a = <undefined>")
	testutil.AssertSQL(t, newVisitor(), &nodes.Drop{Table: nilGroup}, "DROP TABLE <undefined>")
	testutil.AssertSQL(t, newVisitor(), &nodes.AliasSymbol{Name: "x"}, "<undefined> AS x")
	if got := Render(nil); got != "<undefined>" {
		t.Errorf("Render(nil) = %q", got)
	}
	var nilQuery *nodes.Query
	if got := Render(nilQuery); got != "<undefined>" {
		t.Errorf("Render(typed nil) = %q", got)
	}
}
