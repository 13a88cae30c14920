package astdoc

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnathonlee/sqltext/internal/testutil"
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/visitors"
)

func decode(t *testing.T, doc string) nodes.Node {
	t.Helper()
	n, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

func render(t *testing.T, doc string) string {
	t.Helper()
	return visitors.Render(decode(t, doc))
}

func TestDecodeQuery(t *testing.T) {
	t.Parallel()
	doc := `
kind: query
select:
  - e1
  - {kind: alias, name: c, expr: {kind: aggregate, name: COUNT}}
from: [pm1.g1]
where: {kind: compare, left: e2, op: ">", right: 0}
group_by: [e1]
having: {kind: compare, left: {kind: aggregate, name: COUNT}, op: ">", right: 1}
order_by: [{expr: e1, desc: true}]
limit: {rows: 10}
option: {nocache: true}
`
	testutil.AssertEqual(t, render(t, doc),
		"SELECT e1, COUNT(*) AS c FROM pm1.g1 WHERE e2 > 0 GROUP BY e1 HAVING COUNT(*) > 1 "+
			"ORDER BY e1 DESC LIMIT 10 OPTION NOCACHE")
}

func TestDecodeMatchesHandBuiltTree(t *testing.T) {
	t.Parallel()
	got := decode(t, `
kind: join
type: left
left: {kind: group, name: pm1.g1, alias: a}
right: pm1.g2
on:
  - {kind: compare, left: a.e1, op: "=", right: pm1.g2.e1}
`)
	g1 := nodes.NewGroupSymbol("pm1.g1").Alias("a")
	want := &nodes.JoinPredicate{
		Left:     nodes.NewUnaryFromClause(g1),
		Right:    nodes.NewUnaryFromClause(nodes.NewGroupSymbol("pm1.g2")),
		Type:     nodes.LeftOuterJoin,
		Criteria: []nodes.Criteria{nodes.NewElementSymbol("a.e1").Eq(nodes.NewElementSymbol("pm1.g2.e1"))},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeScalarConstants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		doc  string
		want *nodes.Constant
	}{
		{"1", nodes.NewTypedConstant(int32(1), nodes.TypeInteger)},
		{"5000000000", nodes.NewConstant(int64(5000000000))},
		{"1.5", nodes.NewConstant(1.5)},
		{"true", nodes.NewConstant(true)},
		{"null", nodes.NewConstant(nil)},
		{"{kind: constant, value: abc}", nodes.NewConstant("abc")},
		{"{kind: constant, type: bigdecimal, value: '1.50'}",
			nodes.NewTypedConstant(decimal.RequireFromString("1.50"), nodes.TypeBigDecimal)},
		{"{kind: constant, type: date, value: '2024-02-29'}",
			nodes.NewTypedConstant(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), nodes.TypeDate)},
		{"{kind: constant, type: boolean}", nodes.NewTypedConstant(nil, nodes.TypeBoolean)},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(strings.NewReader("{kind: array, exprs: [" + tt.doc + "]}"))
			require.NoError(t, err)
			arr, ok := got.(*nodes.Array)
			require.True(t, ok)
			require.Len(t, arr.Exprs, 1)
			if diff := cmp.Diff(tt.want, arr.Exprs[0]); diff != "" {
				t.Errorf("constant mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeTypedConstantsRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		doc  string
		want string
	}{
		{"{kind: constant, type: bigdecimal, value: '1.50'}", "1.50"},
		{"{kind: constant, type: timestamp, value: '2024-01-02 03:04:05'}", "{ts'2024-01-02 03:04:05.0'}"},
		{"{kind: constant, type: time, value: '10:11:12'}", "{t'10:11:12'}"},
		{"{kind: constant, type: varbinary, value: '0xcafe'}", "X'CAFE'"},
		{"{kind: constant, type: string, value: \"it's\"}", "'it''s'"},
		{"{kind: constant, multi: true}", "?"},
		{"{kind: reference, index: 0}", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, render(t, tt.doc), tt.want)
		})
	}
}

func TestDecodeCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "insert",
			doc:  "{kind: insert, group: pm1.g1, columns: [e1, e2], values: [{kind: constant, value: a}, 1]}",
			want: "INSERT INTO pm1.g1 (e1, e2) VALUES ('a', 1)",
		},
		{
			name: "merge from query",
			doc:  "{kind: merge, group: pm1.g1, columns: [e1], query: {kind: query, select: [e1], from: [pm1.g2]}}",
			want: "MERGE INTO pm1.g1 (e1) SELECT e1 FROM pm1.g2",
		},
		{
			name: "update",
			doc: `{kind: update, group: pm1.g1, set: [{column: e1, value: {kind: constant, value: x}}],
				where: {kind: is_null, expr: e2}}`,
			want: "UPDATE pm1.g1 SET e1 = 'x' WHERE e2 IS NULL",
		},
		{
			name: "delete",
			doc:  "{kind: delete, group: pm1.g1, option: {nocache: true}}",
			want: "DELETE FROM pm1.g1 OPTION NOCACHE",
		},
		{
			name: "drop",
			doc:  "{kind: drop, table: '#temp'}",
			want: "DROP TABLE #temp",
		},
		{
			name: "union",
			doc: `{kind: union, all: true,
				left: {kind: query, select: [e1], from: [a]},
				right: {kind: query, select: [e1], from: [b]}}`,
			want: "SELECT e1 FROM a UNION ALL SELECT e1 FROM b",
		},
		{
			name: "not in",
			doc:  "{kind: query, select: [e1], from: [g], where: {kind: in, expr: e1, values: [1, 2], negated: true}}",
			want: "SELECT e1 FROM g WHERE e1 NOT IN (1, 2)",
		},
		{
			name: "exists",
			doc:  "{kind: query, select: [e1], from: [g], where: {kind: exists, query: {kind: query, select: [e1], from: [pm1.g2]}}}",
			want: "SELECT e1 FROM g WHERE EXISTS (SELECT e1 FROM pm1.g2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, render(t, tt.doc), tt.want)
		})
	}
}

func TestDecodeExpressionShorthandInCriteria(t *testing.T) {
	t.Parallel()
	got := decode(t, "{kind: query, select: [e1], from: [g], where: flag}")
	q, ok := got.(*nodes.Query)
	require.True(t, ok)
	assert.Equal(t, &nodes.ExpressionCriteria{Expr: nodes.NewElementSymbol("flag")}, q.Where)
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()
	docs := `kind: delete
group: a
---
kind: delete
group: b
`
	got, err := DecodeAll(strings.NewReader(docs))
	require.NoError(t, err)
	require.Len(t, got, 2)
	testutil.AssertEqual(t, visitors.Render(got[0]), "DELETE FROM a")
	testutil.AssertEqual(t, visitors.Render(got[1]), "DELETE FROM b")
}

func TestDecodeAllReportsDocumentNumber(t *testing.T) {
	t.Parallel()
	_, err := DecodeAll(strings.NewReader("{kind: delete, group: a}\n---\n{kind: nope}\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "document 2")
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "{kind: frobnicate}", ErrUnknownKind},
		{"no kind", "{select: [e1]}", ErrMissingField},
		{"missing required", "{kind: delete}", ErrMissingField},
		{"bad operator", "{kind: compare, left: a, op: '~', right: b}", ErrInvalidValue},
		{"not a mapping", "[1, 2]", ErrInvalidValue},
		{"wrong category", "{kind: query, select: [e1], from: [{kind: compare, left: a, op: '=', right: b}]}", ErrInvalidValue},
		{"bad type", "{kind: constant, type: nosuch, value: 1}", ErrInvalidValue},
		{"bad date", "{kind: constant, type: date, value: yesterday}", ErrInvalidValue},
		{"bad hint", "{kind: group, name: g, hints: [sideways]}", ErrInvalidValue},
		{"nested missing", "{kind: not, criteria: {kind: is_null}}", ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeErrorPosition(t *testing.T) {
	t.Parallel()
	doc := `kind: query
select: [e1]
from:
  - pm1.g1
where:
  kind: compare
  left: e1
  op: "=="
  right: 1
`
	_, err := Decode(strings.NewReader(doc))
	var derr *Error
	require.ErrorAs(t, err, &derr)
	testutil.AssertEqual(t, derr.Line, 8)
	testutil.AssertEqual(t, derr.Column, 7)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	got, err := DecodeAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	doc := `{"kind": "query", "select": ["e1"], "from": ["pm1.g1"], "where": {"kind": "between", "expr": "e1", "lower": 1, "upper": 5}}`
	testutil.AssertEqual(t, render(t, doc), "SELECT e1 FROM pm1.g1 WHERE e1 BETWEEN 1 AND 5")
}
