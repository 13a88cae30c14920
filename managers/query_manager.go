// Package managers provides high-level fluent APIs for building command ASTs.
package managers

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

// QueryManager provides a fluent API for building SELECT queries.
// It wraps a Query and applies transformer plugins before SQL generation.
type QueryManager struct {
	treeManager
	Query *nodes.Query
}

// NewQuery creates a QueryManager reading from the given FROM items.
// With no items the FROM clause is left unset.
func NewQuery(from ...nodes.FromClause) *QueryManager {
	q := &nodes.Query{}
	if len(from) > 0 {
		q.From = nodes.NewFrom(from...)
	}
	return &QueryManager{Query: q}
}

// Select sets the select list, replacing any existing symbols.
func (m *QueryManager) Select(symbols ...nodes.Expression) *QueryManager {
	distinct := m.Query.Select != nil && m.Query.Select.Distinct
	m.Query.Select = &nodes.Select{Distinct: distinct, Symbols: symbols}
	return m
}

// Distinct enables or disables the DISTINCT modifier on the SELECT clause.
func (m *QueryManager) Distinct(on ...bool) *QueryManager {
	if m.Query.Select == nil {
		m.Query.Select = nodes.NewSelect()
	}
	m.Query.Select.Distinct = len(on) == 0 || on[0]
	return m
}

// From replaces the FROM items.
func (m *QueryManager) From(clauses ...nodes.FromClause) *QueryManager {
	m.Query.From = nodes.NewFrom(clauses...)
	return m
}

// Into sets the INTO target group.
func (m *QueryManager) Into(group *nodes.GroupSymbol) *QueryManager {
	m.Query.Into = &nodes.Into{Group: group}
	return m
}

// Where appends criteria to the WHERE clause. All criteria from every call
// are AND-ed together.
func (m *QueryManager) Where(criteria ...nodes.Criteria) *QueryManager {
	m.Query.Where = plugins.AndCriteria(m.Query.Where, criteria...)
	return m
}

// Join joins right to the last FROM item and returns a JoinContext for
// specifying the ON criteria. The default join type is InnerJoin.
func (m *QueryManager) Join(right nodes.FromClause, joinTypes ...nodes.JoinType) *JoinContext {
	jt := nodes.InnerJoin
	if len(joinTypes) > 0 {
		jt = joinTypes[0]
	}
	return &JoinContext{manager: m, join: m.addJoin(right, jt)}
}

// OuterJoin is a convenience for Join with LeftOuterJoin type.
func (m *QueryManager) OuterJoin(right nodes.FromClause) *JoinContext {
	return m.Join(right, nodes.LeftOuterJoin)
}

// CrossJoin adds a cross join (no ON clause).
func (m *QueryManager) CrossJoin(right nodes.FromClause) *QueryManager {
	m.addJoin(right, nodes.CrossJoin)
	return m
}

// addJoin replaces the last FROM item with a join of that item and right.
func (m *QueryManager) addJoin(right nodes.FromClause, jt nodes.JoinType) *nodes.JoinPredicate {
	if m.Query.From == nil {
		m.Query.From = nodes.NewFrom()
	}
	clauses := m.Query.From.Clauses
	var left nodes.FromClause
	if n := len(clauses); n > 0 {
		left = clauses[n-1]
		clauses = clauses[:n-1]
	}
	join := nodes.NewJoin(left, right, jt)
	m.Query.From = nodes.NewFrom(append(clauses[:len(clauses):len(clauses)], join)...)
	return join
}

// GroupBy appends expressions to the GROUP BY clause.
func (m *QueryManager) GroupBy(exprs ...nodes.Expression) *QueryManager {
	if m.Query.GroupBy == nil {
		m.Query.GroupBy = &nodes.GroupBy{}
	}
	m.Query.GroupBy.Symbols = append(m.Query.GroupBy.Symbols, exprs...)
	return m
}

// Rollup renders the GROUP BY clause as GROUP BY ROLLUP(...).
func (m *QueryManager) Rollup() *QueryManager {
	if m.Query.GroupBy == nil {
		m.Query.GroupBy = &nodes.GroupBy{}
	}
	m.Query.GroupBy.Rollup = true
	return m
}

// Having appends criteria to the HAVING clause, AND-ed like Where.
func (m *QueryManager) Having(criteria ...nodes.Criteria) *QueryManager {
	m.Query.Having = plugins.AndCriteria(m.Query.Having, criteria...)
	return m
}

// OrderBy appends items to the ORDER BY clause
// (e.g., g.Col("name").Asc()).
func (m *QueryManager) OrderBy(items ...*nodes.OrderByItem) *QueryManager {
	if m.Query.OrderBy == nil {
		m.Query.OrderBy = nodes.NewOrderBy()
	}
	m.Query.OrderBy.Items = append(m.Query.OrderBy.Items, items...)
	return m
}

// Limit sets the row limit.
func (m *QueryManager) Limit(n int) *QueryManager {
	m.limit().RowLimit = nodes.Literal(n)
	return m
}

// Offset sets the number of rows skipped.
func (m *QueryManager) Offset(n int) *QueryManager {
	m.limit().Offset = nodes.Literal(n)
	return m
}

func (m *QueryManager) limit() *nodes.Limit {
	if m.Query.Limit == nil {
		m.Query.Limit = &nodes.Limit{}
	}
	return m.Query.Limit
}

// Cache sets the cache hint rendered before the query.
func (m *QueryManager) Cache(h *nodes.CacheHint) *QueryManager {
	m.Query.CacheHint = h
	return m
}

// Option sets the OPTION clause.
func (m *QueryManager) Option(o *nodes.Option) *QueryManager {
	m.Query.Option = o
	return m
}

// With adds a common table expression named name.
func (m *QueryManager) With(name string, query nodes.QueryCommand, columns ...string) *QueryManager {
	g := nodes.NewGroupSymbol(name)
	cols := make([]*nodes.ElementSymbol, len(columns))
	for i, c := range columns {
		cols[i] = nodes.NewElementSymbol(c)
	}
	m.Query.With = append(m.Query.With, &nodes.WithQueryCommand{Group: g, Columns: cols, Command: query})
	return m
}

// Union creates a UNION set operation between this query and another.
func (m *QueryManager) Union(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Union, false, other)
}

// UnionAll creates a UNION ALL set operation between this query and another.
func (m *QueryManager) UnionAll(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Union, true, other)
}

// Intersect creates an INTERSECT set operation between this query and another.
func (m *QueryManager) Intersect(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Intersect, false, other)
}

// IntersectAll creates an INTERSECT ALL set operation between this query and another.
func (m *QueryManager) IntersectAll(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Intersect, true, other)
}

// Except creates an EXCEPT set operation between this query and another.
func (m *QueryManager) Except(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Except, false, other)
}

// ExceptAll creates an EXCEPT ALL set operation between this query and another.
func (m *QueryManager) ExceptAll(other *QueryManager) *nodes.SetQuery {
	return m.setOp(nodes.Except, true, other)
}

func (m *QueryManager) setOp(op nodes.SetOp, all bool, other *QueryManager) *nodes.SetQuery {
	return &nodes.SetQuery{Op: op, All: all, Left: m.CloneQuery(), Right: other.CloneQuery()}
}

// As wraps a copy of the query in a named FROM item.
func (m *QueryManager) As(name string) *nodes.SubqueryFromClause {
	return &nodes.SubqueryFromClause{Command: m.CloneQuery(), Name: name}
}

// Use registers a transformer plugin to be applied before SQL generation.
func (m *QueryManager) Use(t plugins.Transformer) *QueryManager {
	m.addTransformer(t)
	return m
}

// Build applies all registered transformers to a copy of the query and
// returns the result.
func (m *QueryManager) Build() (*nodes.Query, error) {
	return transform(m.CloneQuery(), m.transformers, plugins.Transformer.TransformQuery)
}

// ToSQL applies all registered transformers and renders the query.
func (m *QueryManager) ToSQL(opts ...visitors.Option) (string, error) {
	q, err := m.Build()
	if err != nil {
		return "", err
	}
	return render(q, opts), nil
}

// CloneQuery returns a copy of the query so transformers don't modify the
// original. A query without a select list selects *.
func (m *QueryManager) CloneQuery() *nodes.Query {
	q := *m.Query
	if q.Select == nil {
		q.Select = nodes.NewSelect(nodes.Star())
	} else {
		sel := *q.Select
		sel.Symbols = append([]nodes.Expression(nil), sel.Symbols...)
		q.Select = &sel
	}
	if q.From != nil {
		q.From = nodes.NewFrom(append([]nodes.FromClause(nil), q.From.Clauses...)...)
	}
	if q.GroupBy != nil {
		gb := *q.GroupBy
		gb.Symbols = append([]nodes.Expression(nil), gb.Symbols...)
		q.GroupBy = &gb
	}
	if q.OrderBy != nil {
		q.OrderBy = nodes.NewOrderBy(append([]*nodes.OrderByItem(nil), q.OrderBy.Items...)...)
	}
	if q.Limit != nil {
		l := *q.Limit
		q.Limit = &l
	}
	q.With = append([]*nodes.WithQueryCommand(nil), q.With...)
	return &q
}
