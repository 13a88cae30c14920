// Package sqltext renders SQL syntax trees as SQL text.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/johnathonlee/sqltext/nodes (AST nodes)
//   - github.com/johnathonlee/sqltext/visitors (SQL text rendering)
//   - github.com/johnathonlee/sqltext/managers (query builders)
//   - github.com/johnathonlee/sqltext/plugins (tree transformers)
//   - github.com/johnathonlee/sqltext/astdoc (YAML/JSON tree documents)
package sqltext

import (
	"io"

	"github.com/johnathonlee/sqltext/astdoc"
	"github.com/johnathonlee/sqltext/managers"
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/visitors"
)

// --- Rendering ---

// Render returns the SQL text of node. A nil node renders as "<undefined>".
func Render(node nodes.Node, opts ...visitors.Option) string {
	return visitors.Render(node, opts...)
}

// WithIndent puts each clause on its own line, indenting nested blocks by
// unit.
func WithIndent(unit string) visitors.Option {
	return visitors.WithIndent(unit)
}

// Decode reads one tree document (YAML or JSON) from r.
func Decode(r io.Reader) (nodes.Node, error) {
	return astdoc.Decode(r)
}

// --- Manager Types ---

// QueryManager provides a fluent API for building queries.
type QueryManager = managers.QueryManager

// InsertManager provides a fluent API for building INSERT and MERGE commands.
type InsertManager = managers.InsertManager

// UpdateManager provides a fluent API for building UPDATE commands.
type UpdateManager = managers.UpdateManager

// DeleteManager provides a fluent API for building DELETE commands.
type DeleteManager = managers.DeleteManager

// --- Manager Constructors ---

// NewQuery creates a new QueryManager selecting from the given clauses.
func NewQuery(from ...nodes.FromClause) *managers.QueryManager {
	return managers.NewQuery(from...)
}

// NewInsert creates a new InsertManager for the given group.
func NewInsert(into *nodes.GroupSymbol) *managers.InsertManager {
	return managers.NewInsertManager(into)
}

// NewUpdate creates a new UpdateManager for the given group.
func NewUpdate(group *nodes.GroupSymbol) *managers.UpdateManager {
	return managers.NewUpdateManager(group)
}

// NewDelete creates a new DeleteManager for the given group.
func NewDelete(from *nodes.GroupSymbol) *managers.DeleteManager {
	return managers.NewDeleteManager(from)
}

// --- Core Node Types ---

// Node is the interface all AST nodes implement.
type Node = nodes.Node

// GroupSymbol is a table, view or procedure reference.
type GroupSymbol = nodes.GroupSymbol

// ElementSymbol is a column or variable reference.
type ElementSymbol = nodes.ElementSymbol

// --- Common Node Constructors ---

// Group creates a group reference.
func Group(name string) *nodes.GroupSymbol {
	return nodes.NewGroupSymbol(name)
}

// Element creates an unqualified element reference.
func Element(name string) *nodes.ElementSymbol {
	return nodes.NewElementSymbol(name)
}

// Table creates a FROM clause item for a group.
func Table(g *nodes.GroupSymbol) *nodes.UnaryFromClause {
	return nodes.NewUnaryFromClause(g)
}

// Literal wraps a Go value as a constant. Expressions are returned as is.
func Literal(value any) nodes.Expression {
	return nodes.Literal(value)
}

// Star creates an unqualified * for SELECT *.
func Star() *nodes.MultipleElementSymbol {
	return nodes.Star()
}

// And joins criteria with AND.
func And(crits ...nodes.Criteria) *nodes.CompoundCriteria {
	return nodes.And(crits...)
}

// Or joins criteria with OR.
func Or(crits ...nodes.Criteria) *nodes.CompoundCriteria {
	return nodes.Or(crits...)
}

// Not negates a criteria.
func Not(crit nodes.Criteria) *nodes.NotCriteria {
	return nodes.Not(crit)
}

// --- Aggregate Functions ---

// Count creates COUNT(expr); a nil expr gives COUNT(*).
func Count(expr nodes.Expression) *nodes.AggregateSymbol {
	return nodes.Count(expr)
}

// Sum creates a SUM(expr) aggregate.
func Sum(expr nodes.Expression) *nodes.AggregateSymbol {
	return nodes.Sum(expr)
}

// Avg creates an AVG(expr) aggregate.
func Avg(expr nodes.Expression) *nodes.AggregateSymbol {
	return nodes.Avg(expr)
}

// Min creates a MIN(expr) aggregate.
func Min(expr nodes.Expression) *nodes.AggregateSymbol {
	return nodes.Min(expr)
}

// Max creates a MAX(expr) aggregate.
func Max(expr nodes.Expression) *nodes.AggregateSymbol {
	return nodes.Max(expr)
}
