package managers

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

// InsertManager provides a fluent API for building INSERT and MERGE statements.
type InsertManager struct {
	treeManager
	Statement *nodes.Insert
}

// NewInsertManager creates a new InsertManager targeting the given group.
func NewInsertManager(into *nodes.GroupSymbol) *InsertManager {
	return &InsertManager{Statement: nodes.NewInsert(into)}
}

// Columns sets the column list. Columns are rendered by short name.
func (m *InsertManager) Columns(names ...string) *InsertManager {
	cols := make([]*nodes.ElementSymbol, len(names))
	for i, n := range names {
		cols[i] = nodes.NewElementSymbol(n)
	}
	m.Statement.Columns = cols
	return m
}

// Values sets the row of values. Pass raw Go values or expressions; raw
// values are wrapped with nodes.Literal.
func (m *InsertManager) Values(vals ...any) *InsertManager {
	row := make([]nodes.Expression, len(vals))
	for i, v := range vals {
		row[i] = nodes.Literal(v)
	}
	m.Statement.Values = row
	return m
}

// FromQuery sets a query as the source of rows. When set, Values are
// ignored by the renderer.
func (m *InsertManager) FromQuery(q nodes.QueryCommand) *InsertManager {
	m.Statement.Query = q
	return m
}

// Merge renders the statement as MERGE INTO.
func (m *InsertManager) Merge() *InsertManager {
	m.Statement.Merge = true
	return m
}

// Option sets the OPTION clause.
func (m *InsertManager) Option(o *nodes.Option) *InsertManager {
	m.Statement.Option = o
	return m
}

// Use registers a transformer plugin.
func (m *InsertManager) Use(t plugins.Transformer) *InsertManager {
	m.addTransformer(t)
	return m
}

// Build applies transformers to a copy of the statement.
func (m *InsertManager) Build() (*nodes.Insert, error) {
	return transform(m.cloneStatement(), m.transformers, plugins.Transformer.TransformInsert)
}

// ToSQL applies transformers and renders the statement.
func (m *InsertManager) ToSQL(opts ...visitors.Option) (string, error) {
	stmt, err := m.Build()
	if err != nil {
		return "", err
	}
	return render(stmt, opts), nil
}

func (m *InsertManager) cloneStatement() *nodes.Insert {
	stmt := *m.Statement
	stmt.Columns = append([]*nodes.ElementSymbol(nil), stmt.Columns...)
	stmt.Values = append([]nodes.Expression(nil), stmt.Values...)
	return &stmt
}
