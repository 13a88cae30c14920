package managers

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager struct {
	treeManager
	Statement *nodes.Delete
}

// NewDeleteManager creates a new DeleteManager targeting the given group.
func NewDeleteManager(from *nodes.GroupSymbol) *DeleteManager {
	return &DeleteManager{Statement: nodes.NewDelete(from)}
}

// Where appends criteria to the WHERE clause, AND-ed with earlier ones.
func (m *DeleteManager) Where(criteria ...nodes.Criteria) *DeleteManager {
	m.Statement.Where = plugins.AndCriteria(m.Statement.Where, criteria...)
	return m
}

// Option sets the OPTION clause.
func (m *DeleteManager) Option(o *nodes.Option) *DeleteManager {
	m.Statement.Option = o
	return m
}

// Use registers a transformer plugin.
func (m *DeleteManager) Use(t plugins.Transformer) *DeleteManager {
	m.addTransformer(t)
	return m
}

// Build applies transformers to a copy of the statement.
func (m *DeleteManager) Build() (*nodes.Delete, error) {
	stmt := *m.Statement
	return transform(&stmt, m.transformers, plugins.Transformer.TransformDelete)
}

// ToSQL applies transformers and renders the statement.
func (m *DeleteManager) ToSQL(opts ...visitors.Option) (string, error) {
	stmt, err := m.Build()
	if err != nil {
		return "", err
	}
	return render(stmt, opts), nil
}
