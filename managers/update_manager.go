package managers

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

// UpdateManager provides a fluent API for building UPDATE statements.
type UpdateManager struct {
	treeManager
	Statement *nodes.Update
}

// NewUpdateManager creates a new UpdateManager targeting the given group.
func NewUpdateManager(group *nodes.GroupSymbol) *UpdateManager {
	return &UpdateManager{Statement: nodes.NewUpdate(group)}
}

// Set adds a column assignment to the SET clause.
// val can be a raw Go value or an expression.
func (m *UpdateManager) Set(col *nodes.ElementSymbol, val any) *UpdateManager {
	m.Statement.Changes = append(m.Statement.Changes, &nodes.SetClause{
		Symbol: col,
		Value:  nodes.Literal(val),
	})
	return m
}

// Where appends criteria to the WHERE clause, AND-ed with earlier ones.
func (m *UpdateManager) Where(criteria ...nodes.Criteria) *UpdateManager {
	m.Statement.Where = plugins.AndCriteria(m.Statement.Where, criteria...)
	return m
}

// Option sets the OPTION clause.
func (m *UpdateManager) Option(o *nodes.Option) *UpdateManager {
	m.Statement.Option = o
	return m
}

// Use registers a transformer plugin.
func (m *UpdateManager) Use(t plugins.Transformer) *UpdateManager {
	m.addTransformer(t)
	return m
}

// Build applies transformers to a copy of the statement.
func (m *UpdateManager) Build() (*nodes.Update, error) {
	return transform(m.cloneStatement(), m.transformers, plugins.Transformer.TransformUpdate)
}

// ToSQL applies transformers and renders the statement.
func (m *UpdateManager) ToSQL(opts ...visitors.Option) (string, error) {
	stmt, err := m.Build()
	if err != nil {
		return "", err
	}
	return render(stmt, opts), nil
}

func (m *UpdateManager) cloneStatement() *nodes.Update {
	stmt := *m.Statement
	stmt.Changes = append([]*nodes.SetClause(nil), stmt.Changes...)
	return &stmt
}
