// Package softdelete provides a Transformer that injects "column IS NULL"
// criteria into queries, updates and deletes, hiding soft-deleted rows.
//
// By default it adds g.deleted_at IS NULL for every group referenced in
// the FROM clause (joins included). Both the column name and the set of
// groups can be customised via options.
//
// # Basic usage
//
//	sd := softdelete.New()
//	sql, err := managers.NewQuery(nodes.NewUnaryFromClause(users)).Use(sd).ToSQL()
//	// SELECT * FROM users WHERE users.deleted_at IS NULL
//
// # Custom column
//
//	sd := softdelete.New(softdelete.WithColumn("removed_at"))
//
// # Restrict to specific groups
//
//	sd := softdelete.New(softdelete.WithGroups("users"))
//
// # Per-group columns
//
//	sd := softdelete.New(
//	    softdelete.WithGroupColumn("users", "deleted_at"),
//	    softdelete.WithGroupColumn("posts", "removed_at"),
//	)
package softdelete

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
)

// SoftDelete is a Transformer that adds IS NULL criteria for a soft-delete
// column on every referenced group (or a configured subset).
type SoftDelete struct {
	plugins.BaseTransformer
	Column  string
	Columns map[string]string // per-group column overrides (group name → column name)
	groups  map[string]bool   // nil means apply to all groups
}

// Option configures a SoftDelete transformer.
type Option func(*SoftDelete)

// WithColumn sets the soft-delete column name. Default is "deleted_at".
func WithColumn(name string) Option {
	return func(sd *SoftDelete) { sd.Column = name }
}

// WithGroups restricts the plugin to the named groups.
func WithGroups(names ...string) Option {
	return func(sd *SoftDelete) {
		sd.groups = make(map[string]bool, len(names))
		for _, n := range names {
			sd.groups[n] = true
		}
	}
}

// WithGroupColumn sets a per-group column override. The group is added to
// the whitelist, restricting the plugin's scope.
func WithGroupColumn(group, column string) Option {
	return func(sd *SoftDelete) {
		if sd.Columns == nil {
			sd.Columns = make(map[string]string)
		}
		sd.Columns[group] = column
		if sd.groups == nil {
			sd.groups = make(map[string]bool)
		}
		sd.groups[group] = true
	}
}

// New creates a SoftDelete transformer with the given options.
func New(opts ...Option) *SoftDelete {
	sd := &SoftDelete{Column: "deleted_at"}
	for _, o := range opts {
		o(sd)
	}
	return sd
}

// TransformQuery adds "column IS NULL" to the WHERE clause for each
// matching group in the FROM clause.
func (sd *SoftDelete) TransformQuery(q *nodes.Query) (*nodes.Query, error) {
	var crits []nodes.Criteria
	for _, ref := range plugins.CollectGroups(q) {
		if sd.appliesTo(ref.Name) {
			crits = append(crits, ref.Group.Col(sd.columnFor(ref.Name)).IsNull())
		}
	}
	if len(crits) > 0 {
		q.Where = plugins.AndCriteria(q.Where, crits...)
	}
	return q, nil
}

// TransformUpdate restricts the update to rows that are not soft-deleted.
func (sd *SoftDelete) TransformUpdate(stmt *nodes.Update) (*nodes.Update, error) {
	if c := sd.groupCriteria(stmt.Group); c != nil {
		stmt.Where = plugins.AndCriteria(stmt.Where, c)
	}
	return stmt, nil
}

// TransformDelete restricts the delete to rows that are not soft-deleted.
func (sd *SoftDelete) TransformDelete(stmt *nodes.Delete) (*nodes.Delete, error) {
	if c := sd.groupCriteria(stmt.Group); c != nil {
		stmt.Where = plugins.AndCriteria(stmt.Where, c)
	}
	return stmt, nil
}

func (sd *SoftDelete) groupCriteria(g *nodes.GroupSymbol) nodes.Criteria {
	if g == nil || !sd.appliesTo(g.Name) {
		return nil
	}
	return g.Col(sd.columnFor(g.Name)).IsNull()
}

func (sd *SoftDelete) appliesTo(group string) bool {
	if sd.groups == nil {
		return true
	}
	return sd.groups[group]
}

// columnFor returns the column name to use for the given group.
func (sd *SoftDelete) columnFor(group string) string {
	if col, ok := sd.Columns[group]; ok {
		return col
	}
	return sd.Column
}
