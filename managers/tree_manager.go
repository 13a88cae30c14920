package managers

import (
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

// treeManager is the shared base for all manager types. It holds the
// transformer pipeline common to Query, Insert, Update, and Delete managers.
type treeManager struct {
	transformers []plugins.Transformer
}

// addTransformer appends a transformer plugin to the pipeline.
func (tm *treeManager) addTransformer(t plugins.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

// transform runs stmt through each transformer in registration order.
func transform[T any](stmt T, transformers []plugins.Transformer, apply func(plugins.Transformer, T) (T, error)) (T, error) {
	for _, t := range transformers {
		var err error
		stmt, err = apply(t, stmt)
		if err != nil {
			return stmt, err
		}
	}
	return stmt, nil
}

// render generates SQL for a transformed command.
func render(cmd nodes.Command, opts []visitors.Option) string {
	return visitors.Render(cmd, opts...)
}
