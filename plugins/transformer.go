// Package plugins defines the Transformer interface for AST middleware.
package plugins

import "github.com/johnathonlee/sqltext/nodes"

// Transformer is the interface that AST transformation plugins implement.
// Plugins embed BaseTransformer and override only the methods they need.
// Managers hand transformers a copy of their command, so a transformer may
// modify the value it receives.
type Transformer interface {
	TransformQuery(q *nodes.Query) (*nodes.Query, error)
	TransformInsert(stmt *nodes.Insert) (*nodes.Insert, error)
	TransformUpdate(stmt *nodes.Update) (*nodes.Update, error)
	TransformDelete(stmt *nodes.Delete) (*nodes.Delete, error)
}

// BaseTransformer provides no-op defaults for all Transformer methods.
type BaseTransformer struct{}

func (BaseTransformer) TransformQuery(q *nodes.Query) (*nodes.Query, error) {
	return q, nil
}
func (BaseTransformer) TransformInsert(s *nodes.Insert) (*nodes.Insert, error) {
	return s, nil
}
func (BaseTransformer) TransformUpdate(s *nodes.Update) (*nodes.Update, error) {
	return s, nil
}
func (BaseTransformer) TransformDelete(s *nodes.Delete) (*nodes.Delete, error) {
	return s, nil
}

// AndCriteria returns existing AND-ed with add. A nil existing yields add
// alone (or their conjunction), and an existing AND compound is extended
// into a new compound rather than modified.
func AndCriteria(existing nodes.Criteria, add ...nodes.Criteria) nodes.Criteria {
	var crits []nodes.Criteria
	switch c := existing.(type) {
	case nil:
	case *nodes.CompoundCriteria:
		switch {
		case c == nil:
		case c.Op == nodes.OpAnd:
			crits = append(crits, c.Criteria...)
		default:
			crits = append(crits, c)
		}
	default:
		crits = append(crits, c)
	}
	crits = append(crits, add...)
	switch len(crits) {
	case 0:
		return nil
	case 1:
		return crits[0]
	default:
		return nodes.And(crits...)
	}
}
