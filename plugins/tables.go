package plugins

import "github.com/johnathonlee/sqltext/nodes"

// GroupRef holds a group referenced in a FROM clause. Group is the symbol
// used to qualify columns (preserving aliases) and Name the underlying
// group name used for matching.
type GroupRef struct {
	Group *nodes.GroupSymbol
	Name  string
}

// CollectGroups returns the groups referenced in the FROM clause of q,
// walking both sides of every join. Subqueries and table functions are
// skipped.
func CollectGroups(q *nodes.Query) []GroupRef {
	if q == nil || q.From == nil {
		return nil
	}
	var refs []GroupRef
	for _, c := range q.From.Clauses {
		refs = collectFrom(refs, c)
	}
	return refs
}

func collectFrom(refs []GroupRef, c nodes.FromClause) []GroupRef {
	switch fc := c.(type) {
	case *nodes.UnaryFromClause:
		if fc != nil && fc.Group != nil {
			refs = append(refs, groupRef(fc.Group))
		}
	case *nodes.JoinPredicate:
		if fc != nil {
			refs = collectFrom(refs, fc.Left)
			refs = collectFrom(refs, fc.Right)
		}
	}
	return refs
}

func groupRef(g *nodes.GroupSymbol) GroupRef {
	if g.IsAliased() {
		return GroupRef{Group: g, Name: g.Definition}
	}
	return GroupRef{Group: g, Name: g.Name}
}
