package managers

import "github.com/johnathonlee/sqltext/nodes"

// JoinContext is returned by QueryManager.Join() and enforces that
// a join condition is provided via On() before continuing to build
// the query. This prevents incomplete JOINs in the AST.
type JoinContext struct {
	manager *QueryManager
	join    *nodes.JoinPredicate
}

// On sets the join criteria, AND-ed when several are given, and returns
// the QueryManager for continued method chaining.
func (jc *JoinContext) On(criteria ...nodes.Criteria) *QueryManager {
	jc.join.Criteria = criteria
	return jc.manager
}
