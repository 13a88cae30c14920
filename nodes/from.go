package nodes

// JoinType represents the type of SQL JOIN.
type JoinType int

const (
	InnerJoin JoinType = iota
	CrossJoin
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	UnionJoin
	SemiJoin
	AntiSemiJoin
)

// String returns the display name for this join type.
func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "INNER JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	case LeftOuterJoin:
		return "LEFT OUTER JOIN"
	case RightOuterJoin:
		return "RIGHT OUTER JOIN"
	case FullOuterJoin:
		return "FULL OUTER JOIN"
	case UnionJoin:
		return "UNION JOIN"
	case SemiJoin:
		return "SEMI JOIN"
	case AntiSemiJoin:
		return "ANTI SEMI JOIN"
	default:
		return "JOIN"
	}
}

// IsOuter reports whether the join preserves unmatched rows.
func (t JoinType) IsOuter() bool {
	return t == LeftOuterJoin || t == RightOuterJoin || t == FullOuterJoin
}

// FromHints are planner hints attached to a FROM clause item. They render
// as a /*+ ... */ comment in front of the item.
type FromHints struct {
	Optional   bool
	MakeDep    bool
	MakeNotDep bool
	MakeInd    bool
	NoUnnest   bool
	Preserve   bool
}

// HasHint reports whether any hint is set.
func (h FromHints) HasHint() bool {
	return h.Optional || h.MakeDep || h.MakeNotDep || h.MakeInd || h.NoUnnest || h.Preserve
}

// From is the FROM clause: a comma separated list of items.
type From struct {
	Clauses []FromClause
}

// NewFrom creates a FROM clause.
func NewFrom(clauses ...FromClause) *From {
	return &From{Clauses: clauses}
}

func (f *From) Accept(v Visitor) string { return v.VisitFrom(f) }

// UnaryFromClause is a single group in the FROM clause.
type UnaryFromClause struct {
	FromHints
	Group *GroupSymbol
}

// NewUnaryFromClause creates a FROM item for a group.
func NewUnaryFromClause(group *GroupSymbol) *UnaryFromClause {
	return &UnaryFromClause{Group: group}
}

func (u *UnaryFromClause) Accept(v Visitor) string { return v.VisitUnaryFromClause(u) }
func (*UnaryFromClause) fromClauseNode()           {}

// JoinPredicate joins two FROM items.
type JoinPredicate struct {
	FromHints
	Left     FromClause
	Right    FromClause
	Type     JoinType
	Criteria []Criteria // ON criteria, AND-ed; empty for CROSS JOIN
}

// NewJoin creates a join of left and right.
func NewJoin(left, right FromClause, jt JoinType, crits ...Criteria) *JoinPredicate {
	return &JoinPredicate{Left: left, Right: right, Type: jt, Criteria: crits}
}

func (j *JoinPredicate) Accept(v Visitor) string { return v.VisitJoinPredicate(j) }
func (*JoinPredicate) fromClauseNode()           {}

// SubqueryFromClause is (command) AS name, optionally with the TABLE
// (lateral) keyword.
type SubqueryFromClause struct {
	FromHints
	Command Command
	Name    string
	Table   bool
}

func (s *SubqueryFromClause) Accept(v Visitor) string { return v.VisitSubqueryFromClause(s) }
func (*SubqueryFromClause) fromClauseNode()           {}
