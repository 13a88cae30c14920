package nodes

// CompareOp represents a binary comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

// LogicalOp joins the members of a CompoundCriteria.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

// MatchMode selects the pattern language of a MatchCriteria.
type MatchMode int

const (
	MatchLike MatchMode = iota
	MatchSimilar
	MatchRegex
)

// Quantifier is the ANY/SOME/ALL keyword of a quantified comparison.
type Quantifier int

const (
	QuantifierAny Quantifier = iota
	QuantifierSome
	QuantifierAll
)

// SubqueryHint selects the planning strategy for a subquery predicate.
type SubqueryHint struct {
	NoUnnest  bool
	DepJoin   bool
	MergeJoin bool
}

// CompareCriteria represents a binary comparison: Left Op Right.
type CompareCriteria struct {
	Left  Expression
	Op    CompareOp
	Right Expression
}

// NewCompareCriteria creates a comparison.
func NewCompareCriteria(left Expression, op CompareOp, right Expression) *CompareCriteria {
	return &CompareCriteria{Left: left, Op: op, Right: right}
}

func (c *CompareCriteria) Accept(v Visitor) string { return v.VisitCompareCriteria(c) }
func (*CompareCriteria) expressionNode()           {}
func (*CompareCriteria) criteriaNode()             {}
func (*CompareCriteria) predicateNode()            {}

// CompoundCriteria combines criteria with AND or OR.
type CompoundCriteria struct {
	Op       LogicalOp
	Criteria []Criteria
}

// And combines criteria with AND.
func And(crits ...Criteria) *CompoundCriteria {
	return &CompoundCriteria{Op: OpAnd, Criteria: crits}
}

// Or combines criteria with OR.
func Or(crits ...Criteria) *CompoundCriteria {
	return &CompoundCriteria{Op: OpOr, Criteria: crits}
}

func (c *CompoundCriteria) Accept(v Visitor) string { return v.VisitCompoundCriteria(c) }
func (*CompoundCriteria) expressionNode()           {}
func (*CompoundCriteria) criteriaNode()             {}

// NotCriteria negates its operand: NOT (criteria).
type NotCriteria struct {
	Criteria Criteria
}

// Not negates crit.
func Not(crit Criteria) *NotCriteria {
	return &NotCriteria{Criteria: crit}
}

func (n *NotCriteria) Accept(v Visitor) string { return v.VisitNotCriteria(n) }
func (*NotCriteria) expressionNode()           {}
func (*NotCriteria) criteriaNode()             {}

// IsNullCriteria is expr IS [NOT] NULL.
type IsNullCriteria struct {
	Expr    Expression
	Negated bool
}

func (c *IsNullCriteria) Accept(v Visitor) string { return v.VisitIsNullCriteria(c) }
func (*IsNullCriteria) expressionNode()           {}
func (*IsNullCriteria) criteriaNode()             {}
func (*IsNullCriteria) predicateNode()            {}

// MatchCriteria is expr [NOT] LIKE|SIMILAR TO|LIKE_REGEX pattern [ESCAPE c].
type MatchCriteria struct {
	Left    Expression
	Right   Expression
	Negated bool
	Mode    MatchMode
	Escape  rune // 0 when no ESCAPE clause
}

func (c *MatchCriteria) Accept(v Visitor) string { return v.VisitMatchCriteria(c) }
func (*MatchCriteria) expressionNode()           {}
func (*MatchCriteria) criteriaNode()             {}
func (*MatchCriteria) predicateNode()            {}

// SetCriteria is expr [NOT] IN (value, ...).
type SetCriteria struct {
	Expr    Expression
	Values  []Expression
	Negated bool
}

func (c *SetCriteria) Accept(v Visitor) string { return v.VisitSetCriteria(c) }
func (*SetCriteria) expressionNode()           {}
func (*SetCriteria) criteriaNode()             {}
func (*SetCriteria) predicateNode()            {}

// SubquerySetCriteria is expr [NOT] IN (subquery).
type SubquerySetCriteria struct {
	Expr    Expression
	Command QueryCommand
	Negated bool
	Hint    SubqueryHint
}

func (c *SubquerySetCriteria) Accept(v Visitor) string { return v.VisitSubquerySetCriteria(c) }
func (*SubquerySetCriteria) expressionNode()           {}
func (*SubquerySetCriteria) criteriaNode()             {}
func (*SubquerySetCriteria) predicateNode()            {}

// BetweenCriteria is expr [NOT] BETWEEN lower AND upper.
type BetweenCriteria struct {
	Expr    Expression
	Lower   Expression
	Upper   Expression
	Negated bool
}

func (c *BetweenCriteria) Accept(v Visitor) string { return v.VisitBetweenCriteria(c) }
func (*BetweenCriteria) expressionNode()           {}
func (*BetweenCriteria) criteriaNode()             {}
func (*BetweenCriteria) predicateNode()            {}

// ExistsCriteria is [NOT] EXISTS (subquery).
type ExistsCriteria struct {
	Command QueryCommand
	Negated bool
	Hint    SubqueryHint
}

// Exists creates EXISTS (subquery).
func Exists(cmd QueryCommand) *ExistsCriteria {
	return &ExistsCriteria{Command: cmd}
}

// NotExists creates NOT EXISTS (subquery).
func NotExists(cmd QueryCommand) *ExistsCriteria {
	return &ExistsCriteria{Command: cmd, Negated: true}
}

func (c *ExistsCriteria) Accept(v Visitor) string { return v.VisitExistsCriteria(c) }
func (*ExistsCriteria) expressionNode()           {}
func (*ExistsCriteria) criteriaNode()             {}
func (*ExistsCriteria) predicateNode()            {}

// SubqueryCompareCriteria is expr op ANY|SOME|ALL (subquery).
type SubqueryCompareCriteria struct {
	Left       Expression
	Op         CompareOp
	Quantifier Quantifier
	Command    QueryCommand
}

func (c *SubqueryCompareCriteria) Accept(v Visitor) string { return v.VisitSubqueryCompareCriteria(c) }
func (*SubqueryCompareCriteria) expressionNode()           {}
func (*SubqueryCompareCriteria) criteriaNode()             {}
func (*SubqueryCompareCriteria) predicateNode()            {}

// IsDistinctCriteria is left IS [NOT] DISTINCT FROM right.
type IsDistinctCriteria struct {
	Left    Expression
	Right   Expression
	Negated bool
}

func (c *IsDistinctCriteria) Accept(v Visitor) string { return v.VisitIsDistinctCriteria(c) }
func (*IsDistinctCriteria) expressionNode()           {}
func (*IsDistinctCriteria) criteriaNode()             {}
func (*IsDistinctCriteria) predicateNode()            {}

// ExpressionCriteria uses a boolean expression as criteria.
type ExpressionCriteria struct {
	Expr Expression
}

func (c *ExpressionCriteria) Accept(v Visitor) string { return v.VisitExpressionCriteria(c) }
func (*ExpressionCriteria) expressionNode()           {}
func (*ExpressionCriteria) criteriaNode()             {}
