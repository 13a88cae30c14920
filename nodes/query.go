package nodes

import "strconv"

// Select is the SELECT clause.
type Select struct {
	Distinct bool
	Symbols  []Expression
}

// NewSelect creates a SELECT clause.
func NewSelect(symbols ...Expression) *Select {
	return &Select{Symbols: symbols}
}

func (s *Select) Accept(v Visitor) string { return v.VisitSelect(s) }

// Into is the INTO clause of a SELECT ... INTO.
type Into struct {
	Group *GroupSymbol
}

func (i *Into) Accept(v Visitor) string { return v.VisitInto(i) }

// GroupBy is the GROUP BY clause.
type GroupBy struct {
	Symbols []Expression
	Rollup  bool
}

func (g *GroupBy) Accept(v Visitor) string { return v.VisitGroupBy(g) }

// NullOrdering controls NULLS FIRST/LAST positioning.
type NullOrdering int

const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// OrderBy is the ORDER BY clause.
type OrderBy struct {
	Items []*OrderByItem
}

// NewOrderBy creates an ORDER BY clause.
func NewOrderBy(items ...*OrderByItem) *OrderBy {
	return &OrderBy{Items: items}
}

func (o *OrderBy) Accept(v Visitor) string { return v.VisitOrderBy(o) }

// OrderByItem is one sort key. Ascending is the default and never rendered.
type OrderByItem struct {
	Symbol     Expression
	Descending bool
	Nulls      NullOrdering
}

func (o *OrderByItem) Accept(v Visitor) string { return v.VisitOrderByItem(o) }

// Limit is LIMIT [offset,] count, or OFFSET n ROWS when there is no count.
type Limit struct {
	Offset    Expression
	RowLimit  Expression
	NonStrict bool // the limit may be pushed below operations that change row counts
}

func (l *Limit) Accept(v Visitor) string { return v.VisitLimit(l) }

// Option is the trailing OPTION clause.
type Option struct {
	MakeDep       []string
	MakeNotDep    []string
	NoCacheGroups []string
	NoCache       bool
}

func (o *Option) Accept(v Visitor) string { return v.VisitOption(o) }

// IsEmpty reports whether the clause has nothing to render beyond OPTION.
func (o *Option) IsEmpty() bool {
	return len(o.MakeDep) == 0 && len(o.MakeNotDep) == 0 && len(o.NoCacheGroups) == 0 && !o.NoCache
}

// CacheHint requests result-set caching for a command. It renders as a
// /*+ cache(...) */ comment in front of the command.
type CacheHint struct {
	PrefersMemory bool
	TTL           *int64 // milliseconds
	Updatable     bool
	Scope         string
	MinRows       *int64
}

// WithQueryCommand is one common table expression of a WITH clause.
type WithQueryCommand struct {
	Group   *GroupSymbol
	Columns []*ElementSymbol
	Command QueryCommand
}

func (w *WithQueryCommand) Accept(v Visitor) string { return v.VisitWithQueryCommand(w) }

// Query is a SELECT command.
type Query struct {
	CacheHint *CacheHint
	With      []*WithQueryCommand
	Select    *Select
	Into      *Into
	From      *From
	Where     Criteria
	GroupBy   *GroupBy
	Having    Criteria
	OrderBy   *OrderBy
	Limit     *Limit
	Option    *Option
}

func (q *Query) Accept(v Visitor) string { return v.VisitQuery(q) }
func (*Query) commandNode()              {}
func (*Query) queryCommandNode()         {}
func (q *Query) OrderClause() *OrderBy   { return q.OrderBy }
func (q *Query) LimitClause() *Limit     { return q.Limit }

// SetOp is the set operation of a SetQuery.
type SetOp int

const (
	Union SetOp = iota
	Intersect
	Except
)

// String returns the SQL keyword for the operation.
func (op SetOp) String() string {
	switch op {
	case Union:
		return "UNION"
	case Intersect:
		return "INTERSECT"
	case Except:
		return "EXCEPT"
	}
	return "SetOp(" + strconv.Itoa(int(op)) + ")"
}

// SetQuery combines two query commands with UNION, INTERSECT or EXCEPT.
type SetQuery struct {
	CacheHint *CacheHint
	Op        SetOp
	All       bool
	Left      QueryCommand
	Right     QueryCommand
	OrderBy   *OrderBy
	Limit     *Limit
	Option    *Option
}

func (s *SetQuery) Accept(v Visitor) string { return v.VisitSetQuery(s) }
func (*SetQuery) commandNode()              {}
func (*SetQuery) queryCommandNode()         {}
func (s *SetQuery) OrderClause() *OrderBy   { return s.OrderBy }
func (s *SetQuery) LimitClause() *Limit     { return s.Limit }
