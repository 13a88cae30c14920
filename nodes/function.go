package nodes

// Function is a scalar function call. The operators + - * / and || are
// functions too; they render infix.
type Function struct {
	Name     string
	Args     []Expression
	Implicit bool // conversion inserted by resolution, rendered as its first argument
}

// NewFunction creates a function call.
func NewFunction(name string, args ...Expression) *Function {
	return &Function{Name: name, Args: args}
}

// Cast creates CAST(expr AS typeName).
func Cast(expr Expression, typeName string) *Function {
	return &Function{Name: "CAST", Args: []Expression{expr, NewConstant(typeName)}}
}

// Convert creates CONVERT(expr, typeName).
func Convert(expr Expression, typeName string) *Function {
	return &Function{Name: "CONVERT", Args: []Expression{expr, NewConstant(typeName)}}
}

func (f *Function) Accept(v Visitor) string { return v.VisitFunction(f) }
func (*Function) expressionNode()           {}

// AggregateSymbol is an aggregate function call such as COUNT(*) or
// STRING_AGG(x, ',' ORDER BY y).
type AggregateSymbol struct {
	Name        string
	Args        []Expression // empty for COUNT(*)
	Distinct    bool
	UserDefined bool // user-defined aggregates render ALL when not DISTINCT
	OrderBy     *OrderBy
	Filter      Criteria // FILTER (WHERE ...)
}

// NewAggregate creates an aggregate call.
func NewAggregate(name string, args ...Expression) *AggregateSymbol {
	return &AggregateSymbol{Name: name, Args: args}
}

// Count creates COUNT(expr), or COUNT(*) when expr is nil.
func Count(expr Expression) *AggregateSymbol {
	if expr == nil {
		return &AggregateSymbol{Name: "COUNT"}
	}
	return NewAggregate("COUNT", expr)
}

// Sum creates SUM(expr).
func Sum(expr Expression) *AggregateSymbol { return NewAggregate("SUM", expr) }

// Avg creates AVG(expr).
func Avg(expr Expression) *AggregateSymbol { return NewAggregate("AVG", expr) }

// Min creates MIN(expr).
func Min(expr Expression) *AggregateSymbol { return NewAggregate("MIN", expr) }

// Max creates MAX(expr).
func Max(expr Expression) *AggregateSymbol { return NewAggregate("MAX", expr) }

func (a *AggregateSymbol) Accept(v Visitor) string { return v.VisitAggregateSymbol(a) }
func (*AggregateSymbol) expressionNode()           {}

// Over wraps the aggregate in a window function.
func (a *AggregateSymbol) Over(spec *WindowSpecification) *WindowFunction {
	return &WindowFunction{Function: a, Window: spec}
}

// WindowFunction is an aggregate or analytic function with an OVER clause.
type WindowFunction struct {
	Function *AggregateSymbol
	Window   *WindowSpecification
}

func (w *WindowFunction) Accept(v Visitor) string { return v.VisitWindowFunction(w) }
func (*WindowFunction) expressionNode()           {}

// FrameMode specifies ROWS or RANGE for a window frame.
type FrameMode int

const (
	FrameRows FrameMode = iota
	FrameRange
)

// BoundType specifies a window frame boundary.
type BoundType int

const (
	BoundUnboundedPreceding BoundType = iota
	BoundPreceding
	BoundCurrentRow
	BoundFollowing
	BoundUnboundedFollowing
)

// WindowSpecification is the parenthesised body of an OVER clause.
type WindowSpecification struct {
	PartitionBy []Expression
	OrderBy     *OrderBy
	Frame       *WindowFrame
}

func (w *WindowSpecification) Accept(v Visitor) string { return v.VisitWindowSpecification(w) }

// WindowFrame describes the frame clause (ROWS/RANGE [BETWEEN ... AND ...]).
type WindowFrame struct {
	Mode  FrameMode
	Start FrameBound
	End   *FrameBound // nil means no BETWEEN (just the Start bound)
}

// FrameBound describes a single frame boundary.
type FrameBound struct {
	Type   BoundType
	Offset int // only for BoundPreceding / BoundFollowing
}

// CaseExpression is CASE expr WHEN value THEN result ... [ELSE result] END.
type CaseExpression struct {
	Expr  Expression
	Whens []Expression
	Thens []Expression
	Else  Expression
}

func (c *CaseExpression) Accept(v Visitor) string { return v.VisitCaseExpression(c) }
func (*CaseExpression) expressionNode()           {}

// SearchedCaseExpression is CASE WHEN criteria THEN result ... [ELSE result] END.
type SearchedCaseExpression struct {
	Whens []Criteria
	Thens []Expression
	Else  Expression
}

func (c *SearchedCaseExpression) Accept(v Visitor) string { return v.VisitSearchedCaseExpression(c) }
func (*SearchedCaseExpression) expressionNode()           {}

// ScalarSubquery is a query used as a single value.
type ScalarSubquery struct {
	Command QueryCommand
}

func (s *ScalarSubquery) Accept(v Visitor) string { return v.VisitScalarSubquery(s) }
func (*ScalarSubquery) expressionNode()           {}

// Array is a value list constructor: (a, b, c).
type Array struct {
	Exprs    []Expression
	Implicit bool // rendered without surrounding parentheses
}

func (a *Array) Accept(v Visitor) string { return v.VisitArray(a) }
func (*Array) expressionNode()           {}
