package visitors

import (
	"fmt"
	"strings"

	"github.com/johnathonlee/sqltext/nodes"
)

// Functions rendered as fully parenthesised infix operators.
var infixFunctions = map[string]bool{
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"||": true,
}

func (v *SQLStringVisitor) VisitFunction(n *nodes.Function) string {
	if n.Implicit {
		return v.visit(arg(n.Args, 0))
	}

	name := n.Name
	switch {
	case infixFunctions[name]:
		return "(" + visitList(v, n.Args, " "+name+" ") + ")"
	case strings.EqualFold(name, "CAST"), strings.EqualFold(name, "CONVERT"):
		return v.conversion(n)
	case strings.EqualFold(name, "TIMESTAMPADD"), strings.EqualFold(name, "TIMESTAMPDIFF"):
		return v.timestampFunction(n)
	case strings.EqualFold(name, "TRIM") && len(n.Args) == 3:
		if spec, ok := n.Args[0].(*nodes.Constant); ok && spec != nil && spec.Value != nil {
			return v.trim(n, fmt.Sprint(spec.Value))
		}
	}
	return name + "(" + visitList(v, n.Args, ", ") + ")"
}

// conversion renders CAST(x AS type) or CONVERT(x, type). The target type is
// the value of the second argument.
func (v *SQLStringVisitor) conversion(n *nodes.Function) string {
	sep := " AS "
	if strings.EqualFold(n.Name, "CONVERT") {
		sep = ", "
	}
	typeName := undefined
	if c, ok := arg(n.Args, 1).(*nodes.Constant); ok && c != nil && c.Value != nil {
		typeName = fmt.Sprint(c.Value)
	}
	return n.Name + "(" + v.visit(arg(n.Args, 0)) + sep + typeName + ")"
}

// timestampFunction renders the interval argument as a bare keyword.
func (v *SQLStringVisitor) timestampFunction(n *nodes.Function) string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		if c, ok := a.(*nodes.Constant); ok && i == 0 && c != nil && c.Value != nil {
			parts[i] = fmt.Sprint(c.Value)
			continue
		}
		parts[i] = v.visit(a)
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}

// trim renders TRIM([LEADING|TRAILING] char FROM expr). BOTH is the default.
func (v *SQLStringVisitor) trim(n *nodes.Function, spec string) string {
	var sb strings.Builder
	sb.WriteString(n.Name)
	sb.WriteString("(")
	if !strings.EqualFold(spec, "BOTH") {
		sb.WriteString(spec)
		sb.WriteString(" ")
	}
	sb.WriteString(v.visit(n.Args[1]))
	sb.WriteString(" FROM ")
	sb.WriteString(v.visit(n.Args[2]))
	sb.WriteString(")")
	return sb.String()
}

func (v *SQLStringVisitor) VisitAggregateSymbol(n *nodes.AggregateSymbol) string {
	var sb strings.Builder
	sb.WriteString(n.Name)
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	} else if n.UserDefined {
		sb.WriteString("ALL ")
	}
	if len(n.Args) == 0 && strings.EqualFold(n.Name, "COUNT") {
		sb.WriteString("*")
	} else {
		sb.WriteString(visitList(v, n.Args, ", "))
	}
	if n.OrderBy != nil {
		sb.WriteString(" ")
		sb.WriteString(v.visit(n.OrderBy))
	}
	sb.WriteString(")")
	if !isNil(n.Filter) {
		sb.WriteString(" FILTER(WHERE ")
		sb.WriteString(v.visit(n.Filter))
		sb.WriteString(")")
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitWindowFunction(n *nodes.WindowFunction) string {
	return v.visit(n.Function) + " OVER " + v.visit(n.Window)
}

func (v *SQLStringVisitor) VisitWindowSpecification(n *nodes.WindowSpecification) string {
	var parts []string
	if len(n.PartitionBy) > 0 {
		parts = append(parts, "PARTITION BY "+visitList(v, n.PartitionBy, ", "))
	}
	if n.OrderBy != nil {
		parts = append(parts, v.visit(n.OrderBy))
	}
	if n.Frame != nil {
		parts = append(parts, renderFrame(n.Frame))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Frame type SQL keywords.
var frameModeSQL = [...]string{
	nodes.FrameRows:  "ROWS",
	nodes.FrameRange: "RANGE",
}

// renderFrame renders a window frame as SQL.
func renderFrame(f *nodes.WindowFrame) string {
	var sb strings.Builder
	sb.WriteString(keyword(frameModeSQL[:], f.Mode, "frame mode"))
	if f.End != nil {
		sb.WriteString(" BETWEEN ")
		sb.WriteString(renderBound(f.Start))
		sb.WriteString(" AND ")
		sb.WriteString(renderBound(*f.End))
	} else {
		sb.WriteString(" ")
		sb.WriteString(renderBound(f.Start))
	}
	return sb.String()
}

// renderBound renders a single frame bound as SQL.
func renderBound(fb nodes.FrameBound) string {
	switch fb.Type {
	case nodes.BoundUnboundedPreceding:
		return "UNBOUNDED PRECEDING"
	case nodes.BoundPreceding:
		return fmt.Sprintf("%d PRECEDING", fb.Offset)
	case nodes.BoundCurrentRow:
		return "CURRENT ROW"
	case nodes.BoundFollowing:
		return fmt.Sprintf("%d FOLLOWING", fb.Offset)
	case nodes.BoundUnboundedFollowing:
		return "UNBOUNDED FOLLOWING"
	}
	panic(fmt.Sprintf("sqltext: unknown frame bound %d", int(fb.Type)))
}

func (v *SQLStringVisitor) VisitCaseExpression(n *nodes.CaseExpression) string {
	var sb strings.Builder
	sb.WriteString("CASE ")
	sb.WriteString(v.visit(n.Expr))
	for i, w := range n.Whens {
		sb.WriteString(" WHEN ")
		sb.WriteString(v.visit(w))
		sb.WriteString(" THEN ")
		sb.WriteString(v.visit(arg(n.Thens, i)))
	}
	if !isNil(n.Else) {
		sb.WriteString(" ELSE ")
		sb.WriteString(v.visit(n.Else))
	}
	sb.WriteString(" END")
	return sb.String()
}

func (v *SQLStringVisitor) VisitSearchedCaseExpression(n *nodes.SearchedCaseExpression) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for i, w := range n.Whens {
		sb.WriteString(" WHEN ")
		sb.WriteString(v.visit(w))
		sb.WriteString(" THEN ")
		sb.WriteString(v.visit(arg(n.Thens, i)))
	}
	if !isNil(n.Else) {
		sb.WriteString(" ELSE ")
		sb.WriteString(v.visit(n.Else))
	}
	sb.WriteString(" END")
	return sb.String()
}

func (v *SQLStringVisitor) VisitScalarSubquery(n *nodes.ScalarSubquery) string {
	return "(" + v.visit(n.Command) + ")"
}

func (v *SQLStringVisitor) VisitArray(n *nodes.Array) string {
	list := visitList(v, n.Exprs, ", ")
	if n.Implicit {
		return list
	}
	if len(n.Exprs) == 1 {
		return "(" + list + ",)"
	}
	return "(" + list + ")"
}
