package visitors

import (
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

func (v *SQLStringVisitor) VisitInsert(n *nodes.Insert) string {
	var sb strings.Builder
	if n.Merge {
		sb.WriteString("MERGE")
	} else {
		sb.WriteString("INSERT")
	}
	sb.WriteString(" INTO ")
	sb.WriteString(v.visit(n.Group))
	sb.WriteString(" ")
	if len(n.Columns) > 0 {
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = v.shortName(c)
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString(") ")
	}
	if !isNil(n.Query) {
		sb.WriteString(v.visit(n.Query))
	} else {
		sb.WriteString("VALUES (")
		sb.WriteString(visitList(v, n.Values, ", "))
		sb.WriteString(")")
	}
	if n.Option != nil {
		v.writeClause(&sb, "", n.Option)
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitSetClause(n *nodes.SetClause) string {
	return v.shortName(n.Symbol) + " = " + v.visit(n.Value)
}

func (v *SQLStringVisitor) VisitUpdate(n *nodes.Update) string {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(v.visit(n.Group))
	sb.WriteString(v.beginClause(1))
	sb.WriteString("SET ")
	sb.WriteString(visitList(v, n.Changes, ", "))
	if !isNil(n.Where) {
		v.writeClause(&sb, "WHERE ", n.Where)
	}
	if n.Option != nil {
		v.writeClause(&sb, "", n.Option)
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitDelete(n *nodes.Delete) string {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(v.visit(n.Group))
	if !isNil(n.Where) {
		v.writeClause(&sb, "WHERE ", n.Where)
	}
	if n.Option != nil {
		v.writeClause(&sb, "", n.Option)
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitStoredProcedure(n *nodes.StoredProcedure) string {
	var sb strings.Builder
	sb.WriteString(cacheHint(n.CacheHint))
	if n.CalledWithReturn {
		if ret := n.ReturnParameter(); ret != nil && !isNil(ret.Expr) {
			sb.WriteString(v.visit(ret.Expr))
		} else {
			sb.WriteString("?")
		}
		sb.WriteString(" = ")
	}
	sb.WriteString("EXEC ")
	sb.WriteString(quoting.EscapeName(n.Name))
	sb.WriteString("(")
	var args []string
	for _, p := range n.Params {
		if p == nil || p.UsingDefault || isNil(p.Expr) ||
			p.Mode == nodes.ParamReturnValue || p.Mode == nodes.ParamResultSet {
			continue
		}
		expr := v.visit(p.Expr)
		if n.NamedParameters {
			args = append(args, quoting.EscapeSinglePart(p.Name)+" => "+expr)
			continue
		}
		if _, ok := p.Expr.(*nodes.CompareCriteria); ok {
			expr = "(" + expr + ")"
		}
		args = append(args, expr)
	}
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")
	if n.Option != nil {
		v.writeClause(&sb, "", n.Option)
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitCreate(n *nodes.Create) string {
	var sb strings.Builder
	sb.WriteString("CREATE LOCAL TEMPORARY TABLE ")
	sb.WriteString(v.visit(n.Table))
	sb.WriteString(" (")
	parts := make([]string, 0, len(n.Columns)+1)
	for _, c := range n.Columns {
		parts = append(parts, columnDefinition(c))
	}
	if len(n.PrimaryKey) > 0 {
		keys := make([]string, len(n.PrimaryKey))
		for i, k := range n.PrimaryKey {
			keys[i] = quoting.EscapeSinglePart(k)
		}
		parts = append(parts, "PRIMARY KEY("+strings.Join(keys, ", ")+")")
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	return sb.String()
}

// columnDefinition renders a temporary table column. An auto-incremented
// integer column is declared with the serial pseudo-type.
func columnDefinition(c *nodes.ColumnDefinition) string {
	if c == nil {
		return undefined
	}
	s := quoting.EscapeSinglePart(c.Name) + " "
	if c.AutoIncrement && c.Type == nodes.TypeInteger {
		s += "serial"
	} else {
		s += c.Type.String()
	}
	if c.NotNull {
		s += " NOT NULL"
	}
	return s
}

func (v *SQLStringVisitor) VisitDrop(n *nodes.Drop) string {
	return "DROP TABLE " + v.visit(n.Table)
}
