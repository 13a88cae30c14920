package visitors

import (
	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

func (v *SQLStringVisitor) VisitElementSymbol(n *nodes.ElementSymbol) string {
	return quoting.EscapeName(n.DisplayName())
}

func (v *SQLStringVisitor) VisitGroupSymbol(n *nodes.GroupSymbol) string {
	if n.IsAliased() {
		return quoting.EscapeName(n.Definition) + " AS " + quoting.EscapeSinglePart(n.Name)
	}
	return quoting.EscapeName(n.Name)
}

func (v *SQLStringVisitor) VisitAliasSymbol(n *nodes.AliasSymbol) string {
	return v.visit(n.Symbol) + " AS " + quoting.EscapeSinglePart(n.Name)
}

func (v *SQLStringVisitor) VisitExpressionSymbol(n *nodes.ExpressionSymbol) string {
	return v.visit(n.Expr)
}

func (v *SQLStringVisitor) VisitMultipleElementSymbol(n *nodes.MultipleElementSymbol) string {
	if n.Group == nil {
		return "*"
	}
	return quoting.EscapeName(n.Group.Name) + ".*"
}

func (v *SQLStringVisitor) VisitReference(*nodes.Reference) string {
	return "?"
}

// shortName renders the unqualified, escaped name of an element.
func (v *SQLStringVisitor) shortName(e *nodes.ElementSymbol) string {
	if e == nil {
		return undefined
	}
	return quoting.EscapeSinglePart(e.ShortName())
}
