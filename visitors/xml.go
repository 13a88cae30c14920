package visitors

import (
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

func (v *SQLStringVisitor) VisitDerivedColumn(n *nodes.DerivedColumn) string {
	s := v.visit(n.Expr)
	if n.Alias != "" {
		s += " AS " + quoting.EscapeSinglePart(n.Alias)
	}
	return s
}

func (v *SQLStringVisitor) VisitXMLNamespaces(n *nodes.XMLNamespaces) string {
	items := make([]string, len(n.Items))
	for i, it := range n.Items {
		switch {
		case it.Prefix == "" && it.URI == "":
			items[i] = "NO DEFAULT"
		case it.Prefix == "":
			items[i] = "DEFAULT " + quoting.QuoteString(it.URI)
		default:
			items[i] = quoting.QuoteString(it.URI) + " AS " + quoting.EscapeSinglePart(it.Prefix)
		}
	}
	return "XMLNAMESPACES(" + strings.Join(items, ", ") + ")"
}

func (v *SQLStringVisitor) VisitXMLAttributes(n *nodes.XMLAttributes) string {
	return "XMLATTRIBUTES(" + visitList(v, n.Args, ", ") + ")"
}

func (v *SQLStringVisitor) VisitXMLElement(n *nodes.XMLElement) string {
	var sb strings.Builder
	sb.WriteString("XMLELEMENT(NAME ")
	sb.WriteString(quoting.EscapeSinglePart(n.Name))
	if n.Namespaces != nil {
		sb.WriteString(", ")
		sb.WriteString(v.visit(n.Namespaces))
	}
	if n.Attributes != nil {
		sb.WriteString(", ")
		sb.WriteString(v.visit(n.Attributes))
	}
	if len(n.Content) > 0 {
		sb.WriteString(", ")
		sb.WriteString(visitList(v, n.Content, ", "))
	}
	sb.WriteString(")")
	return sb.String()
}

func (v *SQLStringVisitor) VisitXMLForest(n *nodes.XMLForest) string {
	var sb strings.Builder
	sb.WriteString("XMLFOREST(")
	if n.Namespaces != nil {
		sb.WriteString(v.visit(n.Namespaces))
		sb.WriteString(", ")
	}
	sb.WriteString(visitList(v, n.Args, ", "))
	sb.WriteString(")")
	return sb.String()
}

func (v *SQLStringVisitor) VisitXMLParse(n *nodes.XMLParse) string {
	kind := "CONTENT "
	if n.Document {
		kind = "DOCUMENT "
	}
	s := "XMLPARSE(" + kind + v.visit(n.Expr)
	if n.WellFormed {
		s += " WELLFORMED"
	}
	return s + ")"
}

func (v *SQLStringVisitor) VisitXMLSerialize(n *nodes.XMLSerialize) string {
	var sb strings.Builder
	sb.WriteString("XMLSERIALIZE(")
	switch n.Kind {
	case nodes.XMLKindDocument:
		sb.WriteString("DOCUMENT ")
	case nodes.XMLKindContent:
		sb.WriteString("CONTENT ")
	}
	sb.WriteString(v.visit(n.Expr))
	if n.Type != "" {
		sb.WriteString(" AS ")
		sb.WriteString(n.Type)
	}
	if n.Version != "" {
		sb.WriteString(" VERSION ")
		sb.WriteString(quoting.QuoteString(n.Version))
	}
	switch n.Declaration {
	case nodes.DeclarationIncluding:
		sb.WriteString(" INCLUDING XMLDECLARATION")
	case nodes.DeclarationExcluding:
		sb.WriteString(" EXCLUDING XMLDECLARATION")
	}
	sb.WriteString(")")
	return sb.String()
}

func (v *SQLStringVisitor) VisitXMLQuery(n *nodes.XMLQuery) string {
	var sb strings.Builder
	if n.Exists {
		sb.WriteString("XMLEXISTS(")
	} else {
		sb.WriteString("XMLQUERY(")
	}
	if n.Namespaces != nil {
		sb.WriteString(v.visit(n.Namespaces))
		sb.WriteString(", ")
	}
	sb.WriteString(quoting.QuoteString(n.XQuery))
	if len(n.Passing) > 0 {
		sb.WriteString(" PASSING ")
		sb.WriteString(visitList(v, n.Passing, ", "))
	}
	if !n.Exists {
		switch n.Empty {
		case nodes.NullOnEmpty:
			sb.WriteString(" NULL ON EMPTY")
		case nodes.EmptyOnEmpty:
			sb.WriteString(" EMPTY ON EMPTY")
		}
	}
	sb.WriteString(")")
	return sb.String()
}

func (v *SQLStringVisitor) VisitQueryString(n *nodes.QueryString) string {
	s := "QUERYSTRING(" + v.visit(n.Path)
	if len(n.Args) > 0 {
		s += ", " + visitList(v, n.Args, ", ")
	}
	return s + ")"
}
