package astdoc

import (
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var xmlBuilders = map[string]builder{
	"xmlelement":   buildXMLElement,
	"xmlforest":    buildXMLForest,
	"xmlparse":     buildXMLParse,
	"xmlserialize": buildXMLSerialize,
	"xmlquery":     buildXMLQuery(false),
	"xmlexists":    buildXMLQuery(true),
	"querystring":  buildQueryString,
}

// derivedColumns reads items that are expressions or {expr, alias}.
func (o *object) derivedColumns(key string) []*nodes.DerivedColumn {
	var out []*nodes.DerivedColumn
	o.each(key, func(n *yaml.Node) error {
		if n.Kind != yaml.MappingNode || hasKind(n) {
			e, err := decodeExpression(n)
			out = append(out, &nodes.DerivedColumn{Expr: e})
			return err
		}
		o.sub(n, func(d *object) {
			out = append(out, &nodes.DerivedColumn{Expr: d.reqExpr("expr"), Alias: d.str("alias")})
		})
		return nil
	})
	return out
}

// namespaces reads [{prefix, uri}]; an item without prefix is the default
// namespace and an empty item is NO DEFAULT.
func (o *object) namespaces(key string) *nodes.XMLNamespaces {
	if !o.has(key) {
		return nil
	}
	ns := &nodes.XMLNamespaces{}
	o.each(key, func(n *yaml.Node) error {
		o.sub(n, func(it *object) {
			ns.Items = append(ns.Items, nodes.NamespaceItem{Prefix: it.str("prefix"), URI: it.str("uri")})
		})
		return nil
	})
	return ns
}

func buildXMLElement(o *object) nodes.Node {
	x := &nodes.XMLElement{
		Name:       o.reqStr("name"),
		Namespaces: o.namespaces("namespaces"),
		Content:    o.exprs("content"),
	}
	if o.has("attributes") {
		x.Attributes = &nodes.XMLAttributes{Args: o.derivedColumns("attributes")}
	}
	return x
}

func buildXMLForest(o *object) nodes.Node {
	return &nodes.XMLForest{Namespaces: o.namespaces("namespaces"), Args: o.derivedColumns("args")}
}

func buildXMLParse(o *object) nodes.Node {
	return &nodes.XMLParse{Document: o.boolean("document"), Expr: o.reqExpr("expr"), WellFormed: o.boolean("wellformed")}
}

var xmlKinds = map[string]nodes.XMLKind{
	"document": nodes.XMLKindDocument,
	"content":  nodes.XMLKindContent,
}

var declarations = map[string]nodes.XMLDeclaration{
	"including": nodes.DeclarationIncluding,
	"excluding": nodes.DeclarationExcluding,
}

func buildXMLSerialize(o *object) nodes.Node {
	return &nodes.XMLSerialize{
		Kind:        enum(o, "mode", xmlKinds, nodes.XMLKindUnspecified),
		Expr:        o.reqExpr("expr"),
		Type:        o.str("as"),
		Version:     o.str("version"),
		Declaration: enum(o, "declaration", declarations, nodes.DeclarationUnspecified),
	}
}

var emptyHandlings = map[string]nodes.EmptyHandling{
	"null":  nodes.NullOnEmpty,
	"empty": nodes.EmptyOnEmpty,
}

func buildXMLQuery(exists bool) builder {
	return func(o *object) nodes.Node {
		return &nodes.XMLQuery{
			Namespaces: o.namespaces("namespaces"),
			XQuery:     o.reqStr("xquery"),
			Passing:    o.derivedColumns("passing"),
			Empty:      enum(o, "on_empty", emptyHandlings, nodes.EmptyUnspecified),
			Exists:     exists,
		}
	}
}

func buildQueryString(o *object) nodes.Node {
	return &nodes.QueryString{Path: o.reqExpr("path"), Args: o.derivedColumns("args")}
}
