package astdoc

import (
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var fromBuilders = map[string]builder{
	"group":      buildUnary,
	"join":       buildJoin,
	"subquery":   buildSubqueryFrom,
	"texttable":  buildTextTable,
	"xmltable":   buildXMLTable,
	"arraytable": buildArrayTable,
}

// decodeFromClause accepts a FROM item mapping or a group name.
func decodeFromClause(n *yaml.Node) (nodes.FromClause, error) {
	if n.Kind == yaml.ScalarNode {
		return nodes.NewUnaryFromClause(nodes.NewGroupSymbol(n.Value)), nil
	}
	return decodeAs[nodes.FromClause](n, "a FROM item")
}

func (o *object) fromClause(key string) nodes.FromClause {
	n := o.require(key)
	if n == nil || o.err != nil {
		return nil
	}
	c, err := decodeFromClause(n)
	o.fail(err)
	return c
}

func (o *object) fromClauses(key string) []nodes.FromClause {
	var out []nodes.FromClause
	o.each(key, func(n *yaml.Node) error {
		c, err := decodeFromClause(n)
		out = append(out, c)
		return err
	})
	return out
}

// fromHints reads hints: [optional, makedep, makenotdep, makeind, no_unnest, preserve].
func fromHints(o *object) nodes.FromHints {
	var h nodes.FromHints
	for _, s := range o.strs("hints") {
		switch s {
		case "optional":
			h.Optional = true
		case "makedep":
			h.MakeDep = true
		case "makenotdep":
			h.MakeNotDep = true
		case "makeind":
			h.MakeInd = true
		case "no_unnest":
			h.NoUnnest = true
		case "preserve":
			h.Preserve = true
		default:
			o.fail(errorAt(o.get("hints"), "%w: FROM hint %q", ErrInvalidValue, s))
		}
	}
	return h
}

func buildUnary(o *object) nodes.Node {
	g := o.reqGroup("name")
	if alias := o.str("alias"); alias != "" {
		g = g.Alias(alias)
	}
	return &nodes.UnaryFromClause{FromHints: fromHints(o), Group: g}
}

var joinTypes = map[string]nodes.JoinType{
	"inner":     nodes.InnerJoin,
	"cross":     nodes.CrossJoin,
	"left":      nodes.LeftOuterJoin,
	"right":     nodes.RightOuterJoin,
	"full":      nodes.FullOuterJoin,
	"union":     nodes.UnionJoin,
	"semi":      nodes.SemiJoin,
	"anti_semi": nodes.AntiSemiJoin,
}

func buildJoin(o *object) nodes.Node {
	return &nodes.JoinPredicate{
		FromHints: fromHints(o),
		Left:      o.fromClause("left"),
		Right:     o.fromClause("right"),
		Type:      enum(o, "type", joinTypes, nodes.InnerJoin),
		Criteria:  o.criteriaList("on"),
	}
}

func buildSubqueryFrom(o *object) nodes.Node {
	return &nodes.SubqueryFromClause{
		FromHints: fromHints(o),
		Command:   o.command("query"),
		Name:      o.reqStr("name"),
		Table:     o.boolean("table"),
	}
}

func buildTextTable(o *object) nodes.Node {
	t := &nodes.TextTable{
		FromHints:      fromHints(o),
		File:           o.reqExpr("file"),
		Selector:       o.str("selector"),
		NoRowDelimiter: o.boolean("no_row_delimiter"),
		Delimiter:      o.char("delimiter"),
		Escape:         o.has("escape"),
		Header:         o.integer("header"),
		Skip:           o.integer("skip"),
		Name:           o.reqStr("name"),
	}
	if t.Escape {
		t.Quote = o.char("escape")
	} else {
		t.Quote = o.char("quote")
	}
	o.each("columns", func(n *yaml.Node) error {
		o.sub(n, func(c *object) {
			t.Columns = append(t.Columns, &nodes.TextColumn{
				ProjectedColumn: projectedColumn(c),
				Ordinal:         c.boolean("ordinal"),
				Width:           c.integer("width"),
				NoTrim:          c.boolean("no_trim"),
				Selector:        c.str("selector"),
				Position:        c.integer("position"),
			})
		})
		return nil
	})
	return t
}

// projectedColumn reads name and type; ordinality columns have no type.
func projectedColumn(c *object) nodes.ProjectedColumn {
	pc := nodes.ProjectedColumn{Name: c.reqStr("name")}
	if !c.boolean("ordinal") {
		pc.Type = c.reqStr("type")
	}
	return pc
}

func buildXMLTable(o *object) nodes.Node {
	t := &nodes.XMLTable{
		FromHints:          fromHints(o),
		Namespaces:         o.namespaces("namespaces"),
		XQuery:             o.reqStr("xquery"),
		Passing:            o.derivedColumns("passing"),
		UsingDefaultColumn: o.boolean("default_column"),
		Name:               o.reqStr("name"),
	}
	o.each("columns", func(n *yaml.Node) error {
		o.sub(n, func(c *object) {
			t.Columns = append(t.Columns, &nodes.XMLColumn{
				ProjectedColumn: projectedColumn(c),
				Ordinal:         c.boolean("ordinal"),
				Default:         c.expr("default"),
				Path:            c.str("path"),
			})
		})
		return nil
	})
	return t
}

func buildArrayTable(o *object) nodes.Node {
	t := &nodes.ArrayTable{FromHints: fromHints(o), Array: o.reqExpr("array"), Name: o.reqStr("name")}
	o.each("columns", func(n *yaml.Node) error {
		o.sub(n, func(c *object) {
			pc := nodes.ProjectedColumn{Name: c.reqStr("name"), Type: c.reqStr("type")}
			t.Columns = append(t.Columns, &pc)
		})
		return nil
	})
	return t
}
