package astdoc

import (
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var commandBuilders = map[string]builder{
	"query":     buildQuery,
	"union":     buildSetQuery(nodes.Union),
	"intersect": buildSetQuery(nodes.Intersect),
	"except":    buildSetQuery(nodes.Except),
	"insert":    buildInsert(false),
	"merge":     buildInsert(true),
	"update":    buildUpdate,
	"delete":    buildDelete,
	"exec":      buildStoredProcedure,
	"create":    buildCreate,
	"drop":      buildDrop,
}

func buildQuery(o *object) nodes.Node {
	q := &nodes.Query{CacheHint: o.cacheHint("cache")}
	o.each("with", func(n *yaml.Node) error {
		o.sub(n, func(w *object) {
			q.With = append(q.With, &nodes.WithQueryCommand{
				Group:   w.reqGroup("name"),
				Columns: w.elements("columns"),
				Command: w.queryCommand("query"),
			})
		})
		return nil
	})
	if o.has("select") || o.has("distinct") {
		q.Select = &nodes.Select{Distinct: o.boolean("distinct"), Symbols: o.exprs("select")}
	}
	if into := o.group("into"); into != nil {
		q.Into = &nodes.Into{Group: into}
	}
	if o.has("from") {
		q.From = nodes.NewFrom(o.fromClauses("from")...)
	}
	q.Where = o.criteria("where")
	if o.has("group_by") {
		q.GroupBy = &nodes.GroupBy{Symbols: o.exprs("group_by"), Rollup: o.boolean("rollup")}
	}
	q.Having = o.criteria("having")
	q.OrderBy = o.orderBy("order_by")
	q.Limit = o.limit("limit")
	q.Option = o.option("option")
	return q
}

func buildSetQuery(op nodes.SetOp) builder {
	return func(o *object) nodes.Node {
		return &nodes.SetQuery{
			CacheHint: o.cacheHint("cache"),
			Op:        op,
			All:       o.boolean("all"),
			Left:      o.queryCommand("left"),
			Right:     o.queryCommand("right"),
			OrderBy:   o.orderBy("order_by"),
			Limit:     o.limit("limit"),
			Option:    o.option("option"),
		}
	}
}

var nullOrderings = map[string]nodes.NullOrdering{
	"first": nodes.NullsFirst,
	"last":  nodes.NullsLast,
}

// orderBy reads a list of items; an item is an expression shorthand or
// {expr, desc, nulls}.
func (o *object) orderBy(key string) *nodes.OrderBy {
	if !o.has(key) {
		return nil
	}
	ob := nodes.NewOrderBy()
	o.each(key, func(n *yaml.Node) error {
		if n.Kind != yaml.MappingNode || hasKind(n) {
			e, err := decodeExpression(n)
			ob.Items = append(ob.Items, &nodes.OrderByItem{Symbol: e})
			return err
		}
		o.sub(n, func(it *object) {
			ob.Items = append(ob.Items, &nodes.OrderByItem{
				Symbol:     it.reqExpr("expr"),
				Descending: it.boolean("desc"),
				Nulls:      enum(it, "nulls", nullOrderings, nodes.NullsDefault),
			})
		})
		return nil
	})
	return ob
}

func hasKind(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "kind" {
			return true
		}
	}
	return false
}

// limit reads {offset, rows, non_strict}.
func (o *object) limit(key string) *nodes.Limit {
	var l *nodes.Limit
	o.sub(o.get(key), func(s *object) {
		l = &nodes.Limit{Offset: s.expr("offset"), RowLimit: s.expr("rows"), NonStrict: s.boolean("non_strict")}
	})
	return l
}

// option reads {makedep, makenotdep, nocache}; nocache is true or a list
// of groups.
func (o *object) option(key string) *nodes.Option {
	var opt *nodes.Option
	o.sub(o.get(key), func(s *object) {
		opt = &nodes.Option{MakeDep: s.strs("makedep"), MakeNotDep: s.strs("makenotdep")}
		if n := s.get("nocache"); n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
			opt.NoCache = s.boolean("nocache")
		} else {
			opt.NoCacheGroups = s.strs("nocache")
		}
	})
	return opt
}

// cacheHint reads true or {pref_mem, ttl, updatable, scope, min_rows}.
func (o *object) cacheHint(key string) *nodes.CacheHint {
	n := o.get(key)
	if n == nil {
		return nil
	}
	if n.Kind == yaml.ScalarNode {
		if o.boolean(key) {
			return &nodes.CacheHint{}
		}
		return nil
	}
	var h *nodes.CacheHint
	o.sub(n, func(s *object) {
		h = &nodes.CacheHint{
			PrefersMemory: s.boolean("pref_mem"),
			TTL:           s.optInt64("ttl"),
			Updatable:     s.boolean("updatable"),
			Scope:         s.str("scope"),
			MinRows:       s.optInt64("min_rows"),
		}
	})
	return h
}

func buildInsert(merge bool) builder {
	return func(o *object) nodes.Node {
		ins := &nodes.Insert{
			Group:   o.reqGroup("group"),
			Columns: o.elements("columns"),
			Merge:   merge,
			Option:  o.option("option"),
		}
		if o.has("query") {
			ins.Query = o.queryCommand("query")
		} else {
			ins.Values = o.exprs("values")
		}
		return ins
	}
}

func buildUpdate(o *object) nodes.Node {
	u := &nodes.Update{Group: o.reqGroup("group")}
	o.each("set", func(n *yaml.Node) error {
		o.sub(n, func(s *object) {
			u.Changes = append(u.Changes, &nodes.SetClause{Symbol: s.element("column"), Value: s.reqExpr("value")})
		})
		return nil
	})
	u.Where = o.criteria("where")
	u.Option = o.option("option")
	return u
}

func buildDelete(o *object) nodes.Node {
	return &nodes.Delete{Group: o.reqGroup("group"), Where: o.criteria("where"), Option: o.option("option")}
}

var paramModes = map[string]nodes.ParamMode{
	"in":         nodes.ParamIn,
	"out":        nodes.ParamOut,
	"inout":      nodes.ParamInOut,
	"return":     nodes.ParamReturnValue,
	"result_set": nodes.ParamResultSet,
}

func buildStoredProcedure(o *object) nodes.Node {
	sp := &nodes.StoredProcedure{
		CacheHint:        o.cacheHint("cache"),
		Name:             o.reqStr("name"),
		NamedParameters:  o.boolean("named"),
		CalledWithReturn: o.boolean("with_return"),
		Option:           o.option("option"),
	}
	o.each("params", func(n *yaml.Node) error {
		o.sub(n, func(p *object) {
			sp.Params = append(sp.Params, &nodes.SPParameter{
				Name:         p.str("name"),
				Mode:         enum(p, "mode", paramModes, nodes.ParamIn),
				Expr:         p.expr("value"),
				UsingDefault: p.boolean("default"),
			})
		})
		return nil
	})
	return sp
}

func buildCreate(o *object) nodes.Node {
	c := &nodes.Create{Table: o.reqGroup("table"), PrimaryKey: o.strs("primary_key")}
	o.each("columns", func(n *yaml.Node) error {
		o.sub(n, func(col *object) {
			name := col.reqStr("name")
			typeName := col.reqStr("type")
			t, ok := nodes.ParseDataType(typeName)
			if !ok && col.err == nil {
				col.fail(errorAt(col.get("type"), "%w: type %q", ErrInvalidValue, typeName))
			}
			c.Columns = append(c.Columns, &nodes.ColumnDefinition{
				Name:          name,
				Type:          t,
				NotNull:       col.boolean("not_null"),
				AutoIncrement: col.boolean("auto_increment"),
			})
		})
		return nil
	})
	return c
}

func buildDrop(o *object) nodes.Node {
	return &nodes.Drop{Table: o.reqGroup("table")}
}
