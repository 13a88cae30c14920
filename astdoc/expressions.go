package astdoc

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var expressionBuilders = map[string]builder{
	"element":           buildElement,
	"constant":          buildConstant,
	"reference":         buildReference,
	"function":          buildFunction,
	"cast":              buildConversion("CAST"),
	"convert":           buildConversion("CONVERT"),
	"aggregate":         buildAggregate,
	"window":            buildWindow,
	"case":              buildCase,
	"searched_case":     buildSearchedCase,
	"scalar_subquery":   buildScalarSubquery,
	"array":             buildArray,
	"alias":             buildAlias,
	"expression_symbol": buildExpressionSymbol,
	"star":              buildStar,
}

// decodeExpression accepts a kind-tagged mapping or a scalar shorthand.
func decodeExpression(n *yaml.Node) (nodes.Expression, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!str" {
			return nodes.NewElementSymbol(n.Value), nil
		}
		return scalarConstant(n)
	}
	return decodeAs[nodes.Expression](n, "an expression")
}

func decodeElement(n *yaml.Node) (*nodes.ElementSymbol, error) {
	e, err := decodeExpression(n)
	if err != nil {
		return nil, err
	}
	el, ok := e.(*nodes.ElementSymbol)
	if !ok {
		return nil, errorAt(n, "%w: %T is not an element", ErrInvalidValue, e)
	}
	return el, nil
}

var displayModes = map[string]nodes.DisplayMode{
	"output": nodes.DisplayOutputName,
	"full":   nodes.DisplayFullyQualified,
	"short":  nodes.DisplayShortName,
}

func buildElement(o *object) nodes.Node {
	return &nodes.ElementSymbol{
		Name:        o.reqStr("name"),
		Group:       o.group("group"),
		OutputName:  o.str("output_name"),
		DisplayMode: enum(o, "display", displayModes, nodes.DisplayOutputName),
	}
}

func buildReference(o *object) nodes.Node {
	return &nodes.Reference{Index: o.integer("index")}
}

// scalarConstant infers the constant type from the YAML tag.
func scalarConstant(n *yaml.Node) (*nodes.Constant, error) {
	switch n.Tag {
	case "!!null":
		return nodes.NewConstant(nil), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, errorAt(n, "%w: %v", ErrInvalidValue, err)
		}
		return nodes.NewConstant(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			bi, ok := new(big.Int).SetString(n.Value, 0)
			if !ok {
				return nil, errorAt(n, "%w: integer %q", ErrInvalidValue, n.Value)
			}
			return nodes.NewConstant(bi), nil
		}
		if i >= -1<<31 && i < 1<<31 {
			return nodes.NewTypedConstant(int32(i), nodes.TypeInteger), nil
		}
		return nodes.NewConstant(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, errorAt(n, "%w: number %q", ErrInvalidValue, n.Value)
		}
		return nodes.NewConstant(f), nil
	case "!!timestamp":
		return typedConstant(n, n.Value, nodes.TypeTimestamp)
	default:
		return nodes.NewConstant(n.Value), nil
	}
}

// Layouts accepted for temporal constants.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func buildConstant(o *object) nodes.Node {
	if o.boolean("multi") {
		return &nodes.Constant{MultiValued: true}
	}
	val := o.get("value")
	typeName := o.str("type")
	if typeName == "" {
		if val == nil {
			return nodes.NewConstant(nil)
		}
		if !o.scalar(val, "value") {
			return nil
		}
		c, err := scalarConstant(val)
		o.fail(err)
		return c
	}
	t, ok := nodes.ParseDataType(typeName)
	if !ok {
		o.fail(errorAt(o.get("type"), "%w: type %q", ErrInvalidValue, typeName))
		return nil
	}
	if val == nil {
		return nodes.NewTypedConstant(nil, t)
	}
	if !o.scalar(val, "value") {
		return nil
	}
	c, err := typedConstant(val, val.Value, t)
	o.fail(err)
	return c
}

// typedConstant converts s to the Go value used for constants of type t.
func typedConstant(n *yaml.Node, s string, t nodes.DataType) (*nodes.Constant, error) {
	var (
		v   any
		err error
	)
	switch t {
	case nodes.TypeBoolean:
		v, err = strconv.ParseBool(s)
	case nodes.TypeChar:
		r := []rune(s)
		if len(r) != 1 {
			return nil, errorAt(n, "%w: char constant %q", ErrInvalidValue, s)
		}
		v = r[0]
	case nodes.TypeByte:
		var i int64
		i, err = strconv.ParseInt(s, 10, 8)
		v = int8(i)
	case nodes.TypeShort:
		var i int64
		i, err = strconv.ParseInt(s, 10, 16)
		v = int16(i)
	case nodes.TypeInteger:
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		v = int32(i)
	case nodes.TypeLong:
		v, err = strconv.ParseInt(s, 10, 64)
	case nodes.TypeBigInteger:
		bi, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, errorAt(n, "%w: biginteger %q", ErrInvalidValue, s)
		}
		v = bi
	case nodes.TypeFloat:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case nodes.TypeDouble:
		v, err = strconv.ParseFloat(s, 64)
	case nodes.TypeBigDecimal:
		v, err = decimal.NewFromString(s)
	case nodes.TypeDate:
		v, err = time.Parse("2006-01-02", s)
	case nodes.TypeTime:
		v, err = time.Parse("15:04:05", s)
	case nodes.TypeTimestamp:
		v, err = parseTimestamp(s)
	case nodes.TypeVarbinary, nodes.TypeBlob:
		v, err = hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	default:
		v = s
	}
	if err != nil {
		return nil, errorAt(n, "%w: %s constant %q: %v", ErrInvalidValue, t, s, err)
	}
	return nodes.NewTypedConstant(v, t), nil
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

func buildFunction(o *object) nodes.Node {
	return &nodes.Function{
		Name:     o.reqStr("name"),
		Args:     o.exprs("args"),
		Implicit: o.boolean("implicit"),
	}
}

func buildConversion(name string) builder {
	return func(o *object) nodes.Node {
		expr := o.reqExpr("expr")
		typeName := o.reqStr("type")
		return &nodes.Function{Name: name, Args: []nodes.Expression{expr, nodes.NewConstant(typeName)}}
	}
}

func buildAggregate(o *object) nodes.Node {
	return &nodes.AggregateSymbol{
		Name:        o.reqStr("name"),
		Args:        o.exprs("args"),
		Distinct:    o.boolean("distinct"),
		UserDefined: o.boolean("user_defined"),
		OrderBy:     o.orderBy("order_by"),
		Filter:      o.criteria("filter"),
	}
}

func buildWindow(o *object) nodes.Node {
	w := &nodes.WindowFunction{Window: &nodes.WindowSpecification{}}
	n := o.require("function")
	if n != nil && o.err == nil {
		agg, err := decodeAs[*nodes.AggregateSymbol](n, "an aggregate")
		o.fail(err)
		w.Function = agg
	}
	w.Window.PartitionBy = o.exprs("partition_by")
	w.Window.OrderBy = o.orderBy("order_by")
	o.sub(o.get("frame"), func(f *object) {
		w.Window.Frame = &nodes.WindowFrame{
			Mode:  enum(f, "mode", frameModes, nodes.FrameRows),
			Start: frameBound(f, f.require("start")),
		}
		if end := f.get("end"); end != nil {
			b := frameBound(f, end)
			w.Window.Frame.End = &b
		}
	})
	return w
}

var frameModes = map[string]nodes.FrameMode{
	"rows":  nodes.FrameRows,
	"range": nodes.FrameRange,
}

var boundTypes = map[string]nodes.BoundType{
	"unbounded_preceding": nodes.BoundUnboundedPreceding,
	"preceding":           nodes.BoundPreceding,
	"current_row":         nodes.BoundCurrentRow,
	"following":           nodes.BoundFollowing,
	"unbounded_following": nodes.BoundUnboundedFollowing,
}

// frameBound accepts "current_row" or {type: preceding, offset: 2}.
func frameBound(o *object, n *yaml.Node) nodes.FrameBound {
	var b nodes.FrameBound
	if n == nil || o.err != nil {
		return b
	}
	if n.Kind == yaml.ScalarNode {
		t, ok := boundTypes[n.Value]
		if !ok {
			o.fail(errorAt(n, "%w: frame bound %q", ErrInvalidValue, n.Value))
		}
		b.Type = t
		return b
	}
	o.sub(n, func(s *object) {
		b.Type = enum(s, "type", boundTypes, nodes.BoundCurrentRow)
		b.Offset = s.integer("offset")
	})
	return b
}

func buildCase(o *object) nodes.Node {
	c := &nodes.CaseExpression{Expr: o.reqExpr("expr")}
	o.each("whens", func(n *yaml.Node) error {
		o.sub(n, func(w *object) {
			c.Whens = append(c.Whens, w.reqExpr("when"))
			c.Thens = append(c.Thens, w.reqExpr("then"))
		})
		return nil
	})
	c.Else = o.expr("else")
	return c
}

func buildSearchedCase(o *object) nodes.Node {
	c := &nodes.SearchedCaseExpression{}
	o.each("whens", func(n *yaml.Node) error {
		o.sub(n, func(w *object) {
			c.Whens = append(c.Whens, w.reqCriteria("when"))
			c.Thens = append(c.Thens, w.reqExpr("then"))
		})
		return nil
	})
	c.Else = o.expr("else")
	return c
}

func buildScalarSubquery(o *object) nodes.Node {
	return &nodes.ScalarSubquery{Command: o.queryCommand("query")}
}

func buildArray(o *object) nodes.Node {
	return &nodes.Array{Exprs: o.exprs("exprs"), Implicit: o.boolean("implicit")}
}

func buildAlias(o *object) nodes.Node {
	return &nodes.AliasSymbol{Name: o.reqStr("name"), Symbol: o.reqExpr("expr")}
}

func buildExpressionSymbol(o *object) nodes.Node {
	return &nodes.ExpressionSymbol{Name: o.str("name"), Expr: o.reqExpr("expr")}
}

func buildStar(o *object) nodes.Node {
	return &nodes.MultipleElementSymbol{Group: o.group("group")}
}
