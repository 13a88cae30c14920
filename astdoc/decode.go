// Package astdoc decodes YAML (or JSON) documents into AST trees.
//
// Every tree node is a mapping whose kind key selects the node type:
//
//	kind: query
//	select: [e1, {kind: function, name: concat, args: [e2, {kind: constant, value: "x"}]}]
//	from: [pm1.g1]
//	where: {kind: compare, left: e1, op: "=", right: 1}
//
// Scalars are shorthands: a string in an expression position is an element
// symbol, any other scalar is a constant, and a string in a FROM list is a
// group.
package astdoc

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var (
	// ErrUnknownKind is returned for a kind the decoder does not know.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrMissingField is returned when a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidValue is returned when a value has the wrong shape or type.
	ErrInvalidValue = errors.New("invalid value")
)

// Error locates a decoding failure in the source document.
type Error struct {
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func errorAt(n *yaml.Node, format string, args ...any) error {
	return &Error{Line: n.Line, Column: n.Column, Err: fmt.Errorf(format, args...)}
}

// Decode reads the first document from r.
func Decode(r io.Reader) (nodes.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return decodeDocument(&doc)
}

// DecodeAll reads every document of a multi-document stream.
func DecodeAll(r io.Reader) ([]nodes.Node, error) {
	dec := yaml.NewDecoder(r)
	var out []nodes.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse document %d: %w", len(out)+1, err)
		}
		n, err := decodeDocument(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out)+1, err)
		}
		out = append(out, n)
	}
}

func decodeDocument(doc *yaml.Node) (nodes.Node, error) {
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	return decodeNode(n)
}

// builder constructs a node from a mapping. Failures are recorded in the
// object and reported after the builder returns.
type builder func(o *object) nodes.Node

var builders map[string]builder

func init() {
	builders = make(map[string]builder)
	for _, table := range []map[string]builder{
		expressionBuilders, criteriaBuilders, fromBuilders,
		commandBuilders, statementBuilders, xmlBuilders,
	} {
		for k, b := range table {
			builders[k] = b
		}
	}
}

// Kinds returns every kind name the decoder accepts, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(builders))
}

// decodeNode builds the node described by a kind-tagged mapping.
func decodeNode(n *yaml.Node) (nodes.Node, error) {
	o, err := newObject(n)
	if err != nil {
		return nil, err
	}
	kind := o.str("kind")
	if kind == "" {
		return nil, errorAt(n, "%w: kind", ErrMissingField)
	}
	b, ok := builders[kind]
	if !ok {
		return nil, errorAt(o.vals["kind"], "%w %q", ErrUnknownKind, kind)
	}
	node := b(o)
	if o.err != nil {
		return nil, o.err
	}
	return node, nil
}

// decodeAs decodes n and checks that the result belongs to category T.
func decodeAs[T nodes.Node](n *yaml.Node, what string) (T, error) {
	var zero T
	node, err := decodeNode(n)
	if err != nil {
		return zero, err
	}
	t, ok := node.(T)
	if !ok {
		return zero, errorAt(n, "%w: %T is not %s", ErrInvalidValue, node, what)
	}
	return t, nil
}

// object is a decoded mapping with a sticky error: after the first failure
// every accessor returns a zero value.
type object struct {
	node *yaml.Node
	vals map[string]*yaml.Node
	err  error
}

func newObject(n *yaml.Node) (*object, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "%w: expected a mapping", ErrInvalidValue)
	}
	o := &object{node: n, vals: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		o.vals[n.Content[i].Value] = n.Content[i+1]
	}
	return o, nil
}

func (o *object) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// get returns the value for key, or nil when absent or null.
func (o *object) get(key string) *yaml.Node {
	n := o.vals[key]
	if n == nil || n.Tag == "!!null" {
		return nil
	}
	if n.Kind == yaml.AliasNode {
		return n.Alias
	}
	return n
}

// require returns the value for key and records ErrMissingField when absent.
func (o *object) require(key string) *yaml.Node {
	n := o.get(key)
	if n == nil && o.err == nil {
		o.fail(errorAt(o.node, "%w: %s", ErrMissingField, key))
	}
	return n
}

func (o *object) has(key string) bool { return o.get(key) != nil }

func (o *object) scalar(n *yaml.Node, key string) bool {
	if n.Kind != yaml.ScalarNode {
		o.fail(errorAt(n, "%w: %s must be a scalar", ErrInvalidValue, key))
		return false
	}
	return true
}

func (o *object) str(key string) string {
	n := o.get(key)
	if n == nil || !o.scalar(n, key) {
		return ""
	}
	return n.Value
}

func (o *object) reqStr(key string) string {
	n := o.require(key)
	if n == nil || !o.scalar(n, key) {
		return ""
	}
	return n.Value
}

func (o *object) boolean(key string) bool {
	n := o.get(key)
	if n == nil || !o.scalar(n, key) {
		return false
	}
	b, err := strconv.ParseBool(n.Value)
	if err != nil {
		o.fail(errorAt(n, "%w: %s: %v", ErrInvalidValue, key, err))
	}
	return b
}

func (o *object) integer(key string) int {
	n := o.get(key)
	if n == nil || !o.scalar(n, key) {
		return 0
	}
	i, err := strconv.Atoi(n.Value)
	if err != nil {
		o.fail(errorAt(n, "%w: %s: %v", ErrInvalidValue, key, err))
	}
	return i
}

// optInt64 returns nil when key is absent.
func (o *object) optInt64(key string) *int64 {
	n := o.get(key)
	if n == nil || !o.scalar(n, key) {
		return nil
	}
	i, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		o.fail(errorAt(n, "%w: %s: %v", ErrInvalidValue, key, err))
		return nil
	}
	return &i
}

// char returns the single character value of key, or 0 when absent.
func (o *object) char(key string) rune {
	s := o.str(key)
	if s == "" {
		return 0
	}
	r := []rune(s)
	if len(r) != 1 {
		o.fail(errorAt(o.get(key), "%w: %s must be a single character", ErrInvalidValue, key))
		return 0
	}
	return r[0]
}

// enum maps the string value of key through values. def is returned when
// the key is absent.
func enum[T any](o *object, key string, values map[string]T, def T) T {
	s := o.str(key)
	if s == "" {
		return def
	}
	v, ok := values[s]
	if !ok {
		o.fail(errorAt(o.get(key), "%w: %s %q", ErrInvalidValue, key, s))
		return def
	}
	return v
}

// seq returns the items of a sequence value. A scalar or mapping value is
// treated as a one-item sequence.
func (o *object) seq(key string) []*yaml.Node {
	n := o.get(key)
	if n == nil {
		return nil
	}
	if n.Kind == yaml.SequenceNode {
		return n.Content
	}
	return []*yaml.Node{n}
}

func (o *object) strs(key string) []string {
	items := o.seq(key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !o.scalar(it, key) {
			return nil
		}
		out = append(out, it.Value)
	}
	return out
}

// each calls fn for every item of the sequence at key, stopping at the
// first error.
func (o *object) each(key string, fn func(*yaml.Node) error) {
	for _, it := range o.seq(key) {
		if o.err != nil {
			return
		}
		if err := fn(it); err != nil {
			o.fail(err)
		}
	}
}

// sub runs fn over the mapping at n and merges its error.
func (o *object) sub(n *yaml.Node, fn func(*object)) {
	if n == nil || o.err != nil {
		return
	}
	s, err := newObject(n)
	if err != nil {
		o.fail(err)
		return
	}
	fn(s)
	o.fail(s.err)
}

func (o *object) expr(key string) nodes.Expression {
	n := o.get(key)
	if n == nil || o.err != nil {
		return nil
	}
	e, err := decodeExpression(n)
	o.fail(err)
	return e
}

func (o *object) reqExpr(key string) nodes.Expression {
	if o.require(key) == nil {
		return nil
	}
	return o.expr(key)
}

func (o *object) exprs(key string) []nodes.Expression {
	var out []nodes.Expression
	o.each(key, func(n *yaml.Node) error {
		e, err := decodeExpression(n)
		out = append(out, e)
		return err
	})
	return out
}

func (o *object) criteria(key string) nodes.Criteria {
	n := o.get(key)
	if n == nil || o.err != nil {
		return nil
	}
	c, err := decodeCriteria(n)
	o.fail(err)
	return c
}

func (o *object) reqCriteria(key string) nodes.Criteria {
	if o.require(key) == nil {
		return nil
	}
	return o.criteria(key)
}

func (o *object) criteriaList(key string) []nodes.Criteria {
	var out []nodes.Criteria
	o.each(key, func(n *yaml.Node) error {
		c, err := decodeCriteria(n)
		out = append(out, c)
		return err
	})
	return out
}

func (o *object) queryCommand(key string) nodes.QueryCommand {
	n := o.require(key)
	if n == nil || o.err != nil {
		return nil
	}
	q, err := decodeAs[nodes.QueryCommand](n, "a query")
	o.fail(err)
	return q
}

func (o *object) command(key string) nodes.Command {
	n := o.require(key)
	if n == nil || o.err != nil {
		return nil
	}
	c, err := decodeAs[nodes.Command](n, "a command")
	o.fail(err)
	return c
}

func (o *object) element(key string) *nodes.ElementSymbol {
	n := o.require(key)
	if n == nil || o.err != nil {
		return nil
	}
	e, err := decodeElement(n)
	o.fail(err)
	return e
}

func (o *object) elements(key string) []*nodes.ElementSymbol {
	var out []*nodes.ElementSymbol
	o.each(key, func(n *yaml.Node) error {
		e, err := decodeElement(n)
		out = append(out, e)
		return err
	})
	return out
}

// group returns the group named by key, or nil when absent.
func (o *object) group(key string) *nodes.GroupSymbol {
	name := o.str(key)
	if name == "" {
		return nil
	}
	return nodes.NewGroupSymbol(name)
}

func (o *object) reqGroup(key string) *nodes.GroupSymbol {
	return nodes.NewGroupSymbol(o.reqStr(key))
}
