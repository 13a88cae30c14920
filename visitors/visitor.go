// Package visitors renders AST nodes as SQL text.
package visitors

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// undefined is rendered in place of a missing child node.
const undefined = "<undefined>"

// Option configures a visitor at construction time.
type Option func(*SQLStringVisitor)

// WithLayout sets the whitespace strategy between clauses and before
// procedural statements. A nil layout keeps the default flat layout.
func WithLayout(l Layout) Option {
	return func(v *SQLStringVisitor) {
		if l != nil {
			v.layout = l
		}
	}
}

// WithIndent renders one clause per line and indents procedural blocks with
// unit.
func WithIndent(unit string) Option {
	return WithLayout(IndentLayout{Unit: unit})
}

// SQLStringVisitor generates SQL text for every node type. It keeps only
// the current block depth between calls, so a visitor must not be shared
// between goroutines; use Render for one-shot rendering.
type SQLStringVisitor struct {
	layout Layout

	// depth is the nesting level of the procedural block being rendered.
	depth int
}

var _ nodes.Visitor = (*SQLStringVisitor)(nil)

// NewSQLStringVisitor creates a visitor with the flat layout unless an
// option overrides it.
func NewSQLStringVisitor(opts ...Option) *SQLStringVisitor {
	v := &SQLStringVisitor{layout: FlatLayout{}}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Render returns the SQL text for node using a fresh visitor. It is safe to
// call from multiple goroutines, including on the same tree.
func Render(node nodes.Node, opts ...Option) string {
	return NewSQLStringVisitor(opts...).visit(node)
}

// visit renders n, or the undefined marker when n is nil.
func (v *SQLStringVisitor) visit(n nodes.Node) string {
	if isNil(n) {
		return undefined
	}
	return n.Accept(v)
}

// isNil reports whether n is nil or an interface holding a nil pointer.
func isNil(n nodes.Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// visitList renders items and joins them with sep.
func visitList[T nodes.Node](v *SQLStringVisitor, items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = v.visit(it)
	}
	return strings.Join(parts, sep)
}

// keyword returns table[e]. Enums are closed sets, so a value outside the
// table means the caller built an invalid tree.
func keyword[E ~int](table []string, e E, what string) string {
	if e < 0 || int(e) >= len(table) {
		panic(fmt.Sprintf("sqltext: unknown %s %d", what, int(e)))
	}
	return table[e]
}

// arg returns args[i], or nil when the argument is absent.
func arg(args []nodes.Expression, i int) nodes.Expression {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func (v *SQLStringVisitor) beginClause(level int) string {
	return v.layout.BeginClause(v.depth + level)
}

func (v *SQLStringVisitor) tabs(level int) string {
	return v.layout.Tabs(v.depth + level)
}

func escapeNames(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = quoting.EscapeName(n)
	}
	return strings.Join(parts, ", ")
}
