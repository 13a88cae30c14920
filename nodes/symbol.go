package nodes

import "strings"

// DisplayMode selects which form of an element's name is rendered.
type DisplayMode int

const (
	// DisplayOutputName renders the output name, falling back to the
	// fully qualified name when no output name was assigned.
	DisplayOutputName DisplayMode = iota
	DisplayFullyQualified
	DisplayShortName
)

// GroupSymbol names a group (table, view, procedure result or temporary
// table). When Definition is set the group is an alias: Name is the alias
// and Definition the name of the aliased group.
type GroupSymbol struct {
	Name       string
	Definition string
}

// NewGroupSymbol creates an unaliased group reference.
func NewGroupSymbol(name string) *GroupSymbol {
	return &GroupSymbol{Name: name}
}

func (g *GroupSymbol) Accept(v Visitor) string { return v.VisitGroupSymbol(g) }

// Alias creates an aliased reference to this group.
func (g *GroupSymbol) Alias(name string) *GroupSymbol {
	return &GroupSymbol{Name: name, Definition: g.Name}
}

// Col creates an element symbol qualified by this group.
func (g *GroupSymbol) Col(name string) *ElementSymbol {
	return &ElementSymbol{Name: name, Group: g}
}

// Star creates a qualified star (g.*) for this group.
func (g *GroupSymbol) Star() *MultipleElementSymbol {
	return &MultipleElementSymbol{Group: g}
}

// IsAliased reports whether the group carries a definition.
func (g *GroupSymbol) IsAliased() bool { return g.Definition != "" }

// ElementSymbol is a reference to a column or procedure variable.
type ElementSymbol struct {
	Name        string       // short name
	Group       *GroupSymbol // nil for unqualified names and variables
	OutputName  string       // name given to the element in output, if any
	DisplayMode DisplayMode
}

// NewElementSymbol creates an unqualified element reference.
func NewElementSymbol(name string) *ElementSymbol {
	return &ElementSymbol{Name: name}
}

func (e *ElementSymbol) Accept(v Visitor) string { return v.VisitElementSymbol(e) }
func (*ElementSymbol) expressionNode()           {}

// ShortName returns the element name without any group qualifier.
func (e *ElementSymbol) ShortName() string {
	if i := strings.LastIndexByte(e.Name, '.'); i >= 0 && e.Group == nil {
		return e.Name[i+1:]
	}
	return e.Name
}

// QualifiedName returns group.name when the element is qualified.
func (e *ElementSymbol) QualifiedName() string {
	if e.Group != nil && e.Group.Name != "" {
		return e.Group.Name + "." + e.Name
	}
	return e.Name
}

// DisplayName returns the name selected by the element's DisplayMode.
func (e *ElementSymbol) DisplayName() string {
	switch e.DisplayMode {
	case DisplayShortName:
		return e.ShortName()
	case DisplayFullyQualified:
		return e.QualifiedName()
	default:
		if e.OutputName != "" {
			return e.OutputName
		}
		return e.QualifiedName()
	}
}

// Typed returns a copy of the element with the given display mode.
func (e *ElementSymbol) Typed(mode DisplayMode) *ElementSymbol {
	c := *e
	c.DisplayMode = mode
	return &c
}

// As wraps the element in an AliasSymbol.
func (e *ElementSymbol) As(alias string) *AliasSymbol {
	return &AliasSymbol{Name: alias, Symbol: e}
}

// AliasSymbol gives an output name to a select-clause expression.
type AliasSymbol struct {
	Name   string
	Symbol Expression
}

func (a *AliasSymbol) Accept(v Visitor) string { return v.VisitAliasSymbol(a) }
func (*AliasSymbol) expressionNode()           {}

// ExpressionSymbol wraps an unnamed select-clause expression.
type ExpressionSymbol struct {
	Name string // generated name, never rendered
	Expr Expression
}

func (e *ExpressionSymbol) Accept(v Visitor) string { return v.VisitExpressionSymbol(e) }
func (*ExpressionSymbol) expressionNode()           {}

// MultipleElementSymbol is * or group.*.
type MultipleElementSymbol struct {
	Group *GroupSymbol // nil for unqualified *
}

// Star returns an unqualified MultipleElementSymbol.
func Star() *MultipleElementSymbol {
	return &MultipleElementSymbol{}
}

func (m *MultipleElementSymbol) Accept(v Visitor) string { return v.VisitMultipleElementSymbol(m) }
func (*MultipleElementSymbol) expressionNode()           {}
