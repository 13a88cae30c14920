package nodes

// DerivedColumn is an expression with an optional alias, used as an
// argument of XMLATTRIBUTES, XMLFOREST, QUERYSTRING and PASSING clauses.
type DerivedColumn struct {
	Expr  Expression
	Alias string
}

func (d *DerivedColumn) Accept(v Visitor) string { return v.VisitDerivedColumn(d) }

// NamespaceItem is one XMLNAMESPACES entry. An empty Prefix declares the
// default namespace; an empty Prefix and URI is NO DEFAULT.
type NamespaceItem struct {
	Prefix string
	URI    string
}

// XMLNamespaces is XMLNAMESPACES(...).
type XMLNamespaces struct {
	Items []NamespaceItem
}

func (x *XMLNamespaces) Accept(v Visitor) string { return v.VisitXMLNamespaces(x) }

// XMLAttributes is XMLATTRIBUTES(...) inside an XMLELEMENT.
type XMLAttributes struct {
	Args []*DerivedColumn
}

func (x *XMLAttributes) Accept(v Visitor) string { return v.VisitXMLAttributes(x) }

// XMLElement is XMLELEMENT(NAME n [, XMLNAMESPACES] [, XMLATTRIBUTES] [, content...]).
type XMLElement struct {
	Name       string
	Namespaces *XMLNamespaces
	Attributes *XMLAttributes
	Content    []Expression
}

func (x *XMLElement) Accept(v Visitor) string { return v.VisitXMLElement(x) }
func (*XMLElement) expressionNode()           {}

// XMLForest is XMLFOREST([XMLNAMESPACES,] arg [AS name], ...).
type XMLForest struct {
	Namespaces *XMLNamespaces
	Args       []*DerivedColumn
}

func (x *XMLForest) Accept(v Visitor) string { return v.VisitXMLForest(x) }
func (*XMLForest) expressionNode()           {}

// XMLParse is XMLPARSE(DOCUMENT|CONTENT expr [WELLFORMED]).
type XMLParse struct {
	Document   bool
	Expr       Expression
	WellFormed bool
}

func (x *XMLParse) Accept(v Visitor) string { return v.VisitXMLParse(x) }
func (*XMLParse) expressionNode()           {}

// XMLKind is the optional DOCUMENT/CONTENT keyword of XMLSERIALIZE.
type XMLKind int

const (
	XMLKindUnspecified XMLKind = iota
	XMLKindDocument
	XMLKindContent
)

// XMLDeclaration is the optional INCLUDING/EXCLUDING XMLDECLARATION clause.
type XMLDeclaration int

const (
	DeclarationUnspecified XMLDeclaration = iota
	DeclarationIncluding
	DeclarationExcluding
)

// XMLSerialize is XMLSERIALIZE([DOCUMENT|CONTENT] expr [AS type] [VERSION v] [decl]).
type XMLSerialize struct {
	Kind        XMLKind
	Expr        Expression
	Type        string
	Version     string
	Declaration XMLDeclaration
}

func (x *XMLSerialize) Accept(v Visitor) string { return v.VisitXMLSerialize(x) }
func (*XMLSerialize) expressionNode()           {}

// EmptyHandling is the optional NULL ON EMPTY / EMPTY ON EMPTY clause.
type EmptyHandling int

const (
	EmptyUnspecified EmptyHandling = iota
	NullOnEmpty
	EmptyOnEmpty
)

// XMLQuery is XMLQUERY(...) or, with Exists set, XMLEXISTS(...).
type XMLQuery struct {
	Namespaces *XMLNamespaces
	XQuery     string
	Passing    []*DerivedColumn
	Empty      EmptyHandling
	Exists     bool
}

func (x *XMLQuery) Accept(v Visitor) string { return v.VisitXMLQuery(x) }
func (*XMLQuery) expressionNode()           {}

// QueryString is QUERYSTRING(path [, arg AS name ...]).
type QueryString struct {
	Path Expression
	Args []*DerivedColumn
}

func (q *QueryString) Accept(v Visitor) string { return v.VisitQueryString(q) }
func (*QueryString) expressionNode()           {}
