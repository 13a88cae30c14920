package nodes

// ProjectedColumn is a column produced by a table function.
type ProjectedColumn struct {
	Name string
	Type string
}

// TextColumn is a TEXTTABLE column.
type TextColumn struct {
	ProjectedColumn
	Ordinal  bool   // FOR ORDINALITY
	Width    int    // fixed width, 0 when delimited
	NoTrim   bool   // NO TRIM, only with a width
	Selector string // row selector for this column
	Position int    // position within selected rows, with Selector
}

// TextTable is TEXTTABLE(file [SELECTOR s] COLUMNS ... options) AS name.
type TextTable struct {
	FromHints
	File           Expression
	Selector       string
	Columns        []*TextColumn
	NoRowDelimiter bool
	Delimiter      rune // 0 when unset
	Quote          rune // 0 when unset; with Escape set it is the escape character
	Escape         bool
	Header         int // 0 when no HEADER; HEADER alone means 1
	Skip           int // 0 when no SKIP
	Name           string
}

func (t *TextTable) Accept(v Visitor) string { return v.VisitTextTable(t) }
func (*TextTable) fromClauseNode()           {}

// XMLColumn is an XMLTABLE column.
type XMLColumn struct {
	ProjectedColumn
	Ordinal bool
	Default Expression
	Path    string
}

// XMLTable is XMLTABLE([namespaces,] 'xquery' [PASSING ...] [COLUMNS ...]) AS name.
type XMLTable struct {
	FromHints
	Namespaces         *XMLNamespaces
	XQuery             string
	Passing            []*DerivedColumn
	Columns            []*XMLColumn
	UsingDefaultColumn bool
	Name               string
}

func (t *XMLTable) Accept(v Visitor) string { return v.VisitXMLTable(t) }
func (*XMLTable) fromClauseNode()           {}

// ArrayTable is ARRAYTABLE(array COLUMNS ...) AS name.
type ArrayTable struct {
	FromHints
	Array   Expression
	Columns []*ProjectedColumn
	Name    string
}

func (t *ArrayTable) Accept(v Visitor) string { return v.VisitArrayTable(t) }
func (*ArrayTable) fromClauseNode()           {}
