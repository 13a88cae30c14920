package nodes

// Insert is INSERT INTO g (cols) VALUES (...) or INSERT INTO g (cols) query.
// With Merge set the keyword is MERGE.
type Insert struct {
	Group   *GroupSymbol
	Columns []*ElementSymbol
	Values  []Expression
	Query   QueryCommand // used instead of Values when set
	Merge   bool
	Option  *Option
}

// NewInsert creates an INSERT into the given group.
func NewInsert(group *GroupSymbol) *Insert {
	return &Insert{Group: group}
}

func (i *Insert) Accept(v Visitor) string { return v.VisitInsert(i) }
func (*Insert) commandNode()              {}

// SetClause is one col = value assignment of an UPDATE.
type SetClause struct {
	Symbol *ElementSymbol
	Value  Expression
}

func (s *SetClause) Accept(v Visitor) string { return v.VisitSetClause(s) }

// Update is UPDATE g SET ... [WHERE ...].
type Update struct {
	Group   *GroupSymbol
	Changes []*SetClause
	Where   Criteria
	Option  *Option
}

// NewUpdate creates an UPDATE of the given group.
func NewUpdate(group *GroupSymbol) *Update {
	return &Update{Group: group}
}

func (u *Update) Accept(v Visitor) string { return v.VisitUpdate(u) }
func (*Update) commandNode()              {}

// Delete is DELETE FROM g [WHERE ...].
type Delete struct {
	Group  *GroupSymbol
	Where  Criteria
	Option *Option
}

// NewDelete creates a DELETE from the given group.
func NewDelete(group *GroupSymbol) *Delete {
	return &Delete{Group: group}
}

func (d *Delete) Accept(v Visitor) string { return v.VisitDelete(d) }
func (*Delete) commandNode()              {}

// ParamMode is the direction of a stored procedure parameter.
type ParamMode int

const (
	ParamIn ParamMode = iota
	ParamOut
	ParamInOut
	ParamReturnValue
	ParamResultSet
)

// SPParameter is one parameter of a stored procedure call.
type SPParameter struct {
	Name         string
	Mode         ParamMode
	Expr         Expression
	UsingDefault bool
}

// StoredProcedure is [? =] EXEC name(args).
type StoredProcedure struct {
	CacheHint        *CacheHint
	Name             string
	Params           []*SPParameter
	NamedParameters  bool
	CalledWithReturn bool
	Option           *Option
}

func (s *StoredProcedure) Accept(v Visitor) string { return v.VisitStoredProcedure(s) }
func (*StoredProcedure) commandNode()              {}

// ReturnParameter returns the return-value parameter, if any.
func (s *StoredProcedure) ReturnParameter() *SPParameter {
	for _, p := range s.Params {
		if p != nil && p.Mode == ParamReturnValue {
			return p
		}
	}
	return nil
}

// ColumnDefinition is a column of a CREATE LOCAL TEMPORARY TABLE.
type ColumnDefinition struct {
	Name          string
	Type          DataType
	NotNull       bool
	AutoIncrement bool
}

// Create is CREATE LOCAL TEMPORARY TABLE.
type Create struct {
	Table      *GroupSymbol
	Columns    []*ColumnDefinition
	PrimaryKey []string
}

func (c *Create) Accept(v Visitor) string { return v.VisitCreate(c) }
func (*Create) commandNode()              {}

// Drop is DROP TABLE.
type Drop struct {
	Table *GroupSymbol
}

func (d *Drop) Accept(v Visitor) string { return v.VisitDrop(d) }
func (*Drop) commandNode()              {}
