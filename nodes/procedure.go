package nodes

// CreateProcedureCommand is CREATE VIRTUAL PROCEDURE followed by its body.
type CreateProcedureCommand struct {
	Block *Block
}

func (c *CreateProcedureCommand) Accept(v Visitor) string { return v.VisitCreateProcedureCommand(c) }
func (*CreateProcedureCommand) commandNode()              {}

// TriggerAction is the FOR EACH ROW body of a view trigger.
type TriggerAction struct {
	Block *Block
}

func (t *TriggerAction) Accept(v Visitor) string { return v.VisitTriggerAction(t) }
func (*TriggerAction) commandNode()              {}

// Block is [label :] BEGIN [ATOMIC] ... [EXCEPTION g ...] END.
type Block struct {
	Label               string
	Atomic              bool
	Statements          []Statement
	ExceptionGroup      string
	ExceptionStatements []Statement
}

// NewBlock creates a block of statements.
func NewBlock(stmts ...Statement) *Block {
	return &Block{Statements: stmts}
}

func (b *Block) Accept(v Visitor) string { return v.VisitBlock(b) }
func (*Block) statementNode()            {}

// AssignmentStatement is var = expr;
type AssignmentStatement struct {
	Variable *ElementSymbol
	Value    Expression
}

func (a *AssignmentStatement) Accept(v Visitor) string { return v.VisitAssignmentStatement(a) }
func (*AssignmentStatement) statementNode()            {}

// DeclareStatement is DECLARE type var [= expr];
type DeclareStatement struct {
	Variable *ElementSymbol
	Type     string
	Value    Expression
}

func (d *DeclareStatement) Accept(v Visitor) string { return v.VisitDeclareStatement(d) }
func (*DeclareStatement) statementNode()            {}

// IfStatement is IF(cond) block [ELSE block].
type IfStatement struct {
	Condition Criteria
	Then      *Block
	Else      *Block
}

func (i *IfStatement) Accept(v Visitor) string { return v.VisitIfStatement(i) }
func (*IfStatement) statementNode()            {}

// LoopStatement is [label :] LOOP ON (query) AS cursor block.
type LoopStatement struct {
	Label  string
	Query  QueryCommand
	Cursor string
	Block  *Block
}

func (l *LoopStatement) Accept(v Visitor) string { return v.VisitLoopStatement(l) }
func (*LoopStatement) statementNode()            {}

// WhileStatement is [label :] WHILE(cond) block.
type WhileStatement struct {
	Label     string
	Condition Criteria
	Block     *Block
}

func (w *WhileStatement) Accept(v Visitor) string { return v.VisitWhileStatement(w) }
func (*WhileStatement) statementNode()            {}

// BranchMode selects BREAK, CONTINUE or LEAVE.
type BranchMode int

const (
	BranchBreak BranchMode = iota
	BranchContinue
	BranchLeave
)

// BranchingStatement is BREAK; CONTINUE; or LEAVE label;
type BranchingStatement struct {
	Mode  BranchMode
	Label string
}

func (b *BranchingStatement) Accept(v Visitor) string { return v.VisitBranchingStatement(b) }
func (*BranchingStatement) statementNode()            {}

// RaiseStatement is RAISE [SQLWARNING] expr;
type RaiseStatement struct {
	Expr    Expression
	Warning bool
}

func (r *RaiseStatement) Accept(v Visitor) string { return v.VisitRaiseStatement(r) }
func (*RaiseStatement) statementNode()            {}

// ReturnStatement is RETURN [expr];
type ReturnStatement struct {
	Expr Expression
}

func (r *ReturnStatement) Accept(v Visitor) string { return v.VisitReturnStatement(r) }
func (*ReturnStatement) statementNode()            {}

// CommandStatement runs a command inside a procedure.
type CommandStatement struct {
	Command       Command
	WithoutReturn bool
}

func (c *CommandStatement) Accept(v Visitor) string { return v.VisitCommandStatement(c) }
func (*CommandStatement) statementNode()            {}
