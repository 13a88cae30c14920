// Package nodes defines the AST node types used to represent SQL commands,
// expressions, criteria and procedural statements.
package nodes

// Node is the interface that all AST nodes implement.
type Node interface {
	Accept(visitor Visitor) string
}

// Expression is a node that produces a value: symbols, constants,
// functions, case expressions, scalar subqueries and criteria.
type Expression interface {
	Node
	expressionNode()
}

// Criteria is a boolean-valued expression usable in WHERE, HAVING, ON and
// procedural conditions.
type Criteria interface {
	Expression
	criteriaNode()
}

// PredicateCriteria is a single predicate (as opposed to a compound, NOT
// or expression criteria). Join criteria render predicates without
// surrounding parentheses.
type PredicateCriteria interface {
	Criteria
	predicateNode()
}

// FromClause is an item of a FROM clause.
type FromClause interface {
	Node
	fromClauseNode()
	HasHint() bool
}

// Command is a complete SQL or procedural command.
type Command interface {
	Node
	commandNode()
}

// QueryCommand is a command that returns rows: a Query or a SetQuery.
type QueryCommand interface {
	Command
	queryCommandNode()
	OrderClause() *OrderBy
	LimitClause() *Limit
}

// Statement is a procedural statement inside a Block.
type Statement interface {
	Node
	statementNode()
}

// Visitor defines the interface for walking the AST and producing output.
// Every node type has exactly one method, so a new node type cannot be
// added without every Visitor implementation handling it.
type Visitor interface {
	// symbols and expressions
	VisitElementSymbol(node *ElementSymbol) string
	VisitGroupSymbol(node *GroupSymbol) string
	VisitAliasSymbol(node *AliasSymbol) string
	VisitExpressionSymbol(node *ExpressionSymbol) string
	VisitMultipleElementSymbol(node *MultipleElementSymbol) string
	VisitConstant(node *Constant) string
	VisitReference(node *Reference) string
	VisitFunction(node *Function) string
	VisitAggregateSymbol(node *AggregateSymbol) string
	VisitWindowFunction(node *WindowFunction) string
	VisitWindowSpecification(node *WindowSpecification) string
	VisitCaseExpression(node *CaseExpression) string
	VisitSearchedCaseExpression(node *SearchedCaseExpression) string
	VisitScalarSubquery(node *ScalarSubquery) string
	VisitArray(node *Array) string

	// XML
	VisitDerivedColumn(node *DerivedColumn) string
	VisitXMLElement(node *XMLElement) string
	VisitXMLAttributes(node *XMLAttributes) string
	VisitXMLForest(node *XMLForest) string
	VisitXMLNamespaces(node *XMLNamespaces) string
	VisitXMLParse(node *XMLParse) string
	VisitXMLSerialize(node *XMLSerialize) string
	VisitXMLQuery(node *XMLQuery) string
	VisitQueryString(node *QueryString) string

	// criteria
	VisitCompareCriteria(node *CompareCriteria) string
	VisitCompoundCriteria(node *CompoundCriteria) string
	VisitNotCriteria(node *NotCriteria) string
	VisitIsNullCriteria(node *IsNullCriteria) string
	VisitMatchCriteria(node *MatchCriteria) string
	VisitSetCriteria(node *SetCriteria) string
	VisitSubquerySetCriteria(node *SubquerySetCriteria) string
	VisitBetweenCriteria(node *BetweenCriteria) string
	VisitExistsCriteria(node *ExistsCriteria) string
	VisitSubqueryCompareCriteria(node *SubqueryCompareCriteria) string
	VisitIsDistinctCriteria(node *IsDistinctCriteria) string
	VisitExpressionCriteria(node *ExpressionCriteria) string

	// FROM clause
	VisitFrom(node *From) string
	VisitUnaryFromClause(node *UnaryFromClause) string
	VisitJoinPredicate(node *JoinPredicate) string
	VisitSubqueryFromClause(node *SubqueryFromClause) string
	VisitTextTable(node *TextTable) string
	VisitXMLTable(node *XMLTable) string
	VisitArrayTable(node *ArrayTable) string

	// queries
	VisitSelect(node *Select) string
	VisitInto(node *Into) string
	VisitGroupBy(node *GroupBy) string
	VisitOrderBy(node *OrderBy) string
	VisitOrderByItem(node *OrderByItem) string
	VisitLimit(node *Limit) string
	VisitOption(node *Option) string
	VisitWithQueryCommand(node *WithQueryCommand) string
	VisitQuery(node *Query) string
	VisitSetQuery(node *SetQuery) string

	// data modification and DDL
	VisitInsert(node *Insert) string
	VisitUpdate(node *Update) string
	VisitSetClause(node *SetClause) string
	VisitDelete(node *Delete) string
	VisitStoredProcedure(node *StoredProcedure) string
	VisitCreate(node *Create) string
	VisitDrop(node *Drop) string

	// procedural language
	VisitCreateProcedureCommand(node *CreateProcedureCommand) string
	VisitTriggerAction(node *TriggerAction) string
	VisitBlock(node *Block) string
	VisitAssignmentStatement(node *AssignmentStatement) string
	VisitDeclareStatement(node *DeclareStatement) string
	VisitIfStatement(node *IfStatement) string
	VisitLoopStatement(node *LoopStatement) string
	VisitWhileStatement(node *WhileStatement) string
	VisitBranchingStatement(node *BranchingStatement) string
	VisitRaiseStatement(node *RaiseStatement) string
	VisitReturnStatement(node *ReturnStatement) string
	VisitCommandStatement(node *CommandStatement) string
}
