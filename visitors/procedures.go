package visitors

import (
	"strings"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// Procedural statements are one per line. Line breaks are always emitted;
// the layout only controls the indentation prefix.

func (v *SQLStringVisitor) VisitCreateProcedureCommand(n *nodes.CreateProcedureCommand) string {
	return "CREATE VIRTUAL PROCEDURE\n" + v.tabs(0) + v.visit(n.Block)
}

func (v *SQLStringVisitor) VisitTriggerAction(n *nodes.TriggerAction) string {
	return "FOR EACH ROW\n" + v.tabs(0) + v.visit(n.Block)
}

func label(l string) string {
	if l == "" {
		return ""
	}
	return quoting.EscapeSinglePart(l) + " : "
}

func (v *SQLStringVisitor) VisitBlock(n *nodes.Block) string {
	var sb strings.Builder
	sb.WriteString(label(n.Label))
	sb.WriteString("BEGIN")
	if n.Atomic {
		sb.WriteString(" ATOMIC")
	}
	sb.WriteString("\n")
	v.writeStatements(&sb, n.Statements)
	if n.ExceptionGroup != "" {
		sb.WriteString(v.tabs(0))
		sb.WriteString("EXCEPTION ")
		sb.WriteString(quoting.EscapeSinglePart(n.ExceptionGroup))
		sb.WriteString("\n")
		v.writeStatements(&sb, n.ExceptionStatements)
	}
	sb.WriteString(v.tabs(0))
	sb.WriteString("END")
	return sb.String()
}

// writeStatements writes each statement on its own line, one level deeper
// than the enclosing block.
func (v *SQLStringVisitor) writeStatements(sb *strings.Builder, stmts []nodes.Statement) {
	for _, s := range stmts {
		sb.WriteString(v.tabs(1))
		v.depth++
		sb.WriteString(v.visit(s))
		v.depth--
		sb.WriteString("\n")
	}
}

func (v *SQLStringVisitor) VisitAssignmentStatement(n *nodes.AssignmentStatement) string {
	return v.visit(n.Variable) + " = " + v.visit(n.Value) + ";"
}

func (v *SQLStringVisitor) VisitDeclareStatement(n *nodes.DeclareStatement) string {
	s := "DECLARE " + n.Type + " " + v.visit(n.Variable)
	if !isNil(n.Value) {
		s += " = " + v.visit(n.Value)
	}
	return s + ";"
}

func (v *SQLStringVisitor) VisitIfStatement(n *nodes.IfStatement) string {
	var sb strings.Builder
	sb.WriteString("IF(")
	sb.WriteString(v.visit(n.Condition))
	sb.WriteString(")\n")
	sb.WriteString(v.tabs(0))
	sb.WriteString(v.visit(n.Then))
	if n.Else != nil {
		sb.WriteString("\n")
		sb.WriteString(v.tabs(0))
		sb.WriteString("ELSE\n")
		sb.WriteString(v.tabs(0))
		sb.WriteString(v.visit(n.Else))
	}
	return sb.String()
}

func (v *SQLStringVisitor) VisitLoopStatement(n *nodes.LoopStatement) string {
	return label(n.Label) + "LOOP ON (" + v.visit(n.Query) + ") AS " +
		quoting.EscapeSinglePart(n.Cursor) + "\n" + v.tabs(0) + v.visit(n.Block)
}

func (v *SQLStringVisitor) VisitWhileStatement(n *nodes.WhileStatement) string {
	return label(n.Label) + "WHILE(" + v.visit(n.Condition) + ")\n" + v.tabs(0) + v.visit(n.Block)
}

// SQL keywords for BranchMode values.
var branchModeSQL = [...]string{
	nodes.BranchBreak:    "BREAK",
	nodes.BranchContinue: "CONTINUE",
	nodes.BranchLeave:    "LEAVE",
}

func (v *SQLStringVisitor) VisitBranchingStatement(n *nodes.BranchingStatement) string {
	s := keyword(branchModeSQL[:], n.Mode, "branch mode")
	if n.Label != "" {
		s += " " + quoting.EscapeSinglePart(n.Label)
	}
	return s + ";"
}

func (v *SQLStringVisitor) VisitRaiseStatement(n *nodes.RaiseStatement) string {
	s := "RAISE "
	if n.Warning {
		s += "SQLWARNING "
	}
	return s + v.visit(n.Expr) + ";"
}

func (v *SQLStringVisitor) VisitReturnStatement(n *nodes.ReturnStatement) string {
	if isNil(n.Expr) {
		return "RETURN;"
	}
	return "RETURN " + v.visit(n.Expr) + ";"
}

func (v *SQLStringVisitor) VisitCommandStatement(n *nodes.CommandStatement) string {
	s := v.visit(n.Command)
	if n.WithoutReturn {
		s += " WITHOUT RETURN"
	}
	return s + ";"
}
