package astdoc

import (
	"gopkg.in/yaml.v3"

	"github.com/johnathonlee/sqltext/nodes"
)

var statementBuilders = map[string]builder{
	"procedure": buildCreateProcedure,
	"trigger":   buildTriggerAction,
	"block":     buildBlock,
	"declare":   buildDeclare,
	"assign":    buildAssignment,
	"if":        buildIf,
	"loop":      buildLoop,
	"while":     buildWhile,
	"break":     buildBranch(nodes.BranchBreak),
	"continue":  buildBranch(nodes.BranchContinue),
	"leave":     buildBranch(nodes.BranchLeave),
	"raise":     buildRaise,
	"return":    buildReturn,
	"command":   buildCommandStatement,
}

// block reads a block mapping, or a bare list of statements.
func (o *object) block(key string) *nodes.Block {
	n := o.get(key)
	if n == nil || o.err != nil {
		return nil
	}
	if n.Kind == yaml.SequenceNode {
		b := nodes.NewBlock()
		b.Statements = o.statements(key)
		return b
	}
	b, err := decodeAs[*nodes.Block](n, "a block")
	o.fail(err)
	return b
}

func (o *object) reqBlock(key string) *nodes.Block {
	if o.require(key) == nil {
		return nil
	}
	return o.block(key)
}

// statements decodes a statement list. A command mapping in statement
// position is wrapped in a command statement.
func (o *object) statements(key string) []nodes.Statement {
	var out []nodes.Statement
	o.each(key, func(n *yaml.Node) error {
		node, err := decodeNode(n)
		if err != nil {
			return err
		}
		switch s := node.(type) {
		case nodes.Statement:
			out = append(out, s)
		case nodes.Command:
			out = append(out, &nodes.CommandStatement{Command: s})
		default:
			return errorAt(n, "%w: %T is not a statement", ErrInvalidValue, node)
		}
		return nil
	})
	return out
}

func buildCreateProcedure(o *object) nodes.Node {
	return &nodes.CreateProcedureCommand{Block: o.reqBlock("block")}
}

func buildTriggerAction(o *object) nodes.Node {
	return &nodes.TriggerAction{Block: o.reqBlock("block")}
}

func buildBlock(o *object) nodes.Node {
	return &nodes.Block{
		Label:               o.str("label"),
		Atomic:              o.boolean("atomic"),
		Statements:          o.statements("statements"),
		ExceptionGroup:      o.str("exception"),
		ExceptionStatements: o.statements("exception_statements"),
	}
}

func buildDeclare(o *object) nodes.Node {
	return &nodes.DeclareStatement{Variable: o.element("variable"), Type: o.reqStr("type"), Value: o.expr("value")}
}

func buildAssignment(o *object) nodes.Node {
	return &nodes.AssignmentStatement{Variable: o.element("variable"), Value: o.reqExpr("value")}
}

func buildIf(o *object) nodes.Node {
	return &nodes.IfStatement{Condition: o.reqCriteria("condition"), Then: o.reqBlock("then"), Else: o.block("else")}
}

func buildLoop(o *object) nodes.Node {
	return &nodes.LoopStatement{
		Label:  o.str("label"),
		Query:  o.queryCommand("query"),
		Cursor: o.reqStr("cursor"),
		Block:  o.reqBlock("block"),
	}
}

func buildWhile(o *object) nodes.Node {
	return &nodes.WhileStatement{Label: o.str("label"), Condition: o.reqCriteria("condition"), Block: o.reqBlock("block")}
}

func buildBranch(mode nodes.BranchMode) builder {
	return func(o *object) nodes.Node {
		return &nodes.BranchingStatement{Mode: mode, Label: o.str("label")}
	}
}

func buildRaise(o *object) nodes.Node {
	return &nodes.RaiseStatement{Expr: o.reqExpr("expr"), Warning: o.boolean("warning")}
}

func buildReturn(o *object) nodes.Node {
	return &nodes.ReturnStatement{Expr: o.expr("expr")}
}

func buildCommandStatement(o *object) nodes.Node {
	return &nodes.CommandStatement{Command: o.command("command"), WithoutReturn: o.boolean("without_return")}
}
