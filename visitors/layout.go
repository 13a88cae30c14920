package visitors

import "strings"

// Layout decides the whitespace the renderer emits between major clauses
// and in front of procedural statements. Levels are absolute: the renderer
// adds the depth of the enclosing procedural blocks.
type Layout interface {
	// BeginClause returns the separator written before a clause such as
	// FROM or WHERE. Level 0 is used around set operators.
	BeginClause(level int) string
	// Tabs returns the prefix written before a procedural statement line.
	Tabs(level int) string
}

// FlatLayout renders everything on one line, except procedural statements
// which always end with a newline.
type FlatLayout struct{}

func (FlatLayout) BeginClause(int) string { return " " }
func (FlatLayout) Tabs(int) string        { return "" }

// IndentLayout starts every clause on a new line and indents nested
// statements with Unit.
type IndentLayout struct {
	Unit string
}

func (l IndentLayout) BeginClause(level int) string {
	return "\n" + l.Tabs(level-1)
}

func (l IndentLayout) Tabs(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(l.Unit, level)
}
