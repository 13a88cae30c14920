package nodes

// Comparison helpers on ElementSymbol. Raw Go values are wrapped with
// Literal; Expressions are used as-is.

// Eq creates an equality comparison: e = val.
func (e *ElementSymbol) Eq(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpEq, Right: Literal(val)}
}

// NotEq creates an inequality comparison: e <> val.
func (e *ElementSymbol) NotEq(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpNe, Right: Literal(val)}
}

// Gt creates a greater-than comparison: e > val.
func (e *ElementSymbol) Gt(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpGt, Right: Literal(val)}
}

// GtEq creates a greater-than-or-equal comparison: e >= val.
func (e *ElementSymbol) GtEq(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpGe, Right: Literal(val)}
}

// Lt creates a less-than comparison: e < val.
func (e *ElementSymbol) Lt(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpLt, Right: Literal(val)}
}

// LtEq creates a less-than-or-equal comparison: e <= val.
func (e *ElementSymbol) LtEq(val any) *CompareCriteria {
	return &CompareCriteria{Left: e, Op: OpLe, Right: Literal(val)}
}

// Like creates e LIKE pattern.
func (e *ElementSymbol) Like(pattern any) *MatchCriteria {
	return &MatchCriteria{Left: e, Right: Literal(pattern)}
}

// NotLike creates e NOT LIKE pattern.
func (e *ElementSymbol) NotLike(pattern any) *MatchCriteria {
	return &MatchCriteria{Left: e, Right: Literal(pattern), Negated: true}
}

// In creates e IN (vals...).
func (e *ElementSymbol) In(vals ...any) *SetCriteria {
	return &SetCriteria{Expr: e, Values: literals(vals)}
}

// NotIn creates e NOT IN (vals...).
func (e *ElementSymbol) NotIn(vals ...any) *SetCriteria {
	return &SetCriteria{Expr: e, Values: literals(vals), Negated: true}
}

// InQuery creates e IN (subquery).
func (e *ElementSymbol) InQuery(cmd QueryCommand) *SubquerySetCriteria {
	return &SubquerySetCriteria{Expr: e, Command: cmd}
}

// Between creates e BETWEEN low AND high.
func (e *ElementSymbol) Between(low, high any) *BetweenCriteria {
	return &BetweenCriteria{Expr: e, Lower: Literal(low), Upper: Literal(high)}
}

// NotBetween creates e NOT BETWEEN low AND high.
func (e *ElementSymbol) NotBetween(low, high any) *BetweenCriteria {
	return &BetweenCriteria{Expr: e, Lower: Literal(low), Upper: Literal(high), Negated: true}
}

// IsNull creates e IS NULL.
func (e *ElementSymbol) IsNull() *IsNullCriteria {
	return &IsNullCriteria{Expr: e}
}

// IsNotNull creates e IS NOT NULL.
func (e *ElementSymbol) IsNotNull() *IsNullCriteria {
	return &IsNullCriteria{Expr: e, Negated: true}
}

// IsDistinctFrom creates e IS DISTINCT FROM val.
func (e *ElementSymbol) IsDistinctFrom(val any) *IsDistinctCriteria {
	return &IsDistinctCriteria{Left: e, Right: Literal(val)}
}

// IsNotDistinctFrom creates e IS NOT DISTINCT FROM val.
func (e *ElementSymbol) IsNotDistinctFrom(val any) *IsDistinctCriteria {
	return &IsDistinctCriteria{Left: e, Right: Literal(val), Negated: true}
}

// Asc creates an ascending ORDER BY item.
func (e *ElementSymbol) Asc() *OrderByItem {
	return &OrderByItem{Symbol: e}
}

// Desc creates a descending ORDER BY item.
func (e *ElementSymbol) Desc() *OrderByItem {
	return &OrderByItem{Symbol: e, Descending: true}
}

func literals(vals []any) []Expression {
	wrapped := make([]Expression, len(vals))
	for i, v := range vals {
		wrapped[i] = Literal(v)
	}
	return wrapped
}
