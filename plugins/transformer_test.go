package plugins

import (
	"testing"

	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/visitors"
)

// --- BaseTransformer no-op behaviour ---

func TestBaseTransformerReturnsInputs(t *testing.T) {
	t.Parallel()
	bt := BaseTransformer{}
	g := nodes.NewGroupSymbol("users")

	q := &nodes.Query{Select: nodes.NewSelect(g.Col("id")), From: nodes.NewFrom(nodes.NewUnaryFromClause(g))}
	if got, err := bt.TransformQuery(q); err != nil || got != q {
		t.Errorf("TransformQuery: got %v, %v", got, err)
	}
	ins := nodes.NewInsert(g)
	if got, err := bt.TransformInsert(ins); err != nil || got != ins {
		t.Errorf("TransformInsert: got %v, %v", got, err)
	}
	upd := nodes.NewUpdate(g)
	if got, err := bt.TransformUpdate(upd); err != nil || got != upd {
		t.Errorf("TransformUpdate: got %v, %v", got, err)
	}
	del := nodes.NewDelete(g)
	if got, err := bt.TransformDelete(del); err != nil || got != del {
		t.Errorf("TransformDelete: got %v, %v", got, err)
	}
}

func TestBaseTransformerSatisfiesInterface(t *testing.T) {
	t.Parallel()
	var _ Transformer = BaseTransformer{}
}

// --- AndCriteria ---

func TestAndCriteria(t *testing.T) {
	t.Parallel()
	a := nodes.NewElementSymbol("a").Eq(1)
	b := nodes.NewElementSymbol("b").Eq(2)
	c := nodes.NewElementSymbol("c").Eq(3)

	cases := []struct {
		name     string
		existing nodes.Criteria
		add      []nodes.Criteria
		want     string
	}{
		{"nil existing single", nil, []nodes.Criteria{a}, "a = 1"},
		{"nil existing many", nil, []nodes.Criteria{a, b}, "(a = 1) AND (b = 2)"},
		{"predicate existing", a, []nodes.Criteria{b}, "(a = 1) AND (b = 2)"},
		{"and compound is flattened", nodes.And(a, b), []nodes.Criteria{c}, "(a = 1) AND (b = 2) AND (c = 3)"},
		{"or compound is kept whole", nodes.Or(a, b), []nodes.Criteria{c}, "((a = 1) OR (b = 2)) AND (c = 3)"},
		{"nothing to add", a, nil, "a = 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := visitors.Render(AndCriteria(tc.existing, tc.add...))
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAndCriteriaEmpty(t *testing.T) {
	t.Parallel()
	if got := AndCriteria(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestAndCriteriaDoesNotModifyExisting(t *testing.T) {
	t.Parallel()
	a := nodes.NewElementSymbol("a").Eq(1)
	b := nodes.NewElementSymbol("b").Eq(2)
	existing := nodes.And(a, b)
	AndCriteria(existing, nodes.NewElementSymbol("c").IsNull())
	if len(existing.Criteria) != 2 {
		t.Errorf("existing compound changed: %d members", len(existing.Criteria))
	}
}
