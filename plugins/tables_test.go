package plugins

import (
	"testing"

	"github.com/johnathonlee/sqltext/nodes"
)

func queryFrom(clauses ...nodes.FromClause) *nodes.Query {
	return &nodes.Query{Select: nodes.NewSelect(nodes.Star()), From: nodes.NewFrom(clauses...)}
}

func TestCollectGroupsFromGroup(t *testing.T) {
	t.Parallel()
	users := nodes.NewGroupSymbol("users")
	refs := CollectGroups(queryFrom(nodes.NewUnaryFromClause(users)))
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].Name != "users" {
		t.Errorf("expected name 'users', got %q", refs[0].Name)
	}
	if refs[0].Group != users {
		t.Error("expected group to be the users symbol")
	}
}

func TestCollectGroupsFromAlias(t *testing.T) {
	t.Parallel()
	u := nodes.NewGroupSymbol("users").Alias("u")
	refs := CollectGroups(queryFrom(nodes.NewUnaryFromClause(u)))
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].Name != "users" {
		t.Errorf("expected underlying name 'users', got %q", refs[0].Name)
	}
	if refs[0].Group != u {
		t.Error("expected group to be the alias")
	}
}

func TestCollectGroupsThroughJoins(t *testing.T) {
	t.Parallel()
	users := nodes.NewUnaryFromClause(nodes.NewGroupSymbol("users"))
	posts := nodes.NewUnaryFromClause(nodes.NewGroupSymbol("posts"))
	tags := nodes.NewUnaryFromClause(nodes.NewGroupSymbol("tags"))
	join := nodes.NewJoin(nodes.NewJoin(users, posts, nodes.InnerJoin), tags, nodes.LeftOuterJoin)
	other := nodes.NewUnaryFromClause(nodes.NewGroupSymbol("other"))

	refs := CollectGroups(queryFrom(join, other))
	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	want := []string{"users", "posts", "tags", "other"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ref %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestCollectGroupsSkipsSubqueries(t *testing.T) {
	t.Parallel()
	sub := &nodes.SubqueryFromClause{Command: queryFrom(nodes.NewUnaryFromClause(nodes.NewGroupSymbol("x"))), Name: "s"}
	if refs := CollectGroups(queryFrom(sub)); len(refs) != 0 {
		t.Errorf("expected no refs, got %v", refs)
	}
}

func TestCollectGroupsNoFrom(t *testing.T) {
	t.Parallel()
	if refs := CollectGroups(&nodes.Query{}); refs != nil {
		t.Errorf("expected nil, got %v", refs)
	}
	if refs := CollectGroups(nil); refs != nil {
		t.Errorf("expected nil, got %v", refs)
	}
}
