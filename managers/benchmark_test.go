package managers

import (
	"testing"

	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins/softdelete"
	"github.com/johnathonlee/sqltext/visitors"
)

// BenchmarkSimpleQuery benchmarks a basic single-group query.
func BenchmarkSimpleQuery(b *testing.B) {
	users, _ := groups()
	m := NewQuery(from(users)).
		Select(users.Col("id"), users.Col("name"), users.Col("email")).
		Where(users.Col("active").Eq(true)).
		OrderBy(users.Col("name").Asc()).
		Limit(10)

	b.ResetTimer()
	for b.Loop() {
		_, _ = m.ToSQL()
	}
}

// BenchmarkComplexJoinQuery benchmarks a multi-join query with aggregates.
func BenchmarkComplexJoinQuery(b *testing.B) {
	users, posts := groups()
	comments := nodes.NewGroupSymbol("comments")

	m := NewQuery(from(users))
	m.Select(
		users.Col("name"),
		&nodes.AliasSymbol{Name: "post_count", Symbol: nodes.Count(posts.Col("id"))},
		&nodes.AliasSymbol{Name: "comment_count", Symbol: nodes.Count(comments.Col("id"))},
	)
	m.Join(from(posts)).On(users.Col("id").Eq(posts.Col("user_id")))
	m.Join(from(comments), nodes.LeftOuterJoin).On(posts.Col("id").Eq(comments.Col("post_id")))
	m.Where(users.Col("active").Eq(true))
	m.Where(posts.Col("published").Eq(true))
	m.GroupBy(users.Col("name"))
	m.Having(nodes.NewCompareCriteria(nodes.Count(posts.Col("id")), nodes.OpGt, nodes.Literal(5)))
	m.OrderBy(users.Col("name").Asc())
	m.Limit(20)
	m.Offset(10)

	b.ResetTimer()
	for b.Loop() {
		_, _ = m.ToSQL()
	}
}

// BenchmarkIndentedQuery benchmarks the multi-line layout.
func BenchmarkIndentedQuery(b *testing.B) {
	users, _ := groups()
	m := NewQuery(from(users)).
		Select(users.Col("id"), users.Col("name")).
		Where(users.Col("role").In("admin", "editor")).
		OrderBy(users.Col("name").Asc())

	b.ResetTimer()
	for b.Loop() {
		_, _ = m.ToSQL(visitors.WithIndent("\t"))
	}
}

// BenchmarkCloneQuery benchmarks the cost of cloning the query tree.
func BenchmarkCloneQuery(b *testing.B) {
	users, posts := groups()
	m := NewQuery(from(users))
	m.Select(users.Col("id"), users.Col("name"), users.Col("email"))
	m.Join(from(posts)).On(users.Col("id").Eq(posts.Col("user_id")))
	m.Where(users.Col("active").Eq(true))
	m.OrderBy(users.Col("name").Asc())

	b.ResetTimer()
	for b.Loop() {
		_ = m.CloneQuery()
	}
}

// BenchmarkWithTransformers benchmarks rendering through a transformer.
func BenchmarkWithTransformers(b *testing.B) {
	users, _ := groups()
	m := NewQuery(from(users)).
		Select(users.Col("id")).
		Where(users.Col("active").Eq(true)).
		Use(softdelete.New())

	b.ResetTimer()
	for b.Loop() {
		_, _ = m.ToSQL()
	}
}
