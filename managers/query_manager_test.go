package managers

import (
	"errors"
	"testing"

	"github.com/johnathonlee/sqltext/internal/testutil"
	"github.com/johnathonlee/sqltext/nodes"
	"github.com/johnathonlee/sqltext/plugins"
	"github.com/johnathonlee/sqltext/visitors"
)

func groups() (*nodes.GroupSymbol, *nodes.GroupSymbol) {
	return nodes.NewGroupSymbol("users"), nodes.NewGroupSymbol("posts")
}

func from(g *nodes.GroupSymbol) *nodes.UnaryFromClause {
	return nodes.NewUnaryFromClause(g)
}

func mustSQL(t *testing.T, m interface {
	ToSQL(...visitors.Option) (string, error)
}, opts ...visitors.Option) string {
	t.Helper()
	sql, err := m.ToSQL(opts...)
	testutil.AssertNoError(t, err)
	return sql
}

// --- NewQuery ---

func TestNewQuerySetsFrom(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users))
	if m.Query.From == nil || len(m.Query.From.Clauses) != 1 {
		t.Fatal("expected one FROM item")
	}
	if m.Query.Where != nil {
		t.Error("expected empty where")
	}
}

func TestNewQueryNoFrom(t *testing.T) {
	t.Parallel()
	m := NewQuery()
	if m.Query.From != nil {
		t.Error("expected nil From")
	}
	testutil.AssertEqual(t, mustSQL(t, m.Select(nodes.Literal(1))), "SELECT 1")
}

func TestDefaultSelectStar(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	testutil.AssertEqual(t, mustSQL(t, NewQuery(from(users))), "SELECT * FROM users")
}

// --- Select / Distinct ---

func TestSelectReplacesSymbols(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Select(users.Col("id")).Select(users.Col("name"))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT users.name FROM users")
}

func TestDistinct(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Distinct().Select(users.Col("name"))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT DISTINCT users.name FROM users")

	m.Distinct(false)
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT users.name FROM users")
}

// --- Where / Having ---

func TestWhereCallsAreAnded(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).
		Where(users.Col("active").Eq(true)).
		Where(users.Col("age").Gt(18), users.Col("name").IsNull())
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT * FROM users WHERE (users.active = TRUE) AND (users.age > 18) AND (users.name IS NULL)")
}

func TestSingleWhereIsUnwrapped(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Where(users.Col("id").Eq(1))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT * FROM users WHERE users.id = 1")
}

func TestGroupByHaving(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).
		Select(users.Col("age"), nodes.Count(nil)).
		GroupBy(users.Col("age")).
		Having(nodes.NewCompareCriteria(nodes.Count(nil), nodes.OpGt, nodes.Literal(5)))
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT users.age, COUNT(*) FROM users GROUP BY users.age HAVING COUNT(*) > 5")

	m.Rollup()
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT users.age, COUNT(*) FROM users GROUP BY ROLLUP(users.age) HAVING COUNT(*) > 5")
}

// --- Joins ---

func TestJoinOn(t *testing.T) {
	t.Parallel()
	users, posts := groups()
	m := NewQuery(from(users)).
		Join(from(posts)).On(posts.Col("user_id").Eq(users.Col("id")))
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT * FROM users INNER JOIN posts ON posts.user_id = users.id")
}

func TestChainedJoinsNest(t *testing.T) {
	t.Parallel()
	users, posts := groups()
	comments := nodes.NewGroupSymbol("comments")
	m := NewQuery(from(users)).
		Join(from(posts)).On(posts.Col("user_id").Eq(users.Col("id"))).
		OuterJoin(from(comments)).On(comments.Col("post_id").Eq(posts.Col("id")))
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT * FROM (users INNER JOIN posts ON posts.user_id = users.id) "+
			"LEFT OUTER JOIN comments ON comments.post_id = posts.id")
}

func TestCrossJoin(t *testing.T) {
	t.Parallel()
	users, posts := groups()
	m := NewQuery(from(users)).CrossJoin(from(posts))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT * FROM users CROSS JOIN posts")
}

func TestJoinKeepsEarlierFromItems(t *testing.T) {
	t.Parallel()
	users, posts := groups()
	tags := nodes.NewGroupSymbol("tags")
	m := NewQuery(from(tags), from(users)).Join(from(posts), nodes.RightOuterJoin).On(posts.Col("id").Eq(users.Col("id")))
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT * FROM tags, users RIGHT OUTER JOIN posts ON posts.id = users.id")
}

func TestJoinAlias(t *testing.T) {
	t.Parallel()
	u := nodes.NewGroupSymbol("users").Alias("u")
	p := nodes.NewGroupSymbol("posts").Alias("p")
	m := NewQuery(from(u)).Select(u.Col("id")).Join(from(p)).On(p.Col("user_id").Eq(u.Col("id")))
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT u.id FROM users AS u INNER JOIN posts AS p ON p.user_id = u.id")
}

// --- Order / Limit / Offset ---

func TestOrderLimitOffset(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).
		OrderBy(users.Col("name").Asc()).
		OrderBy(users.Col("age").Desc()).
		Limit(10).
		Offset(20)
	testutil.AssertEqual(t, mustSQL(t, m),
		"SELECT * FROM users ORDER BY users.name, users.age DESC LIMIT 20, 10")
}

func TestOffsetOnly(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	testutil.AssertEqual(t, mustSQL(t, NewQuery(from(users)).Offset(5)), "SELECT * FROM users OFFSET 5 ROWS")
}

// --- Cache / Option / Into / With ---

func TestCacheAndOption(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).
		Cache(&nodes.CacheHint{PrefersMemory: true}).
		Option(&nodes.Option{MakeDep: []string{"users"}})
	testutil.AssertEqual(t, mustSQL(t, m), "/*+ cache(pref_mem) */ SELECT * FROM users OPTION MAKEDEP users")
}

func TestInto(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Select(users.Col("id")).Into(nodes.NewGroupSymbol("#ids"))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT users.id INTO #ids FROM users")
}

func TestWith(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	active := NewQuery(from(users)).Select(users.Col("id")).Where(users.Col("active").Eq(true))
	m := NewQuery(from(nodes.NewGroupSymbol("a"))).With("a", active.CloneQuery(), "id")
	testutil.AssertEqual(t, mustSQL(t, m),
		"WITH a (id) AS (SELECT users.id FROM users WHERE users.active = TRUE) SELECT * FROM a")
}

// --- Set operations ---

func TestSetOperations(t *testing.T) {
	t.Parallel()
	users, posts := groups()
	a := NewQuery(from(users)).Select(users.Col("id"))
	b := NewQuery(from(posts)).Select(posts.Col("user_id"))

	cases := []struct {
		name string
		node *nodes.SetQuery
		want string
	}{
		{"union", a.Union(b), "SELECT users.id FROM users UNION SELECT posts.user_id FROM posts"},
		{"union all", a.UnionAll(b), "SELECT users.id FROM users UNION ALL SELECT posts.user_id FROM posts"},
		{"intersect", a.Intersect(b), "SELECT users.id FROM users INTERSECT SELECT posts.user_id FROM posts"},
		{"intersect all", a.IntersectAll(b), "SELECT users.id FROM users INTERSECT ALL SELECT posts.user_id FROM posts"},
		{"except", a.Except(b), "SELECT users.id FROM users EXCEPT SELECT posts.user_id FROM posts"},
		{"except all", a.ExceptAll(b), "SELECT users.id FROM users EXCEPT ALL SELECT posts.user_id FROM posts"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSQL(t, visitors.NewSQLStringVisitor(), tc.node, tc.want)
		})
	}
}

func TestAsSubquery(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	sub := NewQuery(from(users)).Select(users.Col("id"))
	m := NewQuery(sub.As("s")).Select(nodes.NewElementSymbol("s.id"))
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT s.id FROM (SELECT users.id FROM users) AS s")
}

// --- Layout ---

func TestToSQLWithIndent(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Where(users.Col("id").Eq(1))
	testutil.AssertEqual(t, mustSQL(t, m, visitors.WithIndent("\t")), "SELECT *\nFROM users\nWHERE users.id = 1")
}

// --- Transformers ---

type whereAdder struct {
	plugins.BaseTransformer
	crit nodes.Criteria
}

func (w whereAdder) TransformQuery(q *nodes.Query) (*nodes.Query, error) {
	q.Where = plugins.AndCriteria(q.Where, w.crit)
	return q, nil
}

type failing struct {
	plugins.BaseTransformer
}

var errRejected = errors.New("rejected")

func (failing) TransformQuery(*nodes.Query) (*nodes.Query, error) {
	return nil, errRejected
}

func TestUseAppliesTransformersInOrder(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).
		Use(whereAdder{crit: users.Col("a").Eq(1)}).
		Use(whereAdder{crit: users.Col("b").Eq(2)})
	testutil.AssertEqual(t, len(m.Transformers()), 2)
	testutil.AssertEqual(t, mustSQL(t, m), "SELECT * FROM users WHERE (users.a = 1) AND (users.b = 2)")
}

func TestTransformersDoNotMutateManager(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	m := NewQuery(from(users)).Where(users.Col("id").Eq(1)).Use(whereAdder{crit: users.Col("x").IsNull()})
	first := mustSQL(t, m)
	second := mustSQL(t, m)
	testutil.AssertEqual(t, first, second)
	testutil.AssertEqual(t, visitors.Render(m.Query), "<undefined> FROM users WHERE users.id = 1")
}

func TestTransformerError(t *testing.T) {
	t.Parallel()
	users, _ := groups()
	_, err := NewQuery(from(users)).Use(failing{}).ToSQL()
	testutil.AssertError(t, err)
	if !errors.Is(err, errRejected) {
		t.Errorf("expected errRejected, got %v", err)
	}
}
