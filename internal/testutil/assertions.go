package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johnathonlee/sqltext/nodes"
)

// AssertEqual fails the test when got != want. Values print in Go syntax so
// strings show their escapes.
func AssertEqual[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %#v\ngot:\n  %#v", want, got)
	}
}

// AssertSQL renders node with v and compares the text with want. The
// visitor carries any layout, so indented output is checked the same way.
func AssertSQL(t testing.TB, v nodes.Visitor, node nodes.Node, want string) {
	t.Helper()
	AssertText(t, node.Accept(v), want)
}

// AssertText compares rendered SQL. A mismatch reports both strings quoted
// and, for multi-line text, a per-line diff.
func AssertText(t testing.TB, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	if !strings.Contains(got, "\n") && !strings.Contains(want, "\n") {
		t.Errorf("expected:\n  %q\ngot:\n  %q", want, got)
		return
	}
	t.Errorf("rendered SQL mismatch (-want +got):\n%s",
		cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")))
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}
