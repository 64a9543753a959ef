package engine

import "testing"

func TestExcluded_EmptyListExcludesNothing(t *testing.T) {
	excl, err := CompileExcludes(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"", "a.txt", "deep/nested/path.log"} {
		if excl.Excluded(p) {
			t.Fatalf("empty list excluded %q", p)
		}
	}
}

func TestExcluded_SubstringRegexSearch(t *testing.T) {
	excl, err := CompileExcludes([]string{"secret", `\.log$`})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		path string
		want bool
	}{
		{"repo/secrets/config.txt", true}, // fragment matches anywhere in path
		{"repo/app/debug.log", true},
		{"repo/app/debug.log.txt", false}, // anchored fragment respects the anchor
		{"repo/app/main.go", false},
	}
	for _, c := range cases {
		if got := excl.Excluded(c.path); got != c.want {
			t.Fatalf("Excluded(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestExcluded_PathContainingItself(t *testing.T) {
	const p = "build/output.txt"
	excl, err := CompileExcludes([]string{p})
	if err != nil {
		t.Fatal(err)
	}
	if !excl.Excluded(p) {
		t.Fatal("path should exclude itself as a regex substring")
	}
}

// Fragments are regexes, not shell globs: a leading "*" has no token to
// repeat and is rejected at configuration time instead of silently matching
// like a wildcard.
func TestCompileExcludes_GlobSyntaxIsInvalidRegex(t *testing.T) {
	if _, err := CompileExcludes([]string{"*.log"}); err == nil {
		t.Fatal("expected a compile error for '*.log'")
	}
}
