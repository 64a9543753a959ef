package engine

import (
	"fmt"
	"regexp"
)

// ExcludeList holds compiled path-exclusion expressions. A candidate path is
// excluded when any expression matches anywhere in the path string. The
// fragments are regular expressions, not shell globs: "*.log" is a quantifier
// on ".", not a wildcard.
type ExcludeList struct {
	patterns []*regexp.Regexp
}

// CompileExcludes compiles raw regular-expression fragments into an
// ExcludeList. An invalid fragment is a configuration error.
func CompileExcludes(fragments []string) (ExcludeList, error) {
	var compiled []*regexp.Regexp
	for _, f := range fragments {
		re, err := regexp.Compile(f)
		if err != nil {
			return ExcludeList{}, fmt.Errorf("invalid exclude pattern %q: %w", f, err)
		}
		compiled = append(compiled, re)
	}
	return ExcludeList{patterns: compiled}, nil
}

// Excluded reports whether any exclusion pattern matches somewhere in path.
// It is a pure predicate: no exclusion list excludes nothing.
func (e ExcludeList) Excluded(path string) bool {
	for _, re := range e.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
