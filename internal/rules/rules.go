package rules

import (
	"regexp"

	"go.uber.org/zap"
)

// Rule is a named secret pattern. Pattern is a regular expression matched
// unanchored against each line of each scanned file.
type Rule struct {
	Name    string
	Pattern string
}

// Builtins returns the default rule table in its canonical order. The table
// is constructed fresh on every call so callers can never mutate shared state.
func Builtins() []Rule {
	return []Rule{
		{Name: "API_KEY", Pattern: `[A-Za-z0-9]{32,45}`},
		{Name: "PASSWORD", Pattern: `password|pwd|secret`},
		{Name: "AWS_ACCESS_KEY_ID", Pattern: `AKIA[0-9A-Z]{16}`},
		{Name: "AWS_SECRET_ACCESS_KEY", Pattern: `[a-zA-Z0-9/+]{40}`},
	}
}

// BuiltinNames returns the names of the default rules in table order.
func BuiltinNames() []string {
	bs := Builtins()
	names := make([]string, 0, len(bs))
	for _, r := range bs {
		names = append(names, r.Name)
	}
	return names
}

// CompiledRule pairs a rule name with its source pattern and compiled form.
type CompiledRule struct {
	Name    string
	Pattern string
	Regexp  *regexp.Regexp
}

// Set is an insertion-ordered collection of compiled rules. It is read-only
// after Resolve; requesting the same name twice keeps its original position
// and overwrites the pattern.
type Set struct {
	rules []CompiledRule
	index map[string]int
}

// Resolve turns requested rule identifiers into an active rule set against
// the given builtin table. Identifiers present in the table take its canonical
// pattern; anything else is registered under its own name as a custom pattern
// with a logged warning. Identifiers that are not valid regular expressions
// degrade to quoted-literal matching.
func Resolve(requested []string, builtins []Rule, log *zap.SugaredLogger) Set {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	table := make(map[string]string, len(builtins))
	for _, r := range builtins {
		table[r.Name] = r.Pattern
	}

	set := Set{index: make(map[string]int)}
	for _, name := range requested {
		pattern, known := table[name]
		if !known {
			log.Warnf("rule %q not found in default patterns, using as literal pattern", name)
			pattern = name
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warnf("rule %q is not a valid regular expression, matching it literally: %v", name, err)
			re = regexp.MustCompile(regexp.QuoteMeta(pattern))
			pattern = re.String()
		}
		set.add(CompiledRule{Name: name, Pattern: pattern, Regexp: re})
	}
	return set
}

func (s *Set) add(r CompiledRule) {
	if i, ok := s.index[r.Name]; ok {
		s.rules[i] = r
		return
	}
	s.index[r.Name] = len(s.rules)
	s.rules = append(s.rules, r)
}

// Rules returns the compiled rules in iteration order. The returned slice is
// a copy; the set itself stays immutable.
func (s Set) Rules() []CompiledRule {
	out := make([]CompiledRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Names returns the rule names in iteration order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		names = append(names, r.Name)
	}
	return names
}

// Pattern returns the active pattern source for a rule name.
func (s Set) Pattern(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.rules[i].Pattern, true
}

// Len reports the number of rules in the set.
func (s Set) Len() int { return len(s.rules) }
