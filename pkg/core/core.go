package core

import (
	"github.com/leakscan/leakscan/internal/engine"
	"github.com/leakscan/leakscan/internal/rules"
	"github.com/leakscan/leakscan/internal/types"
	"go.uber.org/zap"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type RuleSet = rules.Set

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// RuleNames returns the names of the built-in rules in table order.
func RuleNames() []string { return rules.BuiltinNames() }

// ResolveRules resolves requested rule identifiers against the built-in
// table; unknown identifiers become literal patterns. A nil logger suppresses
// resolution warnings.
func ResolveRules(requested []string, log *zap.SugaredLogger) RuleSet {
	return rules.Resolve(requested, rules.Builtins(), log)
}

// CompileExcludes compiles raw regex exclusion fragments for Config.Excludes.
func CompileExcludes(fragments []string) (engine.ExcludeList, error) {
	return engine.CompileExcludes(fragments)
}
