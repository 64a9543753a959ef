// Package core provides a small, stable facade over leakscan's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so third-party tools can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	set := core.ResolveRules(core.RuleNames(), nil)
//	findings, err := core.Scan(core.Config{Root: ".", Rules: set, Recursive: true})
package core
