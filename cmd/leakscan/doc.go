// Package leakscan provides the command-line interface for the leakscan tool.
// It configures subcommands (scan, rules, version, completion), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/leakscan/leakscan/cmd/leakscan"
//	func main() { leakscan.Execute() }
package leakscan
