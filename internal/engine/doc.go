// Package engine contains the core scanning logic for leakscan. It traverses
// target files, matches every line against the active rule set, and returns
// structured findings. This package is internal; external consumers should use
// the stable facade in pkg/core.
package engine
