package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Walk enumerates candidate files under cfg.Root and invokes handle for each
// path that survives the exclusion filters, before any read is attempted.
// Enumeration is lexicographic in both modes, so the visit order is
// deterministic and stable across runs.
func Walk(cfg Config, handle func(path string)) error {
	if !cfg.Recursive {
		return walkFlat(cfg, handle)
	}
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && p != cfg.Root && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if admitted(p, cfg) {
			handle(p)
		}
		return nil
	})
}

// walkFlat visits only the direct children of root that are regular files.
// Directories are skipped, never descended into.
func walkFlat(cfg Config, handle func(path string)) error {
	entries, err := os.ReadDir(cfg.Root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		p := filepath.Join(cfg.Root, entry.Name())
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if admitted(p, cfg) {
			handle(p)
		}
	}
	return nil
}

// admitted applies the exclusion filters to a candidate path.
func admitted(p string, cfg Config) bool {
	if cfg.Excludes.Excluded(p) {
		return false
	}
	rel, err := filepath.Rel(cfg.Root, p)
	if err != nil {
		rel = p
	}
	rel = strings.ReplaceAll(rel, "\\", "/")
	if matchAnyGlob(rel, cfg.ExcludeGlobs) {
		return false
	}
	if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
		return false
	}
	return true
}

func matchAnyGlob(rel string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
