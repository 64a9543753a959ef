package engine

import (
	"time"

	"github.com/leakscan/leakscan/internal/rules"
	"github.com/leakscan/leakscan/internal/types"
	"go.uber.org/zap"
)

// Config controls a scan: where it starts, which rules run, and which paths
// are skipped. The caller validates that Root is an existing directory before
// handing it to the engine.
type Config struct {
	Root            string
	Rules           rules.Set
	Excludes        ExcludeList
	ExcludeGlobs    []string
	Recursive       bool
	DefaultExcludes bool
	Log             *zap.SugaredLogger
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks the tree and feeds each admitted file to the line
// matcher, appending its findings in traversal order. Everything runs on one
// goroutine: per-file failures are logged and isolated, and the resulting
// sequence is identical across repeat runs over an unchanged tree.
func ScanWithStats(cfg Config) (Result, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var res Result
	started := time.Now()
	err := Walk(cfg, func(p string) {
		res.FilesScanned++
		res.Findings = append(res.Findings, ScanFile(p, cfg.Rules, log)...)
	})
	res.Duration = time.Since(started)
	if err != nil {
		return res, err
	}
	return res, nil
}
