package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "leakscan.yaml",
		"patterns: [AWS_ACCESS_KEY_ID, PASSWORD]\nexclude:\n  - vendor/\nrecursive: true\noutput: results.txt\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Patterns) != 2 || cfg.Patterns[0] != "AWS_ACCESS_KEY_ID" {
		t.Fatalf("patterns = %v", cfg.Patterns)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "vendor/" {
		t.Fatalf("exclude = %v", cfg.Exclude)
	}
	if cfg.Recursive == nil || !*cfg.Recursive {
		t.Fatal("expected recursive=true")
	}
	if cfg.Output == nil || *cfg.Output != "results.txt" {
		t.Fatalf("output = %#v", cfg.Output)
	}
}

func TestLoadFile_UnsetFieldsStayNil(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "leakscan.yaml", "recursive: false\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Recursive == nil || *cfg.Recursive {
		t.Fatal("expected recursive explicitly false")
	}
	if cfg.NoColor != nil || cfg.Output != nil || cfg.Patterns != nil {
		t.Fatal("unset fields must remain nil for precedence merging")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "leakscan.yaml", "output: plain.txt\n")
	writeTemp(t, dir, ".leakscan.yaml", "output: dot.txt\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output == nil || *cfg.Output != "dot.txt" {
		t.Fatalf("expected dotfile to win, got %#v", cfg.Output)
	}
}

func TestLoadLocal_MissingIsError(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error for missing local config")
	}
}
