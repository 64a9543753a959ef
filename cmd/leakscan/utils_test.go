package leakscan

import "testing"

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestPickString(t *testing.T) {
	if got := pickString("cli", strp("local"), strp("global")); got != "cli" {
		t.Fatalf("cli should win, got %q", got)
	}
	if got := pickString("", strp("local"), strp("global")); got != "local" {
		t.Fatalf("local should win, got %q", got)
	}
	if got := pickString("", nil, strp("global")); got != "global" {
		t.Fatalf("global should win, got %q", got)
	}
	if got := pickString("", nil, nil); got != "" {
		t.Fatalf("expected empty default, got %q", got)
	}
}

func TestPickList(t *testing.T) {
	if got := pickList([]string{"a"}, []string{"b"}, []string{"c"}); got[0] != "a" {
		t.Fatalf("cli should win, got %v", got)
	}
	if got := pickList(nil, []string{"b"}, []string{"c"}); got[0] != "b" {
		t.Fatalf("local should win, got %v", got)
	}
	if got := pickList(nil, nil, []string{"c"}); got[0] != "c" {
		t.Fatalf("global should win, got %v", got)
	}
}

func TestPickBool(t *testing.T) {
	if !pickBool(true, boolp(false), boolp(false)) {
		t.Fatal("cli true should win")
	}
	if pickBool(false, boolp(false), boolp(true)) {
		t.Fatal("local false should mask global true")
	}
	if !pickBool(false, nil, boolp(true)) {
		t.Fatal("global true should apply when others unset")
	}
}
