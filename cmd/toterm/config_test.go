package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func configArgs(home string, args ...string) []string {
	return append(append(configFlag(home), "config"), args...)
}

func TestConfigInitSetReset(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")

	res := runCLI(t, home, "", configArgs(home, "init")...)
	if res.err != nil {
		t.Fatalf("init: %v", res.err)
	}
	if strings.TrimSpace(res.stdout) != path {
		t.Fatalf("expected init to print %s, got %q", path, res.stdout)
	}
	if res := runCLI(t, home, "", configArgs(home, "init")...); res.err == nil {
		t.Fatalf("expected init without --force to refuse an existing file")
	}

	if res := runCLI(t, home, "", configArgs(home, "set", "terminal.history_limit", "50")...); res.err != nil {
		t.Fatalf("set: %v", res.err)
	}
	res = runCLI(t, home, "", configArgs(home, "show")...)
	if res.err != nil {
		t.Fatalf("show: %v", res.err)
	}
	if !strings.Contains(res.stdout, "history_limit: 50") {
		t.Fatalf("expected updated limit, got:\n%s", res.stdout)
	}

	if res := runCLI(t, home, "", configArgs(home, "reset")...); res.err != nil {
		t.Fatalf("reset: %v", res.err)
	}
	res = runCLI(t, home, "", configArgs(home, "show")...)
	if !strings.Contains(res.stdout, "history_limit: 100") {
		t.Fatalf("expected default limit after reset, got:\n%s", res.stdout)
	}
}

func TestConfigSetRejects(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown key", key: "terminal.colour", val: "red"},
		{name: "out of range", key: "appearance.font_size_pt", val: "40"},
		{name: "bad color", key: "appearance.text_color", val: "green"},
		{name: "version", key: "config_version", val: "2"},
	}
	for _, tc := range tests {
		if res := runCLI(t, home, "", configArgs(home, "set", tc.key, tc.val)...); res.err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestConfigPathAndKeys(t *testing.T) {
	home := t.TempDir()
	res := runCLI(t, home, "", configArgs(home, "path")...)
	if strings.TrimSpace(res.stdout) != filepath.Join(home, "config.yaml") {
		t.Fatalf("unexpected path %q", res.stdout)
	}
	res = runCLI(t, home, "", "config", "path")
	if strings.TrimSpace(res.stdout) != filepath.Join(home, ".ToTerminal", "config.yaml") {
		t.Fatalf("unexpected default path %q", res.stdout)
	}
	res = runCLI(t, home, "", "config", "keys")
	if !strings.Contains(res.stdout, "terminal.history_limit\n") || strings.Contains(res.stdout, "config_version") {
		t.Fatalf("unexpected keys output %q", res.stdout)
	}
}
