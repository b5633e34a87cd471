package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/toterm/internal/version"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command with HOME pointed at a temp dir.
func runCLI(t *testing.T, home, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv("HOME", home)
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	logger := pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	err := root.ExecuteContext(ctx)
	return cliResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func configFlag(home string) []string {
	return []string{"--config", filepath.Join(home, "config.yaml")}
}

func TestRootSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"shell": false, "scripts": false, "config": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected root command to include %s", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, t.TempDir(), "", "version")
	if res.err != nil {
		t.Fatalf("version: %v", res.err)
	}
	if got := strings.TrimSpace(res.stdout); got != version.Banner() {
		t.Fatalf("unexpected version output %q", got)
	}
}
