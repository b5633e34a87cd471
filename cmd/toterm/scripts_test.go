package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/toterm/schema"
)

func scriptsArgs(home string, args ...string) []string {
	return append(append(configFlag(home), "scripts"), args...)
}

func TestScriptsAddListEdit(t *testing.T) {
	home := t.TempDir()
	scriptPath := filepath.Join(home, "Build.java")
	if err := os.WriteFile(scriptPath, []byte("class Build {}"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	res := runCLI(t, home, "", scriptsArgs(home, "add", "Build All", scriptPath, "-l", "java", "-d", "builds the whole project")...)
	if res.err != nil {
		t.Fatalf("add: %v", res.err)
	}
	missing := filepath.Join(home, "later.js")
	res = runCLI(t, home, "", scriptsArgs(home, "add", "later", missing, "-l", "node", "-d", "written some other day")...)
	if res.err != nil {
		t.Fatalf("add missing: %v", res.err)
	}
	if !strings.Contains(res.stderr, "warning:") {
		t.Fatalf("expected missing path warning, got %q", res.stderr)
	}

	res = runCLI(t, home, "", scriptsArgs(home, "list")...)
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %q", res.stdout)
	}
	if !strings.Contains(lines[1], "Build All") || !strings.Contains(lines[1], "OK") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "NodeJS") || !strings.Contains(lines[2], "NotFound") {
		t.Fatalf("unexpected second row %q", lines[2])
	}

	res = runCLI(t, home, "", scriptsArgs(home, "edit", "Build All", "--description", "builds only the parts that changed")...)
	if res.err != nil {
		t.Fatalf("edit: %v", res.err)
	}
	data, err := os.ReadFile(filepath.Join(home, ".ToTerminal", "scripts", "scripts.json"))
	if err != nil {
		t.Fatalf("read scripts file: %v", err)
	}
	if !strings.Contains(string(data), "builds only the parts that changed") {
		t.Fatalf("expected edited description on disk, got %s", data)
	}
	if strings.Contains(string(data), "builds the whole project") {
		t.Fatalf("expected old description replaced, got %s", data)
	}
}

func TestScriptsAddRejectsInvalid(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "short name", args: []string{"add", "ab", "/tmp/x.js", "-l", "node", "-d", "long enough text"}, want: schema.ErrInvalidScript},
		{name: "short description", args: []string{"add", "valid name", "/tmp/x.js", "-l", "node", "-d", "short"}, want: schema.ErrInvalidScript},
		{name: "language", args: []string{"add", "valid name", "/tmp/x.rb", "-l", "ruby", "-d", "long enough text"}, want: schema.ErrInvalidLanguage},
	}
	for _, tc := range tests {
		res := runCLI(t, home, "", scriptsArgs(home, tc.args...)...)
		if !errors.Is(res.err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, res.err)
		}
	}
}

func TestScriptsAddHelpListsLanguages(t *testing.T) {
	home := t.TempDir()
	res := runCLI(t, home, "", scriptsArgs(home, "add", "--help")...)
	if res.err != nil {
		t.Fatalf("help: %v", res.err)
	}
	if !strings.Contains(res.stdout, "script language ("+schema.LanguageNames()+")") {
		t.Fatalf("expected language list in help, got %q", res.stdout)
	}
}

func TestScriptsEditMissing(t *testing.T) {
	home := t.TempDir()
	res := runCLI(t, home, "", scriptsArgs(home, "edit", "nothing", "--description", "does not matter at all")...)
	if !errors.Is(res.err, schema.ErrScriptNotFound) {
		t.Fatalf("expected script not found, got %v", res.err)
	}
}

func TestScriptsRun(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	home := t.TempDir()
	scriptPath := filepath.Join(home, "task.js")
	if err := os.WriteFile(scriptPath, []byte("echo ran\nexit 3\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if res := runCLI(t, home, "", scriptsArgs(home, "add", "task", scriptPath, "-l", "node", "-d", "prints and fails")...); res.err != nil {
		t.Fatalf("add: %v", res.err)
	}
	res := runCLI(t, home, "", scriptsArgs(home, "run", "task", "--node", "/bin/sh")...)
	if res.err == nil || !strings.Contains(res.err.Error(), "exited with code 3") {
		t.Fatalf("expected exit code 3 error, got %v", res.err)
	}
	if strings.TrimSpace(res.stdout) != "ran" {
		t.Fatalf("expected streamed stdout, got %q", res.stdout)
	}
}

func TestScriptsCorruptRegistry(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".ToTerminal", "scripts", "scripts.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runCLI(t, home, "", scriptsArgs(home, "list")...)
	if res.err != nil {
		t.Fatalf("list should tolerate a corrupt registry: %v", res.err)
	}
	if !strings.Contains(res.stderr, "warning:") {
		t.Fatalf("expected a visible warning, got %q", res.stderr)
	}

	res = runCLI(t, home, "", scriptsArgs(home, "add", "valid name", "/tmp/x.js", "-l", "node", "-d", "long enough text")...)
	if res.err == nil {
		t.Fatalf("expected add to refuse overwriting a corrupt registry")
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{not json" {
		t.Fatalf("expected corrupt file left untouched, got %q (%v)", data, err)
	}
}
