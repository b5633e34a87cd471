package core

import (
	"testing"
	"time"
)

func TestBuildPrompt(t *testing.T) {
	now := time.Date(2026, 1, 2, 13, 14, 15, 0, time.UTC)
	cases := []struct {
		name string
		cfg  PromptConfig
		cwd  string
		want string
	}{
		{"plain", PromptConfig{Text: "user@ToTerminal:~$"}, "/home/u/x", "user@ToTerminal:~$"},
		{"path at home", PromptConfig{Text: "user@ToTerminal:~$", ShowPath: true}, "/home/u", "user@ToTerminal:~$"},
		{"path below home", PromptConfig{Text: "user@ToTerminal:~$", ShowPath: true}, "/home/u/x", "user@ToTerminal:~/x$"},
		{"path outside home", PromptConfig{Text: "user@ToTerminal:~$", ShowPath: true}, "/srv", "user@ToTerminal:/srv$"},
		{"path without tilde", PromptConfig{Text: ">", ShowPath: true}, "/home/u/x", "> ~/x"},
		{"time", PromptConfig{Text: "$", ShowTime: true}, "/home/u", "[13:14:15] $"},
	}
	for _, tc := range cases {
		if got := BuildPrompt(tc.cfg, "/home/u", tc.cwd, now); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestAbbreviateHome(t *testing.T) {
	cases := map[string]string{
		"/home/u":     "~",
		"/home/u/a/b": "~/a/b",
		"/home/user2": "/home/user2",
		"/":           "/",
	}
	for input, want := range cases {
		if got := AbbreviateHome("/home/u", input); got != want {
			t.Fatalf("AbbreviateHome(%q) = %q, want %q", input, got, want)
		}
	}
}
