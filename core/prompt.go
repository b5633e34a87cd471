package core

import (
	"path/filepath"
	"strings"
	"time"
)

// PromptConfig controls how the prompt string is assembled.
type PromptConfig struct {
	Text     string
	ShowTime bool
	ShowPath bool
}

// ClockFormat is the layout used for the status-bar clock and timed prompts.
const ClockFormat = "15:04:05"

// BuildPrompt assembles the prompt. With ShowPath the first "~" in Text is
// replaced by the working directory (abbreviated under home), or the path is
// appended when Text has no "~". With ShowTime the prompt is prefixed with
// the clock.
func BuildPrompt(cfg PromptConfig, home, cwd string, now time.Time) string {
	prompt := cfg.Text
	if cfg.ShowPath && cwd != "" {
		display := AbbreviateHome(home, cwd)
		if strings.Contains(prompt, "~") {
			prompt = strings.Replace(prompt, "~", display, 1)
		} else {
			prompt = strings.TrimRight(prompt+" "+display, " ")
		}
	}
	if cfg.ShowTime {
		prompt = "[" + now.Format(ClockFormat) + "] " + prompt
	}
	return prompt
}

// AbbreviateHome renders path relative to home as "~/...".
func AbbreviateHome(home, path string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "~" + string(filepath.Separator) + rel
}
