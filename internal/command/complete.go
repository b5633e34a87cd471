package command

import (
	"sort"
	"strings"
)

var builtins = []string{"help", "clear", "pwd", "whoami", "date", "echo", "cd", "exit"}

// Builtins returns the builtin command names in help order.
func Builtins() []string {
	return append([]string(nil), builtins...)
}

// Complete returns the builtin names starting with prefix, sorted.
// Only the first word of a line is completed.
func Complete(prefix string) []string {
	if strings.ContainsAny(prefix, " \t") {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var out []string
	for _, name := range builtins {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// CommonPrefix returns the longest prefix shared by all candidates.
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
