package command

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command represents a parsed command line.
type Command struct {
	Name      string
	Args      []string
	Raw       string
	Remainder string
}

// Parse splits a line on whitespace runs. The first token, lowercased,
// is the command name. Remainder is the line after the command word and one
// separator, so echo reproduces its text as typed. It reports false for
// blank input.
func Parse(input string) (Command, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, false
	}
	fields := strings.Fields(raw)
	name := strings.ToLower(fields[0])
	args := []string{}
	if len(fields) > 1 {
		args = fields[1:]
	}
	return Command{
		Name:      name,
		Args:      args,
		Raw:       raw,
		Remainder: remainderAfter(raw),
	}, true
}

// remainderAfter returns the text after the first token and the single
// whitespace rune that ends it, with inner and leading spacing kept. Token
// boundaries match strings.Fields.
func remainderAfter(raw string) string {
	end := strings.IndexFunc(raw, unicode.IsSpace)
	if end < 0 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(raw[end:])
	return raw[end+size:]
}
