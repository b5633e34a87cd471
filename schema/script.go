package schema

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Script describes one user-registered external script.
// Status is derived on load and never persisted.
type Script struct {
	Name        string       `json:"name"`
	Path        string       `json:"path"`
	Language    Language     `json:"language"`
	Description string       `json:"description"`
	Status      ScriptStatus `json:"-"`
}

// NewScript builds a script record with its name normalized and status OK.
func NewScript(name, path string, language Language, description string) Script {
	return Script{
		Name:        NormalizeScriptName(name),
		Path:        strings.TrimSpace(path),
		Language:    language,
		Description: strings.TrimSpace(description),
		Status:      StatusOK,
	}
}

// MarkNotFound flags the script as missing on disk.
func (s *Script) MarkNotFound() {
	s.Status = StatusNotFound
}

// NormalizeScriptName trims and NFC-normalizes a display name so that
// visually identical names compare equal.
func NormalizeScriptName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
