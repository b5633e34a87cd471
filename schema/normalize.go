package schema

import (
	"fmt"
	"strings"
)

var languages = []Language{LanguageJava, LanguageNodeJS}

// AvailableLanguages returns the supported script languages.
func AvailableLanguages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageNames returns the supported languages joined for display.
func LanguageNames() string {
	names := make([]string, 0, len(languages))
	for _, language := range AvailableLanguages() {
		names = append(names, string(language))
	}
	return strings.Join(names, ", ")
}

// NormalizeLanguage returns the canonical language for user input.
func NormalizeLanguage(value string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "java":
		return LanguageJava, nil
	case "nodejs", "node", "node.js", "js", "javascript":
		return LanguageNodeJS, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrInvalidLanguage, value, LanguageNames())
	}
}

// DefaultFont is the font used when none is configured.
const DefaultFont FontFamily = "courier_new"

var fonts = []FontFamily{
	"courier_new",
	"consolas",
	"monaco",
	"ubuntu_mono",
	"jetbrains_mono",
	"fira_code",
	"source_code_pro",
}

// AvailableFonts returns the fixed font set.
func AvailableFonts() []FontFamily {
	out := make([]FontFamily, len(fonts))
	copy(out, fonts)
	return out
}

// NormalizeFontFamily returns a canonical font key if supported.
func NormalizeFontFamily(name string) (FontFamily, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, font := range fonts {
		if string(font) == normalized {
			return font, true
		}
	}
	return "", false
}
