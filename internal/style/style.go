// Package style maps appearance settings to a presentation descriptor and
// renders output lines for the terminal frontend.
package style

import (
	"fmt"
	"strconv"

	"pkt.systems/toterm/internal/appconfig"
	"pkt.systems/toterm/schema"
)

// Descriptor is the presentation-neutral result of applying appearance settings.
type Descriptor struct {
	Background string
	Foreground string
	FontSize   string
	FontFamily string
}

var fontCSS = map[schema.FontFamily]string{
	"courier_new":     "'Courier New', monospace",
	"consolas":        "'Consolas', monospace",
	"monaco":          "'Monaco', monospace",
	"ubuntu_mono":     "'Ubuntu Mono', monospace",
	"jetbrains_mono":  "'JetBrains Mono', monospace",
	"fira_code":       "'Fira Code', monospace",
	"source_code_pro": "'Source Code Pro', monospace",
}

// FontCSS returns the CSS font-family value for a font key. Unknown keys
// fall back to the default font.
func FontCSS(name string) string {
	font, ok := schema.NormalizeFontFamily(name)
	if !ok {
		font = schema.DefaultFont
	}
	return fontCSS[font]
}

// FromConfig derives a descriptor from the appearance section.
func FromConfig(cfg appconfig.Config) Descriptor {
	return Descriptor{
		Background: cfg.Appearance.BackgroundColor,
		Foreground: cfg.Appearance.TextColor,
		FontSize:   strconv.Itoa(cfg.Appearance.FontSizePt) + "px",
		FontFamily: FontCSS(cfg.Appearance.FontFamily),
	}
}

// CSS returns the inline base style for GUI collaborators.
func (d Descriptor) CSS() string {
	return fmt.Sprintf(
		"-fx-background-color: %s !important; -fx-text-fill: %s !important; -fx-font-size: %s !important; -fx-font-family: %s !important;",
		d.Background, d.Foreground, d.FontSize, d.FontFamily,
	)
}
