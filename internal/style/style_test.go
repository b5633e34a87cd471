package style

import (
	"strings"
	"testing"

	"pkt.systems/toterm/internal/appconfig"
	"pkt.systems/toterm/schema"
)

func TestFromConfigDefaults(t *testing.T) {
	cfg, err := appconfig.DefaultConfig()
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	got := FromConfig(cfg)
	want := Descriptor{
		Background: "#004b23",
		Foreground: "#ccff33",
		FontSize:   "12px",
		FontFamily: "'Courier New', monospace",
	}
	if got != want {
		t.Fatalf("descriptor mismatch:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestFontCSS(t *testing.T) {
	cases := map[string]string{
		"jetbrains_mono": "'JetBrains Mono', monospace",
		"Fira Code":      "'Fira Code', monospace",
		"wingdings":      "'Courier New', monospace",
		"":               "'Courier New', monospace",
	}
	for input, want := range cases {
		if got := FontCSS(input); got != want {
			t.Fatalf("FontCSS(%q) = %q, want %q", input, got, want)
		}
	}
	for _, font := range schema.AvailableFonts() {
		if _, ok := fontCSS[font]; !ok {
			t.Fatalf("font %q has no css mapping", font)
		}
	}
}

func TestDescriptorCSS(t *testing.T) {
	d := Descriptor{Background: "#000000", Foreground: "#ffffff", FontSize: "14px", FontFamily: "'Monaco', monospace"}
	want := "-fx-background-color: #000000 !important; -fx-text-fill: #ffffff !important; -fx-font-size: 14px !important; -fx-font-family: 'Monaco', monospace !important;"
	if got := d.CSS(); got != want {
		t.Fatalf("css mismatch:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestRendererKeepsText(t *testing.T) {
	r := NewRenderer(Descriptor{Background: "#004b23", Foreground: "#ccff33"})
	for _, class := range schema.StyleClasses() {
		out := r.Line(schema.Line(class, "hello"), 0)
		if !strings.Contains(out, "hello") {
			t.Fatalf("class %s lost text: %q", class, out)
		}
	}
	if out := r.Line(schema.Line("unknown", "fallback"), 0); !strings.Contains(out, "fallback") {
		t.Fatalf("unknown class lost text: %q", out)
	}
	bar := r.StatusBar("/home/user", "12:00:00", 40)
	if !strings.Contains(bar, "/home/user") || !strings.Contains(bar, "12:00:00") {
		t.Fatalf("status bar missing segments: %q", bar)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("expected padded text, got %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := pad("ab", 0); got != "ab" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
