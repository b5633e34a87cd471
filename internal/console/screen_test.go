package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreenRepaintsChangedRows(t *testing.T) {
	var out bytes.Buffer
	s := newScreen(&out)

	if err := s.Render([]string{"status", "one", "input"}, 3, 1); err != nil {
		t.Fatalf("render: %v", err)
	}
	first := out.String()
	if !strings.Contains(first, seqClearAll) || !strings.Contains(first, "one") {
		t.Fatalf("expected full first paint, got %q", first)
	}

	out.Reset()
	if err := s.Render([]string{"status", "two", "input"}, 3, 7); err != nil {
		t.Fatalf("render: %v", err)
	}
	second := out.String()
	if strings.Contains(second, seqClearAll) {
		t.Fatalf("expected incremental paint, got %q", second)
	}
	if !strings.Contains(second, "\x1b[2;1H"+seqClearRow+"two") {
		t.Fatalf("expected row 2 rewritten, got %q", second)
	}
	if strings.Contains(second, "status") || strings.Contains(second, "input") {
		t.Fatalf("expected unchanged rows skipped, got %q", second)
	}
	if !strings.HasSuffix(second, "\x1b[3;7H"+seqShowCursor) {
		t.Fatalf("expected cursor placement, got %q", second)
	}

	out.Reset()
	s.Invalidate()
	if err := s.Render([]string{"status", "two", "input"}, 0, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), seqClearAll) || !strings.Contains(out.String(), "\x1b[1;1H") {
		t.Fatalf("expected full repaint after invalidate, got %q", out.String())
	}
}
