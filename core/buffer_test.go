package core

import (
	"testing"

	"pkt.systems/toterm/schema"
)

func outputLines(texts ...string) []schema.OutputLine {
	out := make([]schema.OutputLine, 0, len(texts))
	for _, text := range texts {
		out = append(out, schema.Line(schema.StyleOutput, text))
	}
	return out
}

func TestBufferScrollAnchorsOnAppend(t *testing.T) {
	b := NewBuffer(100)
	b.Append(outputLines("one", "two", "three", "four", "five")...)
	b.Scroll(2, 3) // scroll up two lines with viewport size 3
	if b.scrollOffset != 2 {
		t.Fatalf("expected scroll offset 2, got %d", b.scrollOffset)
	}
	b.Append(outputLines("six", "seven")...)
	if b.scrollOffset != 4 {
		t.Fatalf("expected scroll offset 4 after append, got %d", b.scrollOffset)
	}
	view := b.Snapshot(3)
	if view.AtBottom {
		t.Fatalf("expected not at bottom after scroll")
	}
	if len(view.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(view.Lines))
	}
}

func TestBufferRespectsMaxLines(t *testing.T) {
	b := NewBuffer(3)
	b.Append(outputLines("one", "two", "three", "four", "five")...)
	view := b.Snapshot(10)
	if view.TotalLines != 3 {
		t.Fatalf("expected total lines 3, got %d", view.TotalLines)
	}
	if view.Lines[0].Text != "three" || view.Lines[2].Text != "five" {
		t.Fatalf("unexpected lines: %+v", view.Lines)
	}
}

func TestBufferScrollClampsToBounds(t *testing.T) {
	b := NewBuffer(10)
	b.Append(outputLines("one", "two", "three", "four", "five")...)

	b.Scroll(10, 3)
	if b.scrollOffset != 2 {
		t.Fatalf("expected scroll offset 2, got %d", b.scrollOffset)
	}

	b.Scroll(-10, 3)
	if b.scrollOffset != 0 {
		t.Fatalf("expected scroll offset 0, got %d", b.scrollOffset)
	}
}

func TestBufferSnapshotClampsOffset(t *testing.T) {
	b := NewBuffer(10)
	b.Append(outputLines("one", "two", "three", "four", "five")...)
	b.scrollOffset = 10

	view := b.Snapshot(3)
	if view.ScrollOffset != 2 {
		t.Fatalf("expected scroll offset 2, got %d", view.ScrollOffset)
	}
	if view.Lines[0].Text != "one" || view.Lines[2].Text != "three" {
		t.Fatalf("unexpected lines: %+v", view.Lines)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(10)
	b.Append(outputLines("one", "two", "three")...)
	b.Scroll(1, 2)
	b.Clear()
	view := b.Snapshot(5)
	if view.TotalLines != 0 || len(view.Lines) != 0 || !view.AtBottom {
		t.Fatalf("expected empty buffer at bottom, got %+v", view)
	}
}
