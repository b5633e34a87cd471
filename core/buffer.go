package core

import "pkt.systems/toterm/schema"

// BufferView is a snapshot of a buffer's visible state.
type BufferView struct {
	Lines        []schema.OutputLine
	TotalLines   int
	ScrollOffset int
	AtBottom     bool
}

// DefaultMaxLines bounds scrollback when no limit is configured.
const DefaultMaxLines = 5000

// Buffer stores scrollback lines and scroll state.
// ScrollOffset is the number of lines from the bottom; 0 means at bottom.
type Buffer struct {
	lines        []schema.OutputLine
	scrollOffset int
	maxLines     int
}

// NewBuffer returns a buffer bounded to maxLines (DefaultMaxLines when <= 0).
func NewBuffer(maxLines int) *Buffer {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Buffer{maxLines: maxLines}
}

// Append adds lines to the buffer. If the buffer is scrolled up, the scroll offset
// is increased to keep the view anchored.
func (b *Buffer) Append(lines ...schema.OutputLine) {
	if len(lines) == 0 {
		return
	}
	b.lines = append(b.lines, lines...)
	if b.scrollOffset > 0 {
		b.scrollOffset += len(lines)
	}
	maxLines := b.maxLines
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	if len(b.lines) > maxLines {
		trim := len(b.lines) - maxLines
		b.lines = b.lines[trim:]
		if b.scrollOffset > len(b.lines) {
			b.scrollOffset = len(b.lines)
		}
	}
}

// Clear discards all lines.
func (b *Buffer) Clear() {
	b.lines = nil
	b.scrollOffset = 0
}

// Len returns the number of stored lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// ResetScroll returns the view to the bottom.
func (b *Buffer) ResetScroll() {
	b.scrollOffset = 0
}

// Scroll adjusts the scroll offset by delta. Positive delta scrolls up (older lines),
// negative delta scrolls down. Limit is the viewport height.
func (b *Buffer) Scroll(delta, limit int) {
	b.scrollOffset = clampScroll(b.scrollOffset+delta, len(b.lines), limit)
}

// Snapshot returns a view of the buffer for the given viewport limit.
func (b *Buffer) Snapshot(limit int) BufferView {
	total := len(b.lines)
	if limit <= 0 || limit > total {
		limit = total
	}

	maxScroll := maxScroll(total, limit)
	if b.scrollOffset > maxScroll {
		b.scrollOffset = maxScroll
	}

	end := total - b.scrollOffset
	if end < 0 {
		end = 0
	}
	start := end - limit
	if start < 0 {
		start = 0
	}

	lines := make([]schema.OutputLine, end-start)
	copy(lines, b.lines[start:end])

	return BufferView{
		Lines:        lines,
		TotalLines:   total,
		ScrollOffset: b.scrollOffset,
		AtBottom:     b.scrollOffset == 0,
	}
}

func maxScroll(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	if total <= limit {
		return 0
	}
	return total - limit
}

func clampScroll(offset, total, limit int) int {
	max := maxScroll(total, limit)
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
