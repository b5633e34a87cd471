package console

import (
	"bytes"
	"fmt"
	"io"
)

const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqClearAll   = "\x1b[H\x1b[2J"
	seqClearRow   = "\x1b[2K"
)

// screen paints full frames onto the alternate screen, rewriting only the
// rows that changed since the previous frame.
type screen struct {
	out  io.Writer
	prev []string
	buf  bytes.Buffer
}

func newScreen(out io.Writer) *screen {
	return &screen{out: out}
}

func (s *screen) EnterAltScreen() {
	s.prev = nil
	_, _ = io.WriteString(s.out, "\x1b[?1049h"+seqClearAll)
}

func (s *screen) ExitAltScreen() {
	s.prev = nil
	_, _ = io.WriteString(s.out, "\x1b[0m\x1b[?1049l"+seqShowCursor)
}

// Invalidate makes the next Render repaint every row.
func (s *screen) Invalidate() {
	s.prev = nil
}

func (s *screen) Render(rows []string, cursorRow, cursorCol int) error {
	s.buf.Reset()
	s.buf.WriteString(seqHideCursor)
	full := len(s.prev) != len(rows)
	if full {
		s.buf.WriteString(seqClearAll)
	}
	for i, row := range rows {
		if !full && s.prev[i] == row {
			continue
		}
		fmt.Fprintf(&s.buf, "\x1b[%d;1H%s%s", i+1, seqClearRow, row)
	}
	fmt.Fprintf(&s.buf, "\x1b[%d;%dH", max(cursorRow, 1), max(cursorCol, 1))
	s.buf.WriteString(seqShowCursor)
	s.prev = append(s.prev[:0], rows...)
	_, err := s.out.Write(s.buf.Bytes())
	return err
}
