package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"pkt.systems/toterm/schema"
)

// LineWriter prints output lines as plain text, for non-interactive input.
type LineWriter struct {
	W io.Writer
}

// Emit writes each line followed by a newline.
func (w LineWriter) Emit(lines []schema.OutputLine) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w.W, line.Text)
	}
}

// RunLines submits every line read from in until EOF or ctx ends.
func RunLines(ctx context.Context, in io.Reader, session Session) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		session.Submit(ctx, scanner.Text())
	}
	return scanner.Err()
}
