//go:build unix

package console

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// WatchResize delivers the terminal size whenever the window changes.
// The channel closes when ctx ends.
func WatchResize(ctx context.Context, t *TTY) <-chan Size {
	out := make(chan Size, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	go func() {
		defer close(out)
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				size := t.Size()
				if size.Width <= 0 || size.Height <= 0 {
					continue
				}
				select {
				case out <- size:
				default:
				}
			}
		}
	}()
	return out
}
