//go:build !unix

package console

import "context"

// WatchResize is a no-op on platforms without SIGWINCH.
func WatchResize(ctx context.Context, t *TTY) <-chan Size {
	return nil
}
