package logx

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/toterm/schema"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSession annotates the logger with a session id when available.
func WithSession(log pslog.Logger, sessionID schema.SessionID) pslog.Logger {
	if sessionID != "" {
		log = log.With("session", sessionID)
	}
	return log
}

// WithScript annotates the logger with script metadata when available.
func WithScript(log pslog.Logger, script schema.Script) pslog.Logger {
	if script.Name != "" {
		log = log.With("script", script.Name)
	}
	if script.Path != "" {
		log = log.With("script_path", script.Path)
	}
	return log
}

// ContextWithSessionLogger attaches a session-annotated logger to the
// context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, sessionID schema.SessionID) context.Context {
	return pslog.ContextWithLogger(ctx, WithSession(log, sessionID))
}
