package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/toterm/schema"
)

func TestWithScriptAddsFields(t *testing.T) {
	capture := &logCapture{}
	logger := newCaptureLogger(capture)
	log := WithScript(logger, schema.Script{Name: "build"})
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["script"] != "build" {
		t.Fatalf("expected script field, got %+v", entry)
	}
	if _, ok := entry["script_path"]; ok {
		t.Fatalf("did not expect script_path for name-only script")
	}
}

func TestWithScriptAddsPath(t *testing.T) {
	capture := &logCapture{}
	logger := newCaptureLogger(capture)
	log := WithScript(logger, schema.Script{Name: "build", Path: "/scripts/Build.java"})
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["script_path"] != "/scripts/Build.java" {
		t.Fatalf("expected script_path field, got %+v", entry)
	}
}

func TestContextWithSessionLogger(t *testing.T) {
	capture := &logCapture{}
	logger := newCaptureLogger(capture)
	ctx := ContextWithSessionLogger(context.Background(), logger, "01HZX")
	Ctx(ctx).Info("hello")

	entry := capture.firstEntry(t)
	if entry["session"] != "01HZX" {
		t.Fatalf("expected session field, got %+v", entry)
	}
}

func newCaptureLogger(capture *logCapture) pslog.Logger {
	return pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
