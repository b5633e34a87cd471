// Package runner launches registered scripts with their language runtime.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"pkt.systems/toterm/internal/logx"
	"pkt.systems/toterm/schema"
)

// Config controls which runtime binaries are used per language.
type Config struct {
	JavaBinary string
	NodeBinary string
	Env        []string
	WorkingDir string
}

// Result describes how a script process ended.
type Result struct {
	ExitCode int
	Signal   string
	Duration time.Duration
}

// Runner spawns scripts.
type Runner struct {
	cfg Config
	fs  afero.Fs
}

// New constructs a runner. A nil fs uses the OS filesystem for the existence check.
func New(fs afero.Fs, cfg Config) *Runner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if cfg.JavaBinary == "" {
		cfg.JavaBinary = "java"
	}
	if cfg.NodeBinary == "" {
		cfg.NodeBinary = "node"
	}
	return &Runner{cfg: cfg, fs: fs}
}

// Command maps a script to the runtime binary and its arguments.
func (r *Runner) Command(script schema.Script) (string, []string, error) {
	if script.Path == "" {
		return "", nil, fmt.Errorf("%w: script %q has no path", schema.ErrInvalidScript, script.Name)
	}
	switch script.Language {
	case schema.LanguageJava:
		return r.cfg.JavaBinary, []string{script.Path}, nil
	case schema.LanguageNodeJS:
		return r.cfg.NodeBinary, []string{script.Path}, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", schema.ErrInvalidLanguage, script.Language)
	}
}

// Run spawns script and streams its stdout and stderr until it exits.
// A non-zero exit is reported in Result, not as an error.
func (r *Runner) Run(ctx context.Context, script schema.Script, stdout, stderr io.Writer) (Result, error) {
	log := logx.WithScript(logx.Ctx(ctx), script)
	if _, err := r.fs.Stat(script.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("runner script missing")
			return Result{}, fmt.Errorf("%w: %s", schema.ErrNotFound, script.Path)
		}
		return Result{}, err
	}
	name, args, err := r.Command(script)
	if err != nil {
		return Result{}, err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), r.cfg.Env...)
	if r.cfg.WorkingDir != "" {
		cmd.Dir = r.cfg.WorkingDir
	}

	started := time.Now()
	log.Info("runner exec start", "binary", name, "args", args)
	if err := cmd.Start(); err != nil {
		log.Error("runner exec start failed", "binary", name, "err", err)
		return Result{}, fmt.Errorf("start %s: %w", name, err)
	}
	log.Debug("runner exec started", "pid", cmd.Process.Pid)

	res := Result{}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			log.Error("runner exec wait failed", "err", err)
			return Result{}, err
		}
		res.ExitCode = exitErr.ExitCode()
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			res.Signal = status.Signal().String()
		}
	}
	res.Duration = time.Since(started)

	fields := []any{"exit_code", res.ExitCode, "duration_ms", res.Duration.Milliseconds()}
	if res.Signal != "" {
		fields = append(fields, "signal", res.Signal)
	}
	log.Info("runner exec finished", fields...)
	return res, nil
}
