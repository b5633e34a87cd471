package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/toterm/core"
	"pkt.systems/toterm/internal/appconfig"
	"pkt.systems/toterm/internal/console"
	"pkt.systems/toterm/internal/i18n"
	"pkt.systems/toterm/internal/logx"
	"pkt.systems/toterm/internal/style"
)

func newShellCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, *cfgPath)
		},
	}
}

// loadShellConfig falls back to defaults when the config cannot be loaded.
// The returned error is the load failure to surface as a warning.
func loadShellConfig(path string) (appconfig.Config, error) {
	cfg, err := appconfig.Load(path)
	if err == nil {
		return cfg, nil
	}
	defaults, derr := appconfig.DefaultConfig()
	if derr != nil {
		return appconfig.Config{}, errors.Join(err, derr)
	}
	return defaults, err
}

func openAppendLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func runShell(cmd *cobra.Command, cfgPath string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	logger := pslog.Ctx(ctx)

	cfg, loadErr := loadShellConfig(cfgPath)
	if loadErr != nil {
		if cfg.DataDir == "" {
			return loadErr
		}
		logger.Warn("config load failed", "err", loadErr)
	}
	text := i18n.New(cfg.Language)
	var warnings []string
	if loadErr != nil {
		warnings = append(warnings, text.Text(i18n.KeyConfigLoadError, loadErr))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	inFile, _ := in.(*os.File)
	outFile, _ := out.(*os.File)
	interactive := console.IsTerminal(inFile) && console.IsTerminal(outFile)

	// The full-screen UI owns stdout and stderr, so logs go to a file.
	if interactive {
		logFile, err := openAppendLog(cfg.ShellLogPath())
		if err != nil {
			logger.Warn("shell log open failed", "path", cfg.ShellLogPath(), "err", err)
			logger = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
		} else {
			defer func() { _ = logFile.Close() }()
			logger = pslog.LoggerFromEnv(
				pslog.WithEnvWriter(logFile),
				pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, NoColor: true}),
			)
		}
	}

	id := console.NewSessionID()
	ctx = logx.ContextWithSessionLogger(ctx, logger, id)
	sessionLog := logx.WithSession(logger, id)

	var commandLog pslog.Logger
	if cfg.Advanced.EnableCommandLogging {
		f, err := openAppendLog(cfg.Advanced.LogFilePath)
		if err != nil {
			sessionLog.Warn("command log open failed", "path", cfg.Advanced.LogFilePath, "err", err)
			warnings = append(warnings, text.Text(i18n.KeyLogOpenError, err))
		} else {
			defer func() { _ = f.Close() }()
			commandLog = pslog.NewWithOptions(f, pslog.Options{
				Mode:     pslog.ModeStructured,
				NoColor:  true,
				MinLevel: pslog.InfoLevel,
			}).With("session", id)
		}
	}

	deps := core.SessionDeps{
		Fs:         afero.NewOsFs(),
		Localizer:  text,
		Logger:     logger,
		CommandLog: commandLog,
		Exit: func(code int) {
			sessionLog.Info("shell exit", "code", code)
			cancel()
		},
	}
	if !interactive {
		deps.OnEmit = console.LineWriter{W: out}.Emit
	}
	session := core.NewSession(core.SessionConfig{
		ID:         id,
		Home:       home,
		WorkingDir: home,
		Prompt: core.PromptConfig{
			Text:     cfg.Terminal.CustomPrompt,
			ShowTime: cfg.Terminal.ShowTimeInPrompt,
			ShowPath: cfg.Terminal.ShowPathInPrompt,
		},
		HistoryLimit:   cfg.Terminal.HistoryLimit,
		StartupCommand: cfg.Advanced.StartupCommand,
	}, deps)

	session.Start(ctx)
	for _, warning := range warnings {
		session.Warn(warning)
	}

	if !interactive {
		sessionLog.Info("shell start", "mode", "lines")
		return console.RunLines(ctx, in, session)
	}

	tty, err := console.MakeRaw(inFile)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = tty.Restore() }()

	con := console.New(inFile, outFile, session, console.Options{
		Renderer:     style.NewRenderer(style.FromConfig(cfg)),
		AutoComplete: cfg.Advanced.EnableAutoComplete,
		Logger:       sessionLog,
		Size:         tty.Size(),
	})
	sessionLog.Info("shell start", "mode", "console")
	return con.Run(ctx, console.WatchResize(ctx, tty))
}
