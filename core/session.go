package core

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/afero"
	"pkt.systems/pslog"
	"pkt.systems/toterm/internal/command"
	"pkt.systems/toterm/internal/i18n"
	"pkt.systems/toterm/schema"
)

// SessionConfig configures an interactive session.
type SessionConfig struct {
	ID             schema.SessionID
	Home           string
	WorkingDir     string
	Prompt         PromptConfig
	HistoryLimit   int
	MaxLines       int
	StartupCommand string
}

// SessionDeps captures optional dependencies for a session.
type SessionDeps struct {
	Fs         afero.Fs
	Localizer  i18n.Localizer
	Logger     pslog.Logger
	CommandLog pslog.Logger
	Now        func() time.Time
	Exit       func(code int)
	// OnEmit, when set, also receives every emitted line.
	OnEmit func(lines []schema.OutputLine)
}

// Session ties the interpreter to history, scrollback and the prompt.
// It acts as the interpreter's display. It is not safe for concurrent use.
type Session struct {
	cfg        SessionConfig
	text       i18n.Localizer
	log        pslog.Logger
	commandLog pslog.Logger
	now        func() time.Time
	onEmit     func(lines []schema.OutputLine)

	interp  *command.Interpreter
	history *History
	buffer  *Buffer
	cwd     string
}

// NewSession constructs a session and its interpreter.
func NewSession(cfg SessionConfig, deps SessionDeps) *Session {
	if deps.Localizer == nil {
		deps.Localizer = i18n.New("en")
	}
	if deps.Logger == nil {
		deps.Logger = pslog.Ctx(context.Background())
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = cfg.Home
	}
	log := deps.Logger
	if cfg.ID != "" {
		log = log.With("session", cfg.ID)
	}
	s := &Session{
		cfg:        cfg,
		text:       deps.Localizer,
		log:        log,
		commandLog: deps.CommandLog,
		now:        deps.Now,
		onEmit:     deps.OnEmit,
		history:    NewHistory(cfg.HistoryLimit),
		buffer:     NewBuffer(cfg.MaxLines),
		cwd:        cfg.WorkingDir,
	}
	s.interp = command.NewInterpreter(command.Config{
		Home:       cfg.Home,
		WorkingDir: cfg.WorkingDir,
	}, command.Deps{
		Fs:        deps.Fs,
		Display:   s,
		Localizer: deps.Localizer,
		Logger:    log,
		Now:       deps.Now,
		Exit:      deps.Exit,
	})
	return s
}

// Start emits the welcome banner and runs the startup command if configured.
func (s *Session) Start(ctx context.Context) {
	s.Emit(
		schema.Line(schema.StyleWelcome, s.text.Text(i18n.KeyWelcome)),
		schema.Line(schema.StyleInfo, s.text.Text(i18n.KeyHelpHint)),
		schema.BlankLine(),
	)
	s.log.Info("session started", "cwd", s.cwd)
	if startup := strings.TrimSpace(s.cfg.StartupCommand); startup != "" {
		s.Submit(ctx, startup)
	}
}

// Submit records and executes one input line. Blank input is ignored.
func (s *Session) Submit(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	s.history.Append(line)
	s.buffer.ResetScroll()
	s.Emit(schema.Line(schema.StyleCommand, s.Prompt()+" "+line))
	if s.commandLog != nil {
		s.commandLog.Info("command", "line", line, "cwd", s.cwd)
	}
	s.interp.Execute(ctx, line)
}

// Warn surfaces a non-fatal problem as an error line and a log record.
func (s *Session) Warn(text string) {
	s.log.Warn("session warning", "message", text)
	s.Emit(schema.Line(schema.StyleError, text))
}

// Emit appends lines to the scrollback.
func (s *Session) Emit(lines ...schema.OutputLine) {
	s.buffer.Append(lines...)
	if s.onEmit != nil {
		s.onEmit(lines)
	}
}

// Clear discards the scrollback.
func (s *Session) Clear() {
	s.buffer.Clear()
}

// SetWorkingDir records a directory change reported by the interpreter.
func (s *Session) SetWorkingDir(path string) {
	s.cwd = path
}

// WorkingDir returns the current working directory.
func (s *Session) WorkingDir() string {
	return s.cwd
}

// DisplayPath returns the working directory abbreviated under home.
func (s *Session) DisplayPath() string {
	return AbbreviateHome(s.cfg.Home, s.cwd)
}

// Prompt returns the prompt for the current state.
func (s *Session) Prompt() string {
	return BuildPrompt(s.cfg.Prompt, s.cfg.Home, s.cwd, s.now())
}

// Ready returns the localized idle status label.
func (s *Session) Ready() string {
	return s.text.Text(i18n.KeyStatusReady)
}

// View returns the visible scrollback for a viewport of limit lines.
func (s *Session) View(limit int) BufferView {
	return s.buffer.Snapshot(limit)
}

// Scroll moves the viewport; positive delta shows older lines.
func (s *Session) Scroll(delta, limit int) {
	s.buffer.Scroll(delta, limit)
}

// HistoryUp recalls the previous command.
func (s *Session) HistoryUp() (string, bool) {
	return s.history.Up()
}

// HistoryDown recalls the next command, or an empty line past the newest.
func (s *Session) HistoryDown() (string, bool) {
	return s.history.Down()
}

// History returns the submitted commands, oldest first.
func (s *Session) History() []string {
	return s.history.Entries()
}
