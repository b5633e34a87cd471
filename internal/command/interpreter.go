package command

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/afero"
	"pkt.systems/pslog"
	"pkt.systems/toterm/internal/i18n"
	"pkt.systems/toterm/schema"
)

// Display receives interpreter output and working-directory changes.
type Display interface {
	Emit(lines ...schema.OutputLine)
	Clear()
	SetWorkingDir(path string)
}

// Config seeds interpreter state.
type Config struct {
	Home       string
	WorkingDir string
}

// Deps carries the interpreter's collaborators. Only Display is required.
// A nil Logger falls back to the logger on the Execute context.
type Deps struct {
	Fs        afero.Fs
	Display   Display
	Localizer i18n.Localizer
	Logger    pslog.Logger
	Now       func() time.Time
	Exit      func(code int)
}

// whoamiUser is the fixed identity reported by whoami.
const whoamiUser = "user"

// Interpreter executes builtin commands against a session working directory.
// It is not safe for concurrent use.
type Interpreter struct {
	fs      afero.Fs
	display Display
	text    i18n.Localizer
	log     pslog.Logger
	now     func() time.Time
	exit    func(code int)
	home    string
	cwd     string
}

// NewInterpreter constructs an interpreter.
func NewInterpreter(cfg Config, deps Deps) *Interpreter {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Localizer == nil {
		deps.Localizer = i18n.New("en")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Exit == nil {
		deps.Exit = os.Exit
	}
	cwd := cfg.WorkingDir
	if cwd == "" {
		cwd = cfg.Home
	}
	return &Interpreter{
		fs:      deps.Fs,
		display: deps.Display,
		text:    deps.Localizer,
		log:     deps.Logger,
		now:     deps.Now,
		exit:    deps.Exit,
		home:    cfg.Home,
		cwd:     cwd,
	}
}

// WorkingDir returns the current working directory.
func (in *Interpreter) WorkingDir() string {
	return in.cwd
}

// Execute interprets one input line. Blank lines produce no output. Every
// other line, recognized or not, ends with a single blank output line,
// except exit which terminates the process.
func (in *Interpreter) Execute(ctx context.Context, line string) {
	cmd, ok := Parse(line)
	if !ok {
		return
	}
	log := in.log
	if log == nil {
		if ctx == nil {
			ctx = context.Background()
		}
		log = pslog.Ctx(ctx)
	}
	log = log.With("command", cmd.Name, "args", len(cmd.Args))
	log.Debug("command execute")

	switch cmd.Name {
	case "help":
		in.emit(in.helpLines()...)
	case "clear":
		in.display.Clear()
	case "pwd":
		in.emit(schema.Line(schema.StyleOutput, in.cwd))
	case "whoami":
		in.emit(schema.Line(schema.StyleOutput, whoamiUser))
	case "date":
		in.emit(schema.Line(schema.StyleOutput, in.now().Format(time.UnixDate)))
	case "echo":
		in.emit(schema.Line(schema.StyleOutput, cmd.Remainder))
	case "cd":
		in.changeDirectory(log, cmd)
	case "exit":
		log.Info("command exit")
		in.exit(0)
		return
	default:
		log.Debug("command unknown", "err", schema.ErrUnknownCommand)
		in.emit(
			schema.Line(schema.StyleError, in.text.Text(i18n.KeyUnknownCommand, cmd.Name)),
			schema.Line(schema.StyleInfo, in.text.Text(i18n.KeyHelpSuggestion)),
		)
	}
	in.emit(schema.BlankLine())
}

func (in *Interpreter) changeDirectory(log pslog.Logger, cmd Command) {
	if len(cmd.Args) == 0 {
		in.emit(schema.Line(schema.StyleError, in.text.Text(i18n.KeyCdUsage)))
		return
	}
	target := ResolvePath(in.home, in.cwd, cmd.Args[0])
	info, err := in.fs.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("command cd miss", "target", target, "err", schema.ErrNotFound)
		} else {
			log.Warn("command cd failed", "target", target, "err", err)
		}
		in.emit(schema.Line(schema.StyleError, in.text.Text(i18n.KeyCdNotFound, cmd.Args[0])))
		return
	}
	if !info.IsDir() {
		// Files are accepted silently and leave the directory unchanged.
		return
	}
	in.cwd = target
	in.display.SetWorkingDir(target)
	in.emit(schema.Line(schema.StyleOutput, target))
	log.Debug("command cd ok", "cwd", target)
}

func (in *Interpreter) helpLines() []schema.OutputLine {
	keys := []string{
		i18n.KeyHelpHelp,
		i18n.KeyHelpClear,
		i18n.KeyHelpPwd,
		i18n.KeyHelpWhoami,
		i18n.KeyHelpDate,
		i18n.KeyHelpEcho,
		i18n.KeyHelpCd,
		i18n.KeyHelpExit,
	}
	lines := make([]schema.OutputLine, 0, len(keys)+1)
	lines = append(lines, schema.Line(schema.StyleInfo, in.text.Text(i18n.KeyHelpTitle)))
	for _, key := range keys {
		lines = append(lines, schema.Line(schema.StyleOutput, in.text.Text(key)))
	}
	return lines
}

func (in *Interpreter) emit(lines ...schema.OutputLine) {
	in.display.Emit(lines...)
}
