// Package console is the full-screen terminal frontend for a shell session.
package console

import (
	"context"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"pkt.systems/pslog"
	"pkt.systems/toterm/core"
	"pkt.systems/toterm/internal/command"
	"pkt.systems/toterm/internal/style"
	"pkt.systems/toterm/schema"
)

// Session is the shell state driven by the console.
type Session interface {
	Submit(ctx context.Context, line string)
	Prompt() string
	DisplayPath() string
	Ready() string
	View(limit int) core.BufferView
	Scroll(delta, limit int)
	HistoryUp() (string, bool)
	HistoryDown() (string, bool)
}

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Options configures a console.
type Options struct {
	Renderer     *style.Renderer
	AutoComplete bool
	Logger       pslog.Logger
	Now          func() time.Time
	Size         Size
}

// Console renders a session into a terminal and feeds it keystrokes.
type Console struct {
	session  Session
	in       io.Reader
	screen   *screen
	renderer *style.Renderer
	log      pslog.Logger
	now      func() time.Time
	complete bool

	width  int
	height int
	editor lineEditor
	notice string
	dirty  bool
	ctx    context.Context
}

// New constructs a console reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, session Session, opts Options) *Console {
	if opts.Renderer == nil {
		opts.Renderer = style.NewRenderer(style.Descriptor{Background: "#000000", Foreground: "#ffffff"})
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = pslog.Ctx(context.Background())
	}
	c := &Console{
		session:  session,
		in:       in,
		screen:   newScreen(out),
		renderer: opts.Renderer,
		log:      opts.Logger,
		now:      opts.Now,
		complete: opts.AutoComplete,
		ctx:      context.Background(),
	}
	c.SetSize(opts.Size.Width, opts.Size.Height)
	return c
}

// SetSize updates the terminal dimensions.
func (c *Console) SetSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	c.width = width
	c.height = height
}

// Run draws the session and processes keys until ctx ends, input closes or
// the user presses Ctrl-D on an empty line.
func (c *Console) Run(ctx context.Context, resize <-chan Size) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c.ctx = ctx
	c.screen.EnterAltScreen()
	defer c.Close()

	c.render()
	c.log.Info("console start", "width", c.width, "height", c.height)

	keys := make(chan key, 16)
	done := make(chan struct{})
	defer close(done)
	go readKeys(c.in, keys, done)

	clock := time.NewTicker(time.Second)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			if c.handleKey(k) {
				return nil
			}
		case size, ok := <-resize:
			if !ok {
				resize = nil
				break
			}
			c.SetSize(size.Width, size.Height)
			c.screen.Invalidate()
			c.dirty = true
			c.log.Debug("console resize", "width", c.width, "height", c.height)
		case <-clock.C:
			c.dirty = true
		}

		if c.dirty {
			c.render()
			c.dirty = false
		}
	}
}

// Close leaves the alternate screen.
func (c *Console) Close() {
	c.screen.ExitAltScreen()
}

func (c *Console) handleKey(k key) bool {
	if k.kind != keyTab {
		c.notice = ""
	}
	switch k.kind {
	case keyCtrlD:
		if c.editor.Len() == 0 {
			c.log.Info("console exit", "reason", "ctrl-d")
			return true
		}
		c.editor.Delete()
	case keyCtrlC:
		c.editor.Clear()
	case keyEnter:
		line := c.editor.String()
		c.editor.Clear()
		c.session.Submit(c.ctx, line)
	case keyRune:
		c.editor.InsertRune(k.r)
	case keyBackspace:
		c.editor.Backspace()
	case keyDelete:
		c.editor.Delete()
	case keyLeft:
		c.editor.MoveLeft()
	case keyRight:
		c.editor.MoveRight()
	case keyHome, keyCtrlA:
		c.editor.MoveStart()
	case keyEnd, keyCtrlE:
		c.editor.MoveEnd()
	case keyAltB:
		c.editor.MoveWordLeft()
	case keyAltF:
		c.editor.MoveWordRight()
	case keyCtrlW:
		c.editor.DeleteWordBackward()
	case keyCtrlU:
		c.editor.KillLineStart()
	case keyCtrlK:
		c.editor.KillLineEnd()
	case keyTab:
		c.completeInput()
	case keyUp:
		if entry, ok := c.session.HistoryUp(); ok {
			c.editor.SetString(entry)
		}
	case keyDown:
		if entry, ok := c.session.HistoryDown(); ok {
			c.editor.SetString(entry)
		}
	case keyPageUp:
		c.scroll(1)
	case keyPageDown:
		c.scroll(-1)
	case keyCtrlL:
		c.screen.Invalidate()
	}
	c.dirty = true
	return false
}

func (c *Console) completeInput() {
	if !c.complete || c.editor.cursor != c.editor.Len() {
		return
	}
	candidates := command.Complete(c.editor.String())
	switch len(candidates) {
	case 0:
		return
	case 1:
		c.editor.SetString(candidates[0] + " ")
		c.notice = ""
	default:
		c.editor.SetString(command.CommonPrefix(candidates))
		c.notice = strings.Join(candidates, "  ")
	}
}

func (c *Console) scroll(direction int) {
	limit := c.viewHeight()
	if limit <= 0 {
		return
	}
	c.session.Scroll(limit*direction, limit)
	c.log.Trace("console scroll", "direction", direction, "limit", limit)
}

func (c *Console) viewHeight() int {
	if c.height <= 1 {
		return 0
	}
	inputLines, _, _ := renderInputLines(c.promptPrefix(), c.editor.String(), c.editor.cursor, c.width)
	view := c.height - 1 - len(inputLines)
	if view < 0 {
		view = 0
	}
	return view
}

func (c *Console) promptPrefix() string {
	return c.session.Prompt() + " "
}

func (c *Console) statusBar() string {
	left := " " + c.session.DisplayPath() + " | " + c.session.Ready()
	if c.notice != "" {
		left += " | " + c.notice
	}
	right := c.now().Format(core.ClockFormat) + " "
	return c.renderer.StatusBar(left, right, c.width)
}

func (c *Console) render() {
	lines := c.frame()
	inputLines, cursorRow, cursorCol := renderInputLines(c.promptPrefix(), c.editor.String(), c.editor.cursor, c.width)
	cursorRow = len(lines) - len(inputLines) + cursorRow
	if err := c.screen.Render(lines, cursorRow, cursorCol); err != nil {
		c.log.Warn("console render failed", "err", err)
	}
}

// frame builds every screen row: status bar, viewport, then input.
func (c *Console) frame() []string {
	lines := make([]string, 0, c.height)
	lines = append(lines, c.statusBar())

	prefix := c.promptPrefix()
	inputLines, _, _ := renderInputLines(prefix, c.editor.String(), c.editor.cursor, c.width)
	outputHeight := c.height - 1 - len(inputLines)
	if outputHeight < 0 {
		outputHeight = 0
	}
	view := c.session.View(outputHeight)
	lines = append(lines, c.renderViewport(view, outputHeight)...)

	for i, line := range inputLines {
		if i == 0 && strings.HasPrefix(line, prefix) {
			line = c.renderer.Prompt(prefix) + c.renderer.Plain(line[len(prefix):], c.width-lipgloss.Width(prefix))
		} else {
			line = c.renderer.Plain(line, c.width)
		}
		lines = append(lines, line)
	}
	return lines
}

func (c *Console) renderViewport(view core.BufferView, height int) []string {
	if height <= 0 {
		return nil
	}
	var wrapped []schema.OutputLine
	for _, line := range view.Lines {
		for _, part := range wrapText(line.Text, c.width) {
			wrapped = append(wrapped, schema.Line(line.Style, part))
		}
	}
	if view.AtBottom {
		if len(wrapped) > height {
			wrapped = wrapped[len(wrapped)-height:]
		}
	} else if len(wrapped) > height {
		wrapped = wrapped[:height]
	}
	rendered := make([]string, 0, height)
	for _, line := range wrapped {
		rendered = append(rendered, c.renderer.Line(line, c.width))
	}
	for len(rendered) < height {
		rendered = append(rendered, c.renderer.Plain("", c.width))
	}
	return rendered
}

func wrapText(text string, width int) []string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return []string{text}
	}
	var out []string
	var line strings.Builder
	used := 0
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used > 0 && used+w > width {
			out = append(out, line.String())
			line.Reset()
			used = 0
		}
		line.WriteRune(r)
		used += w
	}
	return append(out, line.String())
}

// renderInputLines wraps prefix+input to width and returns the rows plus the
// 1-based cursor position within them.
func renderInputLines(prefix, input string, cursor, width int) ([]string, int, int) {
	inputRunes := []rune(input)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(inputRunes) {
		cursor = len(inputRunes)
	}
	prefixWidth := lipgloss.Width(prefix)
	if width <= 0 {
		width = prefixWidth + len(inputRunes) + 1
	}
	all := append([]rune(prefix), inputRunes...)
	pos := len([]rune(prefix)) + cursor
	if prefixWidth >= width {
		pos = cursor
		all = inputRunes
		prefix = ""
	}

	var lines []string
	for len(all) > width {
		lines = append(lines, string(all[:width]))
		all = all[width:]
	}
	lines = append(lines, string(all))

	row := pos/width + 1
	col := pos%width + 1
	if row > len(lines) {
		row = len(lines)
		col = width
	}
	return lines, row, col
}
