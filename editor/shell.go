package editor

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/dialog"
	"github.com/ionut-t/teaedit/fileio"
	"github.com/ionut-t/teaedit/highlighter"
)

const (
	defaultWidth      = 80
	defaultHeight     = 24
	defaultTabWidth   = 4
	scrollStep        = 3
	doubleClickWindow = 400 * time.Millisecond
)

// Config wires the shell to its collaborators. Zero values select the
// defaults: the local disk, native dialogs, the system clipboard and the
// default theme.
type Config struct {
	DefaultPath string
	Theme       highlighter.Theme
	TabWidth    int
	Files       Files
	Dialogs     dialog.Host
	Clipboard   core.Clipboard
}

type systemClipboard struct{}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (systemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

type pickerState struct {
	open  bool
	index int
}

// Shell is the tea.Model hosting the editor: it turns terminal events into
// messages, runs the reducer and renders the projected layout.
type Shell struct {
	model       Model
	exec        *Executor
	keys        KeyMap
	clipboard   core.Clipboard
	defaultPath string
	tabWidth    int

	width  int
	height int
	pane   viewport.Model

	hl        *highlighter.Highlighter
	hlContent *core.Content
	hlVersion uint64

	hovered   int
	picker    pickerState
	dragging  bool
	lastClick time.Time
	lastPos   core.Position
	now       func() time.Time
}

func NewShell(cfg Config) Shell {
	if cfg.Files == nil {
		cfg.Files = fileio.Disk{}
	}
	if cfg.Dialogs == nil {
		cfg.Dialogs = dialog.Native{}
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = systemClipboard{}
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}

	s := Shell{
		model:       NewModel(cfg.Theme),
		exec:        NewExecutor(cfg.Files, cfg.Dialogs),
		keys:        DefaultKeyMap(),
		clipboard:   cfg.Clipboard,
		defaultPath: cfg.DefaultPath,
		tabWidth:    cfg.TabWidth,
		pane:        viewport.New(defaultWidth, paneHeight(defaultHeight)),
		hovered:     -1,
		now:         time.Now,
	}
	s.SetSize(defaultWidth, defaultHeight)
	s.syncHighlighter()
	return s
}

// SetSize resizes the shell to the terminal dimensions.
func (s *Shell) SetSize(width, height int) {
	s.width = max(1, width)
	s.height = max(toolbarRows+statusRows+1, height)
	s.pane.Width = s.width
	s.pane.Height = paneHeight(s.height)
	s.model.content.Reveal(s.pane.Height)
}

// WithKeyMap replaces the default key bindings.
func (s *Shell) WithKeyMap(keys KeyMap) {
	s.keys = keys
}

// Model returns the editor state.
func (s Shell) Model() Model {
	return s.model
}

func (s Shell) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(s.model.Project().Title),
		s.exec.Cmd(LoadFile{Path: s.defaultPath}),
	)
}

func (s Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)

	case tea.MouseMsg:
		return s.handleMouse(msg)

	case Message:
		return s.dispatch(msg)
	}

	return s, nil
}

// dispatch runs one message through the reducer and schedules its command.
func (s Shell) dispatch(msg Message) (Shell, tea.Cmd) {
	cmd := s.model.Update(msg)

	if edit, ok := msg.(EditMsg); !ok || !isScroll(edit.Action) {
		s.model.content.Reveal(paneHeight(s.height))
	}
	s.syncHighlighter()

	return s, s.exec.Cmd(cmd)
}

func isScroll(a core.Action) bool {
	_, ok := a.(core.Scroll)
	return ok
}

// syncHighlighter rebuilds the highlighter when its settings change and
// drops cached tokens when the document changes.
func (s *Shell) syncHighlighter() {
	settings := s.model.Settings()
	content := s.model.content

	switch {
	case s.hl == nil || s.hl.Settings() != settings:
		s.hl = highlighter.New(settings)
	case s.hlContent != content || s.hlVersion != content.Version():
		s.hl.Invalidate()
	default:
		return
	}

	s.hlContent = content
	s.hlVersion = content.Version()
}

func (s Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.picker.open {
		return s.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit

	case key.Matches(msg, s.keys.Save):
		return s.dispatch(SaveMsg{})

	case key.Matches(msg, s.keys.Copy):
		return s, s.copySelection()

	case key.Matches(msg, s.keys.Cut):
		copyCmd := s.copySelection()
		if copyCmd == nil {
			return s, nil
		}
		next, cmd := s.dispatch(EditMsg{Action: core.Delete{}})
		return next, tea.Batch(copyCmd, cmd)

	case key.Matches(msg, s.keys.Paste):
		return s, s.paste()
	}

	if action, ok := s.keys.actionFor(msg); ok {
		return s.dispatch(EditMsg{Action: action})
	}
	return s, nil
}

func (s Shell) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := s.model.Project().Toolbar.Picker.Options

	switch {
	case key.Matches(msg, s.keys.Up):
		s.picker.index = max(0, s.picker.index-1)
	case key.Matches(msg, s.keys.Down):
		s.picker.index = min(len(options)-1, s.picker.index+1)
	case key.Matches(msg, s.keys.Enter):
		s.picker.open = false
		return s.dispatch(ThemeSelectedMsg{Theme: options[s.picker.index]})
	case key.Matches(msg, s.keys.ClosePicker), key.Matches(msg, s.keys.Quit):
		s.picker.open = false
	}
	return s, nil
}

// copySelection writes the selected text to the clipboard. It returns nil
// when nothing is selected.
func (s Shell) copySelection() tea.Cmd {
	text := s.model.content.SelectedText()
	if text == "" {
		return nil
	}
	cb := s.clipboard
	return func() tea.Msg {
		if err := cb.Write(text); err != nil {
			log.Printf("clipboard write failed: %v", err)
		}
		return nil
	}
}

func (s Shell) paste() tea.Cmd {
	cb := s.clipboard
	return func() tea.Msg {
		text, err := cb.Read()
		if err != nil {
			log.Printf("clipboard read failed: %v", err)
			return nil
		}
		if text == "" {
			return nil
		}
		return EditMsg{Action: core.Paste{Text: pasteNewlines.Replace(text)}}
	}
}

func (s Shell) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout := s.model.Project()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return s.dispatch(EditMsg{Action: core.Scroll{Lines: -scrollStep}})
	case tea.MouseButtonWheelDown:
		return s.dispatch(EditMsg{Action: core.Scroll{Lines: scrollStep}})
	}

	if msg.Action == tea.MouseActionRelease {
		s.dragging = false
		return s, nil
	}

	if msg.Action == tea.MouseActionMotion {
		s.hovered = -1
		if z, ok := hitTest(toolbarZones(layout.Toolbar, s.width), msg.X, msg.Y); ok && z.kind == zoneButton {
			s.hovered = z.index
		}
		if s.picker.open {
			if z, ok := hitTest(pickerItemZones(layout.Toolbar.Picker, s.width, paneHeight(s.height)), msg.X, msg.Y); ok {
				s.picker.index = z.index
			}
		}
		if s.dragging && msg.Button == tea.MouseButtonLeft {
			return s.dispatch(EditMsg{Action: core.Drag{Position: s.positionAt(msg.X, msg.Y)}})
		}
		return s, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return s, nil
	}

	if s.picker.open {
		s.picker.open = false
		if z, ok := hitTest(pickerItemZones(layout.Toolbar.Picker, s.width, paneHeight(s.height)), msg.X, msg.Y); ok {
			return s.dispatch(ThemeSelectedMsg{Theme: layout.Toolbar.Picker.Options[z.index]})
		}
		return s, nil
	}

	if z, ok := hitTest(toolbarZones(layout.Toolbar, s.width), msg.X, msg.Y); ok {
		switch z.kind {
		case zoneButton:
			if b := layout.Toolbar.Buttons[z.index]; b.Enabled() {
				return s.dispatch(b.OnPress)
			}
		case zonePicker:
			s.picker = pickerState{open: true, index: s.selectedThemeIndex(layout.Toolbar.Picker)}
		}
		return s, nil
	}

	if msg.Y < toolbarRows || msg.Y >= toolbarRows+paneHeight(s.height) {
		return s, nil
	}

	pos := s.positionAt(msg.X, msg.Y)
	now := s.now()
	double := now.Sub(s.lastClick) <= doubleClickWindow && pos == s.lastPos
	s.lastClick, s.lastPos = now, pos

	if double {
		s.dragging = false
		s.lastClick = time.Time{}
		next, clickCmd := s.dispatch(EditMsg{Action: core.Click{Position: pos}})
		next, selectCmd := next.dispatch(EditMsg{Action: core.SelectWord{}})
		return next, tea.Batch(clickCmd, selectCmd)
	}

	s.dragging = true
	return s.dispatch(EditMsg{Action: core.Click{Position: pos}})
}

func (s Shell) selectedThemeIndex(p ThemePicker) int {
	for i, t := range p.Options {
		if t == p.Selected {
			return i
		}
	}
	return 0
}

// positionAt maps a screen cell inside the pane to a buffer position.
func (s Shell) positionAt(x, y int) core.Position {
	c := s.model.content
	line := c.Scroll() + max(0, y-toolbarRows)
	if line >= c.LineCount() {
		return c.End()
	}

	gutter := gutterWidth(c.LineCount())
	textWidth := max(1, s.width-gutter)
	hoff := horizontalOffset(c, textWidth, s.tabWidth)

	col := columnAt(c.Line(line), hoff+max(0, x-gutter), s.tabWidth)
	return core.Position{Line: line, Column: col}
}

func (s Shell) View() string {
	layout := s.model.Project()
	palette := PaletteFor(layout.Window)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.renderToolbar(layout, palette),
		s.renderPane(palette),
		s.renderStatus(layout, palette),
	)
}
