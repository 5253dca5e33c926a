package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/teaedit/core"
)

// KeyMap defines the shell key bindings.
type KeyMap struct {
	Save, Quit                  key.Binding
	Copy, Cut, Paste, SelectAll key.Binding

	Left, Right, Up, Down                         key.Binding
	SelectLeft, SelectRight, SelectUp, SelectDown key.Binding
	WordLeft, WordRight                           key.Binding
	SelectWordLeft, SelectWordRight               key.Binding
	Home, End, SelectHome, SelectEnd              key.Binding
	PageUp, PageDown                              key.Binding
	DocumentStart, DocumentEnd                    key.Binding

	Enter, Tab, Backspace, Delete key.Binding

	ClosePicker key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		SelectDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:        key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight:       key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "word right")),
		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		SelectHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		SelectEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),

		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		DocumentStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocumentEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		ClosePicker: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close theme picker")),
	}
}

// Terminals deliver pasted line breaks as carriage returns.
var pasteNewlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// actionFor converts a key press into an editor action. Shell level
// bindings (save, quit, clipboard) are handled before this is called.
func (k KeyMap) actionFor(msg tea.KeyMsg) (core.Action, bool) {
	motions := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.Move{Motion: core.MotionLeft}},
		{k.Right, core.Move{Motion: core.MotionRight}},
		{k.Up, core.Move{Motion: core.MotionUp}},
		{k.Down, core.Move{Motion: core.MotionDown}},
		{k.SelectLeft, core.Select{Motion: core.MotionLeft}},
		{k.SelectRight, core.Select{Motion: core.MotionRight}},
		{k.SelectUp, core.Select{Motion: core.MotionUp}},
		{k.SelectDown, core.Select{Motion: core.MotionDown}},
		{k.WordLeft, core.Move{Motion: core.MotionWordLeft}},
		{k.WordRight, core.Move{Motion: core.MotionWordRight}},
		{k.SelectWordLeft, core.Select{Motion: core.MotionWordLeft}},
		{k.SelectWordRight, core.Select{Motion: core.MotionWordRight}},
		{k.Home, core.Move{Motion: core.MotionHome}},
		{k.End, core.Move{Motion: core.MotionEnd}},
		{k.SelectHome, core.Select{Motion: core.MotionHome}},
		{k.SelectEnd, core.Select{Motion: core.MotionEnd}},
		{k.PageUp, core.Move{Motion: core.MotionPageUp}},
		{k.PageDown, core.Move{Motion: core.MotionPageDown}},
		{k.DocumentStart, core.Move{Motion: core.MotionDocumentStart}},
		{k.DocumentEnd, core.Move{Motion: core.MotionDocumentEnd}},
		{k.SelectAll, core.SelectAll{}},
		{k.Enter, core.Enter{}},
		{k.Tab, core.Insert{Rune: '\t'}},
		{k.Backspace, core.Backspace{}},
		{k.Delete, core.Delete{}},
	}

	for _, m := range motions {
		if key.Matches(msg, m.binding) {
			return m.action, true
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return core.Insert{Rune: ' '}, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil, false
		}
		if msg.Paste || len(msg.Runes) > 1 {
			return core.Paste{Text: pasteNewlines.Replace(string(msg.Runes))}, true
		}
		return core.Insert{Rune: msg.Runes[0]}, true
	}

	return nil, false
}
