package editor

import (
	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/highlighter"
)

// Model is the editor state: the document, its path, the last error, the
// selected theme and whether there are unsaved changes.
type Model struct {
	path    string
	content *core.Content
	err     *core.IOError
	theme   highlighter.Theme
	dirty   bool
}

// NewModel returns an empty, clean model without a path.
func NewModel(theme highlighter.Theme) Model {
	if !theme.Valid() {
		theme = highlighter.DefaultTheme
	}
	return Model{
		content: core.NewContent(""),
		theme:   theme,
	}
}

// Path is the bound file path, or "" for a new document.
func (m Model) Path() string {
	return m.path
}

func (m Model) Content() *core.Content {
	return m.content
}

// Err is the last I/O error, or nil.
func (m Model) Err() *core.IOError {
	return m.err
}

func (m Model) Theme() highlighter.Theme {
	return m.theme
}

// IsDirty reports unsaved changes.
func (m Model) IsDirty() bool {
	return m.dirty
}

// Settings returns the highlighter configuration for the current document.
func (m Model) Settings() highlighter.Settings {
	return highlighter.SettingsFor(m.path, m.theme)
}
