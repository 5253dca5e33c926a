package editor

import (
	"errors"

	"github.com/ionut-t/teaedit/core"
)

// Update applies msg to the model and returns the command to run next, or
// nil. It never blocks; all I/O happens in the returned command.
//
// A FileSavedMsg clears the dirty flag only if the buffer still holds the
// text that was written. Edits made while the write was in flight keep the
// document dirty.
func (m *Model) Update(msg Message) Command {
	switch msg := msg.(type) {
	case EditMsg:
		if msg.Action == nil {
			return nil
		}
		m.content.Perform(msg.Action)
		if msg.Action.IsEdit() {
			m.dirty = true
		}
		m.err = nil

	case NewMsg:
		m.path = ""
		m.content = core.NewContent("")
		m.dirty = true

	case OpenMsg:
		return PickAndLoad{}

	case SaveMsg:
		text := m.content.Text()
		if m.path != "" {
			return SaveFile{Path: m.path, Text: text}
		}
		return PickAndSave{Text: text}

	case FileOpenedMsg:
		if msg.Err != nil {
			m.fail(msg.Err, msg.Path)
			return nil
		}
		m.path = msg.Path
		m.content = core.NewContent(msg.Text)
		m.dirty = false
		m.err = nil

	case FileSavedMsg:
		if msg.Err != nil {
			m.fail(msg.Err, msg.Path)
			return nil
		}
		m.path = msg.Path
		m.dirty = m.content.Text() != msg.Text
		m.err = nil

	case ThemeSelectedMsg:
		if msg.Theme.Valid() {
			m.theme = msg.Theme
		}
	}

	return nil
}

// fail records a completion error. Dismissed dialogs are ignored.
func (m *Model) fail(err error, path string) {
	if errors.Is(err, core.ErrDialogClosed) {
		return
	}
	if ioErr, ok := core.AsIOError(err); ok {
		m.err = ioErr
		return
	}
	m.err = core.NewIOError(core.KindOther, path, err)
}
