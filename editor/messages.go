package editor

import (
	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/highlighter"
)

// Message is an input to Model.Update. Every message is also a tea.Msg so
// command completions travel through the Bubble Tea loop unchanged.
type Message interface {
	message()
}

// EditMsg carries one action from the editor pane.
type EditMsg struct {
	Action core.Action
}

// NewMsg starts an unnamed, empty document.
type NewMsg struct{}

// OpenMsg asks for a file to open.
type OpenMsg struct{}

// SaveMsg writes the buffer to its path, asking for one if there is none.
type SaveMsg struct{}

// FileOpenedMsg completes a load. Err is nil on success.
type FileOpenedMsg struct {
	Path string
	Text string
	Err  error
}

// FileSavedMsg completes a save. Text is the snapshot that was written.
type FileSavedMsg struct {
	Path string
	Text string
	Err  error
}

type ThemeSelectedMsg struct {
	Theme highlighter.Theme
}

func (EditMsg) message()          {}
func (NewMsg) message()           {}
func (OpenMsg) message()          {}
func (SaveMsg) message()          {}
func (FileOpenedMsg) message()    {}
func (FileSavedMsg) message()     {}
func (ThemeSelectedMsg) message() {}
