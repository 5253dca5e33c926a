package editor

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/dialog"
)

// Files reads and writes whole documents.
type Files interface {
	Load(path string) (string, error)
	Save(path, text string) error
}

// Executor runs commands off the UI loop.
type Executor struct {
	files   Files
	dialogs dialog.Host
}

func NewExecutor(files Files, dialogs dialog.Host) *Executor {
	return &Executor{files: files, dialogs: dialogs}
}

// Cmd wraps a command as a tea.Cmd. A nil command yields a nil tea.Cmd.
func (e *Executor) Cmd(c Command) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return e.Run(c)
	}
}

// Run performs a command synchronously and returns its completion message.
func (e *Executor) Run(c Command) Message {
	switch c := c.(type) {
	case LoadFile:
		return e.load(c.Path)

	case PickAndLoad:
		path, err := e.dialogs.PickOpen()
		if err != nil {
			logFailure("open dialog", err)
			return FileOpenedMsg{Err: err}
		}
		return e.load(path)

	case SaveFile:
		return e.save(c.Path, c.Text)

	case PickAndSave:
		path, err := e.dialogs.PickSave()
		if err != nil {
			logFailure("save dialog", err)
			return FileSavedMsg{Text: c.Text, Err: err}
		}
		return e.save(path, c.Text)
	}

	return nil
}

func (e *Executor) load(path string) Message {
	log.Printf("loading %s", path)
	text, err := e.files.Load(path)
	if err != nil {
		logFailure("load", err)
		return FileOpenedMsg{Path: path, Err: err}
	}
	return FileOpenedMsg{Path: path, Text: text}
}

func (e *Executor) save(path, text string) Message {
	log.Printf("saving %d bytes to %s", len(text), path)
	if err := e.files.Save(path, text); err != nil {
		logFailure("save", err)
		return FileSavedMsg{Path: path, Text: text, Err: err}
	}
	return FileSavedMsg{Path: path, Text: text}
}

func logFailure(op string, err error) {
	if errors.Is(err, core.ErrDialogClosed) {
		return
	}
	if ioErr, ok := core.AsIOError(err); ok {
		log.Printf("%s failed: %s", op, ioErr.Detail())
		return
	}
	log.Printf("%s failed: %v", op, err)
}
