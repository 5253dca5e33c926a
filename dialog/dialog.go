// Package dialog asks the operating system for file paths.
package dialog

import (
	"errors"
	"fmt"
	"path/filepath"

	sqdialog "github.com/sqweek/dialog"

	"github.com/ionut-t/teaedit/core"
)

// Host prompts the user for a path. Both methods block until the user
// answers and return core.ErrDialogClosed when the prompt is dismissed.
type Host interface {
	PickOpen() (string, error)
	PickSave() (string, error)
}

const (
	openTitle = "Choose a text file..."
	saveTitle = "Choose a file name..."
)

// Native shows the platform's own file dialogs.
type Native struct {
	// StartDir is where the dialogs open; empty means the platform default.
	StartDir string
}

func (n Native) PickOpen() (string, error) {
	return resolve(n.builder(openTitle).Load())
}

func (n Native) PickSave() (string, error) {
	return resolve(n.builder(saveTitle).Save())
}

func (n Native) builder(title string) *sqdialog.FileBuilder {
	b := sqdialog.File().Title(title).Filter("All files", "*")
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return b
}

func resolve(path string, err error) (string, error) {
	if errors.Is(err, sqdialog.ErrCancelled) {
		return "", core.ErrDialogClosed
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	if path == "" {
		return "", core.ErrDialogClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return abs, nil
}
