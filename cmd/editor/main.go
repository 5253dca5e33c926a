package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/teaedit/dialog"
	"github.com/ionut-t/teaedit/editor"
	"github.com/ionut-t/teaedit/fileio"
	"github.com/ionut-t/teaedit/highlighter"
)

// defaultPath is the location of this file when the binary was built.
func defaultPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}

func main() {
	logFile, err := tea.LogToFile(filepath.Join(os.TempDir(), "editor.log"), "editor")
	if err == nil {
		defer logFile.Close()
	}

	path := defaultPath()
	log.Printf("starting with %s", path)

	shell := editor.NewShell(editor.Config{
		DefaultPath: path,
		Theme:       highlighter.DefaultTheme,
		Files:       fileio.Disk{},
		Dialogs:     dialog.Native{StartDir: filepath.Dir(path)},
	})

	p := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running Bubble Tea program: %v\n", err)
		os.Exit(1)
	}
}
