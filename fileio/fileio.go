// Package fileio reads and writes whole documents, reporting failures as
// *core.IOError values classified by OS error kind.
package fileio

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"unicode/utf8"

	"github.com/ionut-t/teaedit/core"
)

const fileMode = 0o644

// Disk is the Files implementation backed by the local filesystem.
type Disk struct{}

func (Disk) Load(path string) (string, error) { return Load(path) }

func (Disk) Save(path, text string) error { return Save(path, text) }

// Load reads the file at path as UTF-8 text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.NewIOError(KindOf(err), path, err)
	}
	if !utf8.Valid(data) {
		return "", core.NewIOError(core.KindInvalidData, path, nil)
	}
	return string(data), nil
}

// Save truncates path and writes text to it.
func Save(path, text string) error {
	if err := os.WriteFile(path, []byte(text), fileMode); err != nil {
		return core.NewIOError(KindOf(err), path, err)
	}
	return nil
}

// KindOf classifies an OS error.
func KindOf(err error) core.ErrorKind {
	switch {
	case err == nil:
		return core.KindOther
	case errors.Is(err, fs.ErrNotExist):
		return core.KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return core.KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return core.KindAlreadyExists
	case errors.Is(err, syscall.EISDIR):
		return core.KindIsDirectory
	case errors.Is(err, syscall.EINTR):
		return core.KindInterrupted
	case errors.Is(err, os.ErrDeadlineExceeded):
		return core.KindTimedOut
	default:
		return core.KindOther
	}
}
