package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDialogClosed is returned when the user dismisses a file dialog.
	ErrDialogClosed = errors.New("dialog closed")
)

// ErrorKind is the OS-level category of a failed file operation.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermissionDenied
	KindAlreadyExists
	KindIsDirectory
	KindInterrupted
	KindInvalidData
	KindTimedOut
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "entity not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "entity already exists"
	case KindIsDirectory:
		return "is a directory"
	case KindInterrupted:
		return "operation interrupted"
	case KindInvalidData:
		return "stream did not contain valid UTF-8"
	case KindTimedOut:
		return "timed out"
	default:
		return "other error"
	}
}

// IOError is a failed read or write. Error() renders only the kind so the
// status bar shows the same text regardless of the underlying OS message.
type IOError struct {
	Kind ErrorKind
	Path string
	err  error
}

func NewIOError(kind ErrorKind, path string, err error) *IOError {
	return &IOError{Kind: kind, Path: path, err: err}
}

func (e *IOError) Error() string {
	return e.Kind.String()
}

func (e *IOError) Unwrap() error {
	return e.err
}

// Detail includes the path and the wrapped cause, for logs.
func (e *IOError) Detail() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.err)
}

// AsIOError reports whether err is (or wraps) an *IOError.
func AsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}
