package core

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOError_RendersKindOnly(t *testing.T) {
	err := NewIOError(KindNotFound, "/tmp/a.md", fs.ErrNotExist)

	assert.Equal(t, "entity not found", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Detail(), "/tmp/a.md")
}

func TestAsIOError_Unwraps(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewIOError(KindPermissionDenied, "/x", nil))

	ioErr, ok := AsIOError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindPermissionDenied, ioErr.Kind)

	_, ok = AsIOError(ErrDialogClosed)
	assert.False(t, ok)
	assert.True(t, errors.Is(fmt.Errorf("pick: %w", ErrDialogClosed), ErrDialogClosed))
}

func TestActions_IsEdit(t *testing.T) {
	edits := []Action{Insert{Rune: 'a'}, Paste{Text: "x"}, Enter{}, Backspace{}, Delete{}}
	for _, a := range edits {
		assert.True(t, a.IsEdit(), "%T", a)
	}

	nonEdits := []Action{
		Move{Motion: MotionLeft}, Select{Motion: MotionRight}, SelectWord{}, SelectLine{},
		SelectAll{}, Click{}, Drag{}, Scroll{Lines: 3},
	}
	for _, a := range nonEdits {
		assert.False(t, a.IsEdit(), "%T", a)
	}
}
