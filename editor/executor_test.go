package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/teaedit/core"
)

func TestExecutor_LoadFile(t *testing.T) {
	files := newFakeFiles(map[string]string{"/a.go": "package a\n"})
	e := NewExecutor(files, &fakeDialogs{})

	assert.Equal(t, FileOpenedMsg{Path: "/a.go", Text: "package a\n"}, e.Run(LoadFile{Path: "/a.go"}))

	msg := e.Run(LoadFile{Path: "/missing"}).(FileOpenedMsg)
	ioErr, ok := core.AsIOError(msg.Err)
	require.True(t, ok)
	assert.Equal(t, core.KindNotFound, ioErr.Kind)
	assert.Equal(t, "/missing", msg.Path)
}

func TestExecutor_PickAndLoad(t *testing.T) {
	files := newFakeFiles(map[string]string{"/tmp/a.md": "# t"})
	dialogs := &fakeDialogs{openPath: "/tmp/a.md"}
	e := NewExecutor(files, dialogs)

	assert.Equal(t, FileOpenedMsg{Path: "/tmp/a.md", Text: "# t"}, e.Run(PickAndLoad{}))
	assert.Equal(t, 1, dialogs.opens)

	dialogs.err = core.ErrDialogClosed
	msg := e.Run(PickAndLoad{}).(FileOpenedMsg)
	assert.ErrorIs(t, msg.Err, core.ErrDialogClosed)
}

func TestExecutor_SaveFile(t *testing.T) {
	files := newFakeFiles(nil)
	e := NewExecutor(files, &fakeDialogs{})

	msg := e.Run(SaveFile{Path: "/out.txt", Text: "hi"})

	assert.Equal(t, FileSavedMsg{Path: "/out.txt", Text: "hi"}, msg)
	assert.Equal(t, []savedFile{{path: "/out.txt", text: "hi"}}, files.saved)
}

func TestExecutor_SaveFailure(t *testing.T) {
	files := newFakeFiles(nil)
	files.saveErr = core.NewIOError(core.KindPermissionDenied, "/ro", nil)
	e := NewExecutor(files, &fakeDialogs{})

	msg := e.Run(SaveFile{Path: "/ro", Text: "x"}).(FileSavedMsg)

	assert.Equal(t, "/ro", msg.Path)
	assert.Equal(t, "x", msg.Text)
	assert.Equal(t, files.saveErr, msg.Err)
}

func TestExecutor_PickAndSave(t *testing.T) {
	files := newFakeFiles(nil)
	dialogs := &fakeDialogs{savePath: "/tmp/new.rs"}
	e := NewExecutor(files, dialogs)

	assert.Equal(t, FileSavedMsg{Path: "/tmp/new.rs", Text: "fn"}, e.Run(PickAndSave{Text: "fn"}))

	dialogs.err = errors.New("no display")
	msg := e.Run(PickAndSave{Text: "fn"}).(FileSavedMsg)
	assert.EqualError(t, msg.Err, "no display")
	assert.Equal(t, "fn", msg.Text)
	assert.Len(t, files.saved, 1)
}

func TestExecutor_Cmd(t *testing.T) {
	files := newFakeFiles(map[string]string{"/a": "a"})
	e := NewExecutor(files, &fakeDialogs{})

	assert.Nil(t, e.Cmd(nil))

	cmd := e.Cmd(LoadFile{Path: "/a"})
	require.NotNil(t, cmd)
	assert.Equal(t, FileOpenedMsg{Path: "/a", Text: "a"}, cmd())
}
