package dialog

import (
	"errors"
	"path/filepath"
	"testing"

	sqdialog "github.com/sqweek/dialog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/teaedit/core"
)

func TestResolve_CancelledMapsToDialogClosed(t *testing.T) {
	_, err := resolve("", sqdialog.ErrCancelled)
	assert.ErrorIs(t, err, core.ErrDialogClosed)

	_, err = resolve("", nil)
	assert.ErrorIs(t, err, core.ErrDialogClosed)
}

func TestResolve_OtherErrorsAreWrapped(t *testing.T) {
	boom := errors.New("no display")

	_, err := resolve("", boom)

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, core.ErrDialogClosed)
}

func TestResolve_MakesPathAbsolute(t *testing.T) {
	path, err := resolve("notes.md", nil)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "notes.md", filepath.Base(path))
}
