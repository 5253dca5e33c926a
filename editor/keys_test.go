package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ionut-t/teaedit/core"
)

func TestKeyMap_ActionFor(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Move{Motion: core.MotionLeft}},
		{"shift down", tea.KeyMsg{Type: tea.KeyShiftDown}, core.Select{Motion: core.MotionDown}},
		{"ctrl right", tea.KeyMsg{Type: tea.KeyCtrlRight}, core.Move{Motion: core.MotionWordRight}},
		{"alt left", tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, core.Move{Motion: core.MotionWordLeft}},
		{"shift end", tea.KeyMsg{Type: tea.KeyShiftEnd}, core.Select{Motion: core.MotionEnd}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, core.Move{Motion: core.MotionPageDown}},
		{"ctrl home", tea.KeyMsg{Type: tea.KeyCtrlHome}, core.Move{Motion: core.MotionDocumentStart}},
		{"select all", tea.KeyMsg{Type: tea.KeyCtrlA}, core.SelectAll{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Enter{}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.Insert{Rune: '\t'}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.Backspace{}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, core.Delete{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Insert{Rune: ' '}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, core.Insert{Rune: 'é'}},
		{"bracketed paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true}, core.Paste{Text: "a\nb\nc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.actionFor(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMap_IgnoresUnboundKeys(t *testing.T) {
	keys := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyF5},
		{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
	} {
		_, ok := keys.actionFor(msg)
		assert.False(t, ok, msg.String())
	}
}
