package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/highlighter"
)

func TestToolbarZones(t *testing.T) {
	l := NewModel(highlighter.DefaultTheme).Project()

	zones := toolbarZones(l.Toolbar, 80)
	require.Len(t, zones, 4)

	assert.Equal(t, zone{kind: zoneButton, index: 0, x0: 0, x1: 3}, zones[0])
	assert.Equal(t, zone{kind: zoneButton, index: 1, x0: 4, x1: 7}, zones[1])
	assert.Equal(t, zone{kind: zoneButton, index: 2, x0: 8, x1: 11}, zones[2])

	picker := zones[3]
	assert.Equal(t, zonePicker, picker.kind)
	assert.Equal(t, 80, picker.x1)

	z, ok := hitTest(zones, 5, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, z.index)

	_, ok = hitTest(zones, 3, 0)
	assert.False(t, ok)
	_, ok = hitTest(zones, 5, 1)
	assert.False(t, ok)
}

func TestPickerItemZones_ClipToRows(t *testing.T) {
	p := ThemePicker{Options: highlighter.Themes}

	zones := pickerItemZones(p, 60, 3)
	require.Len(t, zones, 3)
	for i, z := range zones {
		assert.Equal(t, toolbarRows+i, z.y)
		assert.Equal(t, 60, z.x1)
		assert.Equal(t, 60-pickerItemWidth(p), z.x0)
	}
}

func TestGutterWidth(t *testing.T) {
	assert.Equal(t, 5, gutterWidth(1))
	assert.Equal(t, 5, gutterWidth(9999))
	assert.Equal(t, 6, gutterWidth(10000))
}

func TestCell(t *testing.T) {
	tests := []struct {
		r     rune
		text  string
		width int
	}{
		{'a', "a", 1},
		{'\t', "    ", 4},
		{'\r', "␍", 1},
		{0x7f, "␡", 1},
		{'テ', "テ", 2},
	}

	for _, tt := range tests {
		text, w := cell(tt.r, 4)
		assert.Equal(t, tt.text, text)
		assert.Equal(t, tt.width, w)
	}
}

func TestColumnAt_InvertsDisplayX(t *testing.T) {
	line := []rune("a\tテb")

	for col := 0; col <= len(line); col++ {
		assert.Equal(t, col, columnAt(line, displayX(line, col, 4), 4))
	}

	assert.Equal(t, 1, columnAt(line, 3, 4), "inside the tab")
	assert.Equal(t, len(line), columnAt(line, 100, 4))
}

func TestHorizontalOffset(t *testing.T) {
	c := core.NewContent("0123456789abcdef")
	assert.Equal(t, 0, horizontalOffset(c, 10, 4))

	c.Perform(core.Click{Position: core.Position{Column: 12}})
	assert.Equal(t, 3, horizontalOffset(c, 10, 4))
}
