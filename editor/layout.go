package editor

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ionut-t/teaedit/core"
)

const (
	toolbarRows = 1
	statusRows  = 1
	buttonGap   = 1
	minGutter   = 4
)

func paneHeight(height int) int {
	return max(1, height-toolbarRows-statusRows)
}

type zoneKind int

const (
	zoneNone zoneKind = iota
	zoneButton
	zonePicker
	zonePickerItem
)

// zone is a clickable cell span [x0, x1) on row y.
type zone struct {
	kind  zoneKind
	index int
	x0    int
	x1    int
	y     int
}

func (z zone) hit(x, y int) bool {
	return y == z.y && x >= z.x0 && x < z.x1
}

func buttonText(b Button) string {
	return " " + b.Icon + " "
}

func pickerText(p ThemePicker) string {
	return " " + p.Selected.String() + " ▾ "
}

func pickerItemWidth(p ThemePicker) int {
	w := 0
	for _, t := range p.Options {
		w = max(w, uniseg.StringWidth(" "+t.String()+" "))
	}
	return w
}

// toolbarZones lays the buttons out from the left and the picker on the right.
func toolbarZones(t Toolbar, width int) []zone {
	zones := make([]zone, 0, len(t.Buttons)+1)
	x := 0
	for i, b := range t.Buttons {
		w := uniseg.StringWidth(buttonText(b))
		zones = append(zones, zone{kind: zoneButton, index: i, x0: x, x1: x + w})
		x += w + buttonGap
	}

	pw := uniseg.StringWidth(pickerText(t.Picker))
	x0 := max(x, width-pw)
	zones = append(zones, zone{kind: zonePicker, x0: x0, x1: x0 + pw})
	return zones
}

// pickerItemZones places the open picker's list under the toolbar, right aligned.
func pickerItemZones(p ThemePicker, width, rows int) []zone {
	w := pickerItemWidth(p)
	x0 := max(0, width-w)
	zones := make([]zone, 0, len(p.Options))
	for i := range p.Options {
		if i >= rows {
			break
		}
		zones = append(zones, zone{kind: zonePickerItem, index: i, x0: x0, x1: x0 + w, y: toolbarRows + i})
	}
	return zones
}

func hitTest(zones []zone, x, y int) (zone, bool) {
	for _, z := range zones {
		if z.hit(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

func gutterWidth(lineCount int) int {
	digits := len(strconv.Itoa(max(1, lineCount)))
	return max(minGutter, digits) + 1
}

// cell returns how a rune is drawn and how many columns it takes. Control
// characters are shown as their Unicode control pictures so they cannot move
// the terminal cursor.
func cell(r rune, tabWidth int) (string, int) {
	switch {
	case r == '\t':
		return strings.Repeat(" ", tabWidth), tabWidth
	case r < 0x20:
		return string(0x2400 + r), 1
	case r == 0x7f:
		return "␡", 1
	}
	s := string(r)
	return s, max(1, uniseg.StringWidth(s))
}

// displayX is the screen column at which rune index col starts.
func displayX(line []rune, col, tabWidth int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		_, w := cell(line[i], tabWidth)
		x += w
	}
	return x
}

// columnAt maps a screen column back to a rune index.
func columnAt(line []rune, x, tabWidth int) int {
	acc := 0
	for i, r := range line {
		_, w := cell(r, tabWidth)
		if x < acc+w {
			return i
		}
		acc += w
	}
	return len(line)
}

// horizontalOffset keeps the cursor inside a text area of textWidth columns.
func horizontalOffset(c *core.Content, textWidth, tabWidth int) int {
	cur := c.Cursor()
	x := displayX(c.Line(cur.Line), cur.Column, tabWidth)
	if x < textWidth {
		return 0
	}
	return x - textWidth + 1
}
