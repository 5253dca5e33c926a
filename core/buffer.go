package core

import (
	"strings"
)

const defaultPageHeight = 20

// Content is the editable text buffer behind the editor pane. Lines are
// stored as runes so cursor columns map directly onto characters.
type Content struct {
	lines     [][]rune
	cursor    Position
	anchor    Position // selection anchor, meaningful only while selecting
	selecting bool
	preferred int // sticky column for vertical movement
	top       int // first visible line
	page      int // last viewport height passed to Reveal
	version   uint64
}

// NewContent creates a buffer holding text. Text() returns text unchanged:
// a trailing newline becomes an empty final line and '\r' is kept as is.
func NewContent(text string) *Content {
	c := &Content{page: defaultPageHeight}
	c.setText(text)
	return c
}

func (c *Content) setText(text string) {
	parts := strings.Split(text, "\n")
	c.lines = make([][]rune, len(parts))
	for i, p := range parts {
		c.lines[i] = []rune(p)
	}
}

// Text returns the full buffer contents.
func (c *Content) Text() string {
	var sb strings.Builder
	for i, line := range c.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns every line as a string, without newlines.
func (c *Content) Lines() []string {
	out := make([]string, len(c.lines))
	for i, r := range c.lines {
		out[i] = string(r)
	}
	return out
}

// Line returns the runes of line i, or nil when i is out of range.
func (c *Content) Line(i int) []rune {
	if i < 0 || i >= len(c.lines) {
		return nil
	}
	return c.lines[i]
}

func (c *Content) LineCount() int {
	return len(c.lines)
}

func (c *Content) lineLen(i int) int {
	return len(c.Line(i))
}

// IsEmpty reports whether the buffer holds no characters at all.
func (c *Content) IsEmpty() bool {
	return len(c.lines) == 1 && len(c.lines[0]) == 0
}

// CursorPosition returns the zero-based (line, column) of the cursor.
func (c *Content) CursorPosition() (line, column int) {
	return c.cursor.Line, c.cursor.Column
}

func (c *Content) Cursor() Position {
	return c.cursor
}

// Selection returns the selected range, if any non-empty one exists.
func (c *Content) Selection() (Range, bool) {
	if !c.selecting {
		return Range{}, false
	}
	r := NewRange(c.anchor, c.cursor)
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text covered by the selection, or "".
func (c *Content) SelectedText() string {
	r, ok := c.Selection()
	if !ok {
		return ""
	}
	return c.textIn(r)
}

// Version increases every time the character sequence changes.
func (c *Content) Version() uint64 {
	return c.version
}

// Scroll returns the first visible line.
func (c *Content) Scroll() int {
	return c.top
}

// Reveal adjusts the scroll offset so the cursor is inside a window of the
// given height. The height is also used for page motions.
func (c *Content) Reveal(height int) {
	if height <= 0 {
		return
	}
	c.page = height
	if c.cursor.Line < c.top {
		c.top = c.cursor.Line
	} else if c.cursor.Line >= c.top+height {
		c.top = c.cursor.Line - height + 1
	}
	c.clampTop()
}

func (c *Content) clampTop() {
	c.top = max(0, min(c.top, len(c.lines)-1))
}

// Clamp restricts p to a valid buffer position.
func (c *Content) Clamp(p Position) Position {
	p.Line = max(0, min(p.Line, len(c.lines)-1))
	p.Column = max(0, min(p.Column, c.lineLen(p.Line)))
	return p
}

// End returns the position after the last character.
func (c *Content) End() Position {
	last := len(c.lines) - 1
	return Position{Line: last, Column: len(c.lines[last])}
}

// Perform applies a single action to the buffer.
func (c *Content) Perform(a Action) {
	switch a := a.(type) {
	case Move:
		if r, ok := c.Selection(); ok && (a.Motion == MotionLeft || a.Motion == MotionRight) {
			c.selecting = false
			if a.Motion == MotionLeft {
				c.setCursor(r.Start)
			} else {
				c.setCursor(r.End)
			}
			return
		}
		c.selecting = false
		c.move(a.Motion)

	case Select:
		if !c.selecting {
			c.anchor = c.cursor
			c.selecting = true
		}
		c.move(a.Motion)

	case SelectWord:
		start, end := c.wordBounds(c.cursor)
		c.anchor = start
		c.selecting = true
		c.setCursor(end)

	case SelectLine:
		line := c.cursor.Line
		c.anchor = Position{Line: line}
		c.selecting = true
		if line+1 < len(c.lines) {
			c.setCursor(Position{Line: line + 1})
		} else {
			c.setCursor(Position{Line: line, Column: c.lineLen(line)})
		}

	case SelectAll:
		c.anchor = Position{}
		c.selecting = true
		c.setCursor(c.End())

	case Click:
		p := c.Clamp(a.Position)
		c.setCursor(p)
		c.anchor = p
		c.selecting = false

	case Drag:
		c.selecting = true
		c.setCursor(a.Position)

	case Scroll:
		c.top += a.Lines
		c.clampTop()

	case Insert:
		c.replaceSelection(string(a.Rune))

	case Paste:
		c.replaceSelection(a.Text)

	case Enter:
		c.replaceSelection("\n")

	case Backspace:
		if c.deleteSelection() {
			return
		}
		switch {
		case c.cursor.Column > 0:
			start := Position{Line: c.cursor.Line, Column: c.cursor.Column - 1}
			c.deleteRange(Range{Start: start, End: c.cursor})
		case c.cursor.Line > 0:
			prev := c.cursor.Line - 1
			start := Position{Line: prev, Column: c.lineLen(prev)}
			c.deleteRange(Range{Start: start, End: c.cursor})
		}

	case Delete:
		if c.deleteSelection() {
			return
		}
		switch {
		case c.cursor.Column < c.lineLen(c.cursor.Line):
			end := Position{Line: c.cursor.Line, Column: c.cursor.Column + 1}
			c.deleteRange(Range{Start: c.cursor, End: end})
		case c.cursor.Line < len(c.lines)-1:
			end := Position{Line: c.cursor.Line + 1}
			c.deleteRange(Range{Start: c.cursor, End: end})
		}
	}
}

func (c *Content) setCursor(p Position) {
	c.cursor = c.Clamp(p)
	c.preferred = c.cursor.Column
	if !c.selecting {
		c.anchor = c.cursor
	}
}

func (c *Content) replaceSelection(text string) {
	c.deleteSelection()
	end := c.insertText(c.cursor, text)
	c.setCursor(end)
}

// deleteSelection removes the selected text and reports whether there was any.
func (c *Content) deleteSelection() bool {
	r, ok := c.Selection()
	c.selecting = false
	if !ok {
		return false
	}
	c.deleteRange(r)
	return true
}

// insertText inserts text at p and returns the position just after it.
func (c *Content) insertText(p Position, text string) Position {
	if text == "" {
		return p
	}

	line := c.lines[p.Line]
	head := append([]rune(nil), line[:p.Column]...)
	tail := append([]rune(nil), line[p.Column:]...)

	parts := strings.Split(text, "\n")
	inserted := make([][]rune, len(parts))
	for i, part := range parts {
		inserted[i] = []rune(part)
	}

	last := len(inserted) - 1
	end := Position{Line: p.Line + last, Column: len(inserted[last])}
	if last == 0 {
		end.Column += p.Column
	}

	inserted[0] = append(head, inserted[0]...)
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(c.lines)+last)
	lines = append(lines, c.lines[:p.Line]...)
	lines = append(lines, inserted...)
	lines = append(lines, c.lines[p.Line+1:]...)
	c.lines = lines
	c.version++

	return end
}

// deleteRange removes [r.Start, r.End) and leaves the cursor at r.Start.
func (c *Content) deleteRange(r Range) {
	r = NewRange(c.Clamp(r.Start), c.Clamp(r.End))
	if r.IsEmpty() {
		c.setCursor(r.Start)
		return
	}

	head := c.lines[r.Start.Line][:r.Start.Column]
	tail := c.lines[r.End.Line][r.End.Column:]

	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	lines := make([][]rune, 0, len(c.lines)-(r.End.Line-r.Start.Line))
	lines = append(lines, c.lines[:r.Start.Line]...)
	lines = append(lines, merged)
	lines = append(lines, c.lines[r.End.Line+1:]...)
	c.lines = lines
	c.version++

	c.setCursor(r.Start)
	c.clampTop()
}

func (c *Content) textIn(r Range) string {
	if r.Start.Line == r.End.Line {
		return string(c.lines[r.Start.Line][r.Start.Column:r.End.Column])
	}

	var sb strings.Builder
	sb.WriteString(string(c.lines[r.Start.Line][r.Start.Column:]))
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(c.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(c.lines[r.End.Line][:r.End.Column]))
	return sb.String()
}
