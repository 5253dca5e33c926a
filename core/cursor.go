package core

import "unicode"

type charClass int

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// move applies a motion to the cursor. Vertical motions keep the sticky
// column; every other motion resets it.
func (c *Content) move(m Motion) {
	p := c.cursor

	switch m {
	case MotionLeft:
		if p.Column > 0 {
			p.Column--
		} else if p.Line > 0 {
			p.Line--
			p.Column = c.lineLen(p.Line)
		}

	case MotionRight:
		if p.Column < c.lineLen(p.Line) {
			p.Column++
		} else if p.Line < len(c.lines)-1 {
			p.Line++
			p.Column = 0
		}

	case MotionUp:
		c.moveVertical(-1)
		return

	case MotionDown:
		c.moveVertical(1)
		return

	case MotionPageUp:
		c.moveVertical(-c.page)
		return

	case MotionPageDown:
		c.moveVertical(c.page)
		return

	case MotionWordLeft:
		p = c.wordLeft(p)

	case MotionWordRight:
		p = c.wordRight(p)

	case MotionHome:
		p.Column = 0

	case MotionEnd:
		p.Column = c.lineLen(p.Line)

	case MotionDocumentStart:
		p = Position{}

	case MotionDocumentEnd:
		p = c.End()
	}

	c.setCursor(p)
}

func (c *Content) moveVertical(delta int) {
	preferred := c.preferred
	p := c.cursor

	switch target := p.Line + delta; {
	case target < 0:
		p = Position{}
		preferred = 0
	case target > len(c.lines)-1:
		p = c.End()
		preferred = p.Column
	default:
		p.Line = target
		p.Column = min(preferred, c.lineLen(target))
	}

	c.setCursor(p)
	c.preferred = preferred
}

func (c *Content) wordLeft(p Position) Position {
	if p.Column == 0 {
		if p.Line == 0 {
			return p
		}
		return Position{Line: p.Line - 1, Column: c.lineLen(p.Line - 1)}
	}

	line := c.lines[p.Line]
	col := p.Column
	for col > 0 && classOf(line[col-1]) == classSpace {
		col--
	}
	if col > 0 {
		class := classOf(line[col-1])
		for col > 0 && classOf(line[col-1]) == class {
			col--
		}
	}
	return Position{Line: p.Line, Column: col}
}

func (c *Content) wordRight(p Position) Position {
	line := c.lines[p.Line]
	if p.Column >= len(line) {
		if p.Line == len(c.lines)-1 {
			return p
		}
		return Position{Line: p.Line + 1}
	}

	col := p.Column
	class := classOf(line[col])
	if class != classSpace {
		for col < len(line) && classOf(line[col]) == class {
			col++
		}
	}
	for col < len(line) && classOf(line[col]) == classSpace {
		col++
	}
	return Position{Line: p.Line, Column: col}
}

// wordBounds returns the run of same-class characters around p. At the end
// of a line the run to the left is used.
func (c *Content) wordBounds(p Position) (Position, Position) {
	line := c.lines[p.Line]
	if len(line) == 0 {
		return p, p
	}

	at := p.Column
	if at >= len(line) {
		at = len(line) - 1
	}
	class := classOf(line[at])

	start, end := at, at+1
	for start > 0 && classOf(line[start-1]) == class {
		start--
	}
	for end < len(line) && classOf(line[end]) == class {
		end++
	}
	return Position{Line: p.Line, Column: start}, Position{Line: p.Line, Column: end}
}
