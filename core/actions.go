package core

import "fmt"

// Motion is a cursor movement understood by Content.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordLeft
	MotionWordRight
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
	MotionDocumentStart
	MotionDocumentEnd
)

func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "Left"
	case MotionRight:
		return "Right"
	case MotionUp:
		return "Up"
	case MotionDown:
		return "Down"
	case MotionWordLeft:
		return "WordLeft"
	case MotionWordRight:
		return "WordRight"
	case MotionHome:
		return "Home"
	case MotionEnd:
		return "End"
	case MotionPageUp:
		return "PageUp"
	case MotionPageDown:
		return "PageDown"
	case MotionDocumentStart:
		return "DocumentStart"
	case MotionDocumentEnd:
		return "DocumentEnd"
	default:
		return fmt.Sprintf("Motion(%d)", int(m))
	}
}

// Action is something the editor pane asks the buffer to do. IsEdit
// reports whether the action can change the stored characters.
type Action interface {
	IsEdit() bool
}

// Navigation and selection.

type Move struct{ Motion Motion }

type Select struct{ Motion Motion }

type SelectWord struct{}

type SelectLine struct{}

type SelectAll struct{}

// Click places the cursor and drops any selection.
type Click struct{ Position Position }

// Drag extends the selection from the last click to Position.
type Drag struct{ Position Position }

// Scroll moves the visible window by Lines without moving the cursor.
type Scroll struct{ Lines int }

// Content edits.

type Insert struct{ Rune rune }

type Paste struct{ Text string }

type Enter struct{}

type Backspace struct{}

type Delete struct{}

func (Move) IsEdit() bool       { return false }
func (Select) IsEdit() bool     { return false }
func (SelectWord) IsEdit() bool { return false }
func (SelectLine) IsEdit() bool { return false }
func (SelectAll) IsEdit() bool  { return false }
func (Click) IsEdit() bool      { return false }
func (Drag) IsEdit() bool       { return false }
func (Scroll) IsEdit() bool     { return false }

func (Insert) IsEdit() bool    { return true }
func (Paste) IsEdit() bool     { return true }
func (Enter) IsEdit() bool     { return true }
func (Backspace) IsEdit() bool { return true }
func (Delete) IsEdit() bool    { return true }
