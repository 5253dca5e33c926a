package core

// Position is a location in the buffer. Both fields are zero-based and
// Column counts runes.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p comes strictly before o in document order.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Range is a half-open span [Start, End) with Start <= End.
type Range struct {
	Start Position
	End   Position
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// NewRange orders a and b.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Contains reports whether p lies inside the range.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
