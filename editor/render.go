package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ionut-t/teaedit/core"
	"github.com/ionut-t/teaedit/highlighter"
)

func (s Shell) renderToolbar(l Layout, p Palette) string {
	zones := toolbarZones(l.Toolbar, s.width)

	var sb strings.Builder
	for i, b := range l.Toolbar.Buttons {
		style := p.Button
		switch {
		case !b.Enabled():
			style = p.ButtonDisabled
		case s.hovered == i:
			style = p.ButtonHovered
		}
		sb.WriteString(style.Render(buttonText(b)))
		sb.WriteString(p.Toolbar.Render(strings.Repeat(" ", buttonGap)))
	}

	if s.hovered >= 0 && s.hovered < len(l.Toolbar.Buttons) {
		sb.WriteString(p.Tooltip.Render(" " + l.Toolbar.Buttons[s.hovered].Label + " "))
	}

	picker := zones[len(zones)-1]
	if gap := picker.x0 - lipgloss.Width(sb.String()); gap > 0 {
		sb.WriteString(p.Toolbar.Render(strings.Repeat(" ", gap)))
	}
	sb.WriteString(p.Picker.Render(pickerText(l.Toolbar.Picker)))

	return truncate.String(sb.String(), uint(s.width))
}

func (s Shell) renderStatus(l Layout, p Palette) string {
	right := " " + l.Status.Right + " "
	avail := max(0, s.width-lipgloss.Width(right)-1)
	left := truncate.StringWithTail(" "+l.Status.Left, uint(avail), "…")

	leftStyle := p.StatusLine
	if s.model.err != nil {
		leftStyle = p.StatusError
	}

	gap := max(0, s.width-lipgloss.Width(left)-lipgloss.Width(right))
	return leftStyle.Render(left) +
		p.StatusLine.Render(strings.Repeat(" ", gap)) +
		p.StatusLine.Render(right)
}

// renderPane draws the visible slice of the buffer into the pane viewport.
func (s Shell) renderPane(p Palette) string {
	c := s.model.content
	height := paneHeight(s.height)
	gutter := gutterWidth(c.LineCount())
	textWidth := max(1, s.width-gutter)
	hoff := horizontalOffset(c, textWidth, s.tabWidth)

	base := lipgloss.NewStyle()
	if s.hl != nil {
		if bg, ok := s.hl.Background(); ok {
			base = base.Background(bg)
		}
	}

	lines := c.Lines()
	cursor := c.Cursor()
	rows := make([]string, 0, height)

	for i := range height {
		n := c.Scroll() + i
		if n >= c.LineCount() {
			rows = append(rows, base.Render(strings.Repeat(" ", s.width)))
			continue
		}

		numStyle := p.LineNumber
		if n == cursor.Line {
			numStyle = p.CurrentLineNumber
		}
		num := numStyle.Inherit(base).Render(fmt.Sprintf("%*d ", gutter-1, n+1))
		rows = append(rows, num+s.renderLine(n, lines, hoff, textWidth, base, p))
	}

	if s.picker.open {
		rows = s.overlayPicker(rows, p)
	}

	vp := s.pane
	vp.Width = s.width
	vp.Height = height
	vp.SetContent(strings.Join(rows, "\n"))
	return vp.View()
}

type cellKey struct {
	span     int
	selected bool
	cursor   bool
}

func (s Shell) renderLine(n int, lines []string, hoff, textWidth int, base lipgloss.Style, p Palette) string {
	c := s.model.content
	runes := c.Line(n)
	cursor := c.Cursor()
	sel, hasSel := c.Selection()

	var spans []highlighter.Span
	if s.hl != nil {
		spans = highlighter.Spans(s.hl.TokensForLine(n, lines))
	}

	var (
		sb      strings.Builder
		run     strings.Builder
		runKey  cellKey
		x       int
		drawn   int
		spanIdx int
	)

	styleFor := func(k cellKey) lipgloss.Style {
		style := base
		if k.span >= 0 && k.span < len(spans) && s.hl != nil {
			style = s.hl.StyleFor(spans[k.span].Token.Type).Inherit(base)
		}
		if k.selected {
			style = style.Background(p.Selection.GetBackground())
		}
		if k.cursor {
			style = style.Inherit(p.Cursor).Reverse(true)
		}
		return style
	}
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(runKey).Render(run.String()))
			run.Reset()
		}
	}

	for col := 0; col <= len(runes); col++ {
		atCursor := n == cursor.Line && col == cursor.Column
		if col == len(runes) && !atCursor {
			break
		}

		text, w := " ", 1
		key := cellKey{span: -1, cursor: atCursor}
		if col < len(runes) {
			text, w = cell(runes[col], s.tabWidth)
			for spanIdx < len(spans) && spans[spanIdx].End <= col {
				spanIdx++
			}
			if spanIdx < len(spans) {
				key.span = spanIdx
			}
			key.selected = hasSel && sel.Contains(core.Position{Line: n, Column: col})
		}

		if x < hoff {
			x += w
			continue
		}
		if drawn+w > textWidth {
			break
		}

		if key != runKey {
			flush()
			runKey = key
		}
		run.WriteString(text)
		x += w
		drawn += w
	}
	flush()

	if pad := textWidth - drawn; pad > 0 {
		sb.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return sb.String()
}

func (s Shell) overlayPicker(rows []string, p Palette) []string {
	picker := s.model.Project().Toolbar.Picker
	w := pickerItemWidth(picker)
	left := max(0, s.width-w)

	for _, z := range pickerItemZones(picker, s.width, len(rows)) {
		i := z.y - toolbarRows
		style := p.PickerItem
		if z.index == s.picker.index {
			style = p.PickerItemCurrent
		}
		item := style.Width(w).Render(" " + picker.Options[z.index].String())

		row := truncate.String(rows[i], uint(left))
		if pad := left - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		rows[i] = row + item
	}
	return rows
}
