package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spanedit/internal/grapheme"
	"github.com/iw2rmb/spanedit/span"
)

// tokenCell is the position of one rendered token, brackets included.
type tokenCell struct {
	row   int
	start int
	width int
}

// layout maps tokens to visual rows for the current width.
type layout struct {
	cells []tokenCell
	rows  [][]int
}

// unit is one token with the span boundary markers attached to it.
type unit struct {
	text   string
	opens  []span.Annotation // outermost first
	closes []span.Annotation // innermost first
	style  lipgloss.Style
}

func (m *Model) renderContent() string {
	if m.doc == nil || m.doc.TokenCount() == 0 {
		m.layout = layout{}
		return ""
	}

	width := m.contentWidth()
	units := m.buildUnits(width)
	widths := make([]int, len(units))
	for i, u := range units {
		widths[i] = m.unitWidth(u)
	}
	m.layout = wrapUnits(widths, width)

	selBegin, selEnd := -1, -1
	if a, ok := m.Selected(); ok {
		selBegin, selEnd = a.Begin, a.End
	}

	st := m.cfg.Style
	var sb strings.Builder
	for r, row := range m.layout.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for j, i := range row {
			if j > 0 {
				sb.WriteString(st.Text.Render(" "))
			}
			u := units[i]
			if m.cfg.ShowBrackets {
				for _, a := range u.opens {
					sb.WriteString(m.bracketStyle(a.Type).Render("[" + a.Type + " "))
				}
			}

			style := u.style
			switch {
			case m.focused && i == m.cursor:
				style = st.Cursor.Inherit(u.style)
			case i >= selBegin && i < selEnd:
				style = st.Selection.Inherit(u.style)
			}
			sb.WriteString(style.Render(u.text))

			if m.cfg.ShowBrackets {
				for _, a := range u.closes {
					sb.WriteString(m.bracketStyle(a.Type).Render("]"))
				}
			}
		}
	}
	return sb.String()
}

// buildUnits attaches boundary markers and the innermost type style to every
// token. Tokens wider than width are truncated.
func (m *Model) buildUnits(width int) []unit {
	n := m.doc.TokenCount()
	units := make([]unit, n)
	for i := range units {
		units[i].text = grapheme.Sanitize(m.doc.Token(i))
		units[i].style = m.cfg.Style.Text
	}

	m.doc.Walk(func(a span.Annotation, _ int) bool {
		units[a.Begin].opens = append(units[a.Begin].opens, a)
		last := &units[a.End-1]
		last.closes = append([]span.Annotation{a}, last.closes...)
		return true
	})

	if m.cfg.StyleForType != nil {
		for i := range units {
			enc := m.doc.Enclosing(i)
			for k := len(enc) - 1; k >= 0; k-- {
				if ts, ok := m.cfg.StyleForType(enc[k].Type); ok {
					units[i].style = ts.Inherit(m.cfg.Style.Text)
					break
				}
			}
		}
	}

	if width > 0 {
		for i := range units {
			u := &units[i]
			if m.unitWidth(*u) <= width {
				continue
			}
			avail := width - (m.unitWidth(*u) - grapheme.Width(u.text))
			u.text = grapheme.Truncate(u.text, maxInt(avail, 1), "…")
		}
	}
	return units
}

func (m *Model) unitWidth(u unit) int {
	w := grapheme.Width(u.text)
	if !m.cfg.ShowBrackets {
		return w
	}
	for _, a := range u.opens {
		w += grapheme.Width(a.Type) + 2
	}
	return w + len(u.closes)
}

func (m *Model) bracketStyle(typ string) lipgloss.Style {
	if m.cfg.StyleForType != nil {
		if ts, ok := m.cfg.StyleForType(typ); ok {
			return ts.Inherit(m.cfg.Style.Text)
		}
	}
	return m.cfg.Style.Bracket.Inherit(m.cfg.Style.Text)
}

// wrapUnits places units greedily on rows of at most width cells, separated
// by one space. width <= 0 keeps everything on one row.
func wrapUnits(widths []int, width int) layout {
	l := layout{cells: make([]tokenCell, len(widths))}
	row, col := 0, 0
	var cur []int
	for i, w := range widths {
		if len(cur) > 0 && width > 0 && col+1+w > width {
			l.rows = append(l.rows, cur)
			cur = nil
			row++
			col = 0
		}
		if len(cur) > 0 {
			col++
		}
		l.cells[i] = tokenCell{row: row, start: col, width: w}
		cur = append(cur, i)
		col += w
	}
	if len(cur) > 0 {
		l.rows = append(l.rows, cur)
	}
	return l
}

func (m Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
}
