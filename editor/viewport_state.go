package editor

import "github.com/iw2rmb/spanedit/span"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the visual row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of visual rows of the wrapped document.
	TotalRows int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      maxInt(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		TotalRows:   len(m.layout.rows),
	}
}

// ScreenToToken maps viewport-local screen coordinates to a token index.
//
// Points between tokens resolve to the token on their left; points before
// the first token of a row resolve to that token.
func (m Model) ScreenToToken(x, y int) (int, bool) {
	row := y + maxInt(m.viewport.YOffset, 0)
	if y < 0 || row < 0 || row >= len(m.layout.rows) {
		return 0, false
	}
	tokens := m.layout.rows[row]
	best := tokens[0]
	for _, i := range tokens {
		if m.layout.cells[i].start > x {
			break
		}
		best = i
	}
	return best, true
}

// TokenToScreen returns the viewport-local position of the first cell of
// token i, opening brackets included. ok is false when the token is
// scrolled out of view.
func (m Model) TokenToScreen(i int) (x, y int, ok bool) {
	if i < 0 || i >= len(m.layout.cells) {
		return 0, 0, false
	}
	cell := m.layout.cells[i]
	y = cell.row - maxInt(m.viewport.YOffset, 0)
	if y < 0 || y >= m.visibleRowCount() {
		return 0, 0, false
	}
	return cell.start, y, true
}

func (m Model) position() span.Position {
	return span.Position{Token: m.cursor, Key: m.selected}
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
