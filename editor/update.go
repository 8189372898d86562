package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc.TokenCount() == 0 {
		return m, nil
	}

	// Navigation keys are checked against the key map in New, so they never
	// shadow an editor binding.
	if loc, dir, ok := m.cfg.Navigation.Resolve(msg); ok {
		if a, found := loc(m.doc, m.position(), dir); found {
			m.cursor = a.Begin
			m.selected = a.Key()
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	last := m.doc.TokenCount() - 1

	switch {
	case key.Matches(msg, km.Left):
		m.cursor = maxInt(m.cursor-1, 0)
	case key.Matches(msg, km.Right):
		m.cursor = minInt(m.cursor+1, last)
	case key.Matches(msg, km.Up):
		m.moveRow(-1)
	case key.Matches(msg, km.Down):
		m.moveRow(1)
	case key.Matches(msg, km.Home):
		m.cursor = 0
	case key.Matches(msg, km.End):
		m.cursor = last

	case key.Matches(msg, km.Select):
		m.selectOutward()
	case key.Matches(msg, km.Clear):
		if m.inspecting {
			m.inspecting = false
		} else {
			m.selected = ""
		}

	case key.Matches(msg, km.Remove):
		if !m.cfg.ReadOnly && m.selected != "" {
			_, _ = m.doc.Remove(m.selected)
		}
	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.doc.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.doc.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Inspect):
		m.inspecting = !m.inspecting
	}

	return m, nil
}

// selectOutward selects the innermost span under the cursor, then each
// enclosing span in turn, then nothing.
func (m *Model) selectOutward() {
	enc := m.doc.Enclosing(m.cursor)
	if len(enc) == 0 {
		m.selected = ""
		return
	}
	idx := -1
	for i, a := range enc {
		if a.Key() == m.selected {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		m.selected = enc[len(enc)-1].Key()
	case idx == 0:
		m.selected = ""
	default:
		m.selected = enc[idx-1].Key()
	}
}

// moveRow moves the cursor to the token on a neighbouring row nearest to the
// cursor's column.
func (m *Model) moveRow(delta int) {
	if m.cursor < 0 || m.cursor >= len(m.layout.cells) {
		return
	}
	cell := m.layout.cells[m.cursor]
	target := cell.row + delta
	if target < 0 || target >= len(m.layout.rows) {
		return
	}
	row := m.layout.rows[target]
	best := row[0]
	for _, i := range row {
		if m.layout.cells[i].start > cell.start {
			break
		}
		best = i
	}
	m.cursor = best
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.doc.Token(m.cursor)
	if a, ok := m.Selected(); ok {
		s = m.doc.Text(a.Range())
	}
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}
	if i, ok := m.ScreenToToken(msg.X, msg.Y); ok {
		m.cursor = i
	}
	return m, cmd
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
