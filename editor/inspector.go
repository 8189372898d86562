package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/spanedit/internal/grapheme"
)

const inspectorMaxTextWidth = 40

// inspectorLines describes the selected span, or the cursor token and its
// innermost span when nothing is selected.
func (m Model) inspectorLines() [][2]string {
	if a, ok := m.Selected(); ok {
		return [][2]string{
			{"type", a.Type},
			{"id", a.ID},
			{"range", a.Range().String()},
			{"text", m.doc.Text(a.Range())},
		}
	}

	lines := [][2]string{
		{"token", fmt.Sprintf("%d", m.cursor)},
		{"text", m.doc.Token(m.cursor)},
	}
	enc := m.doc.Enclosing(m.cursor)
	if len(enc) == 0 {
		return append(lines, [2]string{"span", "none"})
	}
	return append(lines, [2]string{"span", enc[len(enc)-1].String()})
}

func (m Model) inspectorView(base string) (string, bool) {
	width := m.contentWidth()
	height := m.visibleRowCount()
	if width <= 0 || height <= 0 || m.doc.TokenCount() == 0 {
		return "", false
	}

	st := m.cfg.Style
	rows := m.inspectorLines()
	labelW := 0
	for _, r := range rows {
		labelW = maxInt(labelW, grapheme.Width(r[0]))
	}
	textW := minInt(inspectorMaxTextWidth, maxInt(width-labelW-1-st.Inspector.GetHorizontalFrameSize(), 1))

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		label := r[0] + strings.Repeat(" ", labelW-grapheme.Width(r[0]))
		out = append(out, st.InspectorLabel.Render(label)+" "+grapheme.Truncate(grapheme.Sanitize(r[1]), textW, "…"))
	}
	box := st.Inspector.Render(strings.Join(out, "\n"))

	// Anchor below the cursor row, or above it when there is no room.
	x, y, ok := m.TokenToScreen(m.cursor)
	if !ok {
		x, y = 0, 0
	}
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	if y+1+boxH <= height {
		y++
	} else {
		y = maxInt(y-boxH, 0)
	}
	x = clampInt(x, 0, maxInt(width-boxW, 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return overlay.Composite(box, base, overlay.Left, overlay.Top, leftFrame+x, topFrame+y), true
}
