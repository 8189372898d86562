package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanedit/span"
)

// Model is a Bubble Tea component that renders and interacts with a span
// document.
type Model struct {
	cfg Config
	doc *span.Document

	cursor   int
	selected string

	focused    bool
	inspecting bool

	viewport viewport.Model
	layout   layout

	lastVersion  uint64
	lastCursor   int
	lastSelected string
}

// New builds the document from cfg (or adopts cfg.Document) and returns a
// focused Model. Annotation errors from construction and navigation keys
// that collide with the key map are returned as is.
func New(cfg Config) (Model, error) {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if err := cfg.Navigation.reserveKeyMap(cfg.KeyMap); err != nil {
		return Model{}, err
	}

	doc := cfg.Document
	if doc == nil {
		d, err := span.New(cfg.Tokens, span.Options{HistoryLimit: cfg.HistoryLimit}, cfg.Annotations...)
		if err != nil {
			return Model{}, err
		}
		doc = d
	}

	m := Model{
		cfg:      cfg,
		doc:      doc,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = doc.Version()
	m.rebuildContent()
	return m, nil
}

func (m Model) Document() *span.Document { return m.doc }

// Cursor returns the index of the token under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the selected span.
func (m Model) Selected() (span.Annotation, bool) {
	if m.selected == "" {
		return span.Annotation{}, false
	}
	return m.doc.Lookup(m.selected)
}

// Inspecting reports whether the inspector popup is shown.
func (m Model) Inspecting() bool { return m.inspecting }

// SetCursor moves the cursor to token i, clamped to the document.
func (m Model) SetCursor(i int) Model {
	m.cursor = i
	if m.syncFromDocument() {
		m.followCursor()
	}
	return m
}

// Select selects the span with key and moves the cursor to its first token.
func (m Model) Select(key string) (Model, bool) {
	a, ok := m.doc.Lookup(key)
	if !ok {
		return m, false
	}
	m.cursor = a.Begin
	m.selected = key
	if m.syncFromDocument() {
		m.followCursor()
	}
	return m, true
}

// AddAnnotation adds a to the document and refreshes the view.
func (m Model) AddAnnotation(a span.Annotation) (Model, error) {
	if err := m.doc.Add(a); err != nil {
		return m, err
	}
	m.syncFromDocument()
	return m, nil
}

// RemoveAnnotation unwraps the span with key and refreshes the view.
func (m Model) RemoveAnnotation(key string) (Model, error) {
	if _, err := m.doc.Remove(key); err != nil {
		return m, err
	}
	m.syncFromDocument()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.inspecting = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
		if m.syncFromDocument() {
			m.followCursor()
		}
		return m, cmd
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Clicks land on visible tokens; wheel scrolling must not snap back.
		m.syncFromDocument()
		return m, cmd
	default:
		// Hosts may mutate the document directly between messages.
		if m.syncFromDocument() {
			m.followCursor()
		}
		return m, nil
	}
}

// Content returns every rendered row, ignoring the viewport height.
func (m Model) Content() string { return m.renderContent() }

func (m Model) View() string {
	base := m.viewport.View()
	if !m.inspecting {
		return base
	}
	if v, ok := m.inspectorView(base); ok {
		return v
	}
	return base
}

// syncFromDocument reconciles cursor and selection with the document and
// re-renders when anything visible changed. It reports whether the version,
// cursor, or selection changed since the last sync.
func (m *Model) syncFromDocument() bool {
	n := m.doc.TokenCount()
	m.cursor = clampInt(m.cursor, 0, maxInt(n-1, 0))

	if m.selected != "" {
		a, ok := m.doc.Lookup(m.selected)
		if !ok || m.cursor < a.Begin || m.cursor >= a.End {
			m.selected = ""
		}
	}

	ver := m.doc.Version()
	if ver == m.lastVersion && m.cursor == m.lastCursor && m.selected == m.lastSelected {
		return false
	}
	versionChanged := ver != m.lastVersion
	m.lastVersion = ver
	m.lastCursor = m.cursor
	m.lastSelected = m.selected

	m.rebuildContent()
	m.emitChange(versionChanged)
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.cursor < 0 || m.cursor >= len(m.layout.cells) {
		return
	}
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	row := m.layout.cells[m.cursor].row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
