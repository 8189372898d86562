package editor

import "github.com/iw2rmb/spanedit/span"

// ChangeEvent describes editor state after an update that changed the
// document, the cursor, or the selection.
type ChangeEvent struct {
	Version uint64
	Cursor  int

	Selected     span.Annotation
	HasSelection bool

	// Change is the document mutation behind the event, when there was one.
	Change    span.Change
	HasChange bool
}

func (m *Model) emitChange(versionChanged bool) {
	if m.cfg.OnChange == nil {
		return
	}
	ev := ChangeEvent{
		Version: m.doc.Version(),
		Cursor:  m.cursor,
	}
	if a, ok := m.Selected(); ok {
		ev.Selected = a
		ev.HasSelection = true
	}
	if versionChanged {
		ev.Change, ev.HasChange = m.doc.LastChange()
	}
	m.cfg.OnChange(ev)
}
