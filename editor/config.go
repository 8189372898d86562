package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spanedit/span"
)

// Config configures the editor Model.
type Config struct {
	// Tokens and Annotations build the document when Document is nil.
	// Annotations are applied in order; the first invalid one fails New.
	Tokens      []string
	Annotations []span.Annotation

	// Document, when set, is used as is. The editor mutates it in place.
	Document *span.Document

	// Rendering options.
	ShowBrackets bool
	Style        Style

	// StyleForType returns the highlight for spans of a type. Tokens take
	// the style of their innermost styled span.
	StyleForType func(typ string) (lipgloss.Style, bool)

	KeyMap     KeyMap
	Navigation *Navigation

	// ReadOnly disables removal, undo and redo from key input. Host calls to
	// AddAnnotation/RemoveAnnotation still work.
	ReadOnly bool

	ScrollPolicy ScrollPolicy
	Clipboard    Clipboard

	// Forwarded to span.Options when the editor builds the document.
	HistoryLimit int

	// OnChange fires after an update that changed the document, the cursor,
	// or the selection.
	OnChange func(ChangeEvent)
}

// TypeStyles adapts a fixed map to Config.StyleForType.
func TypeStyles(styles map[string]lipgloss.Style) func(string) (lipgloss.Style, bool) {
	return func(typ string) (lipgloss.Style, bool) {
		st, ok := styles[typ]
		return st, ok
	}
}
