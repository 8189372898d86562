package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	// Select cycles the selection outward through the spans enclosing the
	// cursor token; after the outermost span it clears the selection.
	Select key.Binding
	Clear  key.Binding
	Remove key.Binding

	Undo, Redo key.Binding
	Copy       key.Binding
	Inspect    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous token")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next token")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "line up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "line down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "first token")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "last token")),

		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select span")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Remove: key.NewBinding(key.WithKeys("delete", "backspace", "x"), key.WithHelp("del", "remove span")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z", "u"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+r"), key.WithHelp("ctrl+y", "redo")),

		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy span text")),
		Inspect: key.NewBinding(key.WithKeys("i", "?"), key.WithHelp("i", "inspect span")),
	}
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down, km.Home, km.End,
		km.Select, km.Clear, km.Remove, km.Undo, km.Redo, km.Copy, km.Inspect,
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
