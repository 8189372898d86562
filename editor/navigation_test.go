package editor

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanedit/span"
)

func binding(keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...))
}

func TestNavigation_Validation(t *testing.T) {
	tests := []struct {
		name string
		reg  func(n *Navigation) error
		want error
	}{
		{
			name: "no types",
			reg:  func(n *Navigation) error { return n.BySpanType(binding("["), binding("]")) },
			want: ErrInvalidBinding,
		},
		{
			name: "empty type",
			reg:  func(n *Navigation) error { return n.BySpanType(binding("["), binding("]"), "") },
			want: ErrInvalidBinding,
		},
		{
			name: "no keys",
			reg:  func(n *Navigation) error { return n.BySpanType(key.Binding{}, key.Binding{}, "person") },
			want: ErrInvalidBinding,
		},
		{
			name: "nil locator",
			reg:  func(n *Navigation) error { return n.ByLocator(binding("["), binding("]"), nil) },
			want: ErrInvalidBinding,
		},
		{
			name: "same key twice",
			reg:  func(n *Navigation) error { return n.BySpanType(binding("tab"), binding("tab"), "person") },
			want: ErrKeyConflict,
		},
		{
			name: "key taken by earlier entry",
			reg: func(n *Navigation) error {
				if err := n.BySpanType(binding("shift+tab"), binding("tab"), "person"); err != nil {
					return err
				}
				return n.BySpanType(binding("["), binding("tab"), "location")
			},
			want: ErrKeyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg(NewNavigation())
			if !errors.Is(err, tt.want) {
				t.Fatalf("error: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNavigation_FailedRegistrationKeepsKeysFree(t *testing.T) {
	n := NewNavigation()
	if err := n.BySpanType(binding("tab"), binding("tab"), "person"); !errors.Is(err, ErrKeyConflict) {
		t.Fatalf("error: got %v, want %v", err, ErrKeyConflict)
	}
	if err := n.BySpanType(binding("shift+tab"), binding("tab"), "person"); err != nil {
		t.Fatalf("BySpanType after failed registration: %v", err)
	}
}

func TestNavigation_BySpanTypeMovesAndSelects(t *testing.T) {
	nav := NewNavigation()
	if err := nav.BySpanType(binding("shift+tab"), binding("tab"), "person"); err != nil {
		t.Fatalf("BySpanType: %v", err)
	}
	m := newTestModel(t, Config{
		Tokens: []string{"Barack", "Obama", "met", "Angela", "Merkel", "in", "Paris"},
		Annotations: []span.Annotation{
			span.NewAnnotation("person", "0", 0, 2),
			span.NewAnnotation("person", "1", 3, 5),
			span.NewAnnotation("location", "0", 6, 7),
		},
		Navigation: nav,
	})

	steps := []struct {
		msg        tea.KeyMsg
		wantKey    string
		wantCursor int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, "person0", 0},
		{tea.KeyMsg{Type: tea.KeyTab}, "person1", 3},
		{tea.KeyMsg{Type: tea.KeyTab}, "person1", 3}, // no further person
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "person0", 0},
	}
	for i, s := range steps {
		m, _ = m.Update(s.msg)
		a, ok := m.Selected()
		if !ok || a.Key() != s.wantKey {
			t.Fatalf("step %d selection: got %v (ok=%v), want %q", i, a, ok, s.wantKey)
		}
		if got := m.Cursor(); got != s.wantCursor {
			t.Fatalf("step %d cursor: got %d, want %d", i, got, s.wantCursor)
		}
	}
}

func TestNavigation_ByLocator(t *testing.T) {
	// Jumps to the longest span in the direction of travel.
	longest := func(doc *span.Document, pos span.Position, dir span.Direction) (span.Annotation, bool) {
		var best span.Annotation
		found := false
		for _, a := range doc.Annotations() {
			if dir == span.Forward && a.Begin <= pos.Token {
				continue
			}
			if dir == span.Backward && a.Begin >= pos.Token {
				continue
			}
			if !found || a.Length() > best.Length() {
				best, found = a, true
			}
		}
		return best, found
	}

	nav := NewNavigation()
	if err := nav.ByLocator(binding("["), binding("]"), longest); err != nil {
		t.Fatalf("ByLocator: %v", err)
	}
	m := newTestModel(t, Config{
		Tokens: []string{"a", "b", "c", "d", "e"},
		Annotations: []span.Annotation{
			span.NewAnnotation("x", "0", 1, 2),
			span.NewAnnotation("x", "1", 2, 5),
		},
		Navigation: nav,
	})

	m, _ = m.Update(runes("]"))
	if a, ok := m.Selected(); !ok || a.Key() != "x1" {
		t.Fatalf("selection: got %v (ok=%v), want %q", a, ok, "x1")
	}
	m, _ = m.Update(runes("["))
	if a, ok := m.Selected(); !ok || a.Key() != "x0" {
		t.Fatalf("selection: got %v (ok=%v), want %q", a, ok, "x0")
	}
}

func TestNavigation_LateBindingCannotShadowKeyMap(t *testing.T) {
	nav := NewNavigation()
	m := newTestModel(t, Config{
		Tokens:      []string{"a", "b", "c"},
		Annotations: []span.Annotation{span.NewAnnotation("p", "0", 0, 1)},
		Navigation:  nav,
	})

	err := nav.BySpanType(binding("left"), binding("f9"), "p")
	if !errors.Is(err, ErrKeyConflict) {
		t.Fatalf("late registration error: got %v, want %v", err, ErrKeyConflict)
	}
	if err := nav.BySpanType(binding("f8"), binding("f9"), "p"); err != nil {
		t.Fatalf("late registration of free keys: %v", err)
	}

	m = m.SetCursor(2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor after left: got %d, want %d", got, 1)
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected left to leave the selection empty")
	}
}

func TestNavigation_SharedAcrossEditors(t *testing.T) {
	nav := NewNavigation()
	for i := 0; i < 2; i++ {
		if _, err := New(Config{Tokens: []string{"a"}, Navigation: nav}); err != nil {
			t.Fatalf("New #%d: %v", i+1, err)
		}
	}
	if got := nav.Keys(); len(got) != 0 {
		t.Fatalf("registry keys: got %q, want none", got)
	}
}
