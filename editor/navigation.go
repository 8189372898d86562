package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanedit/span"
)

var (
	// ErrInvalidBinding is returned for navigation entries that can never fire
	// or have nothing to search for.
	ErrInvalidBinding = errors.New("editor: invalid navigation binding")
	// ErrKeyConflict is returned when a key is already bound.
	ErrKeyConflict = errors.New("editor: key already bound")
)

// Locator finds the span to move to from pos in direction dir.
type Locator func(doc *span.Document, pos span.Position, dir span.Direction) (span.Annotation, bool)

// LocateByType returns a Locator that steps through spans of the given types.
func LocateByType(types ...string) Locator {
	match := span.TypeMatcher(types...)
	return func(doc *span.Document, pos span.Position, dir span.Direction) (span.Annotation, bool) {
		return doc.NextSpan(pos, dir, match)
	}
}

type navEntry struct {
	name   string
	prev   key.Binding
	next   key.Binding
	locate Locator
}

// Navigation is a registry of span navigation keys. Each entry binds a
// previous and a next key to a Locator. Entries are checked when they are
// registered, so a key maps to at most one entry. Once an editor is built
// with the registry, its key map keys are reserved as well.
type Navigation struct {
	entries []navEntry
	owners  map[string]string
}

func NewNavigation() *Navigation {
	return &Navigation{owners: make(map[string]string)}
}

// BySpanType registers prev/next keys that move between spans of types.
func (n *Navigation) BySpanType(prev, next key.Binding, types ...string) error {
	if len(types) == 0 {
		return fmt.Errorf("%w: no span types", ErrInvalidBinding)
	}
	for _, t := range types {
		if t == "" {
			return fmt.Errorf("%w: empty span type", ErrInvalidBinding)
		}
	}
	return n.register(navEntry{
		name:   "types " + strings.Join(types, ","),
		prev:   prev,
		next:   next,
		locate: LocateByType(types...),
	})
}

// ByLocator registers prev/next keys driven by a caller-supplied Locator.
func (n *Navigation) ByLocator(prev, next key.Binding, loc Locator) error {
	if loc == nil {
		return fmt.Errorf("%w: nil locator", ErrInvalidBinding)
	}
	name := fmt.Sprintf("locator %d", len(n.entries))
	return n.register(navEntry{name: name, prev: prev, next: next, locate: loc})
}

func (n *Navigation) register(e navEntry) error {
	if n.owners == nil {
		n.owners = make(map[string]string)
	}
	prevKeys, nextKeys := e.prev.Keys(), e.next.Keys()
	if len(prevKeys) == 0 && len(nextKeys) == 0 {
		return fmt.Errorf("%w: %s has no keys", ErrInvalidBinding, e.name)
	}

	seen := make(map[string]struct{}, len(prevKeys)+len(nextKeys))
	for _, k := range append(append([]string(nil), prevKeys...), nextKeys...) {
		if owner, ok := n.owners[k]; ok {
			return fmt.Errorf("%w: %q is used by %s", ErrKeyConflict, k, owner)
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %q is bound twice in %s", ErrKeyConflict, k, e.name)
		}
		seen[k] = struct{}{}
	}

	for k := range seen {
		n.owners[k] = e.name
	}
	n.entries = append(n.entries, e)
	return nil
}

// Keys returns every key bound by the registry.
func (n *Navigation) Keys() []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.owners))
	for _, e := range n.entries {
		out = append(out, e.prev.Keys()...)
		out = append(out, e.next.Keys()...)
	}
	return out
}

// Resolve returns the locator and direction bound to msg.
func (n *Navigation) Resolve(msg tea.KeyMsg) (Locator, span.Direction, bool) {
	if n == nil {
		return nil, span.Forward, false
	}
	for _, e := range n.entries {
		if len(e.next.Keys()) > 0 && key.Matches(msg, e.next) {
			return e.locate, span.Forward, true
		}
		if len(e.prev.Keys()) > 0 && key.Matches(msg, e.prev) {
			return e.locate, span.Backward, true
		}
	}
	return nil, span.Forward, false
}

const keyMapOwner = "the editor key map"

// reserveKeyMap claims the key map's keys so later registrations cannot
// shadow them. It fails when an existing entry already uses one.
func (n *Navigation) reserveKeyMap(km KeyMap) error {
	if n == nil {
		return nil
	}
	if n.owners == nil {
		n.owners = make(map[string]string)
	}
	for _, b := range km.bindings() {
		for _, k := range b.Keys() {
			if owner, ok := n.owners[k]; ok && owner != keyMapOwner {
				return fmt.Errorf("%w: %q is used by %s and %s", ErrKeyConflict, k, owner, keyMapOwner)
			}
		}
	}
	for _, b := range km.bindings() {
		for _, k := range b.Keys() {
			n.owners[k] = keyMapOwner
		}
	}
	return nil
}
