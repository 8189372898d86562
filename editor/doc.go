// Package editor provides a Bubble Tea annotation editor component backed by
// the span package.
//
// The editor renders a fixed token sequence with nested span highlights,
// moves a token cursor, selects and removes spans, and exposes host hooks for
// span navigation keys, per-type styles, clipboard, and change events.
package editor
