package editor

// Clipboard provides editor-level clipboard integration. The Copy binding
// writes the text of the selected span, or of the cursor token.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	WriteText(s string) error
}
