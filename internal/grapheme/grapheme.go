// Package grapheme measures token text in terminal cells.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
//
// Zero-width clusters reported by runewidth fall back to uniseg, which knows
// about emoji sequences.
func Width(text string) int {
	total := 0
	for _, c := range Split(text) {
		w := runewidth.StringWidth(c)
		if w <= 0 {
			w = uniseg.StringWidth(c)
		}
		if w < 0 {
			w = 0
		}
		total += w
	}
	return total
}

// Truncate cuts text to at most cells terminal cells without splitting a
// grapheme. tail is appended when text was cut and there is room for it.
func Truncate(text string, cells int, tail string) string {
	if cells <= 0 {
		return ""
	}
	if Width(text) <= cells {
		return text
	}
	tailW := Width(tail)
	if tailW > cells {
		tail, tailW = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > cells-tailW {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}

// Sanitize replaces whitespace and control runes with a single space so a
// token always renders on one line.
func Sanitize(token string) string {
	if token == "" {
		return token
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, token)
}
