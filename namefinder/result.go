package namefinder

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/iw2rmb/spanedit/span"
)

// Result pairs a service response with the text it was computed from.
type Result struct {
	Text     string
	Response Response
}

// Tokens returns the document tokens in sentence order.
//
// Offsets are UTF-16 code unit indexes, matching how the service and the
// browser demo address the text.
func (r *Result) Tokens() ([]string, error) {
	units := utf16.Encode([]rune(r.Text))
	var out []string
	for si, sentence := range r.Response.Document {
		for ti, tok := range sentence {
			if !tok.HasOffsets {
				out = append(out, tok.Text)
				continue
			}
			if tok.Start < 0 || tok.End > len(units) || tok.Start > tok.End {
				return nil, fmt.Errorf("%w: token %d of sentence %d at [%d,%d) in %d units",
					ErrBadOffset, ti, si, tok.Start, tok.End, len(units))
			}
			out = append(out, string(utf16.Decode(units[tok.Start:tok.End])))
		}
	}
	return out, nil
}

// Annotations converts the per-sentence name spans into document-wide token
// spans. Names without a type get defaultType. IDs are sequence numbers per
// type so every key is unique.
func (r *Result) Annotations(defaultType string) ([]span.Annotation, error) {
	var (
		out    []span.Annotation
		offset int
		seq    = make(map[string]int)
	)
	if len(r.Response.Names) > len(r.Response.Document) {
		return nil, fmt.Errorf("%w: %d name lists for %d sentences",
			ErrBadOffset, len(r.Response.Names), len(r.Response.Document))
	}
	for si, sentence := range r.Response.Document {
		var names []Span
		if si < len(r.Response.Names) {
			names = r.Response.Names[si]
		}
		for _, name := range names {
			if name.Start < 0 || name.End > len(sentence) || name.Start >= name.End {
				return nil, fmt.Errorf("%w: name [%d,%d) in sentence %d with %d tokens",
					ErrBadOffset, name.Start, name.End, si, len(sentence))
			}
			typ := name.Type
			if typ == "" {
				typ = defaultType
			}
			id := strconv.Itoa(seq[typ])
			seq[typ]++
			out = append(out, span.NewAnnotation(typ, id, offset+name.Start, offset+name.End))
		}
		offset += len(sentence)
	}
	return out, nil
}

// Document builds a span.Document from the result.
func (r *Result) Document(defaultType string, opt span.Options) (*span.Document, error) {
	tokens, err := r.Tokens()
	if err != nil {
		return nil, err
	}
	anns, err := r.Annotations(defaultType)
	if err != nil {
		return nil, err
	}
	return span.New(tokens, opt, anns...)
}
