package namefinder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Span is one offset pair as serialized by the service. For names, Start and
// End are token indexes within the sentence; Type may carry the entity type.
type Span struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Type  string  `json:"type,omitempty"`
	Prob  float64 `json:"prob,omitempty"`
}

// TokenRef is one entry of the document array. Services either send the
// token text directly or its character offsets into the request text.
type TokenRef struct {
	Text       string
	Start, End int
	HasOffsets bool
}

func (t *TokenRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TokenRef{Text: s}
		return nil
	}

	var sp Span
	if err := json.Unmarshal(data, &sp); err != nil {
		return fmt.Errorf("namefinder: token entry: %w", err)
	}
	*t = TokenRef{Start: sp.Start, End: sp.End, HasOffsets: true}
	return nil
}

func (t TokenRef) MarshalJSON() ([]byte, error) {
	if t.HasOffsets {
		return json.Marshal(Span{Start: t.Start, End: t.End})
	}
	return json.Marshal(t.Text)
}

// Response is the _findRawText payload: one inner array per sentence.
type Response struct {
	Document [][]TokenRef `json:"document"`
	Names    [][]Span     `json:"names"`
}
