package span

import "fmt"

// Range is a half-open token range: [Begin, End).
type Range struct {
	Begin int
	End   int
}

func (r Range) Len() int { return r.End - r.Begin }

func (r Range) IsEmpty() bool { return r.End <= r.Begin }

// Contains reports whether o lies fully inside r. Equal ranges contain each other.
func (r Range) Contains(o Range) bool {
	return r.Begin <= o.Begin && o.End <= r.End
}

// Crosses reports whether r and o partially overlap, i.e. they share at least
// one token and neither contains the other.
func (r Range) Crosses(o Range) bool {
	if r.End <= o.Begin || o.End <= r.Begin {
		return false
	}
	return !r.Contains(o) && !o.Contains(r)
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Begin, r.End) }

// Annotation is one labeled span over the token sequence of a Document.
//
// ID only needs to be unique within Type; Key() is the document-wide identity.
type Annotation struct {
	Type  string
	ID    string
	Begin int
	End   int
}

// NewAnnotation returns an annotation with the given fields. No validation is
// done here; Document.Add rejects malformed ranges.
func NewAnnotation(typ, id string, begin, end int) Annotation {
	return Annotation{Type: typ, ID: id, Begin: begin, End: end}
}

// Length returns the number of tokens covered by the annotation.
func (a Annotation) Length() int { return a.End - a.Begin }

// Key returns the composite identity Type+ID.
func (a Annotation) Key() string { return a.Type + a.ID }

func (a Annotation) Range() Range { return Range{Begin: a.Begin, End: a.End} }

func (a Annotation) String() string {
	return fmt.Sprintf("%s%s", a.Key(), a.Range())
}

// Direction selects the search order for span navigation.
type Direction int

const (
	Forward Direction = iota
	Backward
)
