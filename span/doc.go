// Package span implements the pure annotation model for spanedit.
//
// Token indexes are 0-based. Annotation ranges are half-open: [Begin, End).
// Spans may nest but never cross; the Document keeps them in a containment
// tree rooted at a virtual node covering every token.
package span
