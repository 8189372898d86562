package span

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned for spans outside the token sequence or with Begin >= End.
	ErrInvalidRange = errors.New("span: invalid range")
	// ErrCrossingAnnotation is returned when a span partially overlaps an existing one.
	ErrCrossingAnnotation = errors.New("span: crossing annotation")
	// ErrDuplicateIdentifier is returned when Type+ID is already present.
	ErrDuplicateIdentifier = errors.New("span: duplicate identifier")
	// ErrNotFound is returned when no annotation has the requested key.
	ErrNotFound = errors.New("span: annotation not found")
)

func invalidRangeError(a Annotation, tokenCount int) error {
	return fmt.Errorf("%w: %s %s with %d tokens", ErrInvalidRange, a.Key(), a.Range(), tokenCount)
}

func crossingError(a, existing Annotation) error {
	return fmt.Errorf("%w: %s crosses %s", ErrCrossingAnnotation, a, existing)
}

func duplicateError(a Annotation) error {
	return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, a.Key())
}

func notFoundError(key string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, key)
}
