package namefinder

import (
	"errors"
	"fmt"
)

// ErrBadOffset is returned when a token or name offset does not fit the text
// or the sentence it belongs to.
var ErrBadOffset = errors.New("namefinder: offset out of range")

// CallError reports a non-2xx answer from the service.
type CallError struct {
	StatusCode int
	Message    string
}

func (e *CallError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("namefinder: call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("namefinder: call failed with status %d: %s", e.StatusCode, e.Message)
}
