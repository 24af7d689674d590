package extractor

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotOK is returned when http response had status outside of 2xx range.
	ErrStatusNotOK = errors.New("response status is not 2xx")
	// ErrEmptyBody is returned when extraction service responded without body.
	ErrEmptyBody = errors.New("response body is empty")
)

// Failure is returned for every failed extraction.
// Cause describes what went wrong: transport error, timeout, bad status or malformed body.
type Failure struct {
	URL   string
	Cause error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("can't extract product %q: %s", f.URL, f.Cause)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}
