package source

import (
	"errors"
	"fmt"
)

var (
	// ErrAcquisitionFailed signals that the live markets feed could not be read:
	// unreachable host, timeout, non-2xx status or truncated body.
	ErrAcquisitionFailed = errors.New("data acquisition failed")

	// ErrMalformedRecord signals that the markets document could not be parsed,
	// or that one of its records lacks a currency or a numeric volume.
	ErrMalformedRecord = errors.New("malformed market record")
)

// FixtureError reports a fixture file that is missing or unreadable.
type FixtureError struct {
	Path string
	Err  error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s: %v", e.Path, e.Err)
}

func (e *FixtureError) Unwrap() error { return e.Err }
