package canonical

import (
	"errors"
	"fmt"
)

var errNotAbsolute = errors.New("not an absolute url")

// DecodingError reports an input with invalid percent-encoding.
type DecodingError struct {
	Input string
	Err   error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Input, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// URLParseError reports a redirect target that is not a valid URL.
// It only occurs when the configured host is malformed.
type URLParseError struct {
	Target string
	Err    error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("parse redirect target %q: %v", e.Target, e.Err)
}

func (e *URLParseError) Unwrap() error { return e.Err }
