package cjson

import (
	"errors"
	"fmt"
)

// Core error definitions. Concrete error values wrap one of these sentinels
// so callers can classify failures with errors.Is without parsing message
// text.
var (
	ErrSyntax              = errors.New("invalid JSON syntax")
	ErrDepthLimit          = errors.New("depth limit exceeded")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrUnsupportedType     = errors.New("type not supported")
	ErrSparseArray         = errors.New("excessively sparse array")
	ErrInvalidKey          = errors.New("invalid object key")
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")
	ErrInvalidConfig       = errors.New("invalid configuration value")
)

// ParseError reports malformed or unsupported JSON text. Msg is the full,
// stable message; Offset is the 1-based character offset into the input
// where the problem was detected.
type ParseError struct {
	Msg    string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Unwrap returns the sentinel classifying this error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EncodeError reports a value graph that cannot be serialized under the
// active configuration: an unsupported value, excessive nesting, a
// disallowed invalid number, or a bad object key.
type EncodeError struct {
	Msg string
	Err error
}

func (e *EncodeError) Error() string {
	return e.Msg
}

// Unwrap returns the sentinel classifying this error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ConfigError reports a rejected configuration assignment. The field keeps
// its previous value when a setter returns a ConfigError.
type ConfigError struct {
	Field    string
	Received any
	Expected string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: expected %s, got %v", e.Field, e.Expected, e.Received)
}

// Unwrap reports ConfigError as ErrInvalidConfig for errors.Is matching.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// newTokenError builds the standard expected-vs-found parse error. The
// token index is 0-based; reported offsets are 1-based.
func newTokenError(expected, found string, index int, err error) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf("Expected %s but found %s at character %d", expected, found, index+1),
		Offset: index + 1,
		Err:    err,
	}
}

// newNestingError reports the decode-side depth violation. The offset is
// the 1-based position of the opening bracket that crossed the limit.
func newNestingError(depth, index int) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf("Found too many nested data structures (%d) at character %d", depth, index+1),
		Offset: index + 1,
		Err:    ErrDepthLimit,
	}
}

// newEncodeException builds the standard cannot-serialise encode error.
func newEncodeException(what, reason string, err error) *EncodeError {
	return &EncodeError{
		Msg: fmt.Sprintf("Cannot serialise %s: %s", what, reason),
		Err: err,
	}
}
