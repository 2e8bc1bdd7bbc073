package jsondoc

import (
	"errors"
	"fmt"
)

// Core error definitions. Every failing operation returns one of these
// sentinels, possibly wrapped with detail; typed getters never fail and
// return neutral sentinels instead.
var (
	// Parse-time errors
	ErrInvalidJSON         = errors.New("invalid JSON format")
	ErrDepthLimit          = errors.New("nesting depth limit exceeded")
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// Mutation errors
	ErrCapacityLimit   = errors.New("container capacity limit exceeded")
	ErrDuplicateKey    = errors.New("duplicate object key")
	ErrValueOwned      = errors.New("value already belongs to a container")
	ErrKeyNotFound     = errors.New("object key not found")
	ErrIndexOutOfRange = errors.New("array index out of range")

	// Serialization errors
	ErrBufferTooSmall = errors.New("buffer too small for serialization")
	ErrInvalidValue   = errors.New("invalid value")

	// Validation errors
	ErrValidationFailed = errors.New("value does not match schema")
)

// SyntaxError describes a malformed document. Parse returns a *SyntaxError
// for any grammar violation; it unwraps to ErrInvalidJSON so callers can
// match the whole class with errors.Is.
type SyntaxError struct {
	msg    string // description of the violation
	Offset int64  // byte offset where parsing failed
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.msg)
}

// Unwrap supports errors.Is(err, ErrInvalidJSON).
func (e *SyntaxError) Unwrap() error { return ErrInvalidJSON }

func newSyntaxError(msg string, offset int) *SyntaxError {
	return &SyntaxError{msg: msg, Offset: int64(offset)}
}
