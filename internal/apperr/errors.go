package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindConfig        Kind = "config"
	KindFormat        Kind = "format"
	KindTranscription Kind = "transcription"
	KindIO            Kind = "io"
	KindSummarization Kind = "summarization"
)

// Error tags a failure with the pipeline stage it belongs to.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap tags err with kind. An error that already carries a kind keeps it.
// Callers must not pass a nil err.
func Wrap(kind Kind, op, message string, err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Cause:   err,
	}
}

func New(kind Kind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
	}
}

// IsKind reports whether the first tagged error in the chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind == kind
	}
	return false
}
