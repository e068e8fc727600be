package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

// Failure reasons. Every summarization error wraps exactly one of these.
var (
	ErrTimeout     = errors.New("summarization timed out")
	ErrUnavailable = errors.New("inference endpoint unreachable")
	ErrBadStatus   = errors.New("inference endpoint returned an error status")
	ErrMalformed   = errors.New("malformed inference response")
)

// Outcome is the coarse result of a summarization call.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeTimeout Outcome = "timeout"
	OutcomeError   Outcome = "error"
)

// Classify maps the error returned by SummarizeFile to an Outcome
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}

func failure(op string, reason error, message string, cause error) error {
	if cause != nil {
		reason = fmt.Errorf("%w: %w", reason, cause)
	}
	return apperr.Wrap(apperr.KindSummarization, op, message, reason)
}

// transportFailure tells a timeout apart from any other transport error
func transportFailure(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return failure(op, ErrTimeout, "request timed out", err)
	}
	return failure(op, ErrUnavailable, "request failed", err)
}
