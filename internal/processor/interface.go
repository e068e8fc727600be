package processor

import "context"

// Processor transcribes a whole recording chunk by chunk
type Processor interface {
	// Transcribe returns every chunk's text followed by a single space, in order.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
