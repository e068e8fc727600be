package transcriber

import "context"

// Engine turns one audio file into text
type Engine interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
