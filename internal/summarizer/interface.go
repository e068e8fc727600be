package summarizer

import "context"

// Summarizer condenses a persisted transcript with a language model.
type Summarizer interface {
	// SummarizeFile reads path and asks the model to summarize it.
	// An empty instruction selects the configured default.
	SummarizeFile(ctx context.Context, path, instruction string) (string, error)
}
