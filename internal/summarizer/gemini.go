package summarizer

import (
	"context"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type implGemini struct {
	mu          sync.Mutex
	apiKeys     []string
	currentKey  int
	model       string
	baseURL     string
	timeout     time.Duration
	instruction string
	logger      logger.Logger
}

func (s *implGemini) SummarizeFile(ctx context.Context, path, instruction string) (string, error) {
	content, err := readSource(path)
	if err != nil {
		return "", err
	}
	if instruction == "" {
		instruction = s.instruction
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Info(ctx, "Summarizing %s with %s (%d chars)", path, s.model, len(content))
	return s.callGemini(ctx, BuildPrompt(instruction, content))
}

// callGemini sends the prompt to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implGemini) callGemini(ctx context.Context, prompt string) (string, error) {
	const op = "gemini.generate"

	var lastErr error
	for range len(s.apiKeys) {
		key := s.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: s.baseURL},
		})
		if err != nil {
			lastErr = err
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			if ctx.Err() != nil {
				return "", transportFailure(op, ctx.Err())
			}
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", failure(op, ErrUnavailable, "generate content", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", failure(op, ErrMalformed, "empty response from Gemini", nil)
	}

	return "", failure(op, ErrUnavailable, "all API keys exhausted", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (s *implGemini) key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey]
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
