package transcriber

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

// openAIEngine talks to any OpenAI-compatible /audio/transcriptions endpoint,
// e.g. a local faster-whisper server.
type openAIEngine struct {
	client *openai.Client
	model  string
	prompt string
	logger logger.Logger
}

func (e *openAIEngine) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	e.logger.Debug(ctx, "Sending %s to transcription endpoint (model %s)", audioPath, e.model)

	resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    e.model,
		FilePath: audioPath,
		Language: language,
		Prompt:   e.prompt,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcribe: %w", err)
	}
	return resp.Text, nil
}
