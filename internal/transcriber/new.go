package transcriber

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

// New returns the Engine selected by whisper.backend
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Engine, error) {
	switch cfg.Whisper.Backend {
	case "", "cpp":
		return &whisperCppEngine{
			cfg:      cfg.Whisper,
			executor: exec,
			logger:   log,
		}, nil
	case "openai":
		clientCfg := openai.DefaultConfig(cfg.Whisper.OpenAI.APIKey)
		if cfg.Whisper.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = cfg.Whisper.OpenAI.BaseURL
		}
		return &openAIEngine{
			client: openai.NewClientWithConfig(clientCfg),
			model:  cfg.Whisper.Model,
			prompt: cfg.Whisper.Prompt,
			logger: log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown whisper backend %q", cfg.Whisper.Backend)
	}
}
