package summarizer

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type implOllama struct {
	endpoint    string
	model       string
	keepAlive   string
	instruction string
	httpClient  *http.Client
	logger      logger.Logger
}

// New returns the Summarizer selected by summary.provider
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	instruction := cfg.Summary.Instruction
	if instruction == "" {
		instruction = config.DefaultSummaryInstruction
	}

	switch cfg.Summary.Provider {
	case "", "ollama":
		return &implOllama{
			endpoint:    cfg.Summary.Endpoint,
			model:       cfg.Summary.Model,
			keepAlive:   cfg.Summary.KeepAlive,
			instruction: instruction,
			httpClient:  &http.Client{Timeout: cfg.Summary.Timeout},
			logger:      log,
		}, nil
	case "gemini":
		if len(cfg.Summary.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("gemini provider needs at least one API key")
		}
		return &implGemini{
			apiKeys:     cfg.Summary.Gemini.APIKeys,
			model:       cfg.Summary.Gemini.Model,
			baseURL:     cfg.Summary.Gemini.BaseURL,
			timeout:     cfg.Summary.Timeout,
			instruction: instruction,
			logger:      log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}
