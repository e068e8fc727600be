package summarizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// generateRequest is the body of Ollama's POST /api/generate
type generateRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	Stream    bool   `json:"stream"`
	KeepAlive string `json:"keep_alive,omitempty"`
}

type generateResponse struct {
	Response *string `json:"response"`
	Error    string  `json:"error,omitempty"`
}

func (s *implOllama) SummarizeFile(ctx context.Context, path, instruction string) (string, error) {
	content, err := readSource(path)
	if err != nil {
		return "", err
	}
	if instruction == "" {
		instruction = s.instruction
	}

	s.logger.Info(ctx, "Summarizing %s with %s (%d chars)", path, s.model, len(content))
	return s.generate(ctx, BuildPrompt(instruction, content))
}

func (s *implOllama) generate(ctx context.Context, prompt string) (string, error) {
	const op = "ollama.generate"

	body, err := sonic.Marshal(generateRequest{
		Model:     s.model,
		Prompt:    prompt,
		Stream:    false,
		KeepAlive: s.keepAlive,
	})
	if err != nil {
		return "", failure(op, ErrMalformed, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", failure(op, ErrUnavailable, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", transportFailure(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportFailure(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", failure(op, ErrBadStatus, fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(string(data), 200)), nil)
	}

	var out generateResponse
	if err := sonic.Unmarshal(data, &out); err != nil {
		return "", failure(op, ErrMalformed, "decode response", err)
	}
	if out.Response == nil {
		msg := "response field missing"
		if out.Error != "" {
			msg += ": " + out.Error
		}
		return "", failure(op, ErrMalformed, msg, nil)
	}

	s.logger.Debug(ctx, "Ollama returned %d chars", len(*out.Response))
	return *out.Response, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
