package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

type whisperCppEngine struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// Transcribe runs whisper-cli on audioPath and returns the plain text
func (e *whisperCppEngine) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	// whisper-cli appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	txtPath := outputPrefix + ".txt"

	// -otxt: plain text output, -np: no progress prints on stdout
	args := []string{
		"-m", e.cfg.ModelPath,
		"-f", audioPath,
		"-l", language,
		"-t", strconv.Itoa(e.cfg.Threads),
		"-otxt",
		"-np",
		"-of", outputPrefix,
	}
	if e.cfg.Device == "cpu" {
		args = append(args, "-ng")
	}
	if e.cfg.Prompt != "" {
		args = append(args, "--prompt", e.cfg.Prompt)
	}

	e.logger.Debug(ctx, "whisper-cli %s", strings.Join(args, " "))

	// whisper-cli may leave a partial .txt behind when it fails
	defer os.Remove(txtPath)

	if _, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return joinLines(string(data)), nil
}

// joinLines flattens whisper's one-segment-per-line output into a single line
func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
