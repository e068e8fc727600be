package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
	"github.com/nguyentantai21042004/meeting-scribe/internal/chunker"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
)

// Transcribe loads audioPath, then exports, transcribes and releases each
// chunk in order. With transcription.on_failure=partial the text gathered
// before the failing chunk is returned alongside the error.
func (p *implProcessor) Transcribe(ctx context.Context, audioPath string) (string, error) {
	startTime := time.Now()

	stream, err := p.chunker.Load(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("load audio: %w", err)
	}

	total := stream.ChunkCount
	var transcription strings.Builder

	for chunk := range p.chunker.Chunks(stream) {
		if err := ctx.Err(); err != nil {
			return p.onFailure(transcription.String(), apperr.Wrap(apperr.KindTranscription, "processor.transcribe", "cancelled", err))
		}

		p.logger.Info(ctx, "[%d/%d] Transcribing chunk at %s (%s)", chunk.Index+1, total, chunk.Start, chunk.Duration)

		text, err := p.transcribeChunk(ctx, chunk)
		if err != nil {
			return p.onFailure(transcription.String(), err)
		}

		transcription.WriteString(text)
		transcription.WriteString(" ")
	}

	p.logger.Info(ctx, "Transcription completed: %d chunks in %s", total, time.Since(startTime).Round(time.Millisecond))
	return transcription.String(), nil
}

// transcribeChunk owns one chunk file from export to release
func (p *implProcessor) transcribeChunk(ctx context.Context, chunk chunker.Chunk) (string, error) {
	file, err := p.chunker.Export(ctx, chunk)
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w", chunk.Index, err)
	}
	defer p.releaseChunk(ctx, file)

	attempts := p.cfg.Transcription.Retries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := p.engine.Transcribe(ctx, file.Path(), p.cfg.Whisper.Language)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < attempts {
			p.logger.Warn(ctx, "Chunk %d attempt %d/%d failed: %v", chunk.Index, attempt, attempts, err)
		}
	}

	return "", apperr.Wrap(apperr.KindTranscription, "processor.chunk", fmt.Sprintf("chunk %d", chunk.Index), lastErr)
}

func (p *implProcessor) onFailure(partial string, err error) (string, error) {
	if p.cfg.Transcription.OnFailure == config.TranscriptionFailurePartial {
		return partial, err
	}
	return "", err
}
