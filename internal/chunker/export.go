package chunker

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

// Export cuts chunk out of its source into a fresh 16kHz mono WAV file.
// The returned ChunkFile owns the file.
func (c *implChunker) Export(ctx context.Context, chunk Chunk) (*ChunkFile, error) {
	if err := os.MkdirAll(c.cfg.Paths.Temp, 0755); err != nil {
		return nil, apperr.Wrap(apperr.KindIO, "chunker.export", "create temp dir", err)
	}

	tmp, err := os.CreateTemp(c.cfg.Paths.Temp, fmt.Sprintf("chunk-%03d-*.wav", chunk.Index))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, "chunker.export", "create chunk file", err)
	}
	tmp.Close()

	file := &ChunkFile{Chunk: chunk, path: tmp.Name()}

	// -ss before -i seeks on the input, -t bounds the slice length.
	// 16kHz mono PCM is what whisper expects.
	args := []string{
		"-y",
		"-ss", formatSeconds(chunk.Start),
		"-t", formatSeconds(chunk.Duration),
		"-i", chunk.Source,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		file.path,
	}

	if _, err := c.executor.Execute(ctx, c.cfg.Audio.FFmpegPath, args...); err != nil {
		if rerr := file.Release(); rerr != nil {
			c.logger.Warn(ctx, "Failed to cleanup chunk file %s: %v", file.path, rerr)
		}
		return nil, apperr.Wrap(apperr.KindFormat, "chunker.export", fmt.Sprintf("export chunk %d", chunk.Index), err)
	}

	c.logger.Debug(ctx, "Exported chunk %d [%s, +%s] to %s", chunk.Index, chunk.Start, chunk.Duration, file.path)
	return file, nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
