package chunker

import (
	"context"
	"fmt"
	"iter"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
)

// Load checks that audioPath is readable and probes its duration
func (c *implChunker) Load(ctx context.Context, audioPath string) (Stream, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return Stream{}, apperr.Wrap(apperr.KindFormat, "chunker.load", "unreadable audio file", err)
	}
	if info.IsDir() {
		return Stream{}, apperr.New(apperr.KindFormat, "chunker.load", fmt.Sprintf("%s is a directory", audioPath))
	}

	duration, method, err := c.probe(ctx, audioPath)
	if err != nil {
		return Stream{}, apperr.Wrap(apperr.KindFormat, "chunker.probe", "unsupported audio", err)
	}
	if duration <= 0 {
		return Stream{}, apperr.New(apperr.KindFormat, "chunker.probe", fmt.Sprintf("%s has no audio duration", audioPath))
	}

	stream := Stream{
		Path:       audioPath,
		Duration:   duration,
		ProbedBy:   method,
		ChunkCount: Count(duration, c.chunkSize),
	}

	c.logger.Info(ctx, "Loaded %s: duration %s (probed by %s), %d chunks of %s",
		audioPath, duration, method, stream.ChunkCount, c.chunkSize)
	return stream, nil
}

// Chunks lazily yields the chunks of stream in order
func (c *implChunker) Chunks(stream Stream) iter.Seq[Chunk] {
	return Split(stream.Path, stream.Duration, c.chunkSize)
}

// Split yields consecutive chunks of at most size covering [0, total).
// The last chunk holds the remainder.
func Split(source string, total, size time.Duration) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if total <= 0 || size <= 0 {
			return
		}
		index := 0
		for start := time.Duration(0); start < total; start += size {
			chunk := Chunk{
				Index:    index,
				Start:    start,
				Duration: min(size, total-start),
				Source:   source,
			}
			if !yield(chunk) {
				return
			}
			index++
		}
	}
}

// Count returns the number of chunks Split yields, ceil(total/size).
func Count(total, size time.Duration) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + size - 1) / size)
}
