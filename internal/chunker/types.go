package chunker

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// Stream is a probed input recording.
type Stream struct {
	Path       string
	Duration   time.Duration
	ProbedBy   string
	ChunkCount int
}

// Chunk is a slice [Start, Start+Duration) of a Stream.
type Chunk struct {
	Index    int
	Start    time.Duration
	Duration time.Duration
	Source   string
}

// ChunkFile is a chunk materialized on disk. The owner must call Release
// once the file is no longer needed.
type ChunkFile struct {
	Chunk    Chunk
	path     string
	released bool
}

// Path returns the location of the WAV file.
func (f *ChunkFile) Path() string {
	return f.path
}

// Release deletes the file. Calling it more than once is a no-op.
func (f *ChunkFile) Release() error {
	if f.released {
		return nil
	}
	f.released = true
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
