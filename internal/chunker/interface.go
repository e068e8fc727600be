package chunker

import (
	"context"
	"iter"
)

// Chunker splits an audio file into fixed-duration chunks and materializes
// them as temporary WAV files for the speech engine.
type Chunker interface {
	Load(ctx context.Context, audioPath string) (Stream, error)
	Chunks(stream Stream) iter.Seq[Chunk]
	Export(ctx context.Context, chunk Chunk) (*ChunkFile, error)
}
