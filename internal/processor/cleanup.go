package processor

import (
	"context"

	"github.com/nguyentantai21042004/meeting-scribe/internal/chunker"
)

// releaseChunk removes a chunk's temp file, logs warning if fails
func (p *implProcessor) releaseChunk(ctx context.Context, file *chunker.ChunkFile) {
	if err := file.Release(); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup chunk file %s: %v", file.Path(), err)
	} else {
		p.logger.Debug(ctx, "Cleaned up chunk file: %s", file.Path())
	}
}
