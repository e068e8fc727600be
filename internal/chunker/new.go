package chunker

import (
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

const defaultChunkSize = 10 * time.Minute

type implChunker struct {
	cfg       *config.Config
	executor  executor.Executor
	logger    logger.Logger
	chunkSize time.Duration
}

// New creates a Chunker using ffmpeg/ffprobe through exec
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Chunker {
	size := cfg.ChunkSize()
	if size <= 0 {
		size = defaultChunkSize
	}

	return &implChunker{
		cfg:       cfg,
		executor:  exec,
		logger:    log,
		chunkSize: size,
	}
}
