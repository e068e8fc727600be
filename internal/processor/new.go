package processor

import (
	"github.com/nguyentantai21042004/meeting-scribe/internal/chunker"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcriber"
)

type implProcessor struct {
	cfg     *config.Config
	chunker chunker.Chunker
	engine  transcriber.Engine
	logger  logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, c chunker.Chunker, engine transcriber.Engine, log logger.Logger) Processor {
	return &implProcessor{
		cfg:     cfg,
		chunker: c,
		engine:  engine,
		logger:  log,
	}
}
