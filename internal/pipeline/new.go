package pipeline

import (
	"io"
	"os"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/processor"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-scribe/internal/writer"
)

type implPipeline struct {
	cfg        *config.Config
	processor  processor.Processor
	summarizer summarizer.Summarizer
	writer     writer.Writer
	logger     logger.Logger
	stdout     io.Writer
}

// New wires a Pipeline. sum may be nil when summaries are disabled;
// stdout defaults to os.Stdout.
func New(cfg *config.Config, proc processor.Processor, sum summarizer.Summarizer, w writer.Writer, log logger.Logger, stdout io.Writer) Pipeline {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &implPipeline{
		cfg:        cfg,
		processor:  proc,
		summarizer: sum,
		writer:     w,
		logger:     log,
		stdout:     stdout,
	}
}
