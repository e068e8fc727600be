package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/meeting-scribe/internal/chunker"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/processor"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-scribe/internal/watcher"
	"github.com/nguyentantai21042004/meeting-scribe/internal/writer"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", false, "watch the input directory for new recordings")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config config.yaml] [-watch] [audio-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := checkArgs(*watch, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only transcripts and summaries
	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Transcription Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Whisper backend: %s (model %s, language %s)", cfg.Whisper.Backend, cfg.Whisper.Model, cfg.Whisper.Language)
	log.Info(ctx, "Chunk size: %s", cfg.ChunkSize())
	if cfg.Summary.Enabled {
		log.Info(ctx, "Summary: %s (%s, on failure: %s)", cfg.Summary.Provider, cfg.Summary.Model, cfg.Summary.OnFailure)
	} else {
		log.Info(ctx, "Summary: disabled")
	}

	if err := ensureDirectories(cfg, *watch); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	p, err := build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *watch {
		os.Exit(runWatch(ctx, cfg, p, log))
	}

	if _, err := p.Run(ctx, flag.Arg(0)); err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		os.Exit(1)
	}
}

// checkArgs requires exactly one audio file, or none in watch mode
func checkArgs(watch bool, args []string) error {
	switch {
	case watch && len(args) > 0:
		return fmt.Errorf("-watch takes no audio file, got %q", args[0])
	case !watch && len(args) != 1:
		return errors.New("expected exactly one audio file")
	}
	return nil
}

// build wires every component of the pipeline from cfg
func build(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()

	engine, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	proc := processor.New(cfg, chunker.New(cfg, exec, log), engine, log)

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled {
		sum, err = summarizer.New(cfg, log)
		if err != nil {
			return nil, err
		}
	}

	return pipeline.New(cfg, proc, sum, writer.New(), log, os.Stdout), nil
}

// runWatch processes every recording dropped into the input directory until ctx is done
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) int {
	handler := func(ctx context.Context, path string) error {
		_, err := p.Run(ctx, path)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Output.Dir)
	log.Info(ctx, "Concurrent: %d recordings at once", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return 1
	}

	log.Info(context.Background(), "Pipeline stopped")
	return 0
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config, watch bool) error {
	dirs := []string{cfg.Paths.Temp, cfg.Output.Dir}
	if watch {
		dirs = append(dirs, cfg.Paths.Input)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
