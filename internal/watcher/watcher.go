package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

var supportedFormats = []string{".m4a", ".wav", ".mp3", ".flac", ".ogg", ".aac", ".opus", ".webm"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore.Weighted
	settle        time.Duration
	wg            sync.WaitGroup
}

// Start monitors the input directory and runs the handler for each new audio file
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(supportedFormats, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			// Give the writer a moment to finish the file
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

			if err := w.sem.Acquire(ctx, 1); err != nil {
				w.wg.Wait()
				return err
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.sem.Release(1)

				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isAudioFile checks if the file has a supported audio extension
func isAudioFile(path string) bool {
	return slices.Contains(supportedFormats, strings.ToLower(filepath.Ext(path)))
}
