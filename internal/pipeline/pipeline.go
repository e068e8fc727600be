package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarizer"
)

// SummaryFailedMessage is printed when summary.on_failure is warn_and_continue
const SummaryFailedMessage = "Summarization failed; continuing without summary."

// Run processes one audio file end to end
func (p *implPipeline) Run(ctx context.Context, audioPath string) (Result, error) {
	startTime := time.Now()
	res := Result{RunID: uuid.NewString()}
	ctx = logger.WithRunID(ctx, res.RunID)

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcription: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe
	text, err := p.processor.Transcribe(ctx, audioPath)
	if err != nil {
		if text != "" {
			res.Transcription = text
			fmt.Fprintln(p.stdout, text)
			if paths, werr := p.persist(ctx, base+"_transcription", text, false); werr != nil {
				p.logger.Warn(ctx, "Failed to save partial transcription: %v", werr)
			} else {
				res.TranscriptionPaths = paths
				p.logger.Warn(ctx, "Saved partial transcription: %s", strings.Join(paths, ", "))
			}
		}
		return res, fmt.Errorf("transcribe: %w", err)
	}
	res.Transcription = text
	fmt.Fprintln(p.stdout, text)

	// Step 2: Persist transcription
	res.TranscriptionPaths, err = p.persist(ctx, base+"_transcription", text, false)
	if err != nil {
		return res, fmt.Errorf("save transcription: %w", err)
	}

	if !p.cfg.Summary.Enabled || p.summarizer == nil {
		p.logger.Info(ctx, "Summary disabled, done in %s", time.Since(startTime).Round(time.Millisecond))
		return res, nil
	}

	// Step 3: Summarize the persisted transcription
	summary, err := p.summarizer.SummarizeFile(ctx, res.TranscriptionPaths[0], p.cfg.Summary.Instruction)
	if err != nil {
		outcome := summarizer.Classify(err)
		// A summary left by an earlier run would describe a different transcript
		p.removeOutputs(ctx, base+"_summary")
		if p.cfg.Summary.OnFailure == config.SummaryFailurePolicyWarn {
			fmt.Fprintln(p.stdout, SummaryFailedMessage)
			p.logger.Warn(ctx, "Summarization %s: %v", outcome, err)
			res.SummarySkipped = true
			return res, nil
		}
		p.logger.Error(ctx, "Summarization %s: %v", outcome, err)
		return res, fmt.Errorf("summarize: %w", err)
	}
	res.Summary = summary
	fmt.Fprintln(p.stdout, summary)

	// Step 4: Persist summary
	res.SummaryPaths, err = p.persist(ctx, base+"_summary", summary, p.cfg.Output.SummaryStyle == "markdown")
	if err != nil {
		return res, fmt.Errorf("save summary: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcription: %s", strings.Join(res.TranscriptionPaths, ", "))
	p.logger.Info(ctx, "Summary: %s", strings.Join(res.SummaryPaths, ", "))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return res, nil
}

// persist writes name.txt and, when output.docx is set, name.docx under
// output.dir. The .txt path is always first.
func (p *implPipeline) persist(ctx context.Context, name, text string, markdown bool) ([]string, error) {
	txtPath := filepath.Join(p.cfg.Output.Dir, name+".txt")
	if err := p.writer.WriteText(txtPath, text); err != nil {
		return nil, err
	}
	paths := []string{txtPath}

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Output.Dir, name+".docx")
		var err error
		if markdown {
			err = p.writer.WriteMarkdownDocx(docxPath, name, text)
		} else {
			err = p.writer.WriteDocx(docxPath, text)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, docxPath)
	}

	p.logger.Info(ctx, "Saved %s", strings.Join(paths, ", "))
	return paths, nil
}

// removeOutputs deletes every file persist could have written for name
func (p *implPipeline) removeOutputs(ctx context.Context, name string) {
	for _, ext := range []string{".txt", ".docx"} {
		path := filepath.Join(p.cfg.Output.Dir, name+ext)
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				p.logger.Warn(ctx, "Failed to remove stale %s: %v", path, err)
			}
			continue
		}
		p.logger.Info(ctx, "Removed stale %s", path)
	}
}
