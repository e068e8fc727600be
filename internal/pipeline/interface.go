package pipeline

import "context"

// Pipeline runs transcribe → persist → summarize → persist for one recording
type Pipeline interface {
	Run(ctx context.Context, audioPath string) (Result, error)
}

// Result describes what a run produced
type Result struct {
	RunID              string
	Transcription      string
	TranscriptionPaths []string
	Summary            string
	SummaryPaths       []string
	SummarySkipped     bool
}
