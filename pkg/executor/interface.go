package executor

import "context"

// Executor runs external commands such as ffmpeg, ffprobe and whisper-cli
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
