package chunker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

const (
	probeFFprobe = "ffprobe"
	probeNative  = "native"
)

// probe returns the duration of audioPath and the method used
func (c *implChunker) probe(ctx context.Context, audioPath string) (time.Duration, string, error) {
	method := c.cfg.Audio.Probe
	if method == "" || method == "auto" {
		method = probeFFprobe
		if strings.EqualFold(filepath.Ext(audioPath), ".mp3") {
			method = probeNative
		}
	}

	switch method {
	case probeNative:
		d, err := probeMP3(audioPath)
		return d, method, err
	case probeFFprobe:
		d, err := c.probeFFprobe(ctx, audioPath)
		return d, method, err
	default:
		return 0, method, fmt.Errorf("unknown probe method %q", method)
	}
}

// probeFFprobe asks ffprobe for the container duration in seconds
func (c *implChunker) probeFFprobe(ctx context.Context, audioPath string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}

	out, err := c.executor.Execute(ctx, c.cfg.Audio.FFprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	raw := strings.TrimSpace(out)
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", raw, err)
	}
	return secondsToDuration(secs), nil
}

// probeMP3 decodes the MP3 frame headers to compute the duration without ffprobe
func probeMP3(audioPath string) (time.Duration, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("decode mp3: %w", err)
	}

	// Decoded output is 16-bit stereo: 4 bytes per sample frame.
	length := dec.Length()
	if length <= 0 || dec.SampleRate() <= 0 {
		return 0, fmt.Errorf("mp3 length unknown")
	}
	frames := length / 4
	return time.Duration(frames) * time.Second / time.Duration(dec.SampleRate()), nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second)).Round(time.Millisecond)
}
