package chunker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-scribe/internal/apperr"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type call struct {
	name string
	args []string
}

type fakeExecutor struct {
	calls     []call
	probeOut  string
	probeErr  error
	exportErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	switch name {
	case "ffprobe":
		return f.probeOut, f.probeErr
	case "ffmpeg":
		if f.exportErr != nil {
			return "", f.exportErr
		}
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
	}
	return "", errors.New("unexpected command " + name)
}

func newTestChunker(t *testing.T, exec *fakeExecutor, chunkMS int) Chunker {
	t.Helper()
	cfg := &config.Config{
		Audio: config.AudioConfig{
			FFmpegPath:  "ffmpeg",
			FFprobePath: "ffprobe",
			ChunkMS:     chunkMS,
			Probe:       "auto",
		},
		Paths: config.PathsConfig{Temp: filepath.Join(t.TempDir(), "temp")},
	}
	return New(cfg, exec, logger.New("error"))
}

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0644))
	return path
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		total time.Duration
		size  time.Duration
		want  []time.Duration
	}{
		{"25 minutes in 10 minute chunks", 25 * time.Minute, 10 * time.Minute, []time.Duration{10 * time.Minute, 10 * time.Minute, 5 * time.Minute}},
		{"evenly divisible", 30 * time.Minute, 10 * time.Minute, []time.Duration{10 * time.Minute, 10 * time.Minute, 10 * time.Minute}},
		{"shorter than one chunk", 90 * time.Second, 10 * time.Minute, []time.Duration{90 * time.Second}},
		{"odd milliseconds", 2501 * time.Millisecond, time.Second, []time.Duration{time.Second, time.Second, 501 * time.Millisecond}},
		{"zero duration", 0, time.Minute, nil},
		{"zero size", time.Minute, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []time.Duration
			var next time.Duration
			for c := range Split("a.wav", tt.total, tt.size) {
				assert.Equal(t, len(got), c.Index)
				assert.Equal(t, next, c.Start, "chunk %d leaves a gap or overlap", c.Index)
				assert.LessOrEqual(t, c.Duration, tt.size)
				assert.Equal(t, "a.wav", c.Source)
				got = append(got, c.Duration)
				next = c.Start + c.Duration
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), Count(tt.total, tt.size))
			if len(got) > 0 {
				assert.Equal(t, tt.total, next)
			}
		})
	}
}

func TestSplitCoversDurationExactly(t *testing.T) {
	for total := time.Duration(1); total < 50*time.Second; total += 997 * time.Millisecond {
		for _, size := range []time.Duration{time.Second, 3 * time.Second, 7700 * time.Millisecond} {
			var sum time.Duration
			n := 0
			for c := range Split("x", total, size) {
				sum += c.Duration
				n++
			}
			if sum != total {
				t.Fatalf("Split(%v, %v) covers %v", total, size, sum)
			}
			if want := Count(total, size); n != want {
				t.Fatalf("Split(%v, %v) yielded %d chunks, want %d", total, size, n, want)
			}
		}
	}
}

func TestSplitStopsEarly(t *testing.T) {
	n := 0
	for range Split("x", time.Hour, time.Minute) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestLoad(t *testing.T) {
	exec := &fakeExecutor{probeOut: "1500.000000\n"}
	c := newTestChunker(t, exec, 10*60*1000)
	path := writeAudio(t, "meeting.m4a")

	stream, err := c.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 25*time.Minute, stream.Duration)
	assert.Equal(t, "ffprobe", stream.ProbedBy)
	assert.Equal(t, 3, stream.ChunkCount)
	require.Len(t, exec.calls, 1)
	assert.Equal(t, path, exec.calls[0].args[len(exec.calls[0].args)-1])

	var sizes []time.Duration
	for chunk := range c.Chunks(stream) {
		sizes = append(sizes, chunk.Duration)
	}
	assert.Equal(t, []time.Duration{10 * time.Minute, 10 * time.Minute, 5 * time.Minute}, sizes)
}

func TestLoadNativeMP3(t *testing.T) {
	// 77 MPEG-2 frames of 576 samples at 22050 Hz
	want := time.Duration(77*576) * time.Second / 22050

	tests := []struct {
		name  string
		probe string
	}{
		{"auto picks native for mp3", "auto"},
		{"explicit native", "native"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{}
			cfg := &config.Config{
				Audio: config.AudioConfig{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", ChunkMS: 1000, Probe: tt.probe},
				Paths: config.PathsConfig{Temp: t.TempDir()},
			}
			c := New(cfg, exec, logger.New("error"))

			stream, err := c.Load(context.Background(), filepath.Join("testdata", "short.mp3"))
			require.NoError(t, err)
			assert.Equal(t, want, stream.Duration)
			assert.Equal(t, "native", stream.ProbedBy)
			assert.Equal(t, 3, stream.ChunkCount)
			assert.Empty(t, exec.calls, "native decoding must not run ffprobe")
		})
	}
}

func TestLoadNativeRejectsNonMP3(t *testing.T) {
	cfg := &config.Config{
		Audio: config.AudioConfig{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", ChunkMS: 1000, Probe: "native"},
		Paths: config.PathsConfig{Temp: t.TempDir()},
	}
	c := New(cfg, &fakeExecutor{}, logger.New("error"))

	_, err := c.Load(context.Background(), writeAudio(t, "fake.mp3"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindFormat))
}

func TestLoadFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			exec: &fakeExecutor{},
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.wav") },
		},
		{
			name: "directory",
			exec: &fakeExecutor{},
			path: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "ffprobe rejects codec",
			exec: &fakeExecutor{probeErr: errors.New("Invalid data found when processing input")},
			path: func(t *testing.T) string { return writeAudio(t, "broken.wav") },
		},
		{
			name: "unparsable duration",
			exec: &fakeExecutor{probeOut: "N/A"},
			path: func(t *testing.T) string { return writeAudio(t, "odd.wav") },
		},
		{
			name: "zero duration",
			exec: &fakeExecutor{probeOut: "0.000000"},
			path: func(t *testing.T) string { return writeAudio(t, "empty.wav") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChunker(t, tt.exec, 1000)
			_, err := c.Load(context.Background(), tt.path(t))
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindFormat), "error %v is not a format error", err)
		})
	}
}

func TestExportAndRelease(t *testing.T) {
	exec := &fakeExecutor{}
	c := newTestChunker(t, exec, 1000)

	chunk := Chunk{Index: 2, Start: 20 * time.Second, Duration: 10 * time.Second, Source: "in.m4a"}
	file, err := c.Export(context.Background(), chunk)
	require.NoError(t, err)

	assert.FileExists(t, file.Path())
	assert.Equal(t, chunk, file.Chunk)

	require.Len(t, exec.calls, 1)
	args := exec.calls[0].args
	assert.Equal(t, []string{"-y", "-ss", "20.000", "-t", "10.000", "-i", "in.m4a"}, args[:7])
	assert.Equal(t, file.Path(), args[len(args)-1])

	require.NoError(t, file.Release())
	assert.NoFileExists(t, file.Path())
	assert.NoError(t, file.Release(), "second Release must be a no-op")
}

func TestExportFailureRemovesFile(t *testing.T) {
	exec := &fakeExecutor{exportErr: errors.New("ffmpeg exploded")}
	c := newTestChunker(t, exec, 1000)

	_, err := c.Export(context.Background(), Chunk{Index: 0, Duration: time.Second, Source: "in.wav"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindFormat))

	out := exec.calls[0].args[len(exec.calls[0].args)-1]
	assert.NoFileExists(t, out)
}

func TestUniqueChunkFiles(t *testing.T) {
	c := newTestChunker(t, &fakeExecutor{}, 1000)

	a, err := c.Export(context.Background(), Chunk{Index: 0, Duration: time.Second, Source: "in.wav"})
	require.NoError(t, err)
	defer a.Release()
	b, err := c.Export(context.Background(), Chunk{Index: 0, Duration: time.Second, Source: "in.wav"})
	require.NoError(t, err)
	defer b.Release()

	assert.NotEqual(t, a.Path(), b.Path())
}
