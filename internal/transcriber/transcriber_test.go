package transcriber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type fakeWhisper struct {
	args   []string
	output string
	err    error
}

func (f *fakeWhisper) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.args = args
	for i, a := range args {
		if a == "-of" {
			if f.output != "" {
				if err := os.WriteFile(args[i+1]+".txt", []byte(f.output), 0644); err != nil {
					return "", err
				}
			}
			return "", f.err
		}
	}
	return "", errors.New("no -of flag")
}

func whisperConfig(device string) *config.Config {
	return &config.Config{Whisper: config.WhisperConfig{
		Backend:    "cpp",
		BinaryPath: "whisper-cli",
		ModelPath:  "models/ggml-large-v2.bin",
		Device:     device,
		Threads:    4,
	}}
}

func TestWhisperCppTranscribe(t *testing.T) {
	exec := &fakeWhisper{output: " Buongiorno a tutti.\n Iniziamo la riunione.\n\n"}
	engine, err := New(whisperConfig("auto"), exec, logger.New("error"))
	require.NoError(t, err)

	audio := filepath.Join(t.TempDir(), "chunk-000-1.wav")
	text, err := engine.Transcribe(context.Background(), audio, "it")
	require.NoError(t, err)

	assert.Equal(t, "Buongiorno a tutti. Iniziamo la riunione.", text)
	assert.Contains(t, exec.args, "-otxt")
	assert.NotContains(t, exec.args, "-ng")
	assert.Equal(t, "it", exec.args[indexOf(exec.args, "-l")+1])
	assert.NoFileExists(t, strings.TrimSuffix(audio, ".wav")+".txt")
}

func TestWhisperCppCPUDevice(t *testing.T) {
	exec := &fakeWhisper{output: "hi"}
	engine, err := New(whisperConfig("cpu"), exec, logger.New("error"))
	require.NoError(t, err)

	_, err = engine.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav"), "en")
	require.NoError(t, err)
	assert.Contains(t, exec.args, "-ng")
}

func TestWhisperCppFailure(t *testing.T) {
	exec := &fakeWhisper{err: errors.New("model not found")}
	engine, err := New(whisperConfig("auto"), exec, logger.New("error"))
	require.NoError(t, err)

	_, err = engine.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav"), "en")
	assert.ErrorContains(t, err, "model not found")
}

func TestWhisperCppFailureRemovesPartialOutput(t *testing.T) {
	exec := &fakeWhisper{output: "Buongiorno a", err: errors.New("exit status 1")}
	engine, err := New(whisperConfig("auto"), exec, logger.New("error"))
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = engine.Transcribe(context.Background(), filepath.Join(dir, "chunk-001.wav"), "it")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "chunk-001.txt"))
}

func TestOpenAITranscribe(t *testing.T) {
	var gotLanguage, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotLanguage = r.FormValue("language")
		gotModel = r.FormValue("model")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"ciao a tutti"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Whisper: config.WhisperConfig{
		Backend: "openai",
		Model:   "large-v2",
		OpenAI:  config.OpenAIConfig{BaseURL: srv.URL + "/v1"},
	}}
	engine, err := New(cfg, nil, logger.New("error"))
	require.NoError(t, err)

	audio := filepath.Join(t.TempDir(), "a.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF"), 0644))

	text, err := engine.Transcribe(context.Background(), audio, "it")
	require.NoError(t, err)
	assert.Equal(t, "ciao a tutti", text)
	assert.Equal(t, "it", gotLanguage)
	assert.Equal(t, "large-v2", gotModel)
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(&config.Config{Whisper: config.WhisperConfig{Backend: "vosk"}}, nil, logger.New("error"))
	assert.Error(t, err)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
