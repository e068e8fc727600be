package config

import (
	"fmt"
	"time"
)

// Summary failure policies.
const (
	SummaryFailurePolicyFail = "fail"
	SummaryFailurePolicyWarn = "warn_and_continue"
)

// Transcription failure policies.
const (
	TranscriptionFailureAbort   = "abort"
	TranscriptionFailurePartial = "partial"
)

const DefaultSummaryInstruction = "Your goal is to summarize the text given to you. It is from a meeting between one or more people. " +
	"Only output the summary without any additional text. Focus on providing a summary in freeform text with what people said " +
	"and the action items coming out of it. Summarize the text also using bullet points."

type Config struct {
	Whisper       WhisperConfig       `yaml:"whisper"`
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Output        OutputConfig        `yaml:"output"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type WhisperConfig struct {
	Backend    string       `yaml:"backend"` // cpp | openai
	BinaryPath string       `yaml:"binary_path"`
	ModelPath  string       `yaml:"model_path"`
	Model      string       `yaml:"model"`
	Device     string       `yaml:"device"` // auto | gpu | cpu
	Language   string       `yaml:"language"`
	Prompt     string       `yaml:"prompt"`
	Threads    int          `yaml:"threads"`
	OpenAI     OpenAIConfig `yaml:"openai"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type AudioConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	ChunkMS     int    `yaml:"chunk_ms"`
	Probe       string `yaml:"probe"` // auto | ffprobe | native
}

type TranscriptionConfig struct {
	OnFailure string `yaml:"on_failure"`
	Retries   int    `yaml:"retries"`
}

type SummaryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Provider    string        `yaml:"provider"` // ollama | gemini
	Endpoint    string        `yaml:"endpoint"`
	Model       string        `yaml:"model"`
	KeepAlive   string        `yaml:"keep_alive"`
	Timeout     time.Duration `yaml:"timeout"`
	Instruction string        `yaml:"instruction"`
	OnFailure   string        `yaml:"on_failure"`
	Gemini      GeminiConfig  `yaml:"gemini"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	BaseURL string   `yaml:"base_url"` // empty uses the public Gemini API
	APIKeys []string `yaml:"api_keys"`
}

type OutputConfig struct {
	Dir          string `yaml:"dir"`
	Docx         bool   `yaml:"docx"`
	SummaryStyle string `yaml:"summary_style"` // paragraph | markdown
}

type PathsConfig struct {
	Input string `yaml:"input"`
	Temp  string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// ChunkSize returns the configured chunk duration.
func (c *Config) ChunkSize() time.Duration {
	return time.Duration(c.Audio.ChunkMS) * time.Millisecond
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Whisper.Backend == "" {
		c.Whisper.Backend = "cpp"
	}
	switch c.Whisper.Backend {
	case "cpp":
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	case "openai":
		if c.Whisper.OpenAI.BaseURL == "" && c.Whisper.OpenAI.APIKey == "" {
			return fmt.Errorf("whisper.openai.base_url or whisper.openai.api_key is required")
		}
	default:
		return fmt.Errorf("whisper.backend must be cpp or openai, got %q", c.Whisper.Backend)
	}
	if c.Whisper.Language == "" {
		return fmt.Errorf("whisper.language is required")
	}
	if c.Whisper.Device == "" {
		c.Whisper.Device = "auto"
	}
	switch c.Whisper.Device {
	case "auto", "gpu", "cpu":
	default:
		return fmt.Errorf("whisper.device must be auto, gpu or cpu, got %q", c.Whisper.Device)
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "large-v2"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.Audio.ChunkMS < 0 {
		return fmt.Errorf("audio.chunk_ms must be positive")
	}
	if c.Audio.ChunkMS == 0 {
		c.Audio.ChunkMS = 10 * 60 * 1000
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.FFprobePath == "" {
		c.Audio.FFprobePath = "ffprobe"
	}
	if c.Audio.Probe == "" {
		c.Audio.Probe = "auto"
	}

	if c.Transcription.OnFailure == "" {
		c.Transcription.OnFailure = TranscriptionFailureAbort
	}
	if c.Transcription.OnFailure != TranscriptionFailureAbort && c.Transcription.OnFailure != TranscriptionFailurePartial {
		return fmt.Errorf("transcription.on_failure must be abort or partial, got %q", c.Transcription.OnFailure)
	}
	if c.Transcription.Retries < 0 {
		return fmt.Errorf("transcription.retries must not be negative")
	}

	if c.Summary.Provider == "" {
		c.Summary.Provider = "ollama"
	}
	if c.Summary.Provider != "ollama" && c.Summary.Provider != "gemini" {
		return fmt.Errorf("summary.provider must be ollama or gemini, got %q", c.Summary.Provider)
	}
	if c.Summary.Endpoint == "" {
		c.Summary.Endpoint = "http://localhost:11434/api/generate"
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "llama3"
	}
	if c.Summary.KeepAlive == "" {
		c.Summary.KeepAlive = "1m"
	}
	if c.Summary.Timeout < 0 {
		return fmt.Errorf("summary.timeout must not be negative")
	}
	if c.Summary.Timeout == 0 {
		c.Summary.Timeout = 5 * time.Minute
	}
	if c.Summary.Instruction == "" {
		c.Summary.Instruction = DefaultSummaryInstruction
	}
	if c.Summary.OnFailure == "" {
		c.Summary.OnFailure = SummaryFailurePolicyFail
	}
	if c.Summary.OnFailure != SummaryFailurePolicyFail && c.Summary.OnFailure != SummaryFailurePolicyWarn {
		return fmt.Errorf("summary.on_failure must be fail or warn_and_continue, got %q", c.Summary.OnFailure)
	}
	if c.Summary.Gemini.Model == "" {
		c.Summary.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.Enabled && c.Summary.Provider == "gemini" && len(c.Summary.Gemini.APIKeys) == 0 {
		return fmt.Errorf("summary.gemini.api_keys is required for the gemini provider")
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.SummaryStyle == "" {
		c.Output.SummaryStyle = "paragraph"
	}
	if c.Output.SummaryStyle != "paragraph" && c.Output.SummaryStyle != "markdown" {
		return fmt.Errorf("output.summary_style must be paragraph or markdown, got %q", c.Output.SummaryStyle)
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
