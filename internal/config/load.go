package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies .env and environment overrides,
// then validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OLLAMA_ENDPOINT"); v != "" {
		cfg.Summary.Endpoint = v
	}
	if v := os.Getenv("SUMMARY_MODEL"); v != "" {
		cfg.Summary.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		cfg.Summary.Gemini.APIKeys = splitList(v)
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Whisper.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Whisper.OpenAI.BaseURL = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
