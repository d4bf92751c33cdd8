package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid config",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret"},
			},
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: "assemblyai.api_key",
		},
		{
			name: "bad base url",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret", BaseURL: "not a url"},
			},
			wantErr: "assemblyai.base_url",
		},
		{
			name: "negative poll attempts",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret", MaxPollAttempts: -1},
			},
			wantErr: "assemblyai.max_poll_attempts",
		},
		{
			name: "negative http timeout",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret", HTTPTimeout: -time.Second},
			},
			wantErr: "assemblyai.http_timeout",
		},
		{
			name: "negative ffmpeg sample rate",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret"},
				FFmpeg:     FFmpegConfig{SampleRate: -1},
			},
			wantErr: "ffmpeg.sample_rate",
		},
		{
			name: "unknown log format",
			config: Config{
				AssemblyAI: AssemblyAIConfig{APIKey: "secret"},
				Logging:    LoggingConfig{Format: "xml"},
			},
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{AssemblyAI: AssemblyAIConfig{APIKey: "secret"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.AssemblyAI.BaseURL != "https://api.assemblyai.com/v2" {
		t.Errorf("BaseURL = %v", cfg.AssemblyAI.BaseURL)
	}
	if cfg.AssemblyAI.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.AssemblyAI.PollInterval)
	}
	if cfg.AssemblyAI.MaxPollAttempts != 60 {
		t.Errorf("MaxPollAttempts = %v, want 60", cfg.AssemblyAI.MaxPollAttempts)
	}
	if cfg.AssemblyAI.SpeakerLabels == nil || !*cfg.AssemblyAI.SpeakerLabels {
		t.Error("SpeakerLabels should default to true")
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Temp = %v", cfg.Paths.Temp)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v", cfg.Gemini.Model)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAssemblyAIKey, "")
	t.Setenv(EnvGeminiKeys, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
assemblyai:
  api_key: "from-file"
  poll_interval: 2s
  max_poll_attempts: 10
  speaker_labels: false

paths:
  input: "data/in"
  output: "data/out"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AssemblyAI.APIKey != "from-file" {
		t.Errorf("APIKey = %v, want from-file", cfg.AssemblyAI.APIKey)
	}
	if cfg.AssemblyAI.PollInterval != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.AssemblyAI.PollInterval)
	}
	if cfg.AssemblyAI.MaxPollAttempts != 10 {
		t.Errorf("MaxPollAttempts = %v, want 10", cfg.AssemblyAI.MaxPollAttempts)
	}
	if *cfg.AssemblyAI.SpeakerLabels {
		t.Error("SpeakerLabels should stay false when set explicitly")
	}
	if cfg.Paths.Input != "data/in" {
		t.Errorf("Input = %v, want data/in", cfg.Paths.Input)
	}
}

func TestLoadEnvOverridesCredentials(t *testing.T) {
	t.Setenv(EnvAssemblyAIKey, "from-env")
	t.Setenv(EnvGeminiKeys, "k1, k2,,")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("assemblyai:\n  api_key: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AssemblyAI.APIKey != "from-env" {
		t.Errorf("APIKey = %v, want from-env", cfg.AssemblyAI.APIKey)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "k2" {
		t.Errorf("APIKeys = %v, want [k1 k2]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvAssemblyAIKey, "")
	os.Unsetenv(EnvAssemblyAIKey)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvAssemblyAIKey+"=dotenv-key\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv(EnvAssemblyAIKey); got != "dotenv-key" {
		t.Errorf("%s = %q, want dotenv-key", EnvAssemblyAIKey, got)
	}
}

func TestFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.assemblyai.base_url":     "assemblyai.base_url",
		"Config.assemblyai.http_timeout": "assemblyai.http_timeout",
		"api_key":                        "api_key",
	}
	for in, want := range tests {
		if got := fieldPath(in); got != want {
			t.Errorf("fieldPath(%q) = %q, want %q", in, got, want)
		}
	}
}
