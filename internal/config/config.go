package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	AssemblyAI  AssemblyAIConfig  `yaml:"assemblyai"`
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type AssemblyAIConfig struct {
	BaseURL         string        `yaml:"base_url" validate:"omitempty,url"`
	APIKey          string        `yaml:"api_key" validate:"required"`
	PollInterval    time.Duration `yaml:"poll_interval" validate:"gte=0"`
	MaxPollAttempts int           `yaml:"max_poll_attempts" validate:"gte=0"`
	HTTPTimeout     time.Duration `yaml:"http_timeout" validate:"gte=0"`
	SpeakerLabels   *bool         `yaml:"speaker_labels"`
	Summarization   bool          `yaml:"summarization"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	AudioCodec string `yaml:"audio_codec"`
	SampleRate int    `yaml:"sample_rate" validate:"gte=0"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
	Temp       string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" validate:"gte=0"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

var validate = newValidator()

// newValidator reports fields by their yaml key so errors match the file.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks required fields and fills in defaults for the rest
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s is invalid (%s)", fieldPath(verrs[0].Namespace()), verrs[0].Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}

	if c.AssemblyAI.BaseURL == "" {
		c.AssemblyAI.BaseURL = "https://api.assemblyai.com/v2"
	}
	if c.AssemblyAI.PollInterval == 0 {
		c.AssemblyAI.PollInterval = 5 * time.Second
	}
	if c.AssemblyAI.MaxPollAttempts == 0 {
		c.AssemblyAI.MaxPollAttempts = 60
	}
	if c.AssemblyAI.HTTPTimeout == 0 {
		c.AssemblyAI.HTTPTimeout = 60 * time.Second
	}
	if c.AssemblyAI.SpeakerLabels == nil {
		on := true
		c.AssemblyAI.SpeakerLabels = &on
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/voice-notes.db"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "pcm_s16le"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}

// fieldPath turns "Config.assemblyai.api_key" into "assemblyai.api_key"
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}
