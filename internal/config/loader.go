package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAssemblyAIKey = "ASSEMBLYAI_API_KEY"
	EnvGeminiKeys    = "GEMINI_API_KEYS"
)

// Load reads the YAML file at path, overlays credentials from the environment
// and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv loads KEY=value pairs from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(EnvAssemblyAIKey)); key != "" {
		cfg.AssemblyAI.APIKey = key
	}
	if raw := strings.TrimSpace(os.Getenv(EnvGeminiKeys)); raw != "" {
		var keys []string
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.Gemini.APIKeys = keys
	}
}
