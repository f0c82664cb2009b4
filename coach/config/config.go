package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr            = ":8000"
	DefaultLogDir          = "./logs"
	DefaultProviderBaseURL = "https://api.anthropic.com"
	DefaultRelayURL        = "http://localhost:8000"
)

var ErrMissingAPIKey = errors.New("CLAUDE_API_KEY is not set")

// Config is read once at process start. APIKey is the only value that must
// come from the environment; the rest may live in the optional YAML file.
type Config struct {
	APIKey          string `yaml:"-"`
	Addr            string `yaml:"addr"`
	LogDir          string `yaml:"log_dir"`
	ProviderBaseURL string `yaml:"provider_base_url"`
	StrictRoles     bool   `yaml:"strict_roles"`
	RelayURL        string `yaml:"relay_url"`
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments use plain environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Addr:            DefaultAddr,
		LogDir:          DefaultLogDir,
		ProviderBaseURL: DefaultProviderBaseURL,
		RelayURL:        DefaultRelayURL,
	}
	if path := getEnv("COACH_CONFIG", ""); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.APIKey = getEnv("CLAUDE_API_KEY", "")
	cfg.RelayURL = getEnv("COACH_RELAY_URL", cfg.RelayURL)
	return cfg, nil
}

// Validate checks what the relay server needs to start.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
