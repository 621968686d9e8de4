package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. The user's OpenAI key is
// never part of it; that arrives per request.
type Config struct {
	Port           int    `yaml:"port"`
	OpenAIBaseURL  string `yaml:"openai_base_url"`
	RequestTimeout int    `yaml:"request_timeout"`
	MaxTextLength  int    `yaml:"max_text_length"`
	APIKey         string `yaml:"api_key"`
	LogLevel       string `yaml:"log_level"`
}

func defaults() Config {
	return Config{
		Port:           8090,
		OpenAIBaseURL:  "https://api.openai.com/v1",
		RequestTimeout: 60,
		MaxTextLength:  100000,
		LogLevel:       "info",
	}
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies TEKOSU_* environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := intFromEnv("TEKOSU_PORT", &cfg.Port); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("TEKOSU_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if err := intFromEnv("TEKOSU_REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	if err := intFromEnv("TEKOSU_MAX_TEXT_LENGTH", &cfg.MaxTextLength); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("TEKOSU_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TEKOSU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("config: request_timeout must be positive, got %d", cfg.RequestTimeout)
	}
	if cfg.MaxTextLength <= 0 {
		return Config{}, fmt.Errorf("config: max_text_length must be positive, got %d", cfg.MaxTextLength)
	}

	return cfg, nil
}

// Timeout is RequestTimeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func intFromEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
