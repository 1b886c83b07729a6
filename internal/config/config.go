package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
	PollInterval   time.Duration `yaml:"poll_interval"`

	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`

	DownloadDir string `yaml:"download_dir"`

	WebPort     string `yaml:"web_port"`
	MetricsPort string `yaml:"metrics_port"`
}

// Load reads configuration from an optional YAML file named by
// DOCBRIDGE_CONFIG, then applies environment overrides on top. Environment
// always wins.
func Load() (Config, error) {
	cfg := Config{
		BaseURL:        "http://localhost:8080",
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		PollInterval:   3 * time.Second,
		RateLimit:      0,
		RateBurst:      1,
		DownloadDir:    "./downloads",
		WebPort:        "3000",
		MetricsPort:    "9090",
	}

	if path := os.Getenv("DOCBRIDGE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.BaseURL = mustEnv("DOCBRIDGE_BASE_URL", cfg.BaseURL)
	cfg.LogLevel = mustEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeout = mustEnvDuration("DOCBRIDGE_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.PollInterval = mustEnvDuration("DOCBRIDGE_POLL_INTERVAL", cfg.PollInterval)
	cfg.RateLimit = mustEnvFloat("DOCBRIDGE_RATE_LIMIT", cfg.RateLimit)
	cfg.RateBurst = mustEnvInt("DOCBRIDGE_RATE_BURST", cfg.RateBurst)
	cfg.DownloadDir = mustEnv("DOCBRIDGE_DOWNLOAD_DIR", cfg.DownloadDir)
	cfg.WebPort = mustEnv("DOCBRIDGE_WEB_PORT", cfg.WebPort)
	cfg.MetricsPort = mustEnv("DOCBRIDGE_METRICS_PORT", cfg.MetricsPort)

	return cfg, nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
