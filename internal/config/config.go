// Package config provides configuration loading and validation for the
// analyzer server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultMaxUploadBytes caps resume uploads at 10 MB.
const DefaultMaxUploadBytes = 10 << 20

// Config holds all server and delivery settings. Every field can come from
// the environment; a JSON config file may supply defaults.
type Config struct {
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Upload
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"`

	// Email delivery (optional; email features are disabled when unset)
	SMTPHost       string `json:"smtp_host,omitempty"`
	SMTPPort       int    `json:"smtp_port,omitempty"`
	SenderEmail    string `json:"sender_email,omitempty"`
	SenderPassword string `json:"sender_password,omitempty"`
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() Config {
	cfg := Config{
		Port:           envInt("PORT", 8080),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)),
		SMTPHost:       getenvDefault("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:       envInt("SMTP_PORT", 587),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
	}
	return cfg
}

// LoadFile loads configuration defaults from a JSON file.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults fills zero-valued fields from defaults. Environment
// values win over config-file values.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.SMTPHost == "" {
		result.SMTPHost = defaults.SMTPHost
	}
	if result.SMTPPort == 0 {
		result.SMTPPort = defaults.SMTPPort
	}
	if result.SenderEmail == "" {
		result.SenderEmail = defaults.SenderEmail
	}
	if result.SenderPassword == "" {
		result.SenderPassword = defaults.SenderPassword
	}
	return result
}

// Validate checks the settings a running server requires.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: max upload size must be positive")
	}
	return nil
}

// EmailConfigured reports whether outgoing email is fully configured.
func (c Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort > 0 && c.SenderEmail != "" && c.SenderPassword != ""
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
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
