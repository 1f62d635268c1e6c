// Package config loads careconsole settings from the environment, an optional
// .env file and command line flags.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	ReplyDelay   time.Duration
	NotifyTTL    time.Duration
	LogLevel     string
	LogFile      string
	TranscriptDB string
	AgentName    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real env vars win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ReplyDelay:   getEnvAsDuration("CARECONSOLE_REPLY_DELAY", time.Second),
		NotifyTTL:    getEnvAsDuration("CARECONSOLE_NOTIFY_TTL", 4*time.Second),
		LogLevel:     strings.ToLower(strings.TrimSpace(getEnv("CARECONSOLE_LOG_LEVEL", "info"))),
		LogFile:      getEnv("CARECONSOLE_LOG_FILE", DefaultLogPath()),
		TranscriptDB: getEnv("CARECONSOLE_TRANSCRIPT_DB", ""),
		AgentName:    getEnv("CARECONSOLE_AGENT", "Rep"),
	}
}

// RegisterFlags binds flags that override the loaded values.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.ReplyDelay, "reply-delay", c.ReplyDelay, "Delay before simulated assistant replies")
	fs.StringVar(&c.TranscriptDB, "transcript-db", c.TranscriptDB, "Read the transcript from a steno SQLite database")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file path")
}

// DefaultLogPath returns the log file location under the XDG state directory.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "careconsole", "careconsole.log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}
