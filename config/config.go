package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration
type Config struct {
	Port                string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	ShutdownTimeout     time.Duration
	AssessTimeout       time.Duration
	CollaboratorTimeout time.Duration
	MaxBodySize         int64

	// VirusTotalAPIKey enables reputation lookups when set
	VirusTotalAPIKey string
	// OpenAIAPIKey enables AI content classification when set
	OpenAIAPIKey string
	// OpenAIModel overrides the default classification model
	OpenAIModel string
	// HistoryPath is the SQLite file for assessment history; empty disables persistence
	HistoryPath string
	// AlertWebhookURL receives high-risk assessment alerts when set
	AlertWebhookURL string
}

// New creates a new configuration from environment variables
func New() *Config {
	return &Config{
		Port:                getEnv("SCAMDETECT_PORT", "8080"),
		ReadTimeout:         getDurationEnv("SCAMDETECT_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getDurationEnv("SCAMDETECT_WRITE_TIMEOUT", 90*time.Second),
		ShutdownTimeout:     getDurationEnv("SCAMDETECT_SHUTDOWN_TIMEOUT", 30*time.Second),
		AssessTimeout:       getDurationEnv("SCAMDETECT_ASSESS_TIMEOUT", 60*time.Second),
		CollaboratorTimeout: getDurationEnv("SCAMDETECT_COLLABORATOR_TIMEOUT", 10*time.Second),
		MaxBodySize:         getInt64Env("SCAMDETECT_MAX_BODY_SIZE", 100*1024), // 100KB
		VirusTotalAPIKey:    getEnv("SCAMDETECT_VIRUSTOTAL_API_KEY", ""),
		OpenAIAPIKey:        getEnv("SCAMDETECT_OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("SCAMDETECT_OPENAI_MODEL", ""),
		HistoryPath:         getEnv("SCAMDETECT_HISTORY_PATH", "assessments.db"),
		AlertWebhookURL:     getEnv("SCAMDETECT_ALERT_WEBHOOK_URL", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getInt64Env gets an int64 environment variable with a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
