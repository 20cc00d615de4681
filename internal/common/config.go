package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel controls the slog handler level (debug, info, warn, error).
	LogLevel string
	// OutputSubdir is the directory name created under the input directory
	// when no explicit output directory is given.
	OutputSubdir string
	// PromptPreviewLen caps the prompt excerpt echoed to the log.
	PromptPreviewLen int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		LogLevel:         getEnv("PLANMERGE_LOG_LEVEL", "info"),
		OutputSubdir:     getEnv("PLANMERGE_OUTPUT_SUBDIR", "integrated"),
		PromptPreviewLen: getEnvAsInt("PLANMERGE_PROMPT_PREVIEW_LEN", 50),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
