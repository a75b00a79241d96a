package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	YouTube    YouTubeConfig
	OpenAI     OpenAIConfig
	Transcript TranscriptConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
	// RequestTimeout bounds reads and writes at the transport layer. The
	// analyze endpoint waits on slow upstreams, so this is deliberately
	// generous and independent of the analyzer's own timeout.
	RequestTimeout time.Duration
}

// RedisConfig holds Redis configuration. Redis is optional: when Addr is
// empty the visitor counter falls back to an in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// YouTubeConfig holds the Data API credential. An empty key is not an
// error; metadata lookups degrade to deterministic fallback values.
type YouTubeConfig struct {
	APIKey string
	// Endpoint overrides the API base URL, used by tests.
	Endpoint string
}

// OpenAIConfig holds the text-generation service configuration
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
}

// TranscriptConfig holds the transcript source configuration
type TranscriptConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	// RetryInterval is the wait after the first failed attempt; it
	// doubles on each further attempt.
	RetryInterval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", "60s"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		YouTube: YouTubeConfig{
			APIKey:   getEnv("YOUTUBE_API_KEY", ""),
			Endpoint: getEnv("YOUTUBE_API_ENDPOINT", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4"),
			Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.3),
			MaxTokens:   int64(getEnvAsInt("OPENAI_MAX_TOKENS", 1000)),
			Timeout:     getEnvAsDuration("ANALYSIS_TIMEOUT", "30s"),
		},
		Transcript: TranscriptConfig{
			BaseURL:       getEnv("TRANSCRIPT_API_URL", "https://yt-transcript-api.fly.dev"),
			Timeout:       getEnvAsDuration("TRANSCRIPT_TIMEOUT", "10s"),
			MaxAttempts:   getEnvAsInt("TRANSCRIPT_MAX_ATTEMPTS", 3),
			RetryInterval: getEnvAsDuration("TRANSCRIPT_RETRY_INTERVAL", "2s"),
		},
	}

	return config, nil
}

// GetRedisEnabled reports whether a Redis address was configured
func (c *Config) GetRedisEnabled() bool {
	return c.Redis.Addr != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
