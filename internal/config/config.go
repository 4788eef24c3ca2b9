package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Checker CheckerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider     string
	APIKey       string
	BaseURL      string
	Model        string
	GeminiAPIKey string
}

type CheckerConfig struct {
	MaxFileSize int64
	RuleDelay   time.Duration
	MaxRules    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider:     getEnv("LLM_PROVIDER", "openrouter"),
			APIKey:       getEnv("OPENROUTER_API_KEY", ""),
			BaseURL:      getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:        getEnv("LLM_MODEL", "openai/gpt-4o"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Checker: CheckerConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			RuleDelay:   getEnvAsDuration("RULE_DELAY", "500ms"),
			MaxRules:    getEnvAsInt("MAX_RULES", 20),
		},
	}
}

// Validate rejects configurations the server must not start with. A missing
// provider key would make every check request fail, so it is fatal here.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openrouter", "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required")
		}
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER: %q", c.LLM.Provider)
	}

	if c.Checker.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}

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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
