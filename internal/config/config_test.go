package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "openai/gpt-4o", cfg.LLM.Model)
	assert.Equal(t, int64(10485760), cfg.Checker.MaxFileSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Checker.RuleDelay)
	assert.Equal(t, 20, cfg.Checker.MaxRules)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_MODEL", "openai/gpt-4o-mini")
	t.Setenv("RULE_DELAY", "1s")
	t.Setenv("MAX_RULES", "5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, time.Second, cfg.Checker.RuleDelay)
	assert.Equal(t, 5, cfg.Checker.MaxRules)
}

func TestValidate_MissingAPIKeyIsFatal(t *testing.T) {
	cfg := &Config{
		LLM:     LLMConfig{Provider: "openrouter"},
		Checker: CheckerConfig{MaxFileSize: 1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestValidate_GeminiNeedsOwnKey(t *testing.T) {
	cfg := &Config{
		LLM:     LLMConfig{Provider: "gemini", APIKey: "openrouter-key"},
		Checker: CheckerConfig{MaxFileSize: 1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{
		LLM:     LLMConfig{Provider: "oracle"},
		Checker: CheckerConfig{MaxFileSize: 1},
	}

	assert.Error(t, cfg.Validate())
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		LLM:     LLMConfig{Provider: "openrouter", APIKey: "key"},
		Checker: CheckerConfig{MaxFileSize: 10485760},
	}

	assert.NoError(t, cfg.Validate())
}
