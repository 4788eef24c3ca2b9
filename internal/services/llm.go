package services

import (
	"context"
	"fmt"

	"rulecheck/pdf-rule-checker/internal/config"
)

// LLMProvider is one chat-completion call: prompt in, raw model text out.
type LLMProvider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sampling is fixed low so verdicts stay close to deterministic.
const (
	llmTemperature = 0.2
	llmMaxTokens   = 1000
)

// NewLLMProvider selects a provider from configuration. The provider is
// built once at startup and passed down explicitly; there is no shared
// client singleton.
func NewLLMProvider(cfg *config.Config) (LLMProvider, error) {
	switch cfg.LLM.Provider {
	case "openrouter", "openai":
		return NewOpenAIProvider(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
	case "gemini":
		return NewGeminiProvider(cfg.LLM.GeminiAPIKey, cfg.LLM.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
}
