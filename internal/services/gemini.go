package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider backed by the Gemini API.
func NewGeminiProvider(apiKey, model string) (LLMProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	// Slash-prefixed names are OpenRouter identifiers, not Gemini models.
	if model == "" || strings.Contains(model, "/") {
		model = "gemini-2.5-flash"
	}

	return &geminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (g *geminiProvider) Name() string {
	return "gemini"
}

// Complete implements LLMProvider.
func (g *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float32(llmTemperature)
	generateConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  llmMaxTokens,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
