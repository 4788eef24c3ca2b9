package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"rulecheck/pdf-rule-checker/internal/models"
)

type RuleEvaluator interface {
	Evaluate(ctx context.Context, rule, documentText string) models.EvaluationResult
}

type ruleEvaluator struct {
	provider      LLMProvider
	promptBuilder *PromptBuilder
}

func NewRuleEvaluator(provider LLMProvider) RuleEvaluator {
	return &ruleEvaluator{
		provider:      provider,
		promptBuilder: NewPromptBuilder(),
	}
}

const defaultReasoning = "No reasoning provided"

// ruleVerdict is the raw shape expected back from the model. Confidence is
// untyped because models sometimes return it as a string or omit it.
type ruleVerdict struct {
	Status     string `json:"status"`
	Evidence   string `json:"evidence"`
	Reasoning  string `json:"reasoning"`
	Confidence any    `json:"confidence"`
}

// Evaluate checks one rule against the document text. It never fails
// outward: every failure path becomes a status "error" result, with the
// diagnostic surfaced only through the reasoning field.
func (e *ruleEvaluator) Evaluate(ctx context.Context, rule, documentText string) models.EvaluationResult {
	prompt := e.promptBuilder.BuildRuleCheckPrompt(rule, documentText)

	response, err := e.provider.Complete(ctx, prompt)
	if err != nil {
		log.Printf("❌ LLM call failed for rule %q: %v", rule, err)
		return errorResult(rule, fmt.Sprintf("Processing error: %v", err))
	}

	verdict, err := parseRuleVerdict(response)
	if err != nil {
		log.Printf("❌ Invalid LLM response for rule %q: %v", rule, err)
		return errorResult(rule, fmt.Sprintf("Processing error: %v", err))
	}

	return models.EvaluationResult{
		Rule:       rule,
		Status:     models.RuleStatus(verdict.Status),
		Evidence:   verdict.Evidence,
		Reasoning:  reasoningOrDefault(verdict.Reasoning),
		Confidence: clampConfidence(verdict.Confidence),
	}
}

// parseRuleVerdict parses and validates untrusted model output. It returns
// either a verdict with a whitelisted status or a diagnostic error; the raw
// offending text is captured in the error message for unparseable input.
func parseRuleVerdict(response string) (*ruleVerdict, error) {
	var verdict ruleVerdict
	if err := json.Unmarshal([]byte(extractJSON(response)), &verdict); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %s", response)
	}

	switch models.RuleStatus(verdict.Status) {
	case models.StatusPass, models.StatusFail, models.StatusInconclusive:
	default:
		return nil, fmt.Errorf("invalid status: %q", verdict.Status)
	}

	return &verdict, nil
}

// extractJSON pulls a JSON object out of text the model may have wrapped
// in markdown fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

func reasoningOrDefault(reasoning string) string {
	if strings.TrimSpace(reasoning) == "" {
		return defaultReasoning
	}
	return reasoning
}

// clampConfidence coerces the model-reported confidence to an integer in
// [0, 100]. Missing or non-numeric values count as zero.
func clampConfidence(value any) int {
	var confidence float64

	switch v := value.(type) {
	case float64:
		confidence = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		confidence = parsed
	default:
		return 0
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return int(confidence)
}

func errorResult(rule, reasoning string) models.EvaluationResult {
	return models.EvaluationResult{
		Rule:       rule,
		Status:     models.StatusError,
		Evidence:   "",
		Reasoning:  reasoning,
		Confidence: 0,
	}
}
