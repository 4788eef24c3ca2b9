package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rulecheck/pdf-rule-checker/internal/models"
)

type EvaluationPipeline interface {
	EvaluateAll(ctx context.Context, documentText string, rules []models.Rule) ([]models.EvaluationResult, error)
}

type evaluationPipeline struct {
	evaluator RuleEvaluator
	interval  time.Duration
}

func NewEvaluationPipeline(evaluator RuleEvaluator, interval time.Duration) EvaluationPipeline {
	return &evaluationPipeline{
		evaluator: evaluator,
		interval:  interval,
	}
}

// EvaluateAll runs every rule through the evaluator, one at a time, in
// input order. The returned list always has exactly one entry per rule: a
// failing rule becomes an error entry instead of aborting the batch.
func (p *evaluationPipeline) EvaluateAll(ctx context.Context, documentText string, rules []models.Rule) ([]models.EvaluationResult, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules provided", models.ErrInput)
	}

	// A fresh pacer per batch: calls within one request are spaced out to
	// stay under the provider's rate limits.
	pacer := NewIntervalPacer(p.interval)
	results := make([]models.EvaluationResult, 0, len(rules))

	for _, rule := range rules {
		// Malformed rules are rejected inline without an LLM call and
		// without consuming the pacing interval.
		if !rule.Valid || strings.TrimSpace(rule.Text) == "" {
			results = append(results, errorResult(rule.Text, "Invalid rule format"))
			continue
		}

		if err := pacer.Wait(ctx); err != nil {
			results = append(results, errorResult(rule.Text, fmt.Sprintf("Processing error: %v", err)))
			continue
		}

		results = append(results, p.safeEvaluate(ctx, rule.Text, documentText))
	}

	return results, nil
}

// safeEvaluate guards against a panicking evaluator so one rule cannot
// take down the whole batch.
func (p *evaluationPipeline) safeEvaluate(ctx context.Context, rule, documentText string) (result models.EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Unexpected panic evaluating rule %q: %v", rule, r)
			result = errorResult(rule, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	return p.evaluator.Evaluate(ctx, rule, documentText)
}
