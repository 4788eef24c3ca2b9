package services

import "fmt"

// documentPrefixLength bounds how much of the document is embedded in a
// prompt so a large PDF cannot blow the provider's context window.
const documentPrefixLength = 2000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRuleCheckPrompt creates the prompt for checking one rule against the
// extracted document text. The response contract is spelled out literally:
// the model must answer with a single JSON object and nothing else.
func (pb *PromptBuilder) BuildRuleCheckPrompt(rule, documentText string) string {
	return fmt.Sprintf(`You are checking a PDF document based on a rule.

PDF Text (first %d chars):
%s

Rule to check:
%s

Respond ONLY with a JSON object in this format:
{
  "status": "pass" or "fail" or "inconclusive",
  "evidence": "Relevant text from the PDF",
  "reasoning": "Brief explanation of why the rule passed/failed",
  "confidence": 0-100
}`, documentPrefixLength, truncate(documentText, documentPrefixLength), rule)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
