package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rule is one entry of the submitted rules array. Entries that were not
// JSON strings are kept rather than dropped, marked invalid with Text set
// to the raw JSON token, so the pipeline can report them in place.
type Rule struct {
	Text  string
	Valid bool
}

// ParseRules decodes the rules form field, a JSON array with at least one
// entry. Non-string entries survive parsing as invalid rules.
func ParseRules(raw string) ([]Rule, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("no rules provided")
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("rules must be a JSON array: %v", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no rules provided")
	}

	rules := make([]Rule, 0, len(entries))
	for _, entry := range entries {
		token := strings.TrimSpace(string(entry))

		// Unmarshal leaves the target untouched for a JSON null, so the
		// string decode below would silently accept it as a valid rule.
		if token == "null" {
			rules = append(rules, Rule{})
			continue
		}

		var text string
		if err := json.Unmarshal(entry, &text); err == nil {
			rules = append(rules, Rule{Text: text, Valid: true})
			continue
		}

		rules = append(rules, Rule{Text: token})
	}

	return rules, nil
}
