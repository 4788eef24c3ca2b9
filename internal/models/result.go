package models

// RuleStatus is the verdict for a single rule.
type RuleStatus string

const (
	StatusPass         RuleStatus = "pass"
	StatusFail         RuleStatus = "fail"
	StatusInconclusive RuleStatus = "inconclusive"
	StatusError        RuleStatus = "error"
)

// EvaluationResult is the verdict for one submitted rule. A check response
// carries exactly one of these per rule, in input order.
type EvaluationResult struct {
	Rule       string     `json:"rule"`
	Status     RuleStatus `json:"status"`
	Evidence   string     `json:"evidence"`
	Reasoning  string     `json:"reasoning"`
	Confidence int        `json:"confidence"`
}

type CheckResponse struct {
	Success bool               `json:"success"`
	Results []EvaluationResult `json:"results"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
