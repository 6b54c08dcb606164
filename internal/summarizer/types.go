package summarizer

import "errors"

// ErrEmptyInput is returned when a transcript segment is empty or
// whitespace-only. The session state is untouched and no model call is made.
var ErrEmptyInput = errors.New("empty transcript segment")

// UsageReport is the per-call token accounting returned to the client.
// It is produced fresh on every call and never stored.
type UsageReport struct {
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	Currency         string  `json:"currency"`
}

// Result is a successful summarization outcome: the new accumulated
// minute text plus the usage of the call that produced it.
type Result struct {
	Summary string       `json:"summary"`
	Usage   *UsageReport `json:"usage,omitempty"`
}
