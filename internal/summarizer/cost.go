package summarizer

import "github.com/scribehq/scribe-backend/internal/providers"

// Pricing holds the USD price per million tokens for each direction.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// DefaultPricing matches the published Gemini 1.5 Flash rates.
var DefaultPricing = Pricing{
	InputPerMillion:  0.075,
	OutputPerMillion: 0.30,
}

// Cost converts token counts to a monetary estimate.
func (p Pricing) Cost(inputTokens, outputTokens int) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * p.InputPerMillion
	outputCost := float64(outputTokens) / 1_000_000 * p.OutputPerMillion
	return inputCost + outputCost
}

// Report builds a UsageReport from gateway usage metadata. A zeroed
// metadata value (absent in the response) yields a zero-cost report.
func (p Pricing) Report(u providers.Usage) UsageReport {
	return UsageReport{
		InputTokens:      u.InputTokens,
		OutputTokens:     u.OutputTokens,
		TotalTokens:      u.TotalTokens,
		EstimatedCostUSD: p.Cost(u.InputTokens, u.OutputTokens),
		Currency:         "USD",
	}
}
