package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribehq/scribe-backend/internal/providers"
)

func TestCost_Linear(t *testing.T) {
	p := Pricing{InputPerMillion: 0.075, OutputPerMillion: 0.30}

	assert.InDelta(t, 0.075, p.Cost(1_000_000, 0), 1e-12)
	assert.InDelta(t, 0.30, p.Cost(0, 1_000_000), 1e-12)
	assert.InDelta(t, 0, p.Cost(0, 0), 1e-12)
	assert.InDelta(t, 0.375, p.Cost(1_000_000, 1_000_000), 1e-12)
}

func TestCost_SampleCall(t *testing.T) {
	// 100 input + 50 output tokens at the default rates
	assert.InDelta(t, 0.0000225, DefaultPricing.Cost(100, 50), 1e-12)
}

func TestReport_MissingUsageIsZeroed(t *testing.T) {
	report := DefaultPricing.Report(providers.Usage{})

	assert.Equal(t, 0, report.InputTokens)
	assert.Equal(t, 0, report.OutputTokens)
	assert.Equal(t, 0, report.TotalTokens)
	assert.Equal(t, float64(0), report.EstimatedCostUSD)
	assert.Equal(t, "USD", report.Currency)
}

func TestReport_CarriesTokenCounts(t *testing.T) {
	report := DefaultPricing.Report(providers.Usage{
		InputTokens:  100,
		OutputTokens: 50,
		TotalTokens:  150,
	})

	assert.Equal(t, 150, report.TotalTokens)
	assert.InDelta(t, 0.0000225, report.EstimatedCostUSD, 1e-12)
}
