// Package estimator implements the monthly call cost model and the range
// checks applied to its inputs before a computation.
package estimator

import (
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the rounding precision of every monetary amount.
const moneyPlaces = 2

var oneMillion = decimal.NewFromInt(1_000_000)

// Compute derives the monthly cost breakdown for in. It is pure and never
// fails for in-contract input; a model missing from table panics.
//
// Each component is rounded before summing, so TotalCost always equals the
// sum of the displayed components.
func Compute(table *pricing.Table, in models.EstimateInput) models.EstimateResult {
	rate := table.MustRate(in.Model)

	calls := decimal.NewFromInt(in.CallsPerMonth)
	totalMinutes := calls.Mul(decimal.NewFromFloat(in.CallDurationMinutes))

	millions := calls.Mul(decimal.NewFromFloat(in.TokensPerCall)).Div(oneMillion)
	llm := millions.Mul(rate).Round(moneyPlaces)
	telephony := totalMinutes.Mul(table.TelephonyPerMinute()).Round(moneyPlaces)
	stt := totalMinutes.Mul(table.SpeechToTextPerMinute()).Round(moneyPlaces)
	tts := totalMinutes.Mul(table.TextToSpeechPerMinute()).Round(moneyPlaces)
	infra := decimal.NewFromFloat(in.PlatformCost).Round(moneyPlaces)

	total := decimal.Sum(llm, telephony, stt, tts, infra).Round(moneyPlaces)

	perCall := decimal.Zero
	if in.CallsPerMonth != 0 {
		perCall = total.Div(calls).Round(moneyPlaces)
	}

	return models.EstimateResult{
		Model:                in.Model,
		Rate:                 rate,
		TotalMinutes:         totalMinutes,
		LLMCost:              llm,
		InboundTelephonyCost: telephony,
		SpeechToTextCost:     stt,
		TextToSpeechCost:     tts,
		InfraCost:            infra,
		TotalCost:            total,
		CostPerCall:          perCall,
	}
}
