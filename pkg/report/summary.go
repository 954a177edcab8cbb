package report

import "github.com/quibble-ai/callcost/pkg/models"

// SummaryComponent is one cost line of a Summary.
type SummaryComponent struct {
	Key     models.ComponentKey `json:"key"`
	Label   string              `json:"label"`
	Amount  string              `json:"amount"`
	Percent float64             `json:"percent"`
}

// Summary is the machine-readable form of an estimate. Money fields are
// strings with exactly two decimals so they match the text report.
type Summary struct {
	Input                models.EstimateInput `json:"input"`
	RatePerMillionTokens string               `json:"rate_per_million_tokens"`
	TotalMinutes         string               `json:"total_minutes"`
	LLMCost              string               `json:"llm_cost"`
	InboundTelephonyCost string               `json:"inbound_telephony_cost"`
	STTCost              string               `json:"stt_cost"`
	TTSCost              string               `json:"tts_cost"`
	InfraCost            string               `json:"infra_cost"`
	TotalCost            string               `json:"total_cost"`
	CostPerCall          string               `json:"cost_per_call"`
	Components           []SummaryComponent   `json:"components"`
}

// NewSummary projects an estimate into a Summary.
func NewSummary(in models.EstimateInput, res models.EstimateResult) Summary {
	shares := make(map[models.ComponentKey]float64)
	for _, s := range Slices(res) {
		shares[s.Key] = s.Percent
	}
	var components []SummaryComponent
	for _, c := range res.Components() {
		components = append(components, SummaryComponent{
			Key:     c.Key,
			Label:   c.Label,
			Amount:  Money(c.Amount),
			Percent: shares[c.Key],
		})
	}
	return Summary{
		Input:                in,
		RatePerMillionTokens: res.Rate.String(),
		TotalMinutes:         res.TotalMinutes.String(),
		LLMCost:              Money(res.LLMCost),
		InboundTelephonyCost: Money(res.InboundTelephonyCost),
		STTCost:              Money(res.SpeechToTextCost),
		TTSCost:              Money(res.TextToSpeechCost),
		InfraCost:            Money(res.InfraCost),
		TotalCost:            Money(res.TotalCost),
		CostPerCall:          Money(res.CostPerCall),
		Components:           components,
	}
}
