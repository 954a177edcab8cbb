package models

import "github.com/shopspring/decimal"

// EstimateInput is one snapshot of the estimator's inputs.
type EstimateInput struct {
	CallDurationMinutes float64 `json:"call_duration_minutes" yaml:"call_duration_minutes"`
	CallsPerMonth       int64   `json:"calls_per_month" yaml:"calls_per_month"`
	TokensPerCall       float64 `json:"tokens_per_call" yaml:"tokens_per_call"`
	Model               string  `json:"model" yaml:"model"`
	PlatformCost        float64 `json:"platform_cost" yaml:"platform_cost"`
}

// ComponentKey identifies one line of the monthly cost breakdown.
type ComponentKey string

const (
	ComponentLLM       ComponentKey = "llm"
	ComponentTelephony ComponentKey = "inbound_telephony"
	ComponentSTT       ComponentKey = "stt"
	ComponentTTS       ComponentKey = "tts"
	ComponentInfra     ComponentKey = "infra"
)

// Component is a single labelled cost amount.
type Component struct {
	Key    ComponentKey    `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// EstimateResult is the monthly cost breakdown derived from an EstimateInput.
// All monetary amounts are rounded to two decimal places.
type EstimateResult struct {
	Model                string          `json:"model"`
	Rate                 decimal.Decimal `json:"rate_per_million_tokens"`
	TotalMinutes         decimal.Decimal `json:"total_minutes"`
	LLMCost              decimal.Decimal `json:"llm_cost"`
	InboundTelephonyCost decimal.Decimal `json:"inbound_telephony_cost"`
	SpeechToTextCost     decimal.Decimal `json:"stt_cost"`
	TextToSpeechCost     decimal.Decimal `json:"tts_cost"`
	InfraCost            decimal.Decimal `json:"infra_cost"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	CostPerCall          decimal.Decimal `json:"cost_per_call"`
}

// Components returns the five cost components in display order.
func (r EstimateResult) Components() []Component {
	return []Component{
		{Key: ComponentLLM, Label: "LLM", Amount: r.LLMCost},
		{Key: ComponentTelephony, Label: "Telephony (Inbound)", Amount: r.InboundTelephonyCost},
		{Key: ComponentSTT, Label: "STT", Amount: r.SpeechToTextCost},
		{Key: ComponentTTS, Label: "TTS", Amount: r.TextToSpeechCost},
		{Key: ComponentInfra, Label: "Infra", Amount: r.InfraCost},
	}
}
