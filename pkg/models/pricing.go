package models

// ModelRate defines the per-million-token LLM rate for a model.
type ModelRate struct {
	Model            string  `json:"model" yaml:"model"`
	PerMillionTokens float64 `json:"per_million_tokens" yaml:"per_million_tokens"`
}

// UsageRates defines the per-minute charges billed on every call minute.
type UsageRates struct {
	TelephonyPerMinute    float64 `json:"telephony_per_minute" yaml:"telephony_per_minute"`
	SpeechToTextPerMinute float64 `json:"stt_per_minute" yaml:"stt_per_minute"`
	TextToSpeechPerMinute float64 `json:"tts_per_minute" yaml:"tts_per_minute"`
}
