// Package pricing holds the static rate table the cost model is priced from.
package pricing

import (
	"errors"
	"fmt"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultModels is the built-in LLM rate table, in display order.
var DefaultModels = []models.ModelRate{
	{Model: "GPT-4.1", PerMillionTokens: 0.06},
	{Model: "GPT-4o", PerMillionTokens: 0.07},
	{Model: "GPT-4o (latest)", PerMillionTokens: 0.14},
}

// DefaultUsage is the built-in per-minute rate set.
var DefaultUsage = models.UsageRates{
	TelephonyPerMinute:    0.008,
	SpeechToTextPerMinute: 0.01,
	TextToSpeechPerMinute: 0.0108,
}

var (
	// ErrEmptyTable is returned when a table has no models.
	ErrEmptyTable = errors.New("pricing table has no models")
	// ErrDuplicateModel is returned when a model is listed twice.
	ErrDuplicateModel = errors.New("duplicate model")
	// ErrNegativeRate is returned for rates below zero.
	ErrNegativeRate = errors.New("negative rate")
)

// Table maps model names to per-million-token rates and carries the
// per-minute usage rates. It is read-only after construction.
type Table struct {
	order []string
	rates map[string]decimal.Decimal

	telephony decimal.Decimal
	stt       decimal.Decimal
	tts       decimal.Decimal
}

// New builds a Table. Model order is preserved for display.
func New(rates []models.ModelRate, usage models.UsageRates) (*Table, error) {
	if len(rates) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		order: make([]string, 0, len(rates)),
		rates: make(map[string]decimal.Decimal, len(rates)),
	}
	for _, r := range rates {
		if _, dup := t.rates[r.Model]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModel, r.Model)
		}
		if r.PerMillionTokens < 0 {
			return nil, fmt.Errorf("%w: model %q", ErrNegativeRate, r.Model)
		}
		t.order = append(t.order, r.Model)
		t.rates[r.Model] = decimal.NewFromFloat(r.PerMillionTokens)
	}
	for name, v := range map[string]float64{
		"telephony_per_minute": usage.TelephonyPerMinute,
		"stt_per_minute":       usage.SpeechToTextPerMinute,
		"tts_per_minute":       usage.TextToSpeechPerMinute,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeRate, name)
		}
	}
	t.telephony = decimal.NewFromFloat(usage.TelephonyPerMinute)
	t.stt = decimal.NewFromFloat(usage.SpeechToTextPerMinute)
	t.tts = decimal.NewFromFloat(usage.TextToSpeechPerMinute)
	return t, nil
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(DefaultModels, DefaultUsage)
	if err != nil {
		panic(err)
	}
	return t
}

// Rate returns the per-million-token rate for model.
func (t *Table) Rate(model string) (decimal.Decimal, bool) {
	r, ok := t.rates[model]
	return r, ok
}

// MustRate returns the rate for model and panics if the model is not in the
// table. Callers validate model names at the input boundary first.
func (t *Table) MustRate(model string) decimal.Decimal {
	r, ok := t.rates[model]
	if !ok {
		panic(fmt.Sprintf("pricing: no rate for model %q", model))
	}
	return r
}

// Has reports whether model is in the table.
func (t *Table) Has(model string) bool {
	_, ok := t.rates[model]
	return ok
}

// Models returns the model names in display order.
func (t *Table) Models() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns the table as ModelRate values in display order.
func (t *Table) Entries() []models.ModelRate {
	out := make([]models.ModelRate, 0, len(t.order))
	for _, m := range t.order {
		out = append(out, models.ModelRate{Model: m, PerMillionTokens: t.rates[m].InexactFloat64()})
	}
	return out
}

// TelephonyPerMinute returns the inbound telephony rate.
func (t *Table) TelephonyPerMinute() decimal.Decimal { return t.telephony }

// SpeechToTextPerMinute returns the STT rate.
func (t *Table) SpeechToTextPerMinute() decimal.Decimal { return t.stt }

// TextToSpeechPerMinute returns the TTS rate.
func (t *Table) TextToSpeechPerMinute() decimal.Decimal { return t.tts }
