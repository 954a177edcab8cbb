package tui

import (
	"fmt"
	"math"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
)

type field int

const (
	fieldDuration field = iota
	fieldCalls
	fieldModel
	fieldTokens
	fieldPlatform
	fieldCount
)

func (f field) label() string {
	switch f {
	case fieldDuration:
		return "Average call duration (min)"
	case fieldCalls:
		return "Calls per month"
	case fieldModel:
		return "LLM model"
	case fieldTokens:
		return "Tokens per call"
	case fieldPlatform:
		return "Platform/infra cost ($)"
	default:
		return ""
	}
}

// value renders the current setting of f.
func (f field) value(in models.EstimateInput) string {
	switch f {
	case fieldDuration:
		return report.Number(in.CallDurationMinutes)
	case fieldCalls:
		return fmt.Sprintf("%d", in.CallsPerMonth)
	case fieldModel:
		return in.Model
	case fieldTokens:
		return report.Number(in.TokensPerCall)
	case fieldPlatform:
		return report.Number(in.PlatformCost)
	default:
		return ""
	}
}

// adjust moves a numeric field by dir steps and pins it to its range.
// Models cycle through names in table order.
func adjust(in models.EstimateInput, f field, dir int, limits models.Limits, names []string) models.EstimateInput {
	switch f {
	case fieldDuration:
		in.CallDurationMinutes = step(in.CallDurationMinutes, dir, limits.CallDurationMinutes)
	case fieldCalls:
		in.CallsPerMonth = int64(step(float64(in.CallsPerMonth), dir, limits.CallsPerMonth))
	case fieldModel:
		in.Model = cycle(names, in.Model, dir)
	case fieldTokens:
		in.TokensPerCall = step(in.TokensPerCall, dir, limits.TokensPerCall)
	case fieldPlatform:
		in.PlatformCost = step(in.PlatformCost, dir, limits.PlatformCost)
	}
	return in
}

func step(v float64, dir int, r models.Range) float64 {
	inc := r.Step
	if inc <= 0 {
		inc = 1
	}
	next := v + float64(dir)*inc
	// Keep repeated float steps on the grid.
	next = math.Round(next*1e6) / 1e6
	return r.Clamp(next)
}

func cycle(names []string, current string, dir int) string {
	if len(names) == 0 {
		return current
	}
	idx := -1
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return names[0]
	}
	n := len(names)
	return names[((idx+dir)%n+n)%n]
}
