package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
)

var (
	// ErrOutOfRange is returned when a numeric input falls outside its limits.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnknownModel is returned when the model is not in the price table.
	ErrUnknownModel = errors.New("unknown model")
)

// DefaultLimits mirrors the ranges of the estimator's interactive inputs.
var DefaultLimits = models.Limits{
	CallDurationMinutes: models.Range{Min: 1, Max: 15, Step: 1},
	CallsPerMonth:       models.Range{Min: 0, Max: 10000, Step: 200},
	TokensPerCall:       models.Range{Min: 0, Step: 50},
	PlatformCost:        models.Range{Min: 0, Step: 5},
}

// Validate checks in against limits and the price table. Every violation is
// reported; the returned error matches ErrOutOfRange and/or ErrUnknownModel.
func Validate(table *pricing.Table, limits models.Limits, in models.EstimateInput) error {
	var errs []error

	check := func(field string, v float64, r models.Range) {
		if math.IsNaN(v) || math.IsInf(v, 0) || !r.Contains(v) {
			errs = append(errs, fmt.Errorf("%s %v: %w (%s)", field, v, ErrOutOfRange, describe(r)))
		}
	}

	if in.CallDurationMinutes <= 0 {
		errs = append(errs, fmt.Errorf("call_duration_minutes %v: %w (must be positive)", in.CallDurationMinutes, ErrOutOfRange))
	} else {
		check("call_duration_minutes", in.CallDurationMinutes, limits.CallDurationMinutes)
	}
	check("calls_per_month", float64(in.CallsPerMonth), limits.CallsPerMonth)
	check("tokens_per_call", in.TokensPerCall, limits.TokensPerCall)
	check("platform_cost", in.PlatformCost, limits.PlatformCost)

	if !table.Has(in.Model) {
		errs = append(errs, fmt.Errorf("model %q: %w", in.Model, ErrUnknownModel))
	}

	return errors.Join(errs...)
}

func describe(r models.Range) string {
	if r.Max == 0 {
		return fmt.Sprintf("min %v", r.Min)
	}
	return fmt.Sprintf("%v..%v", r.Min, r.Max)
}
