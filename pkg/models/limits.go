package models

// Range is an inclusive numeric bound with the increment used by
// interactive inputs. Max of zero means unbounded.
type Range struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max,omitempty" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v <= r.Max
}

// Clamp pins v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if r.Max != 0 && v > r.Max {
		return r.Max
	}
	return v
}

// Limits bounds every numeric EstimateInput field at the input boundary.
type Limits struct {
	CallDurationMinutes Range `json:"call_duration_minutes" yaml:"call_duration_minutes"`
	CallsPerMonth       Range `json:"calls_per_month" yaml:"calls_per_month"`
	TokensPerCall       Range `json:"tokens_per_call" yaml:"tokens_per_call"`
	PlatformCost        Range `json:"platform_cost" yaml:"platform_cost"`
}
