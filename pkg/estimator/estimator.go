package estimator

import (
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
)

// Estimator pairs a price table with input limits so surfaces validate and
// compute in one call.
type Estimator struct {
	table  *pricing.Table
	limits models.Limits
}

// New creates an Estimator.
func New(table *pricing.Table, limits models.Limits) *Estimator {
	return &Estimator{table: table, limits: limits}
}

// Estimate validates in and computes its breakdown.
func (e *Estimator) Estimate(in models.EstimateInput) (models.EstimateResult, error) {
	if err := Validate(e.table, e.limits, in); err != nil {
		return models.EstimateResult{}, err
	}
	return Compute(e.table, in), nil
}

// Table returns the price table.
func (e *Estimator) Table() *pricing.Table { return e.table }

// Limits returns the input limits.
func (e *Estimator) Limits() models.Limits { return e.limits }
