package usecase

import (
	"fmt"

	"campaign-insights/internal/core/metrics"
)

// Plan lists the dimensions each anomaly detector runs on.
type Plan struct {
	Outliers  []metrics.Dimension
	LowVolume []metrics.Dimension
}

// DefaultPlan flags outliers on delivery and engagement rates and low
// volume on delivery.
func DefaultPlan() Plan {
	return Plan{
		Outliers: []metrics.Dimension{
			metrics.Dimension(metrics.Delivered),
			metrics.Dimension(metrics.OpenRate),
			metrics.Dimension(metrics.ClickRate),
			metrics.Dimension(metrics.CTORate),
		},
		LowVolume: []metrics.Dimension{
			metrics.Dimension(metrics.Delivered),
		},
	}
}

// NewPlan builds a plan from dimension names. Unknown names are an error.
func NewPlan(outliers, lowVolume []string) (Plan, error) {
	var (
		p   Plan
		err error
	)
	if p.Outliers, err = parseDimensions(outliers); err != nil {
		return Plan{}, fmt.Errorf("outliers: %w", err)
	}
	if p.LowVolume, err = parseDimensions(lowVolume); err != nil {
		return Plan{}, fmt.Errorf("low volume: %w", err)
	}
	return p, nil
}

func parseDimensions(names []string) ([]metrics.Dimension, error) {
	dims := make([]metrics.Dimension, 0, len(names))
	for _, name := range names {
		d, err := metrics.ParseDimension(name)
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}
