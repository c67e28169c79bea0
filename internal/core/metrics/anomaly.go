package metrics

import (
	"slices"

	"campaign-insights/internal/core/domain"
)

const (
	// minOutlierSample is the smallest sample the IQR quartiles are taken on.
	minOutlierSample = 4
	// minLowVolumeSample is the smallest sample a median is taken on.
	minLowVolumeSample = 2

	iqrFence           = 1.5
	lowVolumeThreshold = 0.5
)

// Flags are the positions flagged in one sample, both in ascending order.
type Flags struct {
	Outliers  []int `json:"outliers"`
	LowVolume []int `json:"low_volume"`
}

// Detect runs both detectors on values.
func Detect(values []float64) Flags {
	return Flags{
		Outliers:  DetectOutliers(values),
		LowVolume: DetectLowVolume(values),
	}
}

// DetectOutliers returns the indices of values outside the IQR fences
// Q1-1.5*IQR and Q3+1.5*IQR. Quartiles are read positionally from the
// sorted sample at floor(n*0.25) and floor(n*0.75) without interpolation.
// Samples of fewer than four points yield no flags.
func DetectOutliers(values []float64) []int {
	if len(values) < minOutlierSample {
		return []int{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := float64(len(sorted))
	q1 := sorted[int(n*0.25)]
	q3 := sorted[int(n*0.75)]
	iqr := q3 - q1
	lower := q1 - iqrFence*iqr
	upper := q3 + iqrFence*iqr

	return indicesWhere(values, func(v float64) bool {
		return v < lower || v > upper
	})
}

// DetectLowVolume returns the indices of values that are positive but
// below half the sample median. Zero means nothing was sent and is never
// flagged. Samples of fewer than two points yield no flags.
func DetectLowVolume(values []float64) []int {
	if len(values) < minLowVolumeSample {
		return []int{}
	}
	threshold := Median(values) * lowVolumeThreshold

	return indicesWhere(values, func(v float64) bool {
		return v > 0 && v < threshold
	})
}

// Median returns the middle value of a non-empty sample, or the mean of the
// two middle values when the length is even. It does not modify values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func indicesWhere(values []float64, pred func(float64) bool) []int {
	out := []int{}
	for i, v := range values {
		if pred(v) {
			out = append(out, i)
		}
	}
	return out
}

// Sample is one dimension of a campaign set, holding only the campaigns
// where the value is available. Index maps each sample position back to
// the campaign's position in the set.
type Sample struct {
	Dimension Dimension
	Values    []float64
	Index     []int
}

// SampleOf extracts dimension d from campaigns, skipping unavailable values.
func SampleOf(campaigns []domain.Campaign, d Dimension) Sample {
	s := Sample{
		Dimension: d,
		Values:    make([]float64, 0, len(campaigns)),
		Index:     make([]int, 0, len(campaigns)),
	}
	for i, c := range campaigns {
		if v, ok := d.valueOf(c); ok {
			s.Values = append(s.Values, v)
			s.Index = append(s.Index, i)
		}
	}
	return s
}

// Len returns the number of values in the sample.
func (s Sample) Len() int {
	return len(s.Values)
}

// Resolve maps sample positions, as returned by the detectors, to campaign
// positions in the set the sample was taken from.
func (s Sample) Resolve(positions []int) []int {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		out = append(out, s.Index[p])
	}
	return out
}

// Outliers runs DetectOutliers on the sample and returns campaign positions.
func (s Sample) Outliers() []int {
	return s.Resolve(DetectOutliers(s.Values))
}

// LowVolume runs DetectLowVolume on the sample and returns campaign positions.
func (s Sample) LowVolume() []int {
	return s.Resolve(DetectLowVolume(s.Values))
}
