package metrics

import "campaign-insights/internal/core/domain"

// CTOR returns the click-to-open rate as a percentage. It is unavailable
// when opens is unknown or zero, or when clicks is unknown. Zero clicks on
// a positive number of opens is a defined 0.
func CTOR(clicks, opens domain.Optional[int64]) domain.Optional[float64] {
	o, ok := opens.Get()
	if !ok || o <= 0 {
		return domain.None[float64]()
	}
	c, ok := clicks.Get()
	if !ok {
		return domain.None[float64]()
	}
	return domain.Some(float64(c) / float64(o) * 100)
}
