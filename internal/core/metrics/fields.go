package metrics

import (
	"errors"
	"fmt"

	"campaign-insights/internal/core/domain"
)

// ErrUnknownField is returned when a field or dimension name does not match
// any supported metric.
var ErrUnknownField = errors.New("unknown metric field")

// RateField names a percentage metric of a campaign.
type RateField string

const (
	OpenRate        RateField = "open_rate"
	ClickRate       RateField = "click_rate"
	UnsubscribeRate RateField = "unsubscribe_rate"
	BounceRate      RateField = "bounce_rate"
	HardBounceRate  RateField = "hard_bounce_rate"
	SoftBounceRate  RateField = "soft_bounce_rate"
	// CTORate is derived from clicks and opens rather than supplied.
	CTORate RateField = "ctor"
)

// CountField names a count metric of a campaign.
type CountField string

const (
	Delivered      CountField = "delivered"
	Opens          CountField = "opens"
	Clicks         CountField = "clicks"
	Unsubscribes   CountField = "unsubscribes"
	SpamComplaints CountField = "spam_complaints"
	Bounces        CountField = "bounces"
	HardBounces    CountField = "hard_bounces"
	SoftBounces    CountField = "soft_bounces"
)

// RateFields lists every rate field in display order.
var RateFields = []RateField{OpenRate, ClickRate, CTORate, UnsubscribeRate, BounceRate, HardBounceRate, SoftBounceRate}

// CountFields lists every count field in display order.
var CountFields = []CountField{Delivered, Opens, Clicks, Unsubscribes, SpamComplaints, Bounces, HardBounces, SoftBounces}

// Of returns the field's value for c. Unknown fields are unavailable.
func (f RateField) Of(c domain.Campaign) domain.Optional[float64] {
	switch f {
	case OpenRate:
		return c.OpenRate
	case ClickRate:
		return c.ClickRate
	case UnsubscribeRate:
		return c.UnsubscribeRate
	case BounceRate:
		return c.BounceRate
	case HardBounceRate:
		return c.HardBounceRate
	case SoftBounceRate:
		return c.SoftBounceRate
	case CTORate:
		return CTOR(c.Clicks, c.Opens)
	}
	return domain.None[float64]()
}

// Of returns the field's value for c. Unknown fields are unavailable.
func (f CountField) Of(c domain.Campaign) domain.Optional[int64] {
	switch f {
	case Delivered:
		return c.Delivered
	case Opens:
		return c.Opens
	case Clicks:
		return c.Clicks
	case Unsubscribes:
		return c.Unsubscribes
	case SpamComplaints:
		return c.SpamComplaints
	case Bounces:
		return c.Bounces
	case HardBounces:
		return c.HardBounces
	case SoftBounces:
		return c.SoftBounces
	}
	return domain.None[int64]()
}

// ParseRateField maps a wire name such as "open_rate" to a RateField.
func ParseRateField(name string) (RateField, error) {
	for _, f := range RateFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseCountField maps a wire name such as "delivered" to a CountField.
func ParseCountField(name string) (CountField, error) {
	for _, f := range CountFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Dimension is one numeric column of a campaign set that the anomaly
// detectors can run on. It is either a count or a rate field.
type Dimension string

// ParseDimension validates a dimension name against the known count and
// rate fields.
func ParseDimension(name string) (Dimension, error) {
	if _, err := ParseCountField(name); err == nil {
		return Dimension(name), nil
	}
	if _, err := ParseRateField(name); err == nil {
		return Dimension(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// valueOf reads the dimension from c as a float.
func (d Dimension) valueOf(c domain.Campaign) (float64, bool) {
	if f, err := ParseCountField(string(d)); err == nil {
		v, ok := f.Of(c).Get()
		return float64(v), ok
	}
	return RateField(d).Of(c).Get()
}
