package metrics

import "campaign-insights/internal/core/domain"

// Summary holds the scalar statistics of a campaign set. Averages are
// unavailable for an empty set; totals are zero.
type Summary struct {
	Count int `json:"count"`

	AvgOpenRate        domain.Optional[float64] `json:"avg_open_rate"`
	AvgClickRate       domain.Optional[float64] `json:"avg_click_rate"`
	AvgCTOR            domain.Optional[float64] `json:"avg_ctor"`
	AvgUnsubscribeRate domain.Optional[float64] `json:"avg_unsubscribe_rate"`
	AvgBounceRate      domain.Optional[float64] `json:"avg_bounce_rate"`
	AvgHardBounceRate  domain.Optional[float64] `json:"avg_hard_bounce_rate"`
	AvgSoftBounceRate  domain.Optional[float64] `json:"avg_soft_bounce_rate"`

	TotalDelivered      int64 `json:"total_delivered"`
	TotalOpens          int64 `json:"total_opens"`
	TotalClicks         int64 `json:"total_clicks"`
	TotalUnsubscribes   int64 `json:"total_unsubscribes"`
	TotalSpamComplaints int64 `json:"total_spam_complaints"`
	TotalBounces        int64 `json:"total_bounces"`
	TotalHardBounces    int64 `json:"total_hard_bounces"`
	TotalSoftBounces    int64 `json:"total_soft_bounces"`
}

// Aggregate reduces a campaign set into its summary statistics.
func Aggregate(campaigns []domain.Campaign) Summary {
	return Summary{
		Count: len(campaigns),

		AvgOpenRate:        AverageOf(campaigns, OpenRate),
		AvgClickRate:       AverageOf(campaigns, ClickRate),
		AvgCTOR:            AverageOf(campaigns, CTORate),
		AvgUnsubscribeRate: AverageOf(campaigns, UnsubscribeRate),
		AvgBounceRate:      AverageOf(campaigns, BounceRate),
		AvgHardBounceRate:  AverageOf(campaigns, HardBounceRate),
		AvgSoftBounceRate:  AverageOf(campaigns, SoftBounceRate),

		TotalDelivered:      SumOf(campaigns, Delivered),
		TotalOpens:          SumOf(campaigns, Opens),
		TotalClicks:         SumOf(campaigns, Clicks),
		TotalUnsubscribes:   SumOf(campaigns, Unsubscribes),
		TotalSpamComplaints: SumOf(campaigns, SpamComplaints),
		TotalBounces:        SumOf(campaigns, Bounces),
		TotalHardBounces:    SumOf(campaigns, HardBounces),
		TotalSoftBounces:    SumOf(campaigns, SoftBounces),
	}
}

// AverageOf returns the arithmetic mean of field over the campaigns that
// define it. Campaigns where the value is unavailable count in neither the
// sum nor the divisor, so the result is unavailable when no campaign
// defines the field, including for an empty set.
func AverageOf(campaigns []domain.Campaign, field RateField) domain.Optional[float64] {
	var (
		sum float64
		n   int
	)
	for _, c := range campaigns {
		if v, ok := field.Of(c).Get(); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return domain.None[float64]()
	}
	return domain.Some(sum / float64(n))
}

// SumOf returns the total of field over the campaigns. Unavailable counts
// contribute nothing and an empty set sums to zero.
func SumOf(campaigns []domain.Campaign, field CountField) int64 {
	var sum int64
	for _, c := range campaigns {
		sum += field.Of(c).OrElse(0)
	}
	return sum
}
