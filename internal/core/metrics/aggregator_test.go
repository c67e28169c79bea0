package metrics

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/domain"
)

func twoCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			Platform:        "mailchimp",
			ID:              "1",
			Delivered:       domain.Some[int64](1000),
			Opens:           domain.Some[int64](250),
			Clicks:          domain.Some[int64](50),
			Unsubscribes:    domain.Some[int64](5),
			SpamComplaints:  domain.Some[int64](2),
			HardBounces:     domain.Some[int64](5),
			SoftBounces:     domain.Some[int64](5),
			OpenRate:        domain.Some(25.0),
			ClickRate:       domain.Some(5.0),
			UnsubscribeRate: domain.Some(0.5),
			HardBounceRate:  domain.Some(0.5),
			SoftBounceRate:  domain.Some(0.5),
		},
		{
			Platform:        "mailchimp",
			ID:              "2",
			Delivered:       domain.Some[int64](2000),
			Opens:           domain.Some[int64](600),
			Clicks:          domain.Some[int64](120),
			Unsubscribes:    domain.Some[int64](10),
			SpamComplaints:  domain.Some[int64](4),
			HardBounces:     domain.Some[int64](10),
			SoftBounces:     domain.Some[int64](10),
			OpenRate:        domain.Some(30.0),
			ClickRate:       domain.Some(6.0),
			UnsubscribeRate: domain.Some(0.5),
			HardBounceRate:  domain.Some(0.5),
			SoftBounceRate:  domain.Some(0.5),
		},
	}
}

func TestAggregate(t *testing.T) {
	s := Aggregate(twoCampaigns())

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(3000), s.TotalDelivered)
	assert.Equal(t, int64(850), s.TotalOpens)
	assert.Equal(t, int64(170), s.TotalClicks)
	assert.Equal(t, int64(15), s.TotalUnsubscribes)
	assert.Equal(t, int64(6), s.TotalSpamComplaints)
	assert.Equal(t, int64(0), s.TotalBounces)

	avgOpen, ok := s.AvgOpenRate.Get()
	require.True(t, ok)
	assert.InDelta(t, 27.5, avgOpen, 0.0001)

	avgClick, ok := s.AvgClickRate.Get()
	require.True(t, ok)
	assert.InDelta(t, 5.5, avgClick, 0.0001)

	avgCTOR, ok := s.AvgCTOR.Get()
	require.True(t, ok)
	assert.InDelta(t, 20.0, avgCTOR, 0.0001)

	// No record supplies a bounce rate.
	assert.False(t, s.AvgBounceRate.Valid())
}

func TestAggregate_EmptySet(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, int64(0), s.TotalDelivered)
	assert.False(t, s.AvgOpenRate.Valid())
	assert.False(t, s.AvgClickRate.Valid())
	assert.False(t, s.AvgCTOR.Valid())
}

func TestAverageOf_ExcludesUndefinedCTOR(t *testing.T) {
	campaigns := []domain.Campaign{
		{Clicks: domain.Some[int64](10), Opens: domain.Some[int64](100)},
		{Clicks: domain.Some[int64](10), Opens: domain.Some[int64](0)},
		{Clicks: domain.Some[int64](30), Opens: domain.Some[int64](100)},
		{Clicks: domain.None[int64](), Opens: domain.Some[int64](100)},
	}

	avg, ok := AverageOf(campaigns, CTORate).Get()
	require.True(t, ok)
	// (10 + 30) / 2, not / 4.
	assert.InDelta(t, 20.0, avg, 0.0001)
}

func TestAverageOf_ZeroIsNotUnavailable(t *testing.T) {
	campaigns := []domain.Campaign{
		{OpenRate: domain.Some(0.0)},
		{OpenRate: domain.Some(10.0)},
	}

	avg, ok := AverageOf(campaigns, OpenRate).Get()
	require.True(t, ok)
	assert.InDelta(t, 5.0, avg, 0.0001)
}

func TestSumOf(t *testing.T) {
	assert.Equal(t, int64(0), SumOf(nil, Delivered))
	assert.Equal(t, int64(3000), SumOf(twoCampaigns(), Delivered))

	withGap := append(twoCampaigns(), domain.Campaign{Delivered: domain.None[int64]()})
	assert.Equal(t, int64(3000), SumOf(withGap, Delivered))
}

func TestAverageOf_Fractional(t *testing.T) {
	campaigns := []domain.Campaign{
		{ClickRate: domain.Some(1.0)},
		{ClickRate: domain.Some(2.0)},
	}
	avg, _ := AverageOf(campaigns, ClickRate).Get()
	assert.Equal(t, 1.5, avg)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	campaigns := twoCampaigns()
	before := twoCampaigns()

	Aggregate(campaigns)
	DetectOutliers([]float64{3, 2, 1, 0})

	assert.Equal(t, before, campaigns)
}

func TestAggregate_Concurrent(t *testing.T) {
	campaigns := twoCampaigns()

	var wg sync.WaitGroup
	results := make([]Summary, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Aggregate(campaigns)
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestParseFields(t *testing.T) {
	f, err := ParseRateField("ctor")
	require.NoError(t, err)
	assert.Equal(t, CTORate, f)

	c, err := ParseCountField("spam_complaints")
	require.NoError(t, err)
	assert.Equal(t, SpamComplaints, c)

	d, err := ParseDimension("delivered")
	require.NoError(t, err)
	assert.Equal(t, Dimension("delivered"), d)

	_, err = ParseDimension("revenue")
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = ParseRateField("delivered")
	assert.ErrorIs(t, err, ErrUnknownField)
}
