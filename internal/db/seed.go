package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// DemoPlatform marks seeded campaigns.
const DemoPlatform = "demo"

var demoSubjects = []string{
	"Spring collection is here",
	"Your weekly digest",
	"Internal test send",
	"Last chance: 30% off",
	"New arrivals you'll love",
	"Members-only preview",
	"How our customers style it",
	"Annual sale starts now",
	"Weekend reading list",
	"Seed list check",
}

// Seed stores ten weekly demo campaigns ending at now. Sends 2 and 9 are
// small test sends and send 7 is a large campaign, so the dashboard shows
// both low volume and outlier flags. Seeding twice overwrites the same rows.
func Seed(ctx context.Context, repo port.CampaignRepository, now time.Time) error {
	r := rand.New(rand.NewSource(now.UnixNano()))
	n, err := repo.SaveCampaigns(ctx, DemoCampaigns(now, r))
	if err != nil {
		return fmt.Errorf("seed demo campaigns: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("seed demo campaigns: nothing stored")
	}
	return nil
}

// DemoCampaigns generates the demo set, one send a week, oldest first.
func DemoCampaigns(now time.Time, r *rand.Rand) []domain.Campaign {
	campaigns := make([]domain.Campaign, 0, len(demoSubjects))
	for i := range demoSubjects {
		campaigns = append(campaigns, demoCampaign(i, now, r))
	}
	return campaigns
}

func demoCampaign(i int, now time.Time, r *rand.Rand) domain.Campaign {
	var delivered int64
	switch i {
	case 2:
		delivered = 500 + r.Int63n(200)
	case 7:
		delivered = 45000 + r.Int63n(5000)
	case 9:
		delivered = 800 + r.Int63n(300)
	default:
		delivered = 14000 + r.Int63n(2000)
	}

	hour := 14 + r.Intn(3)
	if i%2 == 0 {
		hour = 8 + r.Intn(3)
	}
	day := now.UTC().AddDate(0, 0, -7*(len(demoSubjects)-1-i))
	sentAt := time.Date(day.Year(), day.Month(), day.Day(), hour, r.Intn(60), 0, 0, time.UTC)

	opens := share(delivered, 0.15+r.Float64()*0.20)
	clicks := share(delivered, 0.01+r.Float64()*0.07)
	unsubs := share(delivered, 0.001+r.Float64()*0.004)
	hard := share(delivered, 0.002+r.Float64()*0.008)
	soft := share(delivered, 0.005+r.Float64()*0.015)

	subject := demoSubjects[i]
	return domain.Campaign{
		Platform:        DemoPlatform,
		Subject:         subject,
		Title:           fmt.Sprintf("Demo %02d - %s", i+1, subject),
		ID:              uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("campaign-insights/demo/%d", i))).String(),
		SentAt:          sentAt,
		Delivered:       domain.Some(delivered),
		Opens:           domain.Some(opens),
		Clicks:          domain.Some(clicks),
		Unsubscribes:    domain.Some(unsubs),
		SpamComplaints:  domain.Some(r.Int63n(5)),
		Bounces:         domain.Some(hard + soft),
		HardBounces:     domain.Some(hard),
		SoftBounces:     domain.Some(soft),
		OpenRate:        percent(opens, delivered),
		ClickRate:       percent(clicks, delivered),
		UnsubscribeRate: percent(unsubs, delivered),
		BounceRate:      percent(hard+soft, delivered),
		HardBounceRate:  percent(hard, delivered),
		SoftBounceRate:  percent(soft, delivered),
	}
}

func share(total int64, rate float64) int64 {
	return int64(float64(total) * rate)
}

func percent(part, whole int64) domain.Optional[float64] {
	return domain.Some(float64(part) / float64(whole) * 100)
}
