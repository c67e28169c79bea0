package domain

import (
	"strings"
	"time"
)

// Campaign is the performance snapshot of one email send as exported by a
// sending platform. Counts are non-negative; rates are percentages in
// [0, 100] taken as supplied by the platform and never recomputed from the
// counts. Any metric the report did not carry is unavailable rather than
// zero.
type Campaign struct {
	Platform string    `json:"platform"`
	Subject  string    `json:"subject"`
	Title    string    `json:"email_title"`
	ID       string    `json:"unique_id"`
	SentAt   time.Time `json:"sent_at"`

	Delivered      Optional[int64] `json:"delivered"`
	Opens          Optional[int64] `json:"opens"`
	Clicks         Optional[int64] `json:"clicks"`
	Unsubscribes   Optional[int64] `json:"unsubscribes"`
	SpamComplaints Optional[int64] `json:"spam_complaints"`
	Bounces        Optional[int64] `json:"bounces"`
	HardBounces    Optional[int64] `json:"hard_bounces"`
	SoftBounces    Optional[int64] `json:"soft_bounces"`

	OpenRate        Optional[float64] `json:"open_rate"`
	ClickRate       Optional[float64] `json:"click_rate"`
	UnsubscribeRate Optional[float64] `json:"unsubscribe_rate"`
	BounceRate      Optional[float64] `json:"bounce_rate"`
	HardBounceRate  Optional[float64] `json:"hard_bounce_rate"`
	SoftBounceRate  Optional[float64] `json:"soft_bounce_rate"`
}

// HasMeaningfulData reports whether the campaign carries the identity and
// headline metrics a dashboard needs: every identifying field set, the
// delivery, open and click metrics present, and at least one delivery.
func (c Campaign) HasMeaningfulData() bool {
	if c.Platform == "" || c.ID == "" || c.SentAt.IsZero() {
		return false
	}
	if strings.TrimSpace(c.Subject) == "" || strings.TrimSpace(c.Title) == "" {
		return false
	}
	if !c.Opens.Valid() || !c.OpenRate.Valid() || !c.Clicks.Valid() || !c.ClickRate.Valid() {
		return false
	}
	delivered, ok := c.Delivered.Get()
	return ok && delivered > 0
}
