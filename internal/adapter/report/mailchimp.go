package report

import (
	"fmt"
	"strings"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// MailChimp parses the single campaign "Email Campaign Report" export.
type MailChimp struct{}

func (MailChimp) Platform() string { return "mailchimp" }

// CanParse looks for the report banner in the first lines and the
// "Overall Stats" section shortly after.
func (MailChimp) CanParse(text string) bool {
	ls := lines(text)
	return containsWithin(ls, 5, "Email Campaign Report") && containsWithin(ls, 20, "Overall Stats")
}

func (p MailChimp) Parse(text string) ([]domain.Campaign, error) {
	var (
		title, subject, sentAt string
		stats                  mailchimpStats
	)
	for _, line := range lines(text) {
		if strings.HasPrefix(line, `"Clicks by URL"`) || strings.HasPrefix(line, `"URL"`) {
			break
		}
		key, val, ok := keyValue(line)
		if !ok {
			continue
		}
		switch key {
		case "Title":
			title = val
		case "Subject Line":
			subject = val
		case "Delivery Date/Time":
			sentAt = val
		default:
			if err := stats.read(key, val); err != nil {
				return nil, err
			}
		}
	}

	name := title
	if name == "" {
		name = subject
	}
	c := stats.campaign(p.Platform(), subject, SanitizeTitle(name))
	c.ID = UniqueID(c.Title, subject, sentAt, "mailchimp")
	if err := setSentAt(&c, sentAt); err != nil {
		return nil, err
	}
	if !c.HasMeaningfulData() {
		return nil, port.ErrEmptyReport
	}
	return []domain.Campaign{c}, nil
}

// mailchimpStats collects the "Overall Stats" block shared by the single
// and A/B campaign exports.
type mailchimpStats struct {
	delivered, opens, clicks, unsubs, complaints, bounces domain.Optional[int64]
	openRate, clickRate, bounceRate                       domain.Optional[float64]
}

func (s *mailchimpStats) read(key, val string) error {
	var err error
	switch key {
	case "Successful Deliveries":
		s.delivered, err = parseCount(val)
	case "Recipients Who Opened":
		s.opens, s.openRate = countAndPercent(val)
	case "Recipients Who Clicked":
		s.clicks, s.clickRate = countAndPercent(val)
	case "Total Unsubs":
		s.unsubs, err = parseCount(val)
	case "Total Abuse Complaints":
		s.complaints, err = parseCount(val)
	case "Bounces":
		s.bounces, s.bounceRate = countAndPercent(val)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", port.ErrInvalidCampaign, key, err)
	}
	return nil
}

func (s *mailchimpStats) campaign(platform, subject, title string) domain.Campaign {
	return domain.Campaign{
		Platform:        platform,
		Subject:         subject,
		Title:           title,
		Delivered:       s.delivered,
		Opens:           s.opens,
		Clicks:          s.clicks,
		Unsubscribes:    s.unsubs,
		SpamComplaints:  s.complaints,
		Bounces:         s.bounces,
		OpenRate:        s.openRate,
		ClickRate:       s.clickRate,
		UnsubscribeRate: rateOf(s.unsubs, s.delivered),
		BounceRate:      s.bounceRate,
	}
}

// setSentAt parses raw into c.SentAt. A missing date is left for
// HasMeaningfulData to reject.
func setSentAt(c *domain.Campaign, raw string) error {
	if raw == "" {
		return nil
	}
	t, err := ParseSentAt(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrInvalidCampaign, err)
	}
	c.SentAt = t
	return nil
}

func containsWithin(ls []string, n int, needle string) bool {
	if len(ls) < n {
		n = len(ls)
	}
	for _, l := range ls[:n] {
		if strings.Contains(l, needle) {
			return true
		}
	}
	return false
}
