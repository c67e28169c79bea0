package report

import (
	"fmt"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// MailerLiteClassic parses the MailerLite classic single campaign export,
// which is split into named sections.
type MailerLiteClassic struct{}

type mailerliteSection int

const (
	sectionNone mailerliteSection = iota
	sectionReport
	sectionResults
	sectionBad
	sectionOther
)

func (MailerLiteClassic) Platform() string { return "mailerlite_classic" }

func (MailerLiteClassic) CanParse(text string) bool {
	var report, results bool
	for _, l := range lines(text) {
		switch name, _ := sectionName(l); name {
		case "Campaign report":
			report = true
		case "Campaign results":
			results = true
		}
	}
	return report && results
}

func (p MailerLiteClassic) Parse(text string) ([]domain.Campaign, error) {
	var (
		c       = domain.Campaign{Platform: p.Platform()}
		sentAt  string
		section = sectionNone
		err     error
	)
	for _, line := range lines(text) {
		if name, ok := sectionName(line); ok {
			switch name {
			case "Campaign report":
				section = sectionReport
			case "Campaign results":
				section = sectionResults
			case "Bad statistics":
				section = sectionBad
			default:
				section = sectionOther
			}
			continue
		}
		key, val, ok := keyValue(line)
		if !ok {
			continue
		}
		switch section {
		case sectionReport:
			switch key {
			case "Subject":
				c.Subject = val
			case "Sent":
				sentAt = val
			}
		case sectionResults:
			switch key {
			case "Total emails sent":
				if c.Delivered, err = parseCount(val); err != nil {
					return nil, fmt.Errorf("%w: %s: %v", port.ErrInvalidCampaign, key, err)
				}
			case "Opened":
				c.Opens, c.OpenRate = countAndPercent(val)
			case "Clicked":
				c.Clicks, c.ClickRate = countAndPercent(val)
			}
		case sectionBad:
			n, pct := countAndPercent(val)
			switch key {
			case "Unsubscribed":
				c.Unsubscribes, c.UnsubscribeRate = n, pct
			case "Spam complaints":
				c.SpamComplaints = n
			case "Hard bounce":
				c.HardBounces, c.HardBounceRate = n, pct
			case "Soft bounce":
				c.SoftBounces, c.SoftBounceRate = n, pct
			}
		}
	}

	if !c.Delivered.Valid() || !c.Opens.Valid() || !c.Clicks.Valid() ||
		!c.OpenRate.Valid() || !c.ClickRate.Valid() ||
		!c.Unsubscribes.Valid() || !c.UnsubscribeRate.Valid() || !c.SpamComplaints.Valid() ||
		!c.HardBounces.Valid() || !c.HardBounceRate.Valid() ||
		!c.SoftBounces.Valid() || !c.SoftBounceRate.Valid() ||
		c.Subject == "" || sentAt == "" {
		return nil, port.ErrEmptyReport
	}

	c.Title = SanitizeTitle(c.Subject)
	c.ID = UniqueID(c.Title, c.Subject, sentAt, "mailerlite")
	if err = setSentAt(&c, sentAt); err != nil {
		return nil, err
	}
	if !c.HasMeaningfulData() {
		return nil, port.ErrEmptyReport
	}
	return []domain.Campaign{c}, nil
}
