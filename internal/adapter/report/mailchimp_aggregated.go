package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// MailChimpAggregated parses the account-wide campaign export: a plain CSV
// with one row per campaign.
type MailChimpAggregated struct{}

var aggregatedRequired = []string{"Title", "Send Date", "Successful Deliveries"}

func (MailChimpAggregated) Platform() string { return "mailchimp_aggregated" }

func (MailChimpAggregated) CanParse(text string) bool {
	ls := lines(text)
	if len(ls) == 0 {
		return false
	}
	header := make(map[string]bool)
	for _, f := range fields(ls[0]) {
		header[f] = true
	}
	for _, col := range aggregatedRequired {
		if !header[col] {
			return false
		}
	}
	return true
}

// Parse skips rows that fail to parse or lack the key metrics; only a
// report with no usable row is an error.
func (p MailChimpAggregated) Parse(text string) ([]domain.Campaign, error) {
	r := csv.NewReader(strings.NewReader(stripBOM(text)))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, port.ErrEmptyReport
		}
		return nil, fmt.Errorf("%w: header: %v", port.ErrInvalidCampaign, err)
	}
	cols := make(map[string]int, len(head))
	for i, h := range head {
		cols[strings.TrimSpace(h)] = i
	}

	var campaigns []domain.Campaign
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		c, err := p.row(aggregatedRow{cols: cols, record: record})
		if err != nil || !c.HasMeaningfulData() {
			continue
		}
		campaigns = append(campaigns, c)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrEmptyReport
	}
	return campaigns, nil
}

func (p MailChimpAggregated) row(r aggregatedRow) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		err error
	)
	c.Platform = p.Platform()
	c.Subject = r.get("Subject")
	c.Title = r.get("Title")
	if c.Title == "" {
		c.Title = SanitizeTitle(c.Subject)
	}
	sentAt := r.get("Send Date")
	if err = setSentAt(&c, sentAt); err != nil {
		return c, err
	}

	if c.Delivered, err = parseCount(r.get("Successful Deliveries")); err != nil {
		return c, err
	}
	if c.Opens, err = parseCount(r.get("Unique Opens")); err != nil {
		return c, err
	}
	if c.Clicks, err = parseCount(r.get("Unique Clicks")); err != nil {
		return c, err
	}
	if c.OpenRate, err = parsePercent(r.get("Open Rate")); err != nil {
		return c, err
	}
	if c.ClickRate, err = parsePercent(r.get("Click Rate")); err != nil {
		return c, err
	}

	c.HardBounces = r.optionalCount("Hard Bounces")
	c.SoftBounces = r.optionalCount("Soft Bounces")
	c.Bounces = r.optionalCount("Total Bounces")
	c.Unsubscribes = r.optionalCount("Unsubscribes")
	c.SpamComplaints = r.optionalCount("Abuse Complaints")

	c.HardBounceRate = rateOf(c.HardBounces, c.Delivered)
	c.SoftBounceRate = rateOf(c.SoftBounces, c.Delivered)
	c.BounceRate = rateOf(c.Bounces, c.Delivered)
	c.UnsubscribeRate = rateOf(c.Unsubscribes, c.Delivered)

	c.ID = UniqueID(c.Title, c.Subject, sentAt, "mailchimp")
	return c, nil
}

type aggregatedRow struct {
	cols   map[string]int
	record []string
}

func (r aggregatedRow) get(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r aggregatedRow) optionalCount(col string) domain.Optional[int64] {
	n, err := parseCount(r.get(col))
	if err != nil {
		return domain.None[int64]()
	}
	return n
}
