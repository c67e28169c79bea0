package report

import (
	"fmt"
	"strings"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// MailChimpAB parses the A/B test "Campaign Report" export, which holds one
// "Combination N Stats" section per tested variant.
type MailChimpAB struct{}

func (MailChimpAB) Platform() string { return "mailchimp_ab" }

func (MailChimpAB) CanParse(text string) bool {
	ls := lines(text)
	if !containsWithin(ls, 5, "Campaign Report") {
		return false
	}
	for _, l := range ls {
		if isCombination(l) {
			return true
		}
	}
	return false
}

func isCombination(line string) bool {
	return strings.HasPrefix(line, `"Combination`) && strings.Contains(line, "Stats")
}

type combination struct {
	subject string
	stats   mailchimpStats
}

func (p MailChimpAB) Parse(text string) ([]domain.Campaign, error) {
	var (
		title, sentAt string
		combos        []*combination
		cur           *combination
	)
	for _, line := range lines(text) {
		if strings.HasPrefix(line, `"URL"`) || strings.HasPrefix(line, `"Clicks by URL"`) {
			cur = nil
			continue
		}
		if isCombination(line) {
			cur = &combination{}
			combos = append(combos, cur)
			continue
		}
		key, val, ok := keyValue(line)
		if !ok {
			continue
		}
		// Report-wide fields may sit anywhere, even after a combination.
		switch key {
		case "Title":
			title = val
			continue
		case "Delivery Date/Time":
			sentAt = val
			continue
		}
		if cur == nil {
			continue
		}
		if key == "Subject Line" {
			cur.subject = val
			continue
		}
		if err := cur.stats.read(key, val); err != nil {
			return nil, err
		}
	}

	campaigns := make([]domain.Campaign, 0, len(combos))
	for i, combo := range combos {
		n := i + 1
		name := fmt.Sprintf("%s - Combo %d", title, n)
		if title == "" {
			name = fmt.Sprintf("%s %d", SanitizeTitle(combo.subject), n)
		}
		c := combo.stats.campaign(p.Platform(), combo.subject, name)
		c.ID = UniqueID(title, combo.subject, comboSentAt(sentAt, n), "mailchimp")
		if err := setSentAt(&c, sentAt); err != nil {
			return nil, err
		}
		if !c.HasMeaningfulData() {
			continue
		}
		campaigns = append(campaigns, c)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrEmptyReport
	}
	return campaigns, nil
}

// comboSentAt keeps variants sent at the same moment from sharing an id.
func comboSentAt(sentAt string, n int) string {
	if sentAt == "" {
		return fmt.Sprintf("combo_%d", n)
	}
	return fmt.Sprintf("%s_%d", sentAt, n)
}
