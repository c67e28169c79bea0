package port

import "campaign-insights/internal/core/domain"

// ReportParser turns the text of one platform export into campaigns.
type ReportParser interface {
	// Platform names the export format, e.g. "mailchimp_ab".
	Platform() string
	// CanParse reports whether text looks like this parser's format.
	CanParse(text string) bool
	// Parse extracts the campaigns of a report this parser recognised.
	Parse(text string) ([]domain.Campaign, error)
}

// ReportDetector picks the parser for a report and runs it.
type ReportDetector interface {
	Parse(text string) ([]domain.Campaign, error)
}
