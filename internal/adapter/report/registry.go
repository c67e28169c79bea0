package report

import (
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// Registry selects a parser for a report by asking each in turn whether it
// recognises the text. The first match wins, so narrower formats go first.
type Registry struct {
	parsers []port.ReportParser
}

var _ port.ReportDetector = (*Registry)(nil)

// NewRegistry returns a registry holding parsers in the given order, or the
// built-in parsers when none are given.
func NewRegistry(parsers ...port.ReportParser) *Registry {
	if len(parsers) == 0 {
		parsers = []port.ReportParser{
			MailChimpAB{},
			MailChimp{},
			MailChimpAggregated{},
			MailerLiteClassic{},
		}
	}
	return &Registry{parsers: parsers}
}

// Parsers returns the registered parsers in detection order.
func (r *Registry) Parsers() []port.ReportParser {
	return r.parsers
}

// Detect returns the first parser that recognises text.
func (r *Registry) Detect(text string) (port.ReportParser, error) {
	text = stripBOM(text)
	for _, p := range r.parsers {
		if p.CanParse(text) {
			return p, nil
		}
	}
	return nil, port.ErrUnsupportedFormat
}

// Parse detects the report format and parses it.
func (r *Registry) Parse(text string) ([]domain.Campaign, error) {
	text = stripBOM(text)
	p, err := r.Detect(text)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}
