package port

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when no parser recognises a report.
	ErrUnsupportedFormat = errors.New("unsupported or unrecognized report format")
	// ErrEmptyReport is returned when a report holds no usable campaign.
	ErrEmptyReport = errors.New("campaign data incomplete or missing key metrics")
	// ErrInvalidCampaign is returned when a campaign value cannot be read.
	ErrInvalidCampaign = errors.New("invalid campaign data")
	// ErrInvalidFile is returned for uploads that cannot be processed at all.
	ErrInvalidFile = errors.New("invalid file")
	// ErrCampaignNotFound is returned when a campaign id is unknown.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// ParseError ties a parsing failure to the uploaded file it came from.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
