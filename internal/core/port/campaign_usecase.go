package port

import (
	"context"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/metrics"
)

// CampaignUseCase defines the business operations exposed to the dashboard.
// This interface represents the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// ParseReports parses uploaded platform exports without storing them.
	// A file that fails to parse is reported in the response and does not
	// stop the others.
	ParseReports(ctx context.Context, files []ReportFile) (*ParseResp, error)

	// ImportReports parses the uploads, archives the raw files and stores
	// the parsed campaigns.
	ImportReports(ctx context.Context, files []ReportFile) (*ImportResp, error)

	// ListCampaigns returns stored campaigns ordered by send time.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]CampaignView, error)

	// GetCampaign returns one stored campaign or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id string) (*CampaignView, error)

	// Dashboard loads the filtered campaign set and returns its summary and
	// anomaly flags.
	Dashboard(ctx context.Context, filter CampaignFilter) (*DashboardResp, error)

	// Analyze computes the dashboard for a caller-supplied campaign set.
	Analyze(campaigns []domain.Campaign) *DashboardResp
}

// ReportFile is one uploaded report.
type ReportFile struct {
	Filename string
	Body     []byte
}

// CampaignView is a campaign with its derived click-to-open rate and a
// human readable form of its id.
type CampaignView struct {
	domain.Campaign
	ReadableID string                   `json:"readable_id"`
	CTOR       domain.Optional[float64] `json:"ctor"`
}

// FileResult lists the campaigns parsed from one file.
type FileResult struct {
	Filename  string         `json:"filename"`
	Campaigns []CampaignView `json:"campaigns"`
}

// FileError describes why one file was rejected.
type FileError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// ParseResp is the outcome of parsing a batch of uploads.
type ParseResp struct {
	Results []FileResult `json:"results"`
	Errors  []FileError  `json:"errors"`
}

// ImportResp is the outcome of importing a batch of uploads.
type ImportResp struct {
	BatchID string `json:"batch_id"`
	Stored  int    `json:"stored"`
	ParseResp
}

// DimensionFlags are the campaign positions one detector flagged on one
// dimension. SampleSize is the number of campaigns that define the
// dimension; callers compare it with the detector minimum to tell
// "not enough data" from "nothing unusual".
type DimensionFlags struct {
	Dimension  metrics.Dimension `json:"dimension"`
	SampleSize int               `json:"sample_size"`
	Indices    []int             `json:"indices"`
}

// DashboardResp is the analysed campaign set. Every index in Outliers and
// LowVolume refers to a position in Campaigns.
type DashboardResp struct {
	Campaigns []CampaignView   `json:"campaigns"`
	Summary   metrics.Summary  `json:"summary"`
	Outliers  []DimensionFlags `json:"outliers"`
	LowVolume []DimensionFlags `json:"low_volume"`
}
