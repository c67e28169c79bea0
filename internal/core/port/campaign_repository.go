package port

import (
	"context"
	"time"

	"campaign-insights/internal/core/domain"
)

// CampaignRepository defines the persistence layer for imported campaigns.
// It is an outbound port in hexagonal architecture. Implementations must be
// safe for concurrent use.
type CampaignRepository interface {
	// SaveCampaigns inserts the campaigns, replacing any stored campaign
	// with the same id, and returns how many distinct rows were written.
	SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) (int, error)
	// ListCampaigns returns the campaigns matching filter ordered by send
	// time.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
}

// CampaignFilter narrows a campaign listing. Zero fields do not filter.
type CampaignFilter struct {
	Platform string
	From     time.Time
	To       time.Time
}

// ReportArchive keeps the raw bytes of uploaded reports. name is unique
// within a batch even when two uploads share a filename.
type ReportArchive interface {
	Archive(ctx context.Context, batchID, name string, body []byte) error
}
