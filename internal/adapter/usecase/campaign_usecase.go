package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"campaign-insights/internal/adapter/report"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/metrics"
	"campaign-insights/internal/core/port"
)

// CampaignUseCase imports platform reports and analyses the stored
// campaigns. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	parser  port.ReportDetector
	archive port.ReportArchive
	plan    Plan
	logger  *slog.Logger

	newBatchID func() string
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wires the use case. archive may be nil when raw
// reports are not kept.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	parser port.ReportDetector,
	archive port.ReportArchive,
	plan Plan,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		repo:       repo,
		parser:     parser,
		archive:    archive,
		plan:       plan,
		logger:     logger,
		newBatchID: uuid.NewString,
	}
}

// ParseReports parses every file independently. A rejected file ends up in
// the response errors and never fails the batch.
func (u *CampaignUseCase) ParseReports(ctx context.Context, files []port.ReportFile) (*port.ParseResp, error) {
	resp, _, err := u.parseAll(ctx, files)
	return resp, err
}

// parseAll is ParseReports that also returns, for each result, the
// position of its file in files.
func (u *CampaignUseCase) parseAll(ctx context.Context, files []port.ReportFile) (*port.ParseResp, []int, error) {
	resp := &port.ParseResp{
		Results: make([]port.FileResult, 0, len(files)),
		Errors:  []port.FileError{},
	}
	positions := make([]int, 0, len(files))
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		campaigns, err := u.parseFile(f)
		if err != nil {
			u.logger.Warn("report rejected", slog.String("file", f.Filename), slog.Any("error", err))
			resp.Errors = append(resp.Errors, port.FileError{Filename: f.Filename, Error: err.Error()})
			continue
		}
		resp.Results = append(resp.Results, port.FileResult{
			Filename:  f.Filename,
			Campaigns: views(campaigns),
		})
		positions = append(positions, i)
	}
	return resp, positions, nil
}

func (u *CampaignUseCase) parseFile(f port.ReportFile) ([]domain.Campaign, error) {
	if !strings.EqualFold(filepath.Ext(f.Filename), ".csv") {
		return nil, &port.ParseError{Filename: f.Filename, Err: fmt.Errorf("%w: only .csv reports are accepted", port.ErrInvalidFile)}
	}
	if !utf8.Valid(f.Body) {
		return nil, &port.ParseError{Filename: f.Filename, Err: fmt.Errorf("%w: not UTF-8 text", port.ErrInvalidFile)}
	}
	campaigns, err := u.parser.Parse(string(f.Body))
	if err != nil {
		return nil, &port.ParseError{Filename: f.Filename, Err: err}
	}
	return campaigns, nil
}

// archiveName prefixes the upload's 1-based position so two uploads with
// the same filename never overwrite each other.
func archiveName(position int, filename string) string {
	return fmt.Sprintf("%d-%s", position+1, filename)
}

// ImportReports parses the files, archives the raw bytes of every file that
// parsed and upserts the campaigns in one call.
func (u *CampaignUseCase) ImportReports(ctx context.Context, files []port.ReportFile) (*port.ImportResp, error) {
	parsed, positions, err := u.parseAll(ctx, files)
	if err != nil {
		return nil, err
	}
	resp := &port.ImportResp{BatchID: u.newBatchID(), ParseResp: *parsed}
	if len(parsed.Results) == 0 {
		return resp, nil
	}

	var campaigns []domain.Campaign
	for i, res := range parsed.Results {
		if u.archive != nil {
			f := files[positions[i]]
			if err = u.archive.Archive(ctx, resp.BatchID, archiveName(positions[i], f.Filename), f.Body); err != nil {
				return nil, fmt.Errorf("archive %s: %w", res.Filename, err)
			}
		}
		for _, v := range res.Campaigns {
			campaigns = append(campaigns, v.Campaign)
		}
	}

	resp.Stored, err = u.repo.SaveCampaigns(ctx, campaigns)
	if err != nil {
		return nil, err
	}
	u.logger.Info("reports imported",
		slog.String("batch", resp.BatchID),
		slog.Int("files", len(parsed.Results)),
		slog.Int("stored", resp.Stored),
	)
	return resp, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]port.CampaignView, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	return views(campaigns), nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	v := view(*c)
	return &v, nil
}

// Dashboard analyses the stored campaigns matching filter.
func (u *CampaignUseCase) Dashboard(ctx context.Context, filter port.CampaignFilter) (*port.DashboardResp, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.Analyze(campaigns), nil
}

// Analyze summarises campaigns and runs the planned detectors. Flag indices
// refer to positions in campaigns.
func (u *CampaignUseCase) Analyze(campaigns []domain.Campaign) *port.DashboardResp {
	resp := &port.DashboardResp{
		Campaigns: views(campaigns),
		Summary:   metrics.Aggregate(campaigns),
		Outliers:  make([]port.DimensionFlags, 0, len(u.plan.Outliers)),
		LowVolume: make([]port.DimensionFlags, 0, len(u.plan.LowVolume)),
	}
	for _, d := range u.plan.Outliers {
		s := metrics.SampleOf(campaigns, d)
		resp.Outliers = append(resp.Outliers, port.DimensionFlags{Dimension: d, SampleSize: s.Len(), Indices: s.Outliers()})
	}
	for _, d := range u.plan.LowVolume {
		s := metrics.SampleOf(campaigns, d)
		resp.LowVolume = append(resp.LowVolume, port.DimensionFlags{Dimension: d, SampleSize: s.Len(), Indices: s.LowVolume()})
	}
	return resp
}

func view(c domain.Campaign) port.CampaignView {
	return port.CampaignView{
		Campaign:   c,
		ReadableID: report.ReadableID(c.Title, c.Subject, c.ID),
		CTOR:       metrics.CTOR(c.Clicks, c.Opens),
	}
}

func views(campaigns []domain.Campaign) []port.CampaignView {
	out := make([]port.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, view(c))
	}
	return out
}
