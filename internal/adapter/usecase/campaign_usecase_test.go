package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/metrics"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sent(id string, delivered, opens, clicks int64) domain.Campaign {
	return domain.Campaign{
		Platform:  "mailchimp",
		ID:        id,
		Subject:   "Subject " + id,
		Title:     "Title " + id,
		SentAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Delivered: domain.Some(delivered),
		Opens:     domain.Some(opens),
		Clicks:    domain.Some(clicks),
		OpenRate:  domain.Some(float64(opens) / float64(delivered) * 100),
		ClickRate: domain.Some(float64(clicks) / float64(delivered) * 100),
	}
}

type fixture struct {
	repo    *mocks.MockCampaignRepository
	parser  *mocks.MockReportDetector
	archive *mocks.MockReportArchive
	uc      *CampaignUseCase
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		repo:    mocks.NewMockCampaignRepository(t),
		parser:  mocks.NewMockReportDetector(t),
		archive: mocks.NewMockReportArchive(t),
	}
	f.uc = NewCampaignUseCase(f.repo, f.parser, f.archive, DefaultPlan(), discardLogger())
	f.uc.newBatchID = func() string { return "batch-1" }
	return f
}

func TestParseReports_CollectsPerFileErrors(t *testing.T) {
	f := newFixture(t)
	good := sent("a", 1000, 250, 50)

	f.parser.EXPECT().Parse("good report").Return([]domain.Campaign{good}, nil)
	f.parser.EXPECT().Parse("junk").Return(nil, port.ErrUnsupportedFormat)

	resp, err := f.uc.ParseReports(context.Background(), []port.ReportFile{
		{Filename: "good.csv", Body: []byte("good report")},
		{Filename: "notes.txt", Body: []byte("good report")},
		{Filename: "junk.CSV", Body: []byte("junk")},
		{Filename: "binary.csv", Body: []byte{0xff, 0xfe, 0x00}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "good.csv", resp.Results[0].Filename)
	require.Len(t, resp.Results[0].Campaigns, 1)
	ctor, ok := resp.Results[0].Campaigns[0].CTOR.Get()
	require.True(t, ok)
	assert.InDelta(t, 20.0, ctor, 0.0001)

	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "notes.txt", resp.Errors[0].Filename)
	assert.Contains(t, resp.Errors[0].Error, port.ErrInvalidFile.Error())
	assert.Equal(t, "junk.CSV", resp.Errors[1].Filename)
	assert.Contains(t, resp.Errors[1].Error, port.ErrUnsupportedFormat.Error())
	assert.Equal(t, "binary.csv", resp.Errors[2].Filename)
}

func TestParseReports_CancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.ParseReports(ctx, []port.ReportFile{{Filename: "a.csv"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImportReports(t *testing.T) {
	f := newFixture(t)
	a, b := sent("a", 1000, 250, 50), sent("b", 2000, 600, 120)

	f.parser.EXPECT().Parse("one").Return([]domain.Campaign{a}, nil)
	f.parser.EXPECT().Parse("two").Return([]domain.Campaign{b}, nil)
	f.parser.EXPECT().Parse("bad").Return(nil, port.ErrEmptyReport)
	f.archive.EXPECT().Archive(mock.Anything, "batch-1", "1-one.csv", []byte("one")).Return(nil)
	f.archive.EXPECT().Archive(mock.Anything, "batch-1", "3-two.csv", []byte("two")).Return(nil)
	f.repo.EXPECT().SaveCampaigns(mock.Anything, []domain.Campaign{a, b}).Return(2, nil)

	resp, err := f.uc.ImportReports(context.Background(), []port.ReportFile{
		{Filename: "one.csv", Body: []byte("one")},
		{Filename: "bad.csv", Body: []byte("bad")},
		{Filename: "two.csv", Body: []byte("two")},
	})
	require.NoError(t, err)
	assert.Equal(t, "batch-1", resp.BatchID)
	assert.Equal(t, 2, resp.Stored)
	assert.Len(t, resp.Results, 2)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "bad.csv", resp.Errors[0].Filename)
}

func TestImportReports_DuplicateFilenames(t *testing.T) {
	f := newFixture(t)
	a, b := sent("a", 1000, 250, 50), sent("b", 2000, 600, 120)

	f.parser.EXPECT().Parse("first").Return([]domain.Campaign{a}, nil)
	f.parser.EXPECT().Parse("second").Return([]domain.Campaign{b}, nil)

	archived := map[string]string{}
	f.archive.EXPECT().
		Archive(mock.Anything, "batch-1", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, name string, body []byte) error {
			archived[name] = string(body)
			return nil
		}).
		Times(2)
	f.repo.EXPECT().SaveCampaigns(mock.Anything, []domain.Campaign{a, b}).Return(2, nil)

	_, err := f.uc.ImportReports(context.Background(), []port.ReportFile{
		{Filename: "report.csv", Body: []byte("first")},
		{Filename: "report.csv", Body: []byte("second")},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1-report.csv": "first", "2-report.csv": "second"}, archived)
}

func TestImportReports_NothingParsed(t *testing.T) {
	f := newFixture(t)
	f.parser.EXPECT().Parse("bad").Return(nil, port.ErrUnsupportedFormat)

	resp, err := f.uc.ImportReports(context.Background(), []port.ReportFile{
		{Filename: "bad.csv", Body: []byte("bad")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stored)
	assert.Len(t, resp.Errors, 1)
}

func TestImportReports_ArchiveFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("bucket unavailable")

	f.parser.EXPECT().Parse("one").Return([]domain.Campaign{sent("a", 1000, 250, 50)}, nil)
	f.archive.EXPECT().Archive(mock.Anything, "batch-1", "1-one.csv", []byte("one")).Return(boom)

	_, err := f.uc.ImportReports(context.Background(), []port.ReportFile{
		{Filename: "one.csv", Body: []byte("one")},
	})
	assert.ErrorIs(t, err, boom)
}

func TestImportReports_WithoutArchive(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	parser := mocks.NewMockReportDetector(t)
	uc := NewCampaignUseCase(repo, parser, nil, DefaultPlan(), discardLogger())

	a := sent("a", 1000, 250, 50)
	parser.EXPECT().Parse("one").Return([]domain.Campaign{a}, nil)
	repo.EXPECT().SaveCampaigns(mock.Anything, []domain.Campaign{a}).Return(1, nil)

	resp, err := uc.ImportReports(context.Background(), []port.ReportFile{{Filename: "one.csv", Body: []byte("one")}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stored)
	assert.NotEmpty(t, resp.BatchID)
}

func TestGetCampaign(t *testing.T) {
	f := newFixture(t)
	a := sent("a", 1000, 250, 0)

	f.repo.EXPECT().GetCampaign(mock.Anything, "a").Return(&a, nil)
	f.repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

	v, err := f.uc.GetCampaign(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", v.ID)
	assert.Equal(t, "title_a_a", v.ReadableID)
	ctor, ok := v.CTOR.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, ctor)

	_, err = f.uc.GetCampaign(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestListCampaigns_RepositoryError(t *testing.T) {
	f := newFixture(t)
	filter := port.CampaignFilter{Platform: "mailchimp"}
	f.repo.EXPECT().ListCampaigns(mock.Anything, filter).Return(nil, errors.New("db down"))

	_, err := f.uc.ListCampaigns(context.Background(), filter)
	assert.Error(t, err)
}

func TestDashboard_FlagsLowVolumeAndOutliers(t *testing.T) {
	f := newFixture(t)
	campaigns := []domain.Campaign{
		sent("a", 15000, 3000, 600),
		sent("b", 15200, 3040, 608),
		sent("c", 40, 8, 2),
		sent("d", 14800, 2960, 592),
		sent("e", 15100, 3020, 604),
		sent("f", 15050, 3010, 602),
	}
	f.repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(campaigns, nil)

	resp, err := f.uc.Dashboard(context.Background(), port.CampaignFilter{})
	require.NoError(t, err)

	assert.Len(t, resp.Campaigns, 6)
	assert.Equal(t, 6, resp.Summary.Count)

	require.Len(t, resp.LowVolume, 1)
	assert.Equal(t, metrics.Dimension(metrics.Delivered), resp.LowVolume[0].Dimension)
	assert.Equal(t, []int{2}, resp.LowVolume[0].Indices)

	require.Len(t, resp.Outliers, 4)
	delivered := resp.Outliers[0]
	assert.Equal(t, metrics.Dimension(metrics.Delivered), delivered.Dimension)
	assert.Equal(t, 6, delivered.SampleSize)
	assert.Equal(t, []int{2}, delivered.Indices)
}

func TestAnalyze_TwoCampaigns(t *testing.T) {
	uc := NewCampaignUseCase(nil, nil, nil, DefaultPlan(), discardLogger())
	a := sent("1", 1000, 250, 50)
	a.OpenRate, a.ClickRate = domain.Some(25.0), domain.Some(5.0)
	b := sent("2", 2000, 600, 120)
	b.OpenRate, b.ClickRate = domain.Some(30.0), domain.Some(6.0)

	resp := uc.Analyze([]domain.Campaign{a, b})

	avgOpen, _ := resp.Summary.AvgOpenRate.Get()
	avgClick, _ := resp.Summary.AvgClickRate.Get()
	avgCTOR, _ := resp.Summary.AvgCTOR.Get()
	assert.InDelta(t, 27.5, avgOpen, 0.0001)
	assert.InDelta(t, 5.5, avgClick, 0.0001)
	assert.InDelta(t, 20.0, avgCTOR, 0.0001)
	assert.Equal(t, int64(3000), resp.Summary.TotalDelivered)

	// Two campaigns are too few for quartiles but enough for a median.
	for _, flags := range resp.Outliers {
		assert.Equal(t, 2, flags.SampleSize)
		assert.Empty(t, flags.Indices)
	}
	assert.Empty(t, resp.LowVolume[0].Indices)
}

func TestAnalyze_Empty(t *testing.T) {
	uc := NewCampaignUseCase(nil, nil, nil, DefaultPlan(), discardLogger())
	resp := uc.Analyze(nil)

	assert.NotNil(t, resp.Campaigns)
	assert.Equal(t, 0, resp.Summary.Count)
	for _, flags := range append(resp.Outliers, resp.LowVolume...) {
		assert.Equal(t, 0, flags.SampleSize)
		assert.NotNil(t, flags.Indices)
	}
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan([]string{"ctor", "delivered"}, []string{"opens"})
	require.NoError(t, err)
	assert.Equal(t, []metrics.Dimension{"ctor", "delivered"}, p.Outliers)
	assert.Equal(t, []metrics.Dimension{"opens"}, p.LowVolume)

	_, err = NewPlan([]string{"revenue"}, nil)
	assert.ErrorIs(t, err, metrics.ErrUnknownField)
}
