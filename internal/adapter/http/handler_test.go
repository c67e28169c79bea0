package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
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

func newTestHandler(t *testing.T, opts Options) (*mocks.MockCampaignUseCase, http.Handler) {
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, opts).Router()
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(uploadField, name)
		require.NoError(t, err)
		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, h := newTestHandler(t, Options{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestParseReports(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	body, contentType := multipartBody(t, map[string]string{"report.csv": "Campaign report"})

	svc.EXPECT().
		ParseReports(mock.Anything, []port.ReportFile{{Filename: "report.csv", Body: []byte("Campaign report")}}).
		Return(&port.ParseResp{
			Results: []port.FileResult{},
			Errors:  []port.FileError{{Filename: "report.csv", Error: "report.csv: unsupported or unrecognized report format"}},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp port.ParseResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "report.csv", resp.Errors[0].Filename)
}

func TestParseReports_NoFiles(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	body, contentType := multipartBody(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no files")
}

func TestParseReports_NotMultipart(t *testing.T) {
	_, h := newTestHandler(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/parse", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseReports_TooLarge(t *testing.T) {
	_, h := newTestHandler(t, Options{MaxUploadBytes: 64})
	body, contentType := multipartBody(t, map[string]string{"big.csv": strings.Repeat("x", 1024)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportReports(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	body, contentType := multipartBody(t, map[string]string{"a.csv": "one"})

	svc.EXPECT().
		ImportReports(mock.Anything, mock.AnythingOfType("[]port.ReportFile")).
		Return(&port.ImportResp{BatchID: "batch-1", Stored: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"batch_id":"batch-1"`)
	assert.Contains(t, rec.Body.String(), `"stored":2`)
}

func TestImportReports_StorageFailure(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	body, contentType := multipartBody(t, map[string]string{"a.csv": "one"})

	svc.EXPECT().
		ImportReports(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListCampaigns_Filter(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	want := port.CampaignFilter{
		Platform: "mailchimp",
		From:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
	svc.EXPECT().ListCampaigns(mock.Anything, want).Return([]port.CampaignView{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet,
		"/api/v1/campaigns?platform=mailchimp&from=2024-01-01&to=2024-02-01T12:00:00Z", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListCampaigns_DateOnlyToCoversWholeDay(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	want := port.CampaignFilter{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 2, 1, 23, 59, 59, 999999000, time.UTC),
	}
	svc.EXPECT().ListCampaigns(mock.Anything, want).Return([]port.CampaignView{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns?from=2024-02-01&to=2024-02-01", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCampaigns_BadParams(t *testing.T) {
	_, h := newTestHandler(t, Options{})

	for _, q := range []string{"from=yesterday", "to=13/13/2024", "from=2024-02-01&to=2024-01-01"} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestGetCampaign(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	view := &port.CampaignView{
		Campaign: domain.Campaign{ID: "abc123", Opens: domain.Some[int64](10), Clicks: domain.Some[int64](0)},
		CTOR:     domain.Some(0.0),
	}
	svc.EXPECT().GetCampaign(mock.Anything, "abc123").Return(view, nil)
	svc.EXPECT().GetCampaign(mock.Anything, "nope").Return(nil, port.ErrCampaignNotFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/abc123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "abc123", raw["unique_id"])
	assert.Equal(t, 0.0, raw["ctor"])
	assert.Nil(t, raw["delivered"])

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		Dashboard(mock.Anything, port.CampaignFilter{Platform: "demo"}).
		Return(&port.DashboardResp{
			Campaigns: []port.CampaignView{},
			Summary:   metrics.Aggregate(nil),
			Outliers:  []port.DimensionFlags{{Dimension: "delivered", SampleSize: 0, Indices: []int{}}},
			LowVolume: []port.DimensionFlags{},
		}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?platform=demo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dimension":"delivered"`)
	assert.Contains(t, rec.Body.String(), `"sample_size":0`)
}

func TestAnalyze(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		Analyze(mock.MatchedBy(func(cs []domain.Campaign) bool {
			return len(cs) == 1 && cs[0].ID == "a" && !cs[0].Opens.Valid()
		})).
		Return(&port.DashboardResp{})

	body := `{"campaigns":[{"unique_id":"a","delivered":100,"opens":null,"ctor":12.5}]}`
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	_, h := newTestHandler(t, Options{AllowedOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := serve(h, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
