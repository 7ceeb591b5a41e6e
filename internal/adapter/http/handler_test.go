package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/adapter/scraper"
	"adspark-ai-wizard/internal/config/configs"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port/mocks"
)

type fixture struct {
	generate  *mocks.MockGenerateUseCase
	drafts    *mocks.MockDraftUseCase
	campaigns *mocks.MockCampaignUseCase
	reports   *mocks.MockReportUseCase
	scraper   *mocks.MockScraper
	handler   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		generate:  mocks.NewMockGenerateUseCase(t),
		drafts:    mocks.NewMockDraftUseCase(t),
		campaigns: mocks.NewMockCampaignUseCase(t),
		reports:   mocks.NewMockReportUseCase(t),
		scraper:   mocks.NewMockScraper(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Services{
		Generate:  f.generate,
		Drafts:    f.drafts,
		Campaigns: f.campaigns,
		Reports:   f.reports,
		Scraper:   f.scraper,
	}, configs.HTTP{AllowedOrigin: "*", RequestTimeout: time.Minute}, logger)
	f.handler = h.Router()
	return f
}

func (f *fixture) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const generateBody = `{"businessDescription":"Yoga studio","targetAudience":"Adults 25-45",
	"budget":50,"goals":"Signups","websiteUrl":"yoga.example","quickMode":true}`

func TestGenerateSuccess(t *testing.T) {
	f := newFixture(t)
	variants := []domain.Variant{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	f.generate.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(req domain.CampaignRequest) bool {
			return req.BusinessDescription == "Yoga studio" && req.QuickMode &&
				req.Budget.Equal(decimal.NewFromInt(50))
		})).
		Return(variants, nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/generate", generateBody,
		"Origin", "https://app.example")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Variants, 3)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		details string
	}{
		{"rate limited", domain.NewRateLimitedError(), http.StatusTooManyRequests, domain.MsgRateLimited, ""},
		{"quota", domain.NewQuotaExhaustedError(), http.StatusPaymentRequired, domain.MsgQuotaExhausted, ""},
		{"configuration", domain.NewConfigurationError("PROVIDER_API_KEY is not configured"),
			http.StatusInternalServerError, "PROVIDER_API_KEY is not configured", "PROVIDER_API_KEY is not configured"},
		{"incomplete", domain.NewIncompleteVariant(0, []string{"ad0: need 5+ headlines, got 4"}),
			http.StatusInternalServerError, "Generated campaign is incomplete", "ad0: need 5+ headlines, got 4"},
		{"invalid request", errors.Join(domain.ErrInvalidRequest), http.StatusBadRequest, domain.ErrInvalidRequest.Error(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.generate.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/campaigns/generate", generateBody)
			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, tt.details, body.Details)
		})
	}
}

func TestGenerateInvalidBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/campaigns/generate", `{"budget":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "invalid JSON body")

	rec = f.do(http.MethodPost, "/api/v1/campaigns/generate", `{"currency":"dollars"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "Currency failed len")
}

func TestPreflight(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodOptions, "/api/v1/drafts", "",
		"Origin", "https://app.example",
		"Access-Control-Request-Method", http.MethodPost,
		"Access-Control-Request-Headers", "content-type, x-user-id")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "x-user-id")
}

func TestPreflightRejectsUnlistedHeader(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodOptions, "/api/v1/drafts", "",
		"Origin", "https://app.example",
		"Access-Control-Request-Method", http.MethodPost,
		"Access-Control-Request-Headers", "x-forbidden")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOriginFromConfig(t *testing.T) {
	h := NewHandler(Services{}, configs.HTTP{AllowedOrigin: "https://app.example"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestDraftsRequireUser(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/drafts", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDraftRoutes(t *testing.T) {
	f := newFixture(t)
	draft := &domain.Draft{ID: "d1", UserID: "u1", Payload: json.RawMessage(`{"step":1}`)}

	f.drafts.EXPECT().ListDrafts(mock.Anything, "u1").Return([]domain.Draft{*draft}, nil)
	rec := f.do(http.MethodGet, "/api/v1/drafts", "", HeaderUserID, "u1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaign_data":{"step":1}`)

	f.drafts.EXPECT().CreateDraft(mock.Anything, "u1", json.RawMessage(`{"step":1}`)).Return(draft, nil)
	rec = f.do(http.MethodPost, "/api/v1/drafts", `{"campaign_data":{"step":1}}`, HeaderUserID, "u1")
	assert.Equal(t, http.StatusCreated, rec.Code)

	f.drafts.EXPECT().UpdateDraft(mock.Anything, "missing", "u1", mock.Anything).Return(nil, domain.ErrDraftNotFound)
	rec = f.do(http.MethodPut, "/api/v1/drafts/missing", `{"campaign_data":{"step":2}}`, HeaderUserID, "u1")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	f.drafts.EXPECT().CreateDraft(mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrInvalidPayload)
	rec = f.do(http.MethodPost, "/api/v1/drafts", `{"campaign_data":[1,2]}`, HeaderUserID, "u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/drafts", `{}`, HeaderUserID, "u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.drafts.EXPECT().DeleteDraft(mock.Anything, "d1", "u1").Return(nil)
	rec = f.do(http.MethodDelete, "/api/v1/drafts/d1", "", HeaderUserID, "u1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSaveCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		SaveCampaign(mock.Anything, "u1", mock.Anything, mock.MatchedBy(func(v domain.Variant) bool {
			// legacy bid amounts are converted before saving
			return v.Name == "Local Focus" && v.Bidding.BidMicros == 1_200_000
		})).
		Return(&domain.SavedCampaign{ID: "c1", Status: domain.CampaignStatusDraft}, nil)

	body := `{"request":` + generateBody + `,"variant":{"campaign_name":"Local Focus","bidding":{"bid_amount":1.2}}}`
	rec := f.do(http.MethodPost, "/api/v1/campaigns", body, HeaderUserID, "u1")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"draft"`)

	rec = f.do(http.MethodPost, "/api/v1/campaigns", `{"request":{}}`, HeaderUserID, "u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScrape(t *testing.T) {
	f := newFixture(t)
	f.scraper.EXPECT().Scrape(mock.Anything, "yoga.example").
		Return(&domain.ScrapedPage{URL: "https://yoga.example", Title: "Yoga"}, nil)
	rec := f.do(http.MethodPost, "/api/v1/scrape", `{"url":"yoga.example"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Yoga"`)

	f.scraper.EXPECT().Scrape(mock.Anything, "down.example").
		Return(nil, errors.Join(scraper.ErrFetch, errors.New("503")))
	rec = f.do(http.MethodPost, "/api/v1/scrape", `{"url":"down.example"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/scrape", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleAdsRoutes(t *testing.T) {
	f := newFixture(t)

	f.reports.EXPECT().AuthURL(mock.Anything).Return("", domain.ErrAdsNotConfigured).Once()
	rec := f.do(http.MethodGet, "/api/v1/google-ads/auth-url", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	f.reports.EXPECT().AuthURL(mock.Anything).Return("https://accounts.example/auth", nil).Once()
	rec = f.do(http.MethodGet, "/api/v1/google-ads/auth-url", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "accounts.example")

	f.reports.EXPECT().ExchangeCode(mock.Anything, "bad").Return(nil, errors.New("oauth2: invalid_grant"))
	rec = f.do(http.MethodPost, "/api/v1/google-ads/oauth/exchange", `{"code":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	report := domain.NewAdsReport("123", []domain.CampaignMetrics{{ID: "1", Clicks: 5, Impressions: 100}})
	f.reports.EXPECT().Report(mock.Anything, "tok").Return(&report, nil)
	rec = f.do(http.MethodPost, "/api/v1/google-ads/report", `{"accessToken":"tok"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ctr":5`)
}

func TestRecoverer(t *testing.T) {
	f := newFixture(t)
	f.generate.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.CampaignRequest) ([]domain.Variant, error) {
			panic("boom")
		})
	rec := f.do(http.MethodPost, "/api/v1/campaigns/generate", generateBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
