package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "adspark-ai-wizard/internal/adapter/http"
	"adspark-ai-wizard/internal/config"
	"adspark-ai-wizard/internal/config/configs"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Store = configs.Store{Driver: configs.StoreDriverSQLite, SQLitePath: ":memory:"}
	cfg.Provider.APIKey = ""
	return cfg
}

func TestNewWiresSQLiteStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), testConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	h := a.Handler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", strings.NewReader(`{"campaign_data":{"step":1}}`))
	req.Header.Set(httpadapter.HeaderUserID, "u1")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/drafts", nil)
	req.Header.Set(httpadapter.HeaderUserID, "u1")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":1`)

	// google ads is disabled without credentials
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/google-ads/auth-url", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateWithoutKeyIsConfigurationError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), testConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	rec := httptest.NewRecorder()
	body := `{"businessDescription":"Yoga","targetAudience":"Adults","budget":50,"goals":"Signups","websiteUrl":"yoga.example"}`
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/generate", strings.NewReader(body)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROVIDER_API_KEY is not configured")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider.Kind = "openai"
	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "invalid config")
}

func TestGeneratorConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.RetryOnInvalid = 2
	gc := GeneratorConfig(cfg)
	assert.Equal(t, 2, gc.RetryOnInvalid)
	assert.Equal(t, cfg.Provider.QuickMaxTokens, gc.QuickMaxTokens)
	assert.Equal(t, cfg.Generation.Quick.Campaign(), gc.Quick)
}
