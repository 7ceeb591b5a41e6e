// Package app is the composition root shared by the server and the CLI.
// It turns a config.Config into wired adapters and use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"adspark-ai-wizard/internal/adapter/gateway"
	"adspark-ai-wizard/internal/adapter/gemini"
	"adspark-ai-wizard/internal/adapter/googleads"
	httpadapter "adspark-ai-wizard/internal/adapter/http"
	"adspark-ai-wizard/internal/adapter/postgres"
	"adspark-ai-wizard/internal/adapter/scraper"
	"adspark-ai-wizard/internal/adapter/sqlite"
	"adspark-ai-wizard/internal/adapter/usecase"
	"adspark-ai-wizard/internal/config"
	"adspark-ai-wizard/internal/config/configs"
	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/port"
	"adspark-ai-wizard/internal/db"
)

// App holds the wired services. Close releases the store.
type App struct {
	cfg    config.Config
	logger *slog.Logger

	Drafts    port.DraftRepository
	Campaigns port.CampaignRepository
	Scraper   *scraper.Scraper

	Generate        *usecase.GenerateUseCase
	DraftUseCase    *usecase.DraftUseCase
	CampaignUseCase *usecase.CampaignUseCase
	Reports         *usecase.ReportUseCase

	closers []func()
}

// New wires the application. Migrations run first when configured; a
// migration failure is logged and startup continues.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	a := &App{cfg: cfg, logger: logger}

	if err := a.openStore(ctx); err != nil {
		return nil, err
	}

	provider, err := newProvider(ctx, cfg.Provider, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	rules := campaign.Rules{
		Minimums:          cfg.Generation.Full.Campaign().Required,
		EnforceCopyLength: cfg.Generation.EnforceCopyLength,
	}
	a.Generate = usecase.NewGenerateUseCase(provider, GeneratorConfig(cfg), logger)
	a.DraftUseCase = usecase.NewDraftUseCase(a.Drafts)
	a.CampaignUseCase = usecase.NewCampaignUseCase(a.Campaigns, rules, logger)

	httpClient := &http.Client{Timeout: cfg.Scraper.Timeout}
	a.Scraper = scraper.New(scraper.Config{
		UserAgent: cfg.Scraper.UserAgent,
		MaxBytes:  cfg.Scraper.MaxBytes,
	}, httpClient, logger)

	var account port.AdsAccount
	if cfg.Google.Enabled() {
		account = googleads.New(googleads.Config{
			ClientID:       cfg.Google.ClientID,
			ClientSecret:   cfg.Google.ClientSecret,
			RedirectURL:    cfg.Google.RedirectURI,
			TokenURL:       cfg.Google.TokenURL,
			DeveloperToken: cfg.Google.DeveloperToken,
			BaseURL:        cfg.Google.AdsBaseURL,
			APIVersion:     cfg.Google.AdsAPIVersion,
		}, &http.Client{Timeout: cfg.Provider.Timeout}, logger)
	} else {
		logger.Info("google ads integration disabled")
	}
	a.Reports = usecase.NewReportUseCase(account)
	return a, nil
}

// GeneratorConfig maps the configuration onto the generation pipeline.
func GeneratorConfig(cfg config.Config) usecase.GeneratorConfig {
	return usecase.GeneratorConfig{
		ProviderName:      cfg.Provider.Kind,
		APIKey:            cfg.Provider.APIKey,
		Model:             cfg.Provider.Model,
		Temperature:       cfg.Provider.Temperature,
		MaxTokens:         cfg.Provider.MaxTokens,
		QuickMaxTokens:    cfg.Provider.QuickMaxTokens,
		Timeout:           cfg.Provider.Timeout,
		Full:              cfg.Generation.Full.Campaign(),
		Quick:             cfg.Generation.Quick.Campaign(),
		RetryOnInvalid:    cfg.Generation.RetryOnInvalid,
		EnforceCopyLength: cfg.Generation.EnforceCopyLength,
	}
}

func (a *App) openStore(ctx context.Context) error {
	switch a.cfg.Store.Driver {
	case configs.StoreDriverSQLite:
		store, err := sqlite.Open(a.cfg.Store.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		a.Drafts, a.Campaigns = store, store
		a.closers = append(a.closers, func() { _ = store.Close() })
		a.logger.Info("using sqlite store", slog.String("path", a.cfg.Store.SQLitePath))
		return nil
	case configs.StoreDriverPostgres:
		if a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				a.logger.Error("migration error", slog.Any("error", err))
			} else {
				a.logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection error: %w", err)
		}
		a.Drafts = postgres.NewDraftRepository(pool)
		a.Campaigns = postgres.NewCampaignRepository(pool)
		a.closers = append(a.closers, pool.Close)
		return nil
	}
	return errors.New("unknown store driver " + a.cfg.Store.Driver)
}

func newProvider(ctx context.Context, cfg configs.Provider, logger *slog.Logger) (port.CompletionProvider, error) {
	// the provider call is bounded by the use case; the client timeout
	// only catches a stuck connection
	httpClient := &http.Client{Timeout: cfg.Timeout + cfg.Timeout/2}
	switch cfg.Kind {
	case configs.ProviderGemini:
		return gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, HTTPClient: httpClient}, logger)
	default:
		return gateway.New(cfg.Endpoint, cfg.APIKey, httpClient, logger), nil
	}
}

// Handler builds the HTTP adapter over the wired use cases.
func (a *App) Handler() http.Handler {
	return httpadapter.NewHandler(httpadapter.Services{
		Generate:  a.Generate,
		Drafts:    a.DraftUseCase,
		Campaigns: a.CampaignUseCase,
		Reports:   a.Reports,
		Scraper:   a.Scraper,
	}, a.cfg.HTTP, a.logger).Router()
}

// Close releases the store in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
