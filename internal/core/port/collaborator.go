package port

import (
	"context"

	"adspark-ai-wizard/internal/core/domain"
)

// Scraper fetches a website and extracts the copy used as prompt hints.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (*domain.ScrapedPage, error)
}

// AdsAccount is the Google side of the dashboard: the OAuth consent flow
// and the read-only performance report.
type AdsAccount interface {
	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string) (*domain.OAuthToken, error)
	// Report returns last-30-day metrics of the enabled campaigns of the
	// first accessible customer.
	Report(ctx context.Context, accessToken string) (*domain.AdsReport, error)
}
