// Package googleads talks to Google on behalf of the dashboard: the OAuth
// consent and code exchange, and a read-only campaign performance report
// through the Google Ads REST API.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

const (
	DefaultBaseURL    = "https://googleads.googleapis.com"
	DefaultAPIVersion = "v16"
	// Scope grants access to the Google Ads API.
	Scope = "https://www.googleapis.com/auth/adwords"
)

// reportQuery selects last-30-day metrics of enabled campaigns.
const reportQuery = `SELECT
  campaign.id,
  campaign.name,
  metrics.clicks,
  metrics.impressions,
  metrics.conversions,
  metrics.cost_micros,
  metrics.average_cpc
FROM campaign
WHERE segments.date DURING LAST_30_DAYS
  AND campaign.status = 'ENABLED'`

// ErrAPI wraps every failed call to Google.
var ErrAPI = errors.New("google ads request failed")

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// AuthURL and TokenURL override the Google OAuth endpoints.
	AuthURL  string
	TokenURL string

	DeveloperToken string
	BaseURL        string
	APIVersion     string
}

// Client implements port.AdsAccount.
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	baseURL    string
	devToken   string
	logger     *slog.Logger
}

var _ port.AdsAccount = (*Client)(nil)

func New(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{Scope},
		},
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion,
		devToken:   cfg.DeveloperToken,
		logger:     logger,
	}
}

// AuthCodeURL asks for offline access so a refresh token is issued.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (c *Client) Exchange(ctx context.Context, code string) (*domain.OAuthToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		c.logger.Error("token exchange failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: exchange code: %w", ErrAPI, err)
	}
	expiresIn := tok.ExpiresIn
	if expiresIn == 0 && !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry).Round(time.Second).Seconds())
	}
	return &domain.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
		ExpiresIn:    expiresIn,
		Expiry:       tok.Expiry,
	}, nil
}

type searchRow struct {
	Campaign struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"campaign"`
	// int64 metrics arrive as JSON strings, doubles as numbers.
	Metrics struct {
		Clicks      decimal.NullDecimal `json:"clicks"`
		Impressions decimal.NullDecimal `json:"impressions"`
		Conversions decimal.NullDecimal `json:"conversions"`
		CostMicros  decimal.NullDecimal `json:"costMicros"`
		AverageCpc  decimal.NullDecimal `json:"averageCpc"`
	} `json:"metrics"`
}

type searchResponse struct {
	Results       []searchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// Report reads the first accessible customer. An account without
// customers yields an empty report.
func (c *Client) Report(ctx context.Context, accessToken string) (*domain.AdsReport, error) {
	var customers struct {
		ResourceNames []string `json:"resourceNames"`
	}
	if err := c.call(ctx, http.MethodGet, "/customers:listAccessibleCustomers", accessToken, nil, &customers); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if len(customers.ResourceNames) == 0 {
		report := domain.NewAdsReport("", nil)
		return &report, nil
	}
	customerID := strings.TrimPrefix(customers.ResourceNames[0], "customers/")
	c.logger.Info("fetching campaign report", slog.String("customer_id", customerID))

	var campaigns []domain.CampaignMetrics
	pageToken := ""
	for {
		body := map[string]string{"query": reportQuery}
		if pageToken != "" {
			body["pageToken"] = pageToken
		}
		var page searchResponse
		if err := c.call(ctx, http.MethodPost, "/customers/"+customerID+"/googleAds:search", accessToken, body, &page); err != nil {
			return nil, fmt.Errorf("search campaigns: %w", err)
		}
		for _, row := range page.Results {
			m := row.Metrics
			campaigns = append(campaigns, domain.CampaignMetrics{
				ID:               row.Campaign.ID,
				Name:             row.Campaign.Name,
				Clicks:           whole(m.Clicks),
				Impressions:      whole(m.Impressions),
				Conversions:      whole(m.Conversions),
				CostMicros:       whole(m.CostMicros),
				AverageCPCMicros: whole(m.AverageCpc),
			})
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	report := domain.NewAdsReport(customerID, campaigns)
	return &report, nil
}

func (c *Client) call(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.devToken)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAPI, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("google ads API error", slog.Int("status", resp.StatusCode), slog.String("body", string(text)))
		return fmt.Errorf("%w: status %d: %s", ErrAPI, resp.StatusCode, strings.TrimSpace(string(text)))
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrAPI, err)
	}
	return nil
}

func whole(d decimal.NullDecimal) int64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.Round(0).IntPart()
}
