package domain

import (
	"errors"
	"time"
)

// ErrAdsNotConfigured is returned when no Google OAuth client is set up.
var ErrAdsNotConfigured = errors.New("google ads integration is not configured")

// CampaignMetrics are the reporting numbers of one campaign. Cost values
// are in micro-units, as returned by the Google Ads API.
type CampaignMetrics struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	Impressions      int64  `json:"impressions"`
	Clicks           int64  `json:"clicks"`
	Conversions      int64  `json:"conversions"`
	CostMicros       int64  `json:"cost"`
	AverageCPCMicros int64  `json:"avgCpc"`
}

// AdsReport is the reporting view of an ad account.
type AdsReport struct {
	CustomerID string            `json:"customerId,omitempty"`
	Campaigns  []CampaignMetrics `json:"campaigns"`
	Totals     ReportTotals      `json:"totals"`
}

// ReportTotals aggregates all campaigns of a report. CTR is a percentage.
type ReportTotals struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CostMicros  int64   `json:"cost"`
	CTR         float64 `json:"ctr"`
}

// NewAdsReport aggregates campaign metrics into a report.
func NewAdsReport(customerID string, campaigns []CampaignMetrics) AdsReport {
	if campaigns == nil {
		campaigns = []CampaignMetrics{}
	}
	var t ReportTotals
	for _, c := range campaigns {
		t.Impressions += c.Impressions
		t.Clicks += c.Clicks
		t.CostMicros += c.CostMicros
	}
	if t.Impressions > 0 {
		t.CTR = float64(t.Clicks) / float64(t.Impressions) * 100
	}
	return AdsReport{CustomerID: customerID, Campaigns: campaigns, Totals: t}
}

// OAuthToken is the result of exchanging a Google authorization code.
type OAuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	Expiry       time.Time `json:"expiry"`
}
