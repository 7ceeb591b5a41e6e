package domain

// VariantCount is the number of proposals every generation must return.
const VariantCount = 3

// Copy length limits imposed by Google responsive search ads.
const (
	MaxHeadlineLength    = 30
	MaxDescriptionLength = 90
)

// Variant is one complete campaign proposal. All money values are in
// micro-units.
type Variant struct {
	Name        string               `json:"campaign_name"`
	Strategy    string               `json:"strategy"`
	Budget      Budget               `json:"budget"`
	Bidding     Bidding              `json:"bidding"`
	Keywords    KeywordSet           `json:"keywords"`
	Targeting   Targeting            `json:"targeting"`
	AdGroups    []AdGroup            `json:"ad_groups"`
	Ads         []Ad                 `json:"ads"`
	Performance *PerformanceEstimate `json:"performance_estimate,omitempty"`
}

// Budget is the daily spend of a variant.
type Budget struct {
	DailyMicros int64  `json:"daily_micros"`
	Pacing      string `json:"pacing"`
}

// Bidding is the bid strategy and its initial bid.
type Bidding struct {
	Strategy  string `json:"strategy"`
	BidMicros int64  `json:"initial_bid_micros"`
}

// KeywordSet splits keywords into positive and negative lists. A nil
// Negative means the list was absent from the generated payload.
type KeywordSet struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// AdGroup is a named subset of the variant keywords with its own bid.
type AdGroup struct {
	Name         string   `json:"name"`
	Keywords     []string `json:"keywords_subset"`
	CPCBidMicros int64    `json:"cpc_bid_micros"`
}

// Ad is a responsive search ad.
type Ad struct {
	Headlines    []string    `json:"headlines"`
	Descriptions []string    `json:"descriptions"`
	Paths        []string    `json:"paths,omitempty"`
	Extensions   *Extensions `json:"extensions,omitempty"`
}

// Extensions are the structured sub-blocks attached to an ad.
type Extensions struct {
	Sitelinks []Sitelink `json:"sitelinks,omitempty"`
	Callouts  []string   `json:"callouts,omitempty"`
	Snippets  *Snippet   `json:"snippets,omitempty"`
}

// Sitelink is a titled deep link shown under an ad.
type Sitelink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Snippet is a structured snippet block.
type Snippet struct {
	Header string   `json:"header"`
	Values []string `json:"values"`
}

// PerformanceEstimate is the simulated outlook the model attaches to a
// variant. It is informational only.
type PerformanceEstimate struct {
	SimulatedCTR   float64 `json:"simulated_ctr"`
	EstImpressions int64   `json:"est_impressions"`
	EstClicks      int64   `json:"est_clicks"`
}
