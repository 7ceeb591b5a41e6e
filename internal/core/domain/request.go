package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRequest is returned by CampaignRequest.Validate. The wrapped
// message names the first offending field.
var ErrInvalidRequest = errors.New("invalid campaign request")

// CampaignRequest carries the business inputs collected by the first wizard
// step. It is never modified after being handed to generation.
type CampaignRequest struct {
	BusinessDescription string
	TargetAudience      string
	// Budget is the daily budget in currency units (e.g. 50 for $50/day).
	Budget     decimal.Decimal
	Currency   string
	Goals      string
	WebsiteURL string

	Extended *ExtendedOptions
	Scraped  *ScrapedHints

	// QuickMode asks for a lighter variant profile and a smaller token budget.
	QuickMode bool
}

// ExtendedOptions are the optional advanced inputs of the wizard.
type ExtendedOptions struct {
	Sitelinks        []Sitelink         `json:"sitelinks,omitempty"`
	Callouts         []string           `json:"callouts,omitempty"`
	Schedule         *Schedule          `json:"schedule,omitempty"`
	NegativeKeywords []string           `json:"negativeKeywords,omitempty"`
	Targeting        *AdvancedTargeting `json:"targeting,omitempty"`
}

// AdvancedTargeting narrows who the generated campaigns should address.
type AdvancedTargeting struct {
	Locations []string `json:"locations,omitempty"`
	AgeRanges []string `json:"ageRanges,omitempty"`
	Genders   []string `json:"genders,omitempty"`
	Devices   []string `json:"devices,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// IsZero reports whether no extended option was filled in.
func (o *ExtendedOptions) IsZero() bool {
	if o == nil {
		return true
	}
	return len(o.Sitelinks) == 0 && len(o.Callouts) == 0 && o.Schedule == nil &&
		len(o.NegativeKeywords) == 0 && o.Targeting == nil
}

// Validate mirrors the checks the wizard form performs before submission.
func (r CampaignRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.BusinessDescription) == "":
		return fieldError("business description is required")
	case strings.TrimSpace(r.TargetAudience) == "":
		return fieldError("target audience is required")
	case !r.Budget.IsPositive():
		return fieldError("budget must be greater than 0")
	case r.Budget.GreaterThan(MaxAmount):
		return fieldError("budget too large")
	case strings.TrimSpace(r.Goals) == "":
		return fieldError("campaign goals are required")
	case !strings.Contains(strings.TrimSpace(r.WebsiteURL), "."):
		return fieldError("website URL must contain a domain")
	}
	return nil
}

// BudgetMicros returns the daily budget in micro-units.
func (r CampaignRequest) BudgetMicros() int64 {
	return ToMicros(r.Budget)
}

func fieldError(msg string) error {
	return &requestError{msg: msg}
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Unwrap() error { return ErrInvalidRequest }

// ScrapedHints is optional best-effort text taken from the advertiser's
// website. It only biases the prompt and is never trusted as structured data.
type ScrapedHints struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Headlines   []string `json:"headlines,omitempty"`
	KeyPoints   []string `json:"keyPoints,omitempty"`
	Stats       []string `json:"stats,omitempty"`
}

// IsZero reports whether the hints carry no text at all.
func (h *ScrapedHints) IsZero() bool {
	if h == nil {
		return true
	}
	return h.Title == "" && h.Description == "" && len(h.Headlines) == 0 &&
		len(h.KeyPoints) == 0 && len(h.Stats) == 0
}

// ScrapedPage is the result of scraping a website.
type ScrapedPage struct {
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Headlines    []string  `json:"headlines"`
	Paragraphs   []string  `json:"paragraphs"`
	ListItems    []string  `json:"listItems"`
	Testimonials []string  `json:"testimonials"`
	Stats        []string  `json:"stats"`
	Timestamp    time.Time `json:"timestamp"`
}

// maxKeyPoints bounds how much page copy is forwarded into a prompt.
const maxKeyPoints = 8

// Hints condenses a scraped page into prompt hints. Paragraphs come first
// as key points, list items fill the remaining slots.
func (p ScrapedPage) Hints() *ScrapedHints {
	points := make([]string, 0, maxKeyPoints)
	for _, group := range [][]string{p.Paragraphs, p.ListItems} {
		for _, s := range group {
			if len(points) == maxKeyPoints {
				break
			}
			if s = strings.TrimSpace(s); s != "" {
				points = append(points, s)
			}
		}
	}
	return &ScrapedHints{
		Title:       p.Title,
		Description: p.Description,
		Headlines:   p.Headlines,
		KeyPoints:   points,
		Stats:       p.Stats,
	}
}
