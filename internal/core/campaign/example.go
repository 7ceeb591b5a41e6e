package campaign

import (
	"encoding/json"
	"fmt"

	"adspark-ai-wizard/internal/core/domain"
)

// Example bid values, in micro-units.
const (
	exampleBidMicros   = 1_200_000
	exampleGroupMicros = 1_000_000
)

// ExampleDocument renders a complete response that satisfies the profile.
// It is embedded verbatim in the system prompt, so it must stay a valid
// answer for the profile it was built from.
func ExampleDocument(p Profile, dailyBudgetMicros int64) []byte {
	doc := struct {
		Variants []domain.Variant `json:"variants"`
	}{Variants: make([]domain.Variant, 0, domain.VariantCount)}

	for i := 1; i <= domain.VariantCount; i++ {
		doc.Variants = append(doc.Variants, exampleVariant(p.Requested, i, dailyBudgetMicros))
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Marshalling plain structs of strings and numbers cannot fail.
		panic(err)
	}
	return out
}

func exampleVariant(c Counts, n int, dailyBudgetMicros int64) domain.Variant {
	keywords := placeholders(c.PositiveKeywords, "keyword %d")
	v := domain.Variant{
		Name:     fmt.Sprintf("Campaign Name %d", n),
		Strategy: "Two to three sentences describing the unique angle of this variant.",
		Budget:   domain.Budget{DailyMicros: dailyBudgetMicros, Pacing: "standard"},
		Bidding:  domain.Bidding{Strategy: "manual_cpc", BidMicros: exampleBidMicros},
		Keywords: domain.KeywordSet{
			Positive: keywords,
			Negative: placeholders(c.NegativeKeywords, "negative %d"),
		},
		Targeting: domain.Targeting{
			Locations: []string{"US", "CA"},
			Demographics: domain.Demographics{
				AgeRanges: []string{"25-34", "35-44"},
				Genders:   []string{"ALL"},
				Incomes:   []string{"INCOME_TIER_3"},
				Interests: placeholders(c.Interests, "interest %d"),
			},
			Devices: "all",
			Schedule: &domain.Schedule{
				StartHour: 8,
				EndHour:   20,
				Days:      []string{"MON", "TUE", "WED", "THU", "FRI"},
			},
		},
		Performance: &domain.PerformanceEstimate{
			SimulatedCTR:   0.08,
			EstImpressions: 3000,
			EstClicks:      240,
		},
	}

	v.AdGroups = make([]domain.AdGroup, 0, c.AdGroups)
	for g := 1; g <= c.AdGroups; g++ {
		subset := keywords
		if len(subset) > c.AdGroupKeywords {
			subset = subset[:c.AdGroupKeywords]
		}
		v.AdGroups = append(v.AdGroups, domain.AdGroup{
			Name:         fmt.Sprintf("Ad Group %d", g),
			Keywords:     subset,
			CPCBidMicros: exampleGroupMicros,
		})
	}

	v.Ads = make([]domain.Ad, 0, c.Ads)
	for a := 1; a <= c.Ads; a++ {
		v.Ads = append(v.Ads, domain.Ad{
			Headlines:    placeholders(c.Headlines, "Headline %d"),
			Descriptions: placeholders(c.Descriptions, "Description %d of at most 90 characters."),
			Paths:        []string{"path1", "path2"},
			Extensions: &domain.Extensions{
				Sitelinks: sitelinks(c.Sitelinks),
				Callouts:  placeholders(c.Callouts, "Callout %d"),
				Snippets: &domain.Snippet{
					Header: "Snippet Header",
					Values: placeholders(c.SnippetValues, "Value %d"),
				},
			},
		})
	}
	return v
}

func placeholders(n int, format string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i+1)
	}
	return out
}

func sitelinks(n int) []domain.Sitelink {
	out := make([]domain.Sitelink, n)
	for i := range out {
		out[i] = domain.Sitelink{
			Text: fmt.Sprintf("Link Text %d", i+1),
			URL:  fmt.Sprintf("https://example.com/page%d", i+1),
		}
	}
	return out
}
