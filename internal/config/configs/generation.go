package configs

import "adspark-ai-wizard/internal/core/campaign"

// Generation configures validation and retries of generated campaigns.
type Generation struct {
	// RetryOnInvalid is the number of extra attempts after a response
	// fails validation.
	RetryOnInvalid    int  `env:"RETRY_ON_INVALID" envDefault:"0"`
	EnforceCopyLength bool `env:"ENFORCE_COPY_LENGTH" envDefault:"false"`

	Full  Profile `envPrefix:"FULL_"`
	Quick Profile `envPrefix:"QUICK_"`
}

// Profile overrides the list sizes of a generation profile. Fields carry
// no envDefault; Load pre-fills them from the built-in profiles.
type Profile struct {
	PositiveKeywords int `env:"POSITIVE_KEYWORDS"`
	NegativeKeywords int `env:"NEGATIVE_KEYWORDS"`
	AdGroups         int `env:"AD_GROUPS"`
	AdGroupKeywords  int `env:"AD_GROUP_KEYWORDS"`
	Ads              int `env:"ADS"`
	Headlines        int `env:"HEADLINES"`
	Descriptions     int `env:"DESCRIPTIONS"`
	Sitelinks        int `env:"SITELINKS"`
	Callouts         int `env:"CALLOUTS"`
	SnippetValues    int `env:"SNIPPET_VALUES"`
	Interests        int `env:"INTERESTS"`

	MinPositiveKeywords int `env:"MIN_POSITIVE_KEYWORDS"`
	MinAds              int `env:"MIN_ADS"`
	MinHeadlines        int `env:"MIN_HEADLINES"`
	MinDescriptions     int `env:"MIN_DESCRIPTIONS"`
}

// ProfileFrom copies a campaign profile into its configuration form.
func ProfileFrom(p campaign.Profile) Profile {
	c, m := p.Requested, p.Required
	return Profile{
		PositiveKeywords:    c.PositiveKeywords,
		NegativeKeywords:    c.NegativeKeywords,
		AdGroups:            c.AdGroups,
		AdGroupKeywords:     c.AdGroupKeywords,
		Ads:                 c.Ads,
		Headlines:           c.Headlines,
		Descriptions:        c.Descriptions,
		Sitelinks:           c.Sitelinks,
		Callouts:            c.Callouts,
		SnippetValues:       c.SnippetValues,
		Interests:           c.Interests,
		MinPositiveKeywords: m.PositiveKeywords,
		MinAds:              m.Ads,
		MinHeadlines:        m.Headlines,
		MinDescriptions:     m.Descriptions,
	}
}

// Campaign converts the configuration back into a campaign profile.
func (p Profile) Campaign() campaign.Profile {
	return campaign.Profile{
		Requested: campaign.Counts{
			PositiveKeywords: p.PositiveKeywords,
			NegativeKeywords: p.NegativeKeywords,
			AdGroups:         p.AdGroups,
			AdGroupKeywords:  p.AdGroupKeywords,
			Ads:              p.Ads,
			Headlines:        p.Headlines,
			Descriptions:     p.Descriptions,
			Sitelinks:        p.Sitelinks,
			Callouts:         p.Callouts,
			SnippetValues:    p.SnippetValues,
			Interests:        p.Interests,
		},
		Required: campaign.Minimums{
			PositiveKeywords: p.MinPositiveKeywords,
			Ads:              p.MinAds,
			Headlines:        p.MinHeadlines,
			Descriptions:     p.MinDescriptions,
		},
	}
}
