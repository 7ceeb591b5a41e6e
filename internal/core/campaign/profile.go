// Package campaign holds the campaign-generation contract: the prompt sent
// to the completion provider, the extraction of the JSON document from the
// provider text, and the shape and cardinality checks applied to it.
package campaign

import "fmt"

// Counts are the list sizes the prompt asks the model to produce.
type Counts struct {
	PositiveKeywords int
	NegativeKeywords int
	AdGroups         int
	AdGroupKeywords  int
	Ads              int
	Headlines        int
	Descriptions     int
	Sitelinks        int
	Callouts         int
	SnippetValues    int
	Interests        int
}

// Minimums are the list sizes a response must reach to be accepted.
type Minimums struct {
	PositiveKeywords int
	Ads              int
	Headlines        int
	Descriptions     int
}

// Profile pairs what is asked for with what is accepted. Asking for more
// than the minimum leaves headroom for truncated output.
type Profile struct {
	Requested Counts
	Required  Minimums
}

// DefaultProfile is the full wizard profile. The minimums are the most
// permissive ones the generator has ever shipped with.
func DefaultProfile() Profile {
	return Profile{
		Requested: Counts{
			PositiveKeywords: 15,
			NegativeKeywords: 8,
			AdGroups:         3,
			AdGroupKeywords:  5,
			Ads:              3,
			Headlines:        15,
			Descriptions:     4,
			Sitelinks:        4,
			Callouts:         4,
			SnippetValues:    5,
			Interests:        10,
		},
		Required: Minimums{
			PositiveKeywords: 5,
			Ads:              1,
			Headlines:        5,
			Descriptions:     2,
		},
	}
}

// QuickProfile trades breadth for latency.
func QuickProfile() Profile {
	return Profile{
		Requested: Counts{
			PositiveKeywords: 10,
			NegativeKeywords: 5,
			AdGroups:         2,
			AdGroupKeywords:  3,
			Ads:              1,
			Headlines:        10,
			Descriptions:     3,
			Sitelinks:        2,
			Callouts:         2,
			SnippetValues:    3,
			Interests:        5,
		},
		Required: DefaultProfile().Required,
	}
}

// Check rejects profiles that would ask for less than they require.
func (p Profile) Check() error {
	pairs := []struct {
		name           string
		requested, min int
	}{
		{"positive keywords", p.Requested.PositiveKeywords, p.Required.PositiveKeywords},
		{"ads", p.Requested.Ads, p.Required.Ads},
		{"headlines", p.Requested.Headlines, p.Required.Headlines},
		{"descriptions", p.Requested.Descriptions, p.Required.Descriptions},
	}
	for _, pair := range pairs {
		if pair.min < 0 {
			return fmt.Errorf("minimum %s must not be negative", pair.name)
		}
		if pair.requested < pair.min {
			return fmt.Errorf("requested %s (%d) below minimum (%d)", pair.name, pair.requested, pair.min)
		}
	}
	if p.Requested.NegativeKeywords < 1 {
		return fmt.Errorf("requested negative keywords must be at least 1")
	}
	return nil
}
