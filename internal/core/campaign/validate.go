package campaign

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"adspark-ai-wizard/internal/core/domain"
)

// Rules are the acceptance criteria applied to generated variants.
type Rules struct {
	Minimums
	// EnforceCopyLength rejects headlines and descriptions longer than the
	// Google Ads limits.
	EnforceCopyLength bool
}

// Validate checks that doc holds exactly three acceptable variants and
// returns them in canonical form. Every deficiency of the first invalid
// variant is reported at once.
func Validate(doc Document, rules Rules) ([]domain.Variant, error) {
	raw, ok := doc["variants"]
	var items []json.RawMessage
	if !ok || json.Unmarshal(raw, &items) != nil || items == nil {
		return nil, domain.NewParseFailure(string(raw), "Invalid campaign structure from AI",
			fmt.Errorf("response has no variants array"))
	}
	if len(items) != domain.VariantCount {
		return nil, domain.NewWrongVariantCount(len(items))
	}

	variants := make([]domain.Variant, 0, len(items))
	for i, item := range items {
		v, _, err := Normalize(item)
		if err != nil {
			return nil, domain.NewIncompleteVariant(i, []string{"malformed variant: " + err.Error()})
		}
		if reasons := CheckVariant(v, rules); len(reasons) > 0 {
			return nil, domain.NewIncompleteVariant(i, reasons)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// CheckVariant lists every rule the variant breaks; nil means acceptable.
func CheckVariant(v domain.Variant, rules Rules) []string {
	var reasons []string
	if strings.TrimSpace(v.Name) == "" {
		reasons = append(reasons, "name: missing")
	}
	if strings.TrimSpace(v.Strategy) == "" {
		reasons = append(reasons, "strategy: missing")
	}
	if n := countNonBlank(v.Keywords.Positive); n < rules.PositiveKeywords {
		reasons = append(reasons, fmt.Sprintf("keywords: need %d+ positive, got %d", rules.PositiveKeywords, n))
	}
	if v.Keywords.Negative == nil {
		reasons = append(reasons, "keywords: negative list missing")
	}
	if n := len(v.Ads); n < rules.Ads {
		reasons = append(reasons, fmt.Sprintf("ads: need %d+, got %d", rules.Ads, n))
	}
	for i, ad := range v.Ads {
		if n := countNonBlank(ad.Headlines); n < rules.Headlines {
			reasons = append(reasons, fmt.Sprintf("ad%d: need %d+ headlines, got %d", i, rules.Headlines, n))
		}
		if n := countNonBlank(ad.Descriptions); n < rules.Descriptions {
			reasons = append(reasons, fmt.Sprintf("ad%d: need %d+ descriptions, got %d", i, rules.Descriptions, n))
		}
		if !rules.EnforceCopyLength {
			continue
		}
		for j, h := range ad.Headlines {
			if utf8.RuneCountInString(h) > domain.MaxHeadlineLength {
				reasons = append(reasons, fmt.Sprintf("ad%d: headline %d exceeds %d chars", i, j, domain.MaxHeadlineLength))
			}
		}
		for j, d := range ad.Descriptions {
			if utf8.RuneCountInString(d) > domain.MaxDescriptionLength {
				reasons = append(reasons, fmt.Sprintf("ad%d: description %d exceeds %d chars", i, j, domain.MaxDescriptionLength))
			}
		}
	}
	return reasons
}

func countNonBlank(items []string) int {
	n := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
