package campaign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"adspark-ai-wizard/internal/core/domain"
)

// Shape identifies which revision of the variant schema a payload follows.
type Shape int

const (
	// ShapeStructured uses keywords.positive/negative, ads and *_micros.
	ShapeStructured Shape = iota
	// ShapeLegacy uses a flat keyword array, ad_variations and bid_amount
	// in currency units.
	ShapeLegacy
)

func (s Shape) String() string {
	if s == ShapeLegacy {
		return "legacy"
	}
	return "structured"
}

type rawVariant struct {
	CampaignName     string           `json:"campaign_name"`
	Name             string           `json:"name"`
	Strategy         string           `json:"strategy"`
	Budget           json.RawMessage  `json:"budget"`
	DailyBudget      *decimal.Decimal `json:"daily_budget"`
	Bidding          rawBidding       `json:"bidding"`
	Keywords         json.RawMessage  `json:"keywords"`
	NegativeKeywords []string         `json:"negative_keywords"`
	Targeting        rawTargeting     `json:"targeting"`
	AdGroups         []rawAdGroup     `json:"ad_groups"`
	Ads              []domain.Ad      `json:"ads"`
	AdVariations     []domain.Ad      `json:"ad_variations"`
	Performance      *rawPerformance  `json:"performance_estimate"`
}

type rawBudget struct {
	DailyMicros *decimal.Decimal `json:"daily_micros"`
	Daily       *decimal.Decimal `json:"daily"`
	Pacing      string           `json:"pacing"`
}

type rawBidding struct {
	Strategy         string           `json:"strategy"`
	InitialBidMicros *decimal.Decimal `json:"initial_bid_micros"`
	BidMicros        *decimal.Decimal `json:"bid_micros"`
	BidAmount        *decimal.Decimal `json:"bid_amount"`
}

type rawTargeting struct {
	Locations    stringList       `json:"locations"`
	Demographics rawDemographics  `json:"demographics"`
	Devices      stringList       `json:"devices"`
	Schedule     *domain.Schedule `json:"schedule"`
}

type rawDemographics struct {
	AgeRanges stringList `json:"age_ranges"`
	Age       stringList `json:"age"`
	Genders   stringList `json:"genders"`
	Gender    stringList `json:"gender"`
	Incomes   stringList `json:"incomes"`
	Interests stringList `json:"interests"`
}

type rawAdGroup struct {
	Name           string           `json:"name"`
	KeywordsSubset stringList       `json:"keywords_subset"`
	Keywords       stringList       `json:"keywords"`
	CPCBidMicros   *decimal.Decimal `json:"cpc_bid_micros"`
	CPCBid         *decimal.Decimal `json:"cpc_bid"`
}

type rawPerformance struct {
	SimulatedCTR   decimal.Decimal `json:"simulated_ctr"`
	EstImpressions decimal.Decimal `json:"est_impressions"`
	EstClicks      decimal.Decimal `json:"est_clicks"`
}

// stringList accepts either a JSON string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*l = stringList{s}
		}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Normalize decodes one variant of either schema revision into the
// canonical representation.
func Normalize(raw json.RawMessage) (domain.Variant, Shape, error) {
	var rv rawVariant
	if err := json.Unmarshal(raw, &rv); err != nil {
		return domain.Variant{}, ShapeStructured, err
	}

	shape := ShapeStructured
	v := domain.Variant{
		Name:     firstNonBlank(rv.CampaignName, rv.Name),
		Strategy: strings.TrimSpace(rv.Strategy),
	}

	budget, err := normalizeBudget(rv.Budget, rv.DailyBudget)
	if err != nil {
		return domain.Variant{}, shape, fmt.Errorf("budget: %w", err)
	}
	v.Budget = budget

	v.Bidding = domain.Bidding{Strategy: rv.Bidding.Strategy}
	switch b := rv.Bidding; {
	case b.InitialBidMicros != nil:
		v.Bidding.BidMicros, err = domain.WholeMicros(*b.InitialBidMicros)
	case b.BidMicros != nil:
		v.Bidding.BidMicros, err = domain.WholeMicros(*b.BidMicros)
	case b.BidAmount != nil:
		v.Bidding.BidMicros, err = domain.AmountToMicros(*b.BidAmount)
		shape = ShapeLegacy
	}
	if err != nil {
		return domain.Variant{}, shape, fmt.Errorf("bidding: %w", err)
	}

	keywords, legacy, err := normalizeKeywords(rv.Keywords, rv.NegativeKeywords)
	if err != nil {
		return domain.Variant{}, shape, fmt.Errorf("keywords: %w", err)
	}
	if legacy {
		shape = ShapeLegacy
	}
	v.Keywords = keywords

	v.Targeting = normalizeTargeting(rv.Targeting)

	v.AdGroups = make([]domain.AdGroup, 0, len(rv.AdGroups))
	for i, g := range rv.AdGroups {
		group := domain.AdGroup{Name: g.Name, Keywords: g.KeywordsSubset}
		if group.Keywords == nil {
			group.Keywords = g.Keywords
		}
		switch {
		case g.CPCBidMicros != nil:
			group.CPCBidMicros, err = domain.WholeMicros(*g.CPCBidMicros)
		case g.CPCBid != nil:
			group.CPCBidMicros, err = domain.AmountToMicros(*g.CPCBid)
		}
		if err != nil {
			return domain.Variant{}, shape, fmt.Errorf("ad_groups[%d]: %w", i, err)
		}
		v.AdGroups = append(v.AdGroups, group)
	}

	v.Ads = rv.Ads
	if v.Ads == nil && rv.AdVariations != nil {
		v.Ads = rv.AdVariations
		shape = ShapeLegacy
	}

	if p := rv.Performance; p != nil {
		ctr, _ := p.SimulatedCTR.Float64()
		v.Performance = &domain.PerformanceEstimate{
			SimulatedCTR:   ctr,
			EstImpressions: p.EstImpressions.Round(0).IntPart(),
			EstClicks:      p.EstClicks.Round(0).IntPart(),
		}
	}
	return v, shape, nil
}

func normalizeBudget(raw json.RawMessage, legacyDaily *decimal.Decimal) (domain.Budget, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		if legacyDaily != nil {
			m, err := domain.AmountToMicros(*legacyDaily)
			return domain.Budget{DailyMicros: m}, err
		}
		return domain.Budget{}, nil
	case raw[0] == '{':
		var rb rawBudget
		if err := json.Unmarshal(raw, &rb); err != nil {
			return domain.Budget{}, err
		}
		b := domain.Budget{Pacing: rb.Pacing}
		var err error
		switch {
		case rb.DailyMicros != nil:
			b.DailyMicros, err = domain.WholeMicros(*rb.DailyMicros)
		case rb.Daily != nil:
			b.DailyMicros, err = domain.AmountToMicros(*rb.Daily)
		}
		return b, err
	}
	// A bare number is a daily amount in currency units.
	var amount decimal.Decimal
	if err := json.Unmarshal(raw, &amount); err != nil {
		return domain.Budget{}, err
	}
	m, err := domain.AmountToMicros(amount)
	return domain.Budget{DailyMicros: m}, err
}

func normalizeKeywords(raw json.RawMessage, negatives []string) (domain.KeywordSet, bool, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return domain.KeywordSet{Negative: negatives}, false, nil
	case raw[0] == '[':
		var positive stringList
		if err := json.Unmarshal(raw, &positive); err != nil {
			return domain.KeywordSet{}, true, err
		}
		return domain.KeywordSet{Positive: positive, Negative: negatives}, true, nil
	}
	var set struct {
		Positive stringList `json:"positive"`
		Negative stringList `json:"negative"`
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return domain.KeywordSet{}, false, err
	}
	ks := domain.KeywordSet{Positive: set.Positive, Negative: set.Negative}
	if ks.Negative == nil {
		ks.Negative = negatives
	}
	return ks, false, nil
}

func normalizeTargeting(rt rawTargeting) domain.Targeting {
	d := rt.Demographics
	t := domain.Targeting{
		Locations: rt.Locations,
		Demographics: domain.Demographics{
			AgeRanges: d.AgeRanges,
			Genders:   d.Genders,
			Incomes:   d.Incomes,
			Interests: d.Interests,
		},
		Devices:  strings.Join(rt.Devices, ","),
		Schedule: rt.Schedule,
	}
	if t.Demographics.AgeRanges == nil {
		t.Demographics.AgeRanges = d.Age
	}
	if t.Demographics.Genders == nil {
		t.Demographics.Genders = d.Gender
	}
	return t
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
