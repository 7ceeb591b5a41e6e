package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// CampaignStatusDraft is the status of a campaign saved from the wizard.
const CampaignStatusDraft = "draft"

var ErrCampaignNotFound = errors.New("campaign not found")

// SavedCampaign is a variant the user picked and saved. Budgets are stored
// in micro-units.
type SavedCampaign struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Status            string          `json:"status"` // draft, active, paused
	DailyBudgetMicros int64           `json:"budget_daily_micros"`
	TargetAudience    TargetAudience  `json:"target_audience"`
	Keywords          KeywordSet      `json:"keywords"`
	Bidding           Bidding         `json:"bidding"`
	AdGroups          []AdGroup       `json:"ad_groups"`
	Ads               []Ad            `json:"ads"`
	Metrics           CampaignMetrics `json:"metrics"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TargetAudience combines the free-text audience with the variant targeting.
type TargetAudience struct {
	Description string `json:"description"`
	Targeting
}

// MarshalJSON flattens the embedded targeting next to the description.
func (t TargetAudience) MarshalJSON() ([]byte, error) {
	type flat struct {
		Description  string       `json:"description"`
		Locations    []string     `json:"locations"`
		Demographics Demographics `json:"demographics"`
		Devices      string       `json:"devices"`
		Schedule     *Schedule    `json:"schedule,omitempty"`
	}
	return json.Marshal(flat{
		Description:  t.Description,
		Locations:    t.Locations,
		Demographics: t.Demographics,
		Devices:      t.Devices,
		Schedule:     t.Schedule,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *TargetAudience) UnmarshalJSON(data []byte) error {
	var aux struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var tgt Targeting
	if err := json.Unmarshal(data, &tgt); err != nil {
		return err
	}
	t.Description = aux.Description
	t.Targeting = tgt
	return nil
}

// NewSavedCampaign builds the record persisted when a variant is saved. The
// metrics start at zero.
func NewSavedCampaign(userID string, req CampaignRequest, v Variant) SavedCampaign {
	budget := v.Budget.DailyMicros
	if budget == 0 {
		budget = req.BudgetMicros()
	}
	return SavedCampaign{
		UserID:            userID,
		Name:              v.Name,
		Description:       v.Strategy,
		Status:            CampaignStatusDraft,
		DailyBudgetMicros: budget,
		TargetAudience: TargetAudience{
			Description: req.TargetAudience,
			Targeting:   v.Targeting,
		},
		Keywords: v.Keywords,
		Bidding:  v.Bidding,
		AdGroups: v.AdGroups,
		Ads:      v.Ads,
	}
}
