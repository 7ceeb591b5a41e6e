package db

import (
	"context"
	"encoding/json"
	"fmt"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// DemoUser owns the seeded records.
const DemoUser = "demo-user"

// Seed inserts demo drafts and saved campaigns through the repositories,
// so it works against either store.
func Seed(ctx context.Context, drafts port.DraftRepository, campaigns port.CampaignRepository) error {
	businesses := []struct {
		description, audience, goals, url string
		budget                            int64
	}{
		{"We sell eco-friendly yoga mats", "health-conscious millennials", "increase online sales", "https://greenmats.example.com", 50},
		{"Family-run Italian bistro", "local diners aged 25-55", "more weekend reservations", "https://bistro.example.com", 30},
		{"B2B payroll software for small teams", "HR managers at companies under 50 staff", "generate demo requests", "https://payroll.example.com", 120},
	}

	profile := campaign.DefaultProfile()

	for i, b := range businesses {
		payload, err := json.Marshal(map[string]any{
			"step":                1,
			"businessDescription": b.description,
			"targetAudience":      b.audience,
			"budget":              b.budget,
			"goals":               b.goals,
			"websiteUrl":          b.url,
		})
		if err != nil {
			return err
		}
		if _, err = drafts.CreateDraft(ctx, DemoUser, payload); err != nil {
			return fmt.Errorf("seed draft %d: %w", i+1, err)
		}

		var example struct {
			Variants []domain.Variant `json:"variants"`
		}
		micros := b.budget * domain.MicrosPerUnit
		if err = json.Unmarshal(campaign.ExampleDocument(profile, micros), &example); err != nil {
			return err
		}
		v := example.Variants[i%len(example.Variants)]
		v.Name = fmt.Sprintf("%s - demo", b.description)
		c := domain.NewSavedCampaign(DemoUser, domain.CampaignRequest{TargetAudience: b.audience}, v)
		if err = campaigns.SaveCampaign(ctx, &c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
	}
	return nil
}
