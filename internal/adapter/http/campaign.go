package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
)

// generateRequest is the body of the first wizard step. Presence checks
// are left to domain.CampaignRequest.Validate so that a missing API key is
// reported before an incomplete form.
type generateRequest struct {
	BusinessDescription string                  `json:"businessDescription" validate:"max=5000"`
	TargetAudience      string                  `json:"targetAudience" validate:"max=2000"`
	Budget              decimal.Decimal         `json:"budget"`
	Currency            string                  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Goals               string                  `json:"goals" validate:"max=2000"`
	WebsiteURL          string                  `json:"websiteUrl" validate:"max=2048"`
	ScrapedData         *domain.ScrapedHints    `json:"scrapedData,omitempty"`
	QuickMode           bool                    `json:"quickMode,omitempty"`
	Extended            *domain.ExtendedOptions `json:"extended,omitempty"`
}

func (g generateRequest) toDomain() domain.CampaignRequest {
	return domain.CampaignRequest{
		BusinessDescription: g.BusinessDescription,
		TargetAudience:      g.TargetAudience,
		Budget:              g.Budget,
		Currency:            g.Currency,
		Goals:               g.Goals,
		WebsiteURL:          g.WebsiteURL,
		Extended:            g.Extended,
		Scraped:             g.ScrapedData,
		QuickMode:           g.QuickMode,
	}
}

type generateResponse struct {
	Variants []domain.Variant `json:"variants"`
}

// handleGenerate runs one generation and returns exactly three variants.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	variants, err := h.svc.Generate.Generate(r.Context(), body.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, generateResponse{Variants: variants})
}

// saveCampaignRequest carries the original form and the variant the user
// picked. The variant is accepted in either schema revision.
type saveCampaignRequest struct {
	Request generateRequest `json:"request"`
	Variant json.RawMessage `json:"variant" validate:"required"`
}

func (h *Handler) handleSaveCampaign(w http.ResponseWriter, r *http.Request) {
	var body saveCampaignRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, _, err := campaign.Normalize(body.Variant)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: variant: %w", domain.ErrInvalidRequest, err))
		return
	}
	saved, err := h.svc.Campaigns.SaveCampaign(r.Context(), UserID(r.Context()), body.Request.toDomain(), v)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns.ListCampaigns(r.Context(), UserID(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}
