package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type draftRequest struct {
	CampaignData json.RawMessage `json:"campaign_data" validate:"required"`
}

func (h *Handler) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.Drafts.ListDrafts(r.Context(), UserID(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, drafts)
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var body draftRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.Drafts.CreateDraft(r.Context(), UserID(r.Context()), body.CampaignData)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var body draftRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.Drafts.UpdateDraft(r.Context(), chi.URLParam(r, "id"), UserID(r.Context()), body.CampaignData)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Drafts.DeleteDraft(r.Context(), chi.URLParam(r, "id"), UserID(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
