package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"adspark-ai-wizard/internal/core/domain"
)

type exchangeRequest struct {
	Code string `json:"code" validate:"required"`
}

type reportRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

func (h *Handler) handleAuthURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.Reports.AuthURL(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handler) handleExchange(w http.ResponseWriter, r *http.Request) {
	var body exchangeRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := h.svc.Reports.ExchangeCode(r.Context(), body.Code)
	if err != nil {
		h.writeGoogleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, token)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var body reportRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.svc.Reports.Report(r.Context(), body.AccessToken)
	if err != nil {
		h.writeGoogleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// writeGoogleError reports failures of the Google APIs as 400: they are
// almost always caused by an expired token or a bad code.
func (h *Handler) writeGoogleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrAdsNotConfigured) || errors.Is(err, domain.ErrInvalidRequest) {
		h.writeError(w, r, err)
		return
	}
	h.logger.Warn("google ads request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	writeMessage(w, http.StatusBadRequest, err.Error())
}
