package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"adspark-ai-wizard/internal/adapter/scraper"
)

type scrapeRequest struct {
	URL string `json:"url" validate:"required"`
}

func (h *Handler) handleScrape(w http.ResponseWriter, r *http.Request) {
	var body scrapeRequest
	if err := h.decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Scraper.Scrape(r.Context(), body.URL)
	if err != nil {
		if errors.Is(err, scraper.ErrFetch) {
			h.logger.Warn("scrape failed", slog.String("url", body.URL), slog.Any("error", err))
			writeMessage(w, http.StatusBadGateway, err.Error())
			return
		}
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}
