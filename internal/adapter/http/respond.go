package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"adspark-ai-wizard/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// decode reads a JSON body into dst and runs the validate tags on it.
// Failures are reported as domain.ErrInvalidRequest.
func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidRequest)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return nil
}

// writeError translates use-case errors into HTTP responses. This is the
// only place where error kinds meet status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		switch ge.Kind {
		case domain.KindRateLimited:
			writeMessage(w, http.StatusTooManyRequests, ge.Message)
		case domain.KindQuotaExhausted:
			writeMessage(w, http.StatusPaymentRequired, ge.Message)
		default:
			h.logger.Error("generation failed",
				slog.String("kind", string(ge.Kind)),
				slog.Any("error", err))
			h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: ge.Message, Details: ge.Details()})
		}
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidPayload):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDraftNotFound), errors.Is(err, domain.ErrCampaignNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAdsNotConfigured):
		writeMessage(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
