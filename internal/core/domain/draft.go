package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrInvalidPayload = errors.New("draft payload must be a JSON object")
)

// Draft is a snapshot of in-progress wizard state, optionally including the
// generated variants. The payload is opaque to the store.
type Draft struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Payload   json.RawMessage `json:"campaign_data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CheckPayload accepts only JSON objects as draft payloads.
func CheckPayload(payload json.RawMessage) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil || obj == nil {
		return ErrInvalidPayload
	}
	return nil
}
