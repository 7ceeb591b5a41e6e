package campaign

import (
	"encoding/json"
	"errors"
	"strings"

	"adspark-ai-wizard/internal/core/domain"
)

const fence = "```"

var errNoObject = errors.New("no JSON object found")

// Document is a decoded top-level JSON object whose members are decoded
// lazily by the validator.
type Document map[string]json.RawMessage

// Extract recovers the JSON object from free-form provider text. Fenced
// blocks (optionally tagged json) are unwrapped; when that does not leave
// a JSON object, the text between the first '{' and the last '}' is used.
// Failures carry the raw text.
func Extract(raw string) (Document, error) {
	text := strings.TrimSpace(raw)
	candidate := stripFences(text)
	if !strings.HasPrefix(candidate, "{") || !json.Valid([]byte(candidate)) {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end < start {
			return nil, domain.NewParseFailure(raw, "Failed to parse AI response", errNoObject)
		}
		candidate = text[start : end+1]
	}

	var doc Document
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, domain.NewParseFailure(raw, "Failed to parse AI response", err)
	}
	return doc, nil
}

func stripFences(s string) string {
	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}
