package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind names a failure of the generation pipeline.
type ErrorKind string

const (
	KindConfiguration     ErrorKind = "configuration"
	KindRateLimited       ErrorKind = "rate_limited"
	KindQuotaExhausted    ErrorKind = "quota_exhausted"
	KindUnavailable       ErrorKind = "upstream_unavailable"
	KindEmptyCompletion   ErrorKind = "empty_completion"
	KindParseFailure      ErrorKind = "parse_failure"
	KindWrongVariantCount ErrorKind = "wrong_variant_count"
	KindIncompleteVariant ErrorKind = "incomplete_variant"
)

// ErrorClass groups kinds by who is at fault.
type ErrorClass string

const (
	ClassConfiguration ErrorClass = "configuration"
	ClassUpstream      ErrorClass = "upstream"
	ClassValidation    ErrorClass = "validation"
)

// Class returns the outcome class of the kind.
func (k ErrorKind) Class() ErrorClass {
	switch k {
	case KindConfiguration:
		return ClassConfiguration
	case KindRateLimited, KindQuotaExhausted, KindUnavailable, KindEmptyCompletion:
		return ClassUpstream
	default:
		return ClassValidation
	}
}

// User-facing messages of the provider throttling errors.
const (
	MsgRateLimited    = "Rate limit exceeded. Please try again in a moment."
	MsgQuotaExhausted = "AI credits depleted. Please contact support."
)

// GenerationError is the single failure value of the generation pipeline.
// Only the fields relevant to Kind are set.
type GenerationError struct {
	Kind    ErrorKind
	Message string

	// Raw is the untouched provider text (parse failures).
	Raw string
	// Actual is the number of variants received (wrong variant count).
	Actual int
	// Index and Reasons itemise an incomplete variant.
	Index   int
	Reasons []string

	Err error
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case KindIncompleteVariant:
		return fmt.Sprintf("variant %d incomplete: %s", e.Index, strings.Join(e.Reasons, "; "))
	case KindWrongVariantCount:
		return fmt.Sprintf("expected %d variants, got %d", VariantCount, e.Actual)
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is matches any GenerationError of the same kind.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	return ok && t.Kind == e.Kind
}

// Details returns diagnostic text for API responses.
func (e *GenerationError) Details() string {
	switch {
	case len(e.Reasons) > 0:
		return strings.Join(e.Reasons, "; ")
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Error()
}

// KindOf extracts the kind of a generation error, or "" for other errors.
func KindOf(err error) ErrorKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func NewConfigurationError(msg string) *GenerationError {
	return &GenerationError{Kind: KindConfiguration, Message: msg}
}

func NewRateLimitedError() *GenerationError {
	return &GenerationError{Kind: KindRateLimited, Message: MsgRateLimited}
}

func NewQuotaExhaustedError() *GenerationError {
	return &GenerationError{Kind: KindQuotaExhausted, Message: MsgQuotaExhausted}
}

func NewUnavailableError(msg string, err error) *GenerationError {
	return &GenerationError{Kind: KindUnavailable, Message: msg, Err: err}
}

func NewEmptyCompletionError() *GenerationError {
	return &GenerationError{Kind: KindEmptyCompletion, Message: "No response from AI"}
}

func NewParseFailure(raw, msg string, err error) *GenerationError {
	return &GenerationError{Kind: KindParseFailure, Message: msg, Raw: raw, Err: err}
}

func NewWrongVariantCount(actual int) *GenerationError {
	return &GenerationError{
		Kind:    KindWrongVariantCount,
		Message: "Invalid campaign structure from AI",
		Actual:  actual,
	}
}

func NewIncompleteVariant(index int, reasons []string) *GenerationError {
	return &GenerationError{
		Kind:    KindIncompleteVariant,
		Message: "Generated campaign is incomplete",
		Index:   index,
		Reasons: reasons,
	}
}
