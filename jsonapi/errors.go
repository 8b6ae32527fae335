package jsonapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrMalformedResource = errors.New("malformed resource")
	ErrUnknownType       = errors.New("unknown resource type")
	ErrInvalidAttribute  = errors.New("invalid attribute")
)

// ParseError reports why a document or one of its resources could not be resolved.
// Err is one of the sentinel errors above.
type ParseError struct {
	Type   string
	ID     string
	Reason string
	Err    error
}

// NewParseError builds a ParseError located at res
func NewParseError(res Resource, err error, reason string) *ParseError {
	return &ParseError{Type: res.Type, ID: res.ID, Reason: reason, Err: err}
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Type != "" || e.ID != "" {
		msg = fmt.Sprintf("%s (%s %q)", msg, e.Type, e.ID)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorDetails extracts the human-readable detail strings from a JSON:API error body
// ({"errors": [{"detail": "..."}]}). Malformed shapes are skipped, never reported.
func ErrorDetails(body []byte) []string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return []string{}
	}
	top, ok := payload.(map[string]any)
	if !ok {
		return []string{}
	}
	list, ok := top["errors"].([]any)
	if !ok {
		return []string{}
	}
	details := make([]string, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if detail, ok := obj["detail"].(string); ok {
			details = append(details, detail)
		}
	}
	return details
}
