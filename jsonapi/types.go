package jsonapi

import (
	"bytes"
	"encoding/json"
)

// Document is a JSON:API top-level object. Data holds one resource or an array of resources.
type Document struct {
	Data     json.RawMessage `json:"data"`
	Included json.RawMessage `json:"included,omitempty"`
}

// Resource is a single typed resource object
type Resource struct {
	ID            string                  `json:"id,omitempty"`
	Type          string                  `json:"type"`
	Attributes    json.RawMessage         `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Relationship holds null, a single identifier, or an array of identifiers.
// On the write path Data may instead carry full inline resources.
type Relationship struct {
	Data json.RawMessage `json:"data"`
}

// Identifier references a resource by type and id
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// SideTable maps "{type}-{id}" to an already resolved domain object
type SideTable map[string]any

// Key builds the side-table key for a resource reference
func Key(typ, id string) string {
	return typ + "-" + id
}

// ParseDocument decodes raw JSON into a Document
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if !isObject(data) {
		return Document{}, ErrMalformedDocument
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, &ParseError{Reason: err.Error(), Err: ErrMalformedDocument}
	}
	return doc, nil
}

// DecodeResource decodes one raw resource object; the type tag is mandatory.
func DecodeResource(raw json.RawMessage) (Resource, error) {
	if !isObject(raw) {
		return Resource{}, &ParseError{Reason: "resource is not an object", Err: ErrMalformedResource}
	}
	var res Resource
	if err := json.Unmarshal(raw, &res); err != nil {
		return Resource{}, &ParseError{Reason: err.Error(), Err: ErrMalformedResource}
	}
	if res.Type == "" {
		return Resource{}, &ParseError{ID: res.ID, Reason: "missing type", Err: ErrMalformedResource}
	}
	return res, nil
}

// Identifiers returns the references held by the relationship.
// Null or absent data yields none; entries that are not identifier objects are skipped.
func (r Relationship) Identifiers() []Identifier {
	if isEmpty(r.Data) {
		return nil
	}
	if isArray(r.Data) {
		var raws []json.RawMessage
		if err := json.Unmarshal(r.Data, &raws); err != nil {
			return nil
		}
		out := make([]Identifier, 0, len(raws))
		for _, raw := range raws {
			if id, ok := decodeIdentifier(raw); ok {
				out = append(out, id)
			}
		}
		return out
	}
	if id, ok := decodeIdentifier(r.Data); ok {
		return []Identifier{id}
	}
	return nil
}

func decodeIdentifier(raw json.RawMessage) (Identifier, bool) {
	if !isObject(raw) {
		return Identifier{}, false
	}
	var id Identifier
	if err := json.Unmarshal(raw, &id); err != nil {
		return Identifier{}, false
	}
	return id, true
}

func trimmed(raw []byte) []byte {
	return bytes.TrimSpace(raw)
}

func isEmpty(raw []byte) bool {
	t := trimmed(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func isArray(raw []byte) bool {
	t := trimmed(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw []byte) bool {
	t := trimmed(raw)
	return len(t) > 0 && t[0] == '{'
}
