package jsonapi

import (
	"encoding/json"
)

// NewResource builds a resource for the write path. Attributes are marshalled as given.
func NewResource(typ, id string, attributes map[string]any, relationships map[string]Relationship) (Resource, error) {
	res := Resource{ID: id, Type: typ, Relationships: relationships}
	if attributes != nil {
		raw, err := json.Marshal(attributes)
		if err != nil {
			return Resource{}, err
		}
		res.Attributes = raw
	}
	return res, nil
}

// Inline embeds full resource objects as relationship data. The read path never
// produces this shape; it is what the backend expects on create and update.
func Inline(resources []Resource) (Relationship, error) {
	if resources == nil {
		resources = []Resource{}
	}
	raw, err := json.Marshal(resources)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{Data: raw}, nil
}

// SingleDocument wraps one resource in a top-level document
func SingleDocument(res Resource) (Document, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return Document{}, err
	}
	return Document{Data: raw}, nil
}
