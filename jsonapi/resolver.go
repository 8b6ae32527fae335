package jsonapi

import (
	"encoding/json"
)

// Builder turns one raw resource into a domain object, looking related
// resources up in the side table.
type Builder func(res Resource, included SideTable) (any, error)

// Result is the resolved top-level data of a document
type Result struct {
	// Collection is true when the document's data was an array
	Collection bool
	Items      []any
}

// One returns the single resolved object of a non-collection result
func (r Result) One() any {
	if r.Collection || len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}

// Resolve builds the domain objects of doc.
//
// Included resources are built twice. The first pass uses an empty side table so
// every entry exists; the second pass rebuilds each entry against that table,
// overwriting it in place, which lets included resources reference each other.
// The top-level data is then built against the complete table. Any failure fails
// the whole document.
func Resolve(doc Document, build Builder) (Result, error) {
	included := SideTable{}
	if !isEmpty(doc.Included) {
		resources, err := decodeIncluded(doc.Included)
		if err != nil {
			return Result{}, err
		}
		for _, res := range resources {
			obj, err := build(res, SideTable{})
			if err != nil {
				return Result{}, err
			}
			included[Key(res.Type, res.ID)] = obj
		}
		for _, res := range resources {
			obj, err := build(res, included)
			if err != nil {
				return Result{}, err
			}
			included[Key(res.Type, res.ID)] = obj
		}
	}

	if isEmpty(doc.Data) {
		return Result{}, &ParseError{Reason: "missing data", Err: ErrMalformedDocument}
	}

	if isArray(doc.Data) {
		var raws []json.RawMessage
		if err := json.Unmarshal(doc.Data, &raws); err != nil {
			return Result{}, &ParseError{Reason: err.Error(), Err: ErrMalformedDocument}
		}
		items := make([]any, 0, len(raws))
		for _, raw := range raws {
			obj, err := buildRaw(raw, included, build)
			if err != nil {
				return Result{}, err
			}
			items = append(items, obj)
		}
		return Result{Collection: true, Items: items}, nil
	}

	obj, err := buildRaw(doc.Data, included, build)
	if err != nil {
		return Result{}, err
	}
	return Result{Items: []any{obj}}, nil
}

func decodeIncluded(raw json.RawMessage) ([]Resource, error) {
	if !isArray(raw) {
		return nil, &ParseError{Reason: "included is not an array", Err: ErrMalformedDocument}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, &ParseError{Reason: err.Error(), Err: ErrMalformedDocument}
	}
	resources := make([]Resource, 0, len(raws))
	for _, r := range raws {
		res, err := DecodeResource(r)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func buildRaw(raw json.RawMessage, included SideTable, build Builder) (any, error) {
	res, err := DecodeResource(raw)
	if err != nil {
		return nil, err
	}
	return build(res, included)
}

// Related resolves the named relationship of res against the side table.
// References missing from the table, or of a different Go type, are dropped.
func Related[T any](res Resource, name string, included SideTable) []T {
	rel, ok := res.Relationships[name]
	if !ok {
		return []T{}
	}
	ids := rel.Identifiers()
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		obj, ok := included[Key(id.Type, id.ID)]
		if !ok {
			continue
		}
		if v, ok := obj.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// RelatedOne resolves a to-one relationship; ok is false when it is empty or unresolved.
func RelatedOne[T any](res Resource, name string, included SideTable) (T, bool) {
	items := Related[T](res, name, included)
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}
