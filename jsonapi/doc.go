// Package jsonapi reads and writes JSON:API documents without knowing the domain.
//
// Reading is a two-step affair: Resolve walks a Document's included side table
// and top-level data, handing each raw Resource to a caller-supplied Builder
// that dispatches on the resource type. Builders look up relationships with
// Related, which drops dangling references instead of failing.
//
//	doc, err := jsonapi.ParseDocument(body)
//	result, err := jsonapi.Resolve(doc, build)
//
// Failures are reported as *ParseError wrapping one of ErrMalformedDocument,
// ErrMalformedResource, ErrUnknownType or ErrInvalidAttribute. A single bad
// resource anywhere fails the whole document.
//
// Error responses ({"errors": [...]}) are read with ErrorDetails.
package jsonapi
