// Package model holds the disruption domain entities and the rules that operate on them.
//
// Entities are built from JSON:API documents with Resolve (or ParseDocument for raw
// bytes) and can be turned back into wire resources with ToWireResource. A Disruption
// owns its revisions; RevisionFor selects the revision of a view and UniqueRevisions
// drops those that duplicate a revision further down the draft, ready, published chain.
//
// MatchesFilters is the predicate behind the disruption table filters.
package model
