// Package store defines how the browser reads a dictionary.
package store

import "dicbrowse/internal/domain"

// Opener opens dictionaries by name
type Opener interface {
	// Open returns a handle for the named dictionary. Errors wrap
	// domain.ErrStoreNotFound or domain.ErrStoreIO.
	Open(name string) (Handle, error)
}

// Handle is an open dictionary. It is owned by a single caller.
type Handle interface {
	// ListWords returns every word in canonical order. The order is stable
	// for the lifetime of the handle.
	ListWords() ([]string, error)

	// LookupPrefix returns the first record, in canonical order, whose word
	// starts with query. Matching is case-sensitive. When nothing matches it
	// returns domain.NotFoundEntry() and false.
	LookupPrefix(query string) (domain.WordEntry, bool, error)

	// Define returns the record at a canonical position
	Define(position int) (domain.WordEntry, bool, error)

	Close() error
}
