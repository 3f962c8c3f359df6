// Package memory holds the process-lifetime listing store.
package memory

import (
	"context"
	"sync"

	"github.com/JakeFAU/romantic-listings/internal/listing"
)

// ListingStore keeps listings in a slice guarded by a single lock so the
// index handed out by Create always equals creation order.
type ListingStore struct {
	mu       sync.RWMutex
	listings []listing.Listing
}

var _ listing.Store = (*ListingStore)(nil)

// NewListingStore constructs an empty ListingStore.
func NewListingStore() *ListingStore {
	return &ListingStore{}
}

// List returns a copy of every listing in creation order. The result is
// never nil.
func (s *ListingStore) List(_ context.Context) ([]listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]listing.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out, nil
}

// Create appends l and returns it with its index.
func (s *ListingStore) Create(_ context.Context, l listing.Listing) (listing.Record, error) {
	stored := l.Clone()
	s.mu.Lock()
	s.listings = append(s.listings, stored)
	idx := len(s.listings) - 1
	s.mu.Unlock()
	return listing.Record{Index: idx, Listing: stored.Clone()}, nil
}

// Get fetches the listing at index.
func (s *ListingStore) Get(_ context.Context, index int) (listing.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.listings) {
		return nil, listing.ErrNotFound
	}
	return s.listings[index].Clone(), nil
}

// Len reports how many listings are stored.
func (s *ListingStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings), nil
}
