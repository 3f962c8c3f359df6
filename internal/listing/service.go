package listing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/logging"
	"github.com/JakeFAU/romantic-listings/internal/metrics"
)

// Service implements the listing operations on top of a Store.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires the store and logger.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns every listing in creation order.
func (s *Service) List(ctx context.Context) ([]Listing, error) {
	listings, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// Create appends l unmodified and returns it with its index.
func (s *Service) Create(ctx context.Context, l Listing) (Record, error) {
	rec, err := s.store.Create(ctx, l)
	if err != nil {
		return Record{}, fmt.Errorf("create listing: %w", err)
	}
	metrics.ObserveListingCreated()
	logging.FromContext(ctx, s.logger).Debug("listing created", zap.Int("index", rec.Index))
	return rec, nil
}

// Get returns the listing at index or ErrNotFound.
func (s *Service) Get(ctx context.Context, index int) (Listing, error) {
	l, err := s.store.Get(ctx, index)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.ObserveListingLookup(false)
			return nil, err
		}
		return nil, fmt.Errorf("get listing %d: %w", index, err)
	}
	metrics.ObserveListingLookup(true)
	return l, nil
}

// SendMessage accepts a message payload. It is only written to the debug
// log; nothing is stored or delivered.
func (s *Service) SendMessage(ctx context.Context, msg Payload) {
	metrics.ObserveMessageReceived()
	logging.FromContext(ctx, s.logger).Debug("simulated message received", zap.String("payload", msg.String()))
}

// UserProfile returns the placeholder profile text for userID, a decimal
// string.
func (s *Service) UserProfile(_ context.Context, userID string) string {
	return fmt.Sprintf("Profile for user %s (simulated)", userID)
}

// UserListings returns the placeholder text for userID and an empty listing
// set. The store is not consulted.
func (s *Service) UserListings(_ context.Context, userID string) (string, []Listing) {
	return fmt.Sprintf("Listings for user %s (simulated)", userID), []Listing{}
}
