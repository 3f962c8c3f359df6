package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JakeFAU/romantic-listings/internal/listing"
	"github.com/JakeFAU/romantic-listings/internal/logging"
)

const (
	msgListingCreated  = "Listing created successfully (simulated)"
	msgListingNotFound = "Listing not found (simulated)"
	msgMessageSent     = "Message sent successfully (simulated)"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createListingResponse struct {
	Message string          `json:"message"`
	Listing listing.Listing `json:"listing"`
}

type userListingsResponse struct {
	Message  string            `json:"message"`
	Listings []listing.Listing `json:"listings"`
}

func (s *Server) listListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.service.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context(), s.logger).Error("list listings failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to list listings")
		return
	}
	if listings == nil {
		listings = []listing.Listing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	payload := s.readPayload(r)
	rec, err := s.service.Create(r.Context(), payload)
	if err != nil {
		logging.FromContext(r.Context(), s.logger).Error("create listing failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to create listing")
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/listings/%d", rec.Index))
	writeJSON(w, http.StatusCreated, createListingResponse{
		Message: msgListingCreated,
		Listing: rec.Listing,
	})
}

func (s *Server) getListing(w http.ResponseWriter, r *http.Request) {
	l, err := s.lookupListing(r)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgListingNotFound)
			return
		}
		logging.FromContext(r.Context(), s.logger).Error("get listing failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to load listing")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// lookupListing resolves {id}. The route only admits an optional minus sign
// followed by digits, so negative and oversized values are simply out of
// range.
func (s *Server) lookupListing(r *http.Request) (listing.Listing, error) {
	raw := chi.URLParam(r, "id")
	if strings.HasPrefix(raw, "-") {
		return nil, listing.ErrNotFound
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, listing.ErrNotFound
		}
		return nil, fmt.Errorf("parse listing id %q: %w", raw, err)
	}
	return s.service.Get(r.Context(), index)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	s.service.SendMessage(r.Context(), s.readPayload(r))
	writeMessage(w, http.StatusOK, msgMessageSent)
}

func (s *Server) getUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := canonicalUserID(chi.URLParam(r, "user_id"))
	writeMessage(w, http.StatusOK, s.service.UserProfile(r.Context(), userID))
}

func (s *Server) getUserListings(w http.ResponseWriter, r *http.Request) {
	userID := canonicalUserID(chi.URLParam(r, "user_id"))
	msg, listings := s.service.UserListings(r.Context(), userID)
	writeJSON(w, http.StatusOK, userListingsResponse{Message: msg, Listings: listings})
}

// readPayload never rejects a request: unreadable or malformed bodies
// become a null payload.
func (s *Server) readPayload(r *http.Request) listing.Payload {
	if r.Body == nil {
		return listing.ParsePayload(nil)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logging.FromContext(r.Context(), s.logger).Warn("read request body failed", zap.Error(err))
		return listing.ParsePayload(nil)
	}
	return listing.ParsePayload(body)
}

// canonicalUserID strips leading zeros from the all-digit route parameter.
// Values of any length are echoed; the id is never stored or compared.
func canonicalUserID(raw string) string {
	trimmed := strings.TrimLeft(raw, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
