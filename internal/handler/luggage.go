package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pmorken/tripmate/internal/domain"
)

// luggageRequest is the body of POST /api/luggage and PUT /api/luggage/{id}.
type luggageRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Packed   bool   `json:"packed"`
	AddedBy  string `json:"addedBy"`
}

// AddLuggage handles POST /api/luggage.
func (s *Server) AddLuggage(w http.ResponseWriter, r *http.Request) {
	var req luggageRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.AddLuggage(r.Context(), requestToLuggage("", req))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// UpdateLuggage handles PUT /api/luggage/{id}.
// Toggling packed goes through here too — the item is replaced whole.
func (s *Server) UpdateLuggage(w http.ResponseWriter, r *http.Request) {
	var req luggageRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.UpdateLuggage(r.Context(), requestToLuggage(chi.URLParam(r, "id"), req))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// RemoveLuggage handles DELETE /api/luggage/{id}.
func (s *Server) RemoveLuggage(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveLuggage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// requestToLuggage builds the domain item; the unvalidated category token is
// carried as-is for the service layer to vet.
func requestToLuggage(id string, req luggageRequest) domain.LuggageItem {
	return domain.LuggageItem{
		ID:       id,
		Name:     req.Name,
		Category: domain.LuggageCategory(req.Category),
		Packed:   req.Packed,
		AddedBy:  req.AddedBy,
	}
}
