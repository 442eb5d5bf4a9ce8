package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// addMemberRequest is the body of POST /api/members.
type addMemberRequest struct {
	Name string `json:"name"`
}

// AddMember handles POST /api/members.
// Adding a name that already exists on the trip (case-insensitive) succeeds
// without changing anything — the response carries the unchanged snapshot.
func (s *Server) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.AddMember(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// RemoveMember handles DELETE /api/members/{id}.
func (s *Server) RemoveMember(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
