package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// contributionRequest is the body of POST /api/contributions.
// Amount accepts both a JSON number and a string.
type contributionRequest struct {
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
}

// AddContribution handles POST /api/contributions.
// A member's repeated contributions merge into a single record, so the
// response snapshot may show a grown amount rather than a new record.
func (s *Server) AddContribution(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.AddContribution(r.Context(), req.MemberID, req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}
