package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/service"
)

// expenseRequest is the body of POST /api/expenses and PUT /api/expenses/{id}.
// Amount accepts both a JSON number and a string.
type expenseRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     *time.Time      `json:"date,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	PaidBy   string          `json:"paidBy"`
}

// suggestionRequest is the body of POST /api/expenses/suggestion: the raw
// candidate a receipt scanner produced, plus who paid and an optional
// category override.
type suggestionRequest struct {
	Suggestion service.ExpenseSuggestion `json:"suggestion"`
	PaidBy     string                    `json:"paidBy"`
	Category   string                    `json:"category,omitempty"`
}

// AddExpense handles POST /api/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.AddExpense(r.Context(), requestToExpense("", req))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// UpdateExpense handles PUT /api/expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.UpdateExpense(r.Context(), requestToExpense(chi.URLParam(r, "id"), req))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// RemoveExpense handles DELETE /api/expenses/{id}.
func (s *Server) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveExpense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// CommitSuggestion handles POST /api/expenses/suggestion.
// The suggestion is untrusted scanner output; the service applies the same
// validation as manual entry before anything is committed.
func (s *Server) CommitSuggestion(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := s.trips.CommitSuggestion(r.Context(), req.Suggestion, req.PaidBy, domain.ExpenseCategory(req.Category))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

func requestToExpense(id string, req expenseRequest) domain.Expense {
	e := domain.Expense{
		ID:       id,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: domain.ExpenseCategory(req.Category),
		Notes:    req.Notes,
		PaidBy:   req.PaidBy,
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	return e
}
