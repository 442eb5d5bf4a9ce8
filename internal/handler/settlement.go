package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// summaryResponse is the body of GET /api/summary.
// Amounts are serialized as decimal strings; clients format to two places
// for display.
type summaryResponse struct {
	TotalContributions  decimal.Decimal            `json:"totalContributions"`
	TotalExpenses       decimal.Decimal            `json:"totalExpenses"`
	Balance             decimal.Decimal            `json:"balance"`
	MemberContributions map[string]decimal.Decimal `json:"memberContributions"`
	MemberExpenses      map[string]decimal.Decimal `json:"memberExpenses"`
}

// GetSummary handles GET /api/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum := s.trips.Summary()
	respondJSON(w, http.StatusOK, summaryResponse{
		TotalContributions:  sum.TotalContributions,
		TotalExpenses:       sum.TotalExpenses,
		Balance:             sum.Balance,
		MemberContributions: sum.MemberContributions,
		MemberExpenses:      sum.MemberExpenses,
	})
}

// GetSettlements handles GET /api/settlements.
// The list is empty (never null) when there is nothing to settle.
func (s *Server) GetSettlements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.trips.Settlements())
}
