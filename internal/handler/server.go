// Package handler implements the HTTP API for TripMate.
// All handlers are methods on Server. Methods are split into resource
// files (trip.go, member.go, expense.go, ...) but share the same Server
// struct so they can access its dependencies.
//
// Mutating endpoints respond with the full updated Trip snapshot: the client
// is a snapshot-oriented UI, and returning the whole trip keeps it in sync
// with a single round trip.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/service"
	"github.com/pmorken/tripmate/internal/settlement"
)

// TripServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or the database.
type TripServicer interface {
	Trip() domain.Trip
	Rename(ctx context.Context, name string) (domain.Trip, error)
	AddMember(ctx context.Context, name string) (domain.Trip, error)
	RemoveMember(ctx context.Context, memberID string) (domain.Trip, error)
	AddLuggage(ctx context.Context, item domain.LuggageItem) (domain.Trip, error)
	UpdateLuggage(ctx context.Context, item domain.LuggageItem) (domain.Trip, error)
	RemoveLuggage(ctx context.Context, itemID string) (domain.Trip, error)
	AddExpense(ctx context.Context, expense domain.Expense) (domain.Trip, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) (domain.Trip, error)
	RemoveExpense(ctx context.Context, expenseID string) (domain.Trip, error)
	AddContribution(ctx context.Context, memberID string, amount decimal.Decimal) (domain.Trip, error)
	CommitSuggestion(ctx context.Context, sug service.ExpenseSuggestion, paidBy string, category domain.ExpenseCategory) (domain.Trip, error)
	Summary() domain.Summary
	Settlements() []settlement.Settlement
	Export() ([]byte, error)
	Import(ctx context.Context, raw []byte) (domain.Trip, error)
	Reload(ctx context.Context) (domain.Trip, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer) *Server {
	return &Server{trips: trips}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trip", s.GetTrip)
		r.Put("/trip", s.RenameTrip)
		r.Get("/trip/export", s.ExportTrip)
		r.Post("/trip/import", s.ImportTrip)
		r.Post("/trip/reload", s.ReloadTrip)

		r.Post("/members", s.AddMember)
		r.Delete("/members/{id}", s.RemoveMember)

		r.Post("/luggage", s.AddLuggage)
		r.Put("/luggage/{id}", s.UpdateLuggage)
		r.Delete("/luggage/{id}", s.RemoveLuggage)

		r.Post("/expenses", s.AddExpense)
		r.Post("/expenses/suggestion", s.CommitSuggestion)
		r.Put("/expenses/{id}", s.UpdateExpense)
		r.Delete("/expenses/{id}", s.RemoveExpense)

		r.Post("/contributions", s.AddContribution)

		r.Get("/summary", s.GetSummary)
		r.Get("/settlements", s.GetSettlements)
	})

	return r
}

// Health reports liveness. Storage health is implicit: the process refuses
// to start without a reachable database.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
