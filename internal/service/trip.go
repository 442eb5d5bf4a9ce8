// Package service contains the business logic for TripMate.
// Services validate inputs, enforce business rules, and translate user
// operations into store actions. The store itself is total and never fails
// on a well-formed action, so every rule that can reject input lives here.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/settlement"
	"github.com/pmorken/tripmate/internal/store"
)

// TripService implements all user-facing operations on the current trip.
type TripService struct {
	store *store.Store
}

// NewTripService constructs a TripService over the given store.
func NewTripService(s *store.Store) *TripService {
	return &TripService{store: s}
}

// Trip returns the current snapshot.
func (s *TripService) Trip() domain.Trip {
	return s.store.Snapshot()
}

// Rename changes the trip's display name.
// Returns domain.ErrValidation when the name is empty.
func (s *TripService) Rename(ctx context.Context, name string) (domain.Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: trip name is required", domain.ErrValidation)
	}
	return s.dispatch(ctx, "Rename", store.RenameTrip{Name: name})
}

// AddMember adds a member with the given name.
// Adding a name that already exists (case-insensitive) is not an error; the
// store leaves the state unchanged and the current snapshot is returned.
func (s *TripService) AddMember(ctx context.Context, name string) (domain.Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: member name is required", domain.ErrValidation)
	}
	member := domain.Member{ID: uuid.NewString(), Name: name}
	return s.dispatch(ctx, "AddMember", store.AddMember{Member: member})
}

// RemoveMember removes a member by ID.
// The last remaining member cannot be removed. Records referencing the
// removed member keep their references; aggregates and settlement tolerate
// the dangling IDs.
func (s *TripService) RemoveMember(ctx context.Context, memberID string) (domain.Trip, error) {
	trip := s.store.Snapshot()
	found := false
	for _, m := range trip.Members {
		if m.ID == memberID {
			found = true
			break
		}
	}
	if !found {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveMember: %w", domain.ErrNotFound)
	}
	if len(trip.Members) == 1 {
		return domain.Trip{}, fmt.Errorf("%w: cannot remove the last member", domain.ErrValidation)
	}
	return s.dispatch(ctx, "RemoveMember", store.RemoveMember{MemberID: memberID})
}

// AddLuggage adds a packing-list item. The item's ID is assigned here.
func (s *TripService) AddLuggage(ctx context.Context, item domain.LuggageItem) (domain.Trip, error) {
	if err := validateLuggage(item); err != nil {
		return domain.Trip{}, err
	}
	item.ID = uuid.NewString()
	return s.dispatch(ctx, "AddLuggage", store.AddLuggage{Item: item})
}

// UpdateLuggage replaces an existing packing-list item by ID.
func (s *TripService) UpdateLuggage(ctx context.Context, item domain.LuggageItem) (domain.Trip, error) {
	if err := validateLuggage(item); err != nil {
		return domain.Trip{}, err
	}
	if !luggageExists(s.store.Snapshot(), item.ID) {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateLuggage: %w", domain.ErrNotFound)
	}
	return s.dispatch(ctx, "UpdateLuggage", store.UpdateLuggage{Item: item})
}

// RemoveLuggage removes a packing-list item by ID.
func (s *TripService) RemoveLuggage(ctx context.Context, itemID string) (domain.Trip, error) {
	if !luggageExists(s.store.Snapshot(), itemID) {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveLuggage: %w", domain.ErrNotFound)
	}
	return s.dispatch(ctx, "RemoveLuggage", store.RemoveLuggage{ItemID: itemID})
}

// AddExpense adds an expense. The expense's ID is assigned here, and a zero
// date defaults to the current time (manual entry always carries a date;
// scanned receipts sometimes do not).
func (s *TripService) AddExpense(ctx context.Context, expense domain.Expense) (domain.Trip, error) {
	if err := validateExpense(expense); err != nil {
		return domain.Trip{}, err
	}
	expense.ID = uuid.NewString()
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}
	return s.dispatch(ctx, "AddExpense", store.AddExpense{Expense: expense})
}

// UpdateExpense replaces an existing expense by ID.
func (s *TripService) UpdateExpense(ctx context.Context, expense domain.Expense) (domain.Trip, error) {
	if err := validateExpense(expense); err != nil {
		return domain.Trip{}, err
	}
	if !expenseExists(s.store.Snapshot(), expense.ID) {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateExpense: %w", domain.ErrNotFound)
	}
	return s.dispatch(ctx, "UpdateExpense", store.UpdateExpense{Expense: expense})
}

// RemoveExpense removes an expense by ID.
func (s *TripService) RemoveExpense(ctx context.Context, expenseID string) (domain.Trip, error) {
	if !expenseExists(s.store.Snapshot(), expenseID) {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveExpense: %w", domain.ErrNotFound)
	}
	return s.dispatch(ctx, "RemoveExpense", store.RemoveExpense{ExpenseID: expenseID})
}

// AddContribution records money a member paid into the pot. A member's
// repeated contributions merge into one record by summation.
func (s *TripService) AddContribution(ctx context.Context, memberID string, amount decimal.Decimal) (domain.Trip, error) {
	if memberID == "" {
		return domain.Trip{}, fmt.Errorf("%w: member is required", domain.ErrValidation)
	}
	if !amount.IsPositive() {
		return domain.Trip{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return s.dispatch(ctx, "AddContribution", store.AddContribution{
		ContributionID: uuid.NewString(),
		MemberID:       memberID,
		Amount:         amount,
	})
}

// Reload drops the in-memory snapshot in favor of whatever the persistence
// cell currently holds. This is the recovery path for out-of-band writes
// (another process, a manual psql edit): last writer wins at whole-snapshot
// granularity, nothing is merged.
func (s *TripService) Reload(ctx context.Context) (domain.Trip, error) {
	trip, err := s.store.Reload(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Reload: %w", err)
	}
	return trip, nil
}

// Summary computes the pot totals and per-member rollups for the current
// snapshot.
func (s *TripService) Summary() domain.Summary {
	return domain.Summarize(s.store.Snapshot())
}

// Settlements computes the payment instructions that zero out every member's
// balance under the equal-share policy.
func (s *TripService) Settlements() []settlement.Settlement {
	trip := s.store.Snapshot()
	sum := domain.Summarize(trip)
	return settlement.Calculate(trip, sum.TotalExpenses, sum.MemberContributions)
}

// Export serializes the current snapshot as the interchange JSON document.
// The same document round-trips through Import losslessly.
func (s *TripService) Export() ([]byte, error) {
	doc, err := json.MarshalIndent(s.store.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Export: %w", err)
	}
	return doc, nil
}

// Import replaces the whole trip with the given interchange document.
// The document is validated before anything is dispatched; on any failure
// the current trip is left untouched.
func (s *TripService) Import(ctx context.Context, raw []byte) (domain.Trip, error) {
	var trip domain.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: malformed trip document: %v", domain.ErrValidation, err)
	}
	if err := validateImport(trip); err != nil {
		return domain.Trip{}, err
	}
	return s.dispatch(ctx, "Import", store.ReplaceState{Trip: trip})
}

// dispatch forwards an action to the store, wrapping errors with the
// operation name for traceable logs.
func (s *TripService) dispatch(ctx context.Context, op string, action store.Action) (domain.Trip, error) {
	trip, err := s.store.Dispatch(ctx, action)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return trip, nil
}

// --- validation -------------------------------------------------------------

// validateLuggage enforces the rules common to adding and updating items.
func validateLuggage(item domain.LuggageItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if _, err := domain.ParseLuggageCategory(string(item.Category)); err != nil {
		return err
	}
	return nil
}

// validateExpense enforces the rules common to adding and updating expenses.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Amount must be strictly positive.
//   - Category must be a known token.
func validateExpense(expense domain.Expense) error {
	if strings.TrimSpace(expense.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if _, err := domain.ParseExpenseCategory(string(expense.Category)); err != nil {
		return err
	}
	return nil
}

// validateImport checks the top-level shape of an imported trip document.
// Child records keep whatever IDs the document carries — an exported trip
// must re-import byte-for-byte equal.
func validateImport(trip domain.Trip) error {
	if trip.ID == "" {
		return fmt.Errorf("%w: trip id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: trip name is required", domain.ErrValidation)
	}
	if trip.Members == nil {
		return fmt.Errorf("%w: members must be present", domain.ErrValidation)
	}
	for _, m := range trip.Members {
		if m.ID == "" || strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: member id and name are required", domain.ErrValidation)
		}
	}
	for _, item := range trip.Luggage {
		if _, err := domain.ParseLuggageCategory(string(item.Category)); err != nil {
			return err
		}
	}
	for _, e := range trip.Expenses {
		if _, err := domain.ParseExpenseCategory(string(e.Category)); err != nil {
			return err
		}
	}
	return nil
}

func luggageExists(trip domain.Trip, id string) bool {
	for _, item := range trip.Luggage {
		if item.ID == id {
			return true
		}
	}
	return false
}

func expenseExists(trip domain.Trip, id string) bool {
	for _, e := range trip.Expenses {
		if e.ID == id {
			return true
		}
	}
	return false
}
