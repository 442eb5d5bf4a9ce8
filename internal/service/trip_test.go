package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/repo"
	"github.com/pmorken/tripmate/internal/service"
	"github.com/pmorken/tripmate/internal/store"
)

// ---- fixtures --------------------------------------------------------------

// memTripRepo is a hand-written in-memory test double for repo.TripRepo.
// Services are exercised against a real Store so the full
// validate → reduce → persist path is covered without a database.
type memTripRepo struct {
	trip *domain.Trip
}

func (m *memTripRepo) Load(ctx context.Context) (domain.Trip, error) {
	if m.trip == nil {
		return domain.Trip{}, domain.ErrNotFound
	}
	return *m.trip, nil
}

func (m *memTripRepo) Save(ctx context.Context, trip domain.Trip) error {
	m.trip = &trip
	return nil
}

var _ repo.TripRepo = (*memTripRepo)(nil)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedTrip() domain.Trip {
	return domain.Trip{
		ID:   "trip-1",
		Name: "Alps 2026",
		Members: []domain.Member{
			{ID: "m1", Name: "Ana"},
			{ID: "m2", Name: "Ben"},
		},
		Luggage:       []domain.LuggageItem{},
		Expenses:      []domain.Expense{},
		Contributions: []domain.Contribution{},
	}
}

func newService(t *testing.T, trip domain.Trip) *service.TripService {
	t.Helper()
	r := &memTripRepo{trip: &trip}
	s, err := store.New(context.Background(), r, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return service.NewTripService(s)
}

// ---- rename ----------------------------------------------------------------

func TestRename_OK(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.Rename(context.Background(), "  Dolomites  ")

	require.NoError(t, err)
	assert.Equal(t, "Dolomites", trip.Name)
}

func TestRename_EmptyName(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.Rename(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- members ---------------------------------------------------------------

func TestAddMember_AssignsID(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.AddMember(context.Background(), "Cleo")

	require.NoError(t, err)
	require.Len(t, trip.Members, 3)
	assert.NotEmpty(t, trip.Members[2].ID)
	assert.Equal(t, "Cleo", trip.Members[2].Name)
}

func TestAddMember_DuplicateName_NoOpNotError(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.AddMember(context.Background(), "ana")

	require.NoError(t, err)
	assert.Len(t, trip.Members, 2, "duplicate name must not add a member")
}

func TestAddMember_EmptyName(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.AddMember(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemoveMember_OK(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.RemoveMember(context.Background(), "m1")

	require.NoError(t, err)
	require.Len(t, trip.Members, 1)
	assert.Equal(t, "m2", trip.Members[0].ID)
}

func TestRemoveMember_Unknown(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.RemoveMember(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveMember_LastMemberRejected(t *testing.T) {
	trip := seedTrip()
	trip.Members = trip.Members[:1]
	svc := newService(t, trip)

	_, err := svc.RemoveMember(context.Background(), "m1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Removing a member must not rewrite the records that reference them.
func TestRemoveMember_KeepsReferencingRecords(t *testing.T) {
	trip := seedTrip()
	trip.Expenses = []domain.Expense{{ID: "e1", Title: "Cabin", Amount: dec("400"), Category: domain.ExpenseHotel, PaidBy: "m1"}}
	trip.Contributions = []domain.Contribution{{ID: "c1", MemberID: "m1", Amount: dec("400")}}
	svc := newService(t, trip)

	got, err := svc.RemoveMember(context.Background(), "m1")

	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "m1", got.Expenses[0].PaidBy)
	require.Len(t, got.Contributions, 1)
	assert.Equal(t, "m1", got.Contributions[0].MemberID)

	// Aggregates over the dangling references must compute cleanly.
	sum := svc.Summary()
	assert.True(t, sum.TotalExpenses.Equal(dec("400")))
}

// ---- luggage ---------------------------------------------------------------

func TestAddLuggage_AssignsID(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.AddLuggage(context.Background(), domain.LuggageItem{Name: "Charger", Category: domain.LuggageGadgets, AddedBy: "m1"})

	require.NoError(t, err)
	require.Len(t, trip.Luggage, 1)
	assert.NotEmpty(t, trip.Luggage[0].ID)
}

func TestAddLuggage_BadCategory(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.AddLuggage(context.Background(), domain.LuggageItem{Name: "Charger", Category: "Electronics"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateLuggage_Unknown(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.UpdateLuggage(context.Background(), domain.LuggageItem{ID: "nope", Name: "Charger", Category: domain.LuggageGadgets})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveLuggage_Unknown(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.RemoveLuggage(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- expenses --------------------------------------------------------------

func TestAddExpense_AssignsIDAndDefaultsDate(t *testing.T) {
	svc := newService(t, seedTrip())

	trip, err := svc.AddExpense(context.Background(), domain.Expense{
		Title:    "Lift passes",
		Amount:   dec("180"),
		Category: domain.ExpenseActivities,
		PaidBy:   "m1",
	})

	require.NoError(t, err)
	require.Len(t, trip.Expenses, 1)
	assert.NotEmpty(t, trip.Expenses[0].ID)
	assert.False(t, trip.Expenses[0].Date.IsZero(), "zero date defaults to now")
}

func TestAddExpense_Invalid(t *testing.T) {
	svc := newService(t, seedTrip())

	cases := map[string]domain.Expense{
		"empty title":     {Title: " ", Amount: dec("10"), Category: domain.ExpenseFood},
		"zero amount":     {Title: "Snacks", Amount: decimal.Zero, Category: domain.ExpenseFood},
		"negative amount": {Title: "Snacks", Amount: dec("-5"), Category: domain.ExpenseFood},
		"bad category":    {Title: "Snacks", Amount: dec("10"), Category: "Transport"},
	}

	for name, expense := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddExpense(context.Background(), expense)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUpdateExpense_Unknown(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.UpdateExpense(context.Background(), domain.Expense{ID: "nope", Title: "Snacks", Amount: dec("10"), Category: domain.ExpenseFood})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- contributions ---------------------------------------------------------

func TestAddContribution_MergeInvariant(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.AddContribution(context.Background(), "m1", dec("100"))
	require.NoError(t, err)
	trip, err := svc.AddContribution(context.Background(), "m1", dec("50"))
	require.NoError(t, err)

	require.Len(t, trip.Contributions, 1, "second contribution merges, never duplicates")
	assert.True(t, trip.Contributions[0].Amount.Equal(dec("150")))
	assert.True(t, svc.Summary().MemberContributions["m1"].Equal(dec("150")))
}

func TestAddContribution_NonPositiveAmount(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.AddContribution(context.Background(), "m1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddContribution(context.Background(), "m1", dec("-20"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- settlements through the service ---------------------------------------

func TestSettlements_EndToEnd(t *testing.T) {
	svc := newService(t, seedTrip())

	_, err := svc.AddContribution(context.Background(), "m1", dec("500"))
	require.NoError(t, err)
	_, err = svc.AddExpense(context.Background(), domain.Expense{
		Title: "Cabin", Amount: dec("300"), Category: domain.ExpenseHotel, PaidBy: "m1",
	})
	require.NoError(t, err)

	got := svc.Settlements()

	require.Len(t, got, 1)
	assert.Equal(t, "Ben", got[0].From)
	assert.Equal(t, "Ana", got[0].To)
	assert.True(t, got[0].Amount.Equal(dec("150")))
}

func TestSettlements_NothingToSettle(t *testing.T) {
	svc := newService(t, seedTrip())

	got := svc.Settlements()

	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- export / import -------------------------------------------------------

func TestExportImport_RoundTrip(t *testing.T) {
	trip := seedTrip()
	trip.Luggage = []domain.LuggageItem{{ID: "l1", Name: "Passport", Category: domain.LuggageDocuments, Packed: true, AddedBy: "m1"}}
	trip.Expenses = []domain.Expense{{ID: "e1", Title: "Ferry", Amount: dec("80.50"), Category: domain.ExpenseTravel, PaidBy: "m2"}}
	trip.Contributions = []domain.Contribution{{ID: "c1", MemberID: "m1", Amount: dec("120")}}
	svc := newService(t, trip)

	doc, err := svc.Export()
	require.NoError(t, err)

	// Import into a different service instance; the snapshot must match the
	// exported one exactly.
	other := newService(t, seedTrip())
	got, err := other.Import(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.Members, got.Members)
	assert.Equal(t, trip.Luggage, got.Luggage)
	require.Len(t, got.Expenses, 1)
	assert.True(t, got.Expenses[0].Amount.Equal(dec("80.50")))
	require.Len(t, got.Contributions, 1)
	assert.Equal(t, "c1", got.Contributions[0].ID)
}

func TestImport_Invalid_LeavesStateUntouched(t *testing.T) {
	svc := newService(t, seedTrip())

	cases := map[string][]byte{
		"not json":       []byte("{"),
		"missing id":     []byte(`{"name":"X","members":[{"id":"a","name":"A"}]}`),
		"missing name":   []byte(`{"id":"t","members":[{"id":"a","name":"A"}]}`),
		"no members":     []byte(`{"id":"t","name":"X"}`),
		"bad enum token": []byte(`{"id":"t","name":"X","members":[{"id":"a","name":"A"}],"luggage":[{"id":"l","name":"Hat","category":"Headwear"}]}`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Import(context.Background(), raw)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, "Alps 2026", svc.Trip().Name, "failed import must not modify state")
		})
	}
}

// ---- reload ----------------------------------------------------------------

func TestReload_AdoptsExternalWrite(t *testing.T) {
	seeded := seedTrip()
	r := &memTripRepo{trip: &seeded}
	st, err := store.New(context.Background(), r, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	svc := service.NewTripService(st)

	// Another process rewrote the snapshot cell behind the running server.
	external := seedTrip()
	external.Name = "Edited elsewhere"
	r.trip = &external

	trip, err := svc.Reload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Edited elsewhere", trip.Name)
	assert.Equal(t, "Edited elsewhere", svc.Trip().Name, "served snapshot must adopt the reload")
}
