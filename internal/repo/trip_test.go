package repo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/repo"
	"github.com/pmorken/tripmate/testutil"
)

// newTestRepo returns a TripRepo running inside a transaction that is rolled
// back when the test finishes, so tests never see each other's snapshot.
func newTestRepo(t *testing.T) repo.TripRepo {
	t.Helper()

	pool := testutil.NewPool(t)
	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func persistedTrip() domain.Trip {
	return domain.Trip{
		ID:   "trip-1",
		Name: "Alps 2026",
		Members: []domain.Member{
			{ID: "m1", Name: "Ana"},
			{ID: "m2", Name: "Ben"},
		},
		Luggage: []domain.LuggageItem{
			{ID: "l1", Name: "Passport", Category: domain.LuggageDocuments, Packed: true, AddedBy: "m1"},
		},
		Expenses: []domain.Expense{
			{ID: "e1", Title: "Cabin", Amount: dec("420.75"), Category: domain.ExpenseHotel, PaidBy: "m2"},
		},
		Contributions: []domain.Contribution{
			{ID: "c1", MemberID: "m1", Amount: dec("300")},
		},
	}
}

func TestTripRepo_Load_NoSnapshot_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_SaveLoad_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	trip := persistedTrip()

	require.NoError(t, r.Save(context.Background(), trip))
	got, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.Name, got.Name)
	assert.Equal(t, trip.Members, got.Members)
	assert.Equal(t, trip.Luggage, got.Luggage)
	require.Len(t, got.Expenses, 1)
	assert.True(t, got.Expenses[0].Amount.Equal(dec("420.75")), "decimal amount must survive the round trip")
	require.Len(t, got.Contributions, 1)
	assert.True(t, got.Contributions[0].Amount.Equal(dec("300")))
}

func TestTripRepo_Save_ReplacesPreviousSnapshot(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := persistedTrip()
	require.NoError(t, r.Save(ctx, first))

	second := first
	second.Name = "Dolomites"
	second.Expenses = nil
	require.NoError(t, r.Save(ctx, second))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dolomites", got.Name)
	assert.Empty(t, got.Expenses, "the cell holds exactly one snapshot")
}
