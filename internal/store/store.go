package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pmorken/tripmate/internal/domain"
	"github.com/pmorken/tripmate/internal/repo"
)

// Store is the single source of truth for the current Trip snapshot.
//
// Mutations go through Dispatch, which serializes them with a mutex, reduces
// the action into a new snapshot, persists it, and only then swaps it in.
// Snapshots are never mutated in place, so a Trip returned by Snapshot or
// Dispatch stays valid forever and can be read concurrently with later
// mutations.
type Store struct {
	mu   sync.Mutex
	trip domain.Trip
	repo repo.TripRepo
	log  *slog.Logger
}

// New constructs a Store from persisted state. When the repo holds no
// snapshot yet, a fresh default trip is seeded and persisted before the
// store is returned, so a Store always has a current Trip.
func New(ctx context.Context, r repo.TripRepo, log *slog.Logger) (*Store, error) {
	trip, err := r.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		trip = defaultTrip()
		if err := r.Save(ctx, trip); err != nil {
			return nil, fmt.Errorf("store.New: seed: %w", err)
		}
		log.Info("seeded new trip", "trip_id", trip.ID)
	} else if err != nil {
		return nil, fmt.Errorf("store.New: %w", err)
	}

	return &Store{trip: trip, repo: r, log: log}, nil
}

// Snapshot returns the current Trip. The returned value is immutable by
// convention: the reducer copies child slices before changing them, so
// holding on to a snapshot across later dispatches is safe.
func (s *Store) Snapshot() domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip
}

// Dispatch applies one action, persists the resulting snapshot, and returns
// it. At most one mutation is in flight at a time. If persisting fails the
// in-memory state is left on the previous snapshot, so readers never observe
// a state that did not make it to storage.
func (s *Store) Dispatch(ctx context.Context, action Action) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.trip, action)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Trip{}, fmt.Errorf("store.Store.Dispatch: %w", err)
	}
	s.trip = next

	s.log.Debug("action applied", "action", fmt.Sprintf("%T", action), "trip_id", next.ID)
	return next, nil
}

// Reload replaces the in-memory snapshot with whatever the repo currently
// holds. Use it when the persisted cell was updated out-of-band by another
// process: conflict resolution is last-writer-wins at whole-snapshot
// granularity, no merging.
func (s *Store) Reload(ctx context.Context) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("store.Store.Reload: %w", err)
	}
	s.trip = Reduce(s.trip, ReplaceState{Trip: trip})
	return s.trip, nil
}

// defaultTrip is the state a brand-new installation starts from: an empty
// trip with the device owner as its only member.
func defaultTrip() domain.Trip {
	return domain.Trip{
		ID:            uuid.NewString(),
		Name:          "My Awesome Trip",
		Members:       []domain.Member{{ID: uuid.NewString(), Name: "Me"}},
		Luggage:       []domain.LuggageItem{},
		Expenses:      []domain.Expense{},
		Contributions: []domain.Contribution{},
	}
}
