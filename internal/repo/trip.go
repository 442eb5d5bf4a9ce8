// Package repo contains all database access for TripMate.
//
// Persistence is deliberately simple: the whole Trip aggregate is stored as
// one JSONB document in a single-row key-value cell. Every mutation writes
// the whole snapshot, which keeps the storage contract identical to the
// export/import interchange format. No business logic lives here.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pmorken/tripmate/internal/domain"
)

// snapshotKey is the fixed key of the one row holding the current trip.
const snapshotKey = "current"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for the Trip snapshot.
// The store depends on this interface, not the concrete Postgres
// implementation, which allows it to be unit-tested with a mock.
type TripRepo interface {
	// Load returns the persisted Trip snapshot.
	// Returns domain.ErrNotFound when no snapshot has been saved yet.
	Load(ctx context.Context) (domain.Trip, error)

	// Save persists the Trip snapshot, replacing any previous one.
	Save(ctx context.Context, trip domain.Trip) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Load reads and decodes the current snapshot document.
func (r *pgTripRepo) Load(ctx context.Context) (domain.Trip, error) {
	const q = `
		SELECT doc
		FROM trip_state
		WHERE key = @key`

	var doc []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": snapshotKey}).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Load: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal(doc, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Load: decode: %w", err)
	}
	return trip, nil
}

// Save upserts the snapshot document under the fixed key.
func (r *pgTripRepo) Save(ctx context.Context, trip domain.Trip) error {
	doc, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Save: encode: %w", err)
	}

	const q = `
		INSERT INTO trip_state (key, doc, updated_at)
		VALUES (@key, @doc, now())
		ON CONFLICT (key) DO UPDATE
		SET doc = excluded.doc, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": snapshotKey, "doc": doc}); err != nil {
		return fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return nil
}
