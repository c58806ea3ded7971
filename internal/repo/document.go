// Package repo contains all persistence for the itinerary document.
// The record is stored wholesale — full-replace semantics, no partial
// patches — behind the ItineraryRepo interface, with a Postgres JSONB
// implementation here and a local-file implementation in file.go.
// No business logic lives in this package.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// defaultSlug identifies the single itinerary document. The table allows more
// slugs so a future multi-trip mode doesn't need a migration, but this app
// only ever reads and writes one.
const defaultSlug = "default"

// ItineraryRepo defines the persistence operations for the trip record.
// The service layer depends on this interface, not a concrete implementation,
// which allows it to be unit-tested with a mock.
type ItineraryRepo interface {
	// Load retrieves the stored itinerary document.
	// Returns domain.ErrNotFound when no document has been saved yet.
	Load(ctx context.Context) (domain.Itinerary, error)

	// Save persists the full itinerary, replacing any previous document.
	Save(ctx context.Context, it domain.Itinerary) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
// The document lives in a single JSONB row keyed by slug; every save stamps a
// fresh revision id so concurrent inspection tools can tell writes apart.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Load retrieves the document row and unmarshals the JSONB payload.
func (r *pgItineraryRepo) Load(ctx context.Context) (domain.Itinerary, error) {
	const q = `
		SELECT doc
		FROM itineraries
		WHERE slug = @slug`

	var raw []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": defaultSlug}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Load: %w", domain.ErrNotFound)
		}
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Load: %w", err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Load: decode document: %w", err)
	}
	return it, nil
}

// Save upserts the document row, replacing the payload wholesale.
func (r *pgItineraryRepo) Save(ctx context.Context, it domain.Itinerary) error {
	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Save: encode document: %w", err)
	}

	const q = `
		INSERT INTO itineraries (id, slug, doc)
		VALUES (@id, @slug, @doc)
		ON CONFLICT (slug) DO UPDATE
		SET doc = EXCLUDED.doc,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"id":   uuid.New(),
		"slug": defaultSlug,
		"doc":  doc,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Save: %w", err)
	}
	return nil
}
