package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/repo"
	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/store"
)

// ItineraryService orchestrates the editing session: it loads the document
// from the repo into the in-memory session, normalizes stop order on the way
// in and out, and persists full-record saves. The session is the source of
// truth between saves; the repo only sees whole documents.
type ItineraryService struct {
	repo    repo.ItineraryRepo
	session *store.Session
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{repo: r, session: store.NewSession()}
}

// Current returns the session's record, loading from the repo first if the
// session is empty. When the store holds no document yet, the seed itinerary
// is returned and persisted best-effort — a read-only data directory must not
// block the first launch.
func (s *ItineraryService) Current(ctx context.Context) (domain.Itinerary, error) {
	if s.session.Loaded() {
		return s.session.Snapshot(), nil
	}
	return s.load(ctx)
}

// Reload drops the session state and fetches a fresh document from the repo.
// Used after an external save so server-side normalization is reflected.
func (s *ItineraryService) Reload(ctx context.Context) (domain.Itinerary, error) {
	return s.load(ctx)
}

func (s *ItineraryService) load(ctx context.Context) (domain.Itinerary, error) {
	it, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			seed := domain.DefaultItinerary()
			if saveErr := s.repo.Save(ctx, seed); saveErr != nil {
				slog.Warn("could not persist seed itinerary", "error", saveErr)
			}
			s.session.Replace(seed)
			return s.session.Snapshot(), nil
		}
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Load: %w", err)
	}

	normalized := Normalize(it)
	s.session.Replace(normalized)
	return s.session.Snapshot(), nil
}

// Save validates and persists a full replacement record.
// A record without a days list is malformed — no itinerary can be displayed
// from it — and is rejected before any state changes. On a persist failure
// the session keeps its previous record untouched so the client can retry;
// only a successful save publishes the new record to the session.
func (s *ItineraryService) Save(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	if it.Days == nil {
		return domain.Itinerary{}, fmt.Errorf("%w: days is required", domain.ErrValidation)
	}

	normalized := Normalize(it)
	if err := s.repo.Save(ctx, normalized); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Save: %w", err)
	}
	s.session.Replace(normalized)
	return s.session.Snapshot(), nil
}

// Reconcile resizes the trip to the new date range and persists the result.
// An invalid range rejects before any mutation. The reconciled record is
// published to the session even when the persist fails — the local edit
// survives a save failure, matching the editor's retry policy — and the
// persist error is still reported.
func (s *ItineraryService) Reconcile(ctx context.Context, newStart, newEnd time.Time) (domain.Itinerary, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return domain.Itinerary{}, err
	}

	next, err := Reconcile(cur, newStart, newEnd)
	if err != nil {
		return domain.Itinerary{}, err
	}

	s.session.Replace(next)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Reconcile: %w", err)
	}
	return s.session.Snapshot(), nil
}

// Budget runs the categorizer against the current record.
func (s *ItineraryService) Budget(ctx context.Context, category domain.BudgetCategory) (domain.BudgetReport, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return domain.BudgetReport{}, err
	}
	report, err := Categorize(cur, category)
	if err != nil {
		return domain.BudgetReport{}, fmt.Errorf("service.ItineraryService.Budget: %w", err)
	}
	return report, nil
}

// Session exposes the underlying state container for field-level edits.
func (s *ItineraryService) Session() *store.Session {
	return s.session
}
