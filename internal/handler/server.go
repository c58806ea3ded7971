// Package handler implements the HTTP handlers for the Tohoku Trip API.
// All handlers are methods on Server; methods are split into domain-specific
// files (health.go, itinerary.go, export.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the repo or service layer.
type ItineraryServicer interface {
	Current(ctx context.Context) (domain.Itinerary, error)
	Save(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	Reconcile(ctx context.Context, newStart, newEnd time.Time) (domain.Itinerary, error)
	Budget(ctx context.Context, category domain.BudgetCategory) (domain.BudgetReport, error)
}

// ExportServicer defines the report operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	itineraries ItineraryServicer
	export      ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, export ExportServicer) *Server {
	return &Server{itineraries: itineraries, export: export}
}

// Routes returns the API router. Paths mirror the original app:
// the frontend talks to /api/itinerary and /api/export.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/itinerary", s.GetItinerary)
		r.Post("/itinerary", s.SaveItinerary)
		r.Post("/itinerary/schedule", s.ReconcileSchedule)
		r.Get("/itinerary/budget/{category}", s.GetBudget)
		r.Get("/export", s.GetExport)
	})
	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encodeJSON(w, v)
}
