package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// GetItinerary handles GET /api/itinerary.
// Returns the current trip record, seeding the default document on first run.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.itineraries.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// SaveItinerary handles POST /api/itinerary.
// The body is the full replacement record; the response is the normalized
// record as persisted, so the client sees server-side normalization (stop
// re-ordering) without a second fetch.
func (s *Server) SaveItinerary(w http.ResponseWriter, r *http.Request) {
	var it domain.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeRequestError(w, "request body must be a valid itinerary document")
		return
	}

	saved, err := s.itineraries.Save(r.Context(), it)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// scheduleRequest is the body of POST /api/itinerary/schedule.
// Dates are calendar dates, "2006-01-02".
type scheduleRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReconcileSchedule handles POST /api/itinerary/schedule.
// Resizes and redates the day list to the new range and persists the result.
func (s *Server) ReconcileSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeRequestError(w, "start_date must be formatted YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeRequestError(w, "end_date must be formatted YYYY-MM-DD")
		return
	}

	it, err := s.itineraries.Reconcile(r.Context(), start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// GetBudget handles GET /api/itinerary/budget/{category}.
// category is one of all, accommodation, transport, food, attraction.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	category := domain.BudgetCategory(chi.URLParam(r, "category"))

	report, err := s.itineraries.Budget(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
