package service

import (
	"context"
	"fmt"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// ItineraryProvider is the slice of ItineraryService the export needs.
type ItineraryProvider interface {
	Current(ctx context.Context) (domain.Itinerary, error)
}

// ExportService assembles the flat report rows for the download endpoint.
type ExportService struct {
	itineraries ItineraryProvider
}

// NewExportService constructs an ExportService reading from the provided source.
func NewExportService(itineraries ItineraryProvider) *ExportService {
	return &ExportService{itineraries: itineraries}
}

// Export returns one ExportRow per stop across all days, in day-then-stop
// order. Days with no stops contribute one row with empty stop fields, so a
// freshly reconciled placeholder day still shows up in the report.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	it, err := s.itineraries.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	meta := resolveMeta(it.TripMeta)
	rows := make([]domain.ExportRow, 0, len(it.Days))
	for _, day := range it.Days {
		if len(day.Stops) == 0 {
			rows = append(rows, domain.ExportRow{
				DayNumber: day.DayNumber,
				Date:      day.Date,
				Theme:     day.Theme,
			})
			continue
		}
		for _, stop := range day.Stops {
			currency := stop.Currency
			if currency == "" {
				currency = meta.dest
			}
			rows = append(rows, domain.ExportRow{
				DayNumber: day.DayNumber,
				Date:      day.Date,
				Theme:     day.Theme,
				StopTime:  stop.Time,
				StopName:  stop.Name,
				Transport: stop.Transport,
				Cost:      stop.Cost,
				Currency:  currency,
				CostHome:  convertToHome(stop.Cost, stop.Currency, meta),
				Tags:      append([]string(nil), stop.Tags...),
			})
		}
	}
	return rows, nil
}
