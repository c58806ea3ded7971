package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// dateLabelLayout is the date half of a day's display label; the weekday half
// comes from zhWeekdays. The full label reads "2026-04-15 (週三)".
const dateLabelLayout = "2006-01-02"

// zhWeekdays maps time.Weekday (Sunday = 0) to the Traditional Chinese
// weekday names the editor displays. The label format is locale-fixed, so a
// static table is the whole localization story.
var zhWeekdays = [7]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// SortStops returns the day's stops stable-sorted ascending by time-of-day.
// The comparison is plain lexicographic string order, which is
// correctness-preserving only because Stop.Time is fixed-width zero-padded
// 24-hour "HH:MM" text. The input slice is not modified.
//
// The sort is stable, so stops sharing a time keep their relative order and
// re-sorting an already-ordered day is a no-op.
func SortStops(stops []domain.Stop) []domain.Stop {
	out := make([]domain.Stop, len(stops))
	for i, s := range stops {
		out[i] = s.Clone()
	}
	slices.SortStableFunc(out, func(a, b domain.Stop) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// Normalize returns a copy of the itinerary with every day's stops sorted.
// Runs after load and before save, never on intermediate keystrokes, so a
// half-typed time can't yank a stop out from under the editor.
func Normalize(it domain.Itinerary) domain.Itinerary {
	out := it.Clone()
	for i := range out.Days {
		out.Days[i].Stops = SortStops(out.Days[i].Stops)
	}
	return out
}

// Reconcile resizes and redates the day list to span newStart..newEnd
// inclusive, returning a new record. The input is never modified, and on an
// invalid range (end before start) it fails with domain.ErrValidation before
// touching anything.
//
//   - Shrinking truncates the day list; truncated days are gone for good.
//   - Growing appends placeholder days: "自由探索" theme, no stops, empty
//     accommodation priced in the trip's destination currency.
//   - Every retained day keeps its stops, theme, accommodation and checklist;
//     only the date label is recomputed from the new start date.
//
// On success TripMeta.StartDate and TripMeta.DaysCount match the new range
// and len(Days) == DaysCount.
func Reconcile(it domain.Itinerary, newStart, newEnd time.Time) (domain.Itinerary, error) {
	start := truncateToDate(newStart)
	end := truncateToDate(newEnd)
	if end.Before(start) {
		return domain.Itinerary{}, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1

	out := it.Clone()
	if dayCount < len(out.Days) {
		out.Days = out.Days[:dayCount]
	}
	for i := range out.Days {
		out.Days[i].DayNumber = i + 1
		out.Days[i].Date = DateLabel(start.AddDate(0, 0, i))
	}
	for i := len(out.Days); i < dayCount; i++ {
		out.Days = append(out.Days, domain.Day{
			DayNumber:             i + 1,
			Date:                  DateLabel(start.AddDate(0, 0, i)),
			Theme:                 domain.PlaceholderTheme,
			Stops:                 []domain.Stop{},
			AccommodationCurrency: out.TripMeta.DestinationCurrencyOrDefault(),
		})
	}

	out.TripMeta.StartDate = start.Format(dateLabelLayout)
	out.TripMeta.DaysCount = dayCount
	return out, nil
}

// DateLabel formats a calendar date as the display label days carry,
// e.g. "2026-04-15 (週三)".
func DateLabel(d time.Time) string {
	return fmt.Sprintf("%s (%s)", d.Format(dateLabelLayout), zhWeekdays[d.Weekday()])
}

// truncateToDate drops the time-of-day component so day arithmetic counts
// calendar days, not 24-hour spans across differing clock times.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
