// Package store holds the canonical in-memory trip record for the single
// editing session. Every mutation is whole-record copy-on-write: the current
// record is cloned, the clone is modified, and the pointer is swapped, so a
// snapshot handed out earlier never changes underneath its holder.
//
// Mutators are one method per declared field. The original editor poked
// arbitrary record fields by name through unchecked casts; the closed method
// set here means every mutation is checked against the entity's shape at
// compile time.
package store

import (
	"fmt"
	"sync"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// Session is the single-editor state container. The mutex only guards against
// the HTTP server's request goroutines; there is no concurrent editor.
type Session struct {
	mu      sync.RWMutex
	current domain.Itinerary
	loaded  bool
}

// NewSession returns an empty, not-yet-loaded session.
func NewSession() *Session {
	return &Session{}
}

// Loaded reports whether a record has been placed in the session.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a deep copy of the current record. The copy is detached:
// later mutations do not affect it, and mutating it does not affect the session.
func (s *Session) Snapshot() domain.Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace swaps in a new canonical record wholesale.
func (s *Session) Replace(it domain.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = it.Clone()
	s.loaded = true
}

// --- trip-level mutators ----------------------------------------------------

// SetTitle renames the trip.
func (s *Session) SetTitle(title string) {
	s.mutate(func(it *domain.Itinerary) error {
		it.TripMeta.Title = title
		return nil
	})
}

// SetLocation changes the trip's main location text.
func (s *Session) SetLocation(location string) {
	s.mutate(func(it *domain.Itinerary) error {
		it.TripMeta.Location = location
		return nil
	})
}

// SetCurrencies changes the trip-level home and destination currency codes.
// Empty strings leave the respective code untouched.
func (s *Session) SetCurrencies(home, dest string) {
	s.mutate(func(it *domain.Itinerary) error {
		if home != "" {
			it.TripMeta.HomeCurrency = home
		}
		if dest != "" {
			it.TripMeta.DestinationCurrency = dest
		}
		return nil
	})
}

// SetExchangeRate changes the destination→home rate. A non-positive rate is
// invalid input and leaves the prior value in place — deliberate leniency,
// not an error.
func (s *Session) SetExchangeRate(rate float64) {
	s.mutate(func(it *domain.Itinerary) error {
		if rate > 0 {
			it.TripMeta.ExchangeRate = rate
		}
		return nil
	})
}

// --- day-level mutators -----------------------------------------------------

// SetAccommodation sets a day's hotel name.
func (s *Session) SetAccommodation(dayIdx int, name string) error {
	return s.mutateDay(dayIdx, func(d *domain.Day) {
		d.Accommodation = name
	})
}

// SetAccommodationCost sets a day's lodging cost. Negative input is coerced
// to zero (costs are non-negative by contract).
func (s *Session) SetAccommodationCost(dayIdx, cost int) error {
	return s.mutateDay(dayIdx, func(d *domain.Day) {
		d.AccommodationCost = max(cost, 0)
	})
}

// SetAccommodationCurrency sets a day's lodging currency code.
func (s *Session) SetAccommodationCurrency(dayIdx int, currency string) error {
	return s.mutateDay(dayIdx, func(d *domain.Day) {
		d.AccommodationCurrency = currency
	})
}

// --- stop-level mutators ----------------------------------------------------

// SetStopTime updates a stop's HH:MM time without reordering the day, so a
// time can be edited in place mid-typing. Call ConfirmTimes once the value is
// committed.
func (s *Session) SetStopTime(dayIdx, stopIdx int, t string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Time = t
	})
}

// ConfirmTimes re-sorts a day's stops by time. Invoked on explicit
// confirmation of an edited time value, not on every keystroke.
func (s *Session) ConfirmTimes(dayIdx int, sort func([]domain.Stop) []domain.Stop) error {
	return s.mutateDay(dayIdx, func(d *domain.Day) {
		d.Stops = sort(d.Stops)
	})
}

// SetStopName updates a stop's name.
func (s *Session) SetStopName(dayIdx, stopIdx int, name string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Name = name
	})
}

// SetStopDescription updates a stop's free-text description.
func (s *Session) SetStopDescription(dayIdx, stopIdx int, desc string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Description = desc
	})
}

// SetStopTransport updates a stop's transport description.
func (s *Session) SetStopTransport(dayIdx, stopIdx int, transport string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Transport = transport
	})
}

// SetStopCost updates a stop's cost. Negative input is coerced to zero.
func (s *Session) SetStopCost(dayIdx, stopIdx, cost int) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Cost = max(cost, 0)
	})
}

// SetStopCurrency updates a stop's currency code.
func (s *Session) SetStopCurrency(dayIdx, stopIdx int, currency string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Currency = currency
	})
}

// SetStopTags replaces a stop's free-text tag list.
func (s *Session) SetStopTags(dayIdx, stopIdx int, tags []string) error {
	return s.mutateStop(dayIdx, stopIdx, func(st *domain.Stop) {
		st.Tags = append([]string(nil), tags...)
	})
}

// AddStop appends a fresh stop to the day and re-sorts the day with the given
// orderer. The new stop gets the editor defaults: noon, a placeholder name,
// zero cost in the trip's destination currency.
func (s *Session) AddStop(dayIdx int, sort func([]domain.Stop) []domain.Stop) error {
	return s.mutateDay2(dayIdx, func(it *domain.Itinerary, d *domain.Day) {
		d.Stops = append(d.Stops, domain.Stop{
			Time:     "12:00",
			Name:     "新景點",
			Cost:     0,
			Currency: it.TripMeta.DestinationCurrencyOrDefault(),
			Tags:     []string{},
		})
		d.Stops = sort(d.Stops)
	})
}

// DeleteStop removes a stop from a day.
func (s *Session) DeleteStop(dayIdx, stopIdx int) error {
	return s.mutate(func(it *domain.Itinerary) error {
		if dayIdx < 0 || dayIdx >= len(it.Days) {
			return fmt.Errorf("%w: day %d", domain.ErrNotFound, dayIdx)
		}
		d := &it.Days[dayIdx]
		if stopIdx < 0 || stopIdx >= len(d.Stops) {
			return fmt.Errorf("%w: day %d stop %d", domain.ErrNotFound, dayIdx, stopIdx)
		}
		d.Stops = append(d.Stops[:stopIdx], d.Stops[stopIdx+1:]...)
		return nil
	})
}

// --- internals --------------------------------------------------------------

// mutate runs fn against a clone of the current record and publishes the
// clone only if fn succeeds. A failed mutation leaves the session unchanged.
func (s *Session) mutate(fn func(*domain.Itinerary) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.current = next
	s.loaded = true
	return nil
}

func (s *Session) mutateDay(dayIdx int, fn func(*domain.Day)) error {
	return s.mutateDay2(dayIdx, func(_ *domain.Itinerary, d *domain.Day) { fn(d) })
}

func (s *Session) mutateDay2(dayIdx int, fn func(*domain.Itinerary, *domain.Day)) error {
	return s.mutate(func(it *domain.Itinerary) error {
		if dayIdx < 0 || dayIdx >= len(it.Days) {
			return fmt.Errorf("%w: day %d", domain.ErrNotFound, dayIdx)
		}
		fn(it, &it.Days[dayIdx])
		return nil
	})
}

func (s *Session) mutateStop(dayIdx, stopIdx int, fn func(*domain.Stop)) error {
	return s.mutate(func(it *domain.Itinerary) error {
		if dayIdx < 0 || dayIdx >= len(it.Days) {
			return fmt.Errorf("%w: day %d", domain.ErrNotFound, dayIdx)
		}
		d := &it.Days[dayIdx]
		if stopIdx < 0 || stopIdx >= len(d.Stops) {
			return fmt.Errorf("%w: day %d stop %d", domain.ErrNotFound, dayIdx, stopIdx)
		}
		fn(&d.Stops[stopIdx])
		return nil
	})
}
