// Package domain contains the core data types for the Tohoku Trip backend.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, store, handler).
//
// The JSON shapes are the wire format the frontend edits and saves wholesale:
// a single document of {trip_meta, days}. Field names (dayNumber,
// accommodation_cost, ...) are part of that contract and must not change.
package domain

// Currency and placeholder defaults. The currency codes are free-form short
// strings; nothing validates them beyond equality, so the defaults only kick
// in when a field is absent from the document.
const (
	DefaultHomeCurrency        = "TWD"
	DefaultDestinationCurrency = "JPY"
	DefaultExchangeRate        = 0.215

	// PlaceholderTheme is assigned to days appended by schedule reconciliation.
	PlaceholderTheme = "自由探索"

	// PlaceholderHotel names accommodation entries that have a cost but no hotel yet.
	PlaceholderHotel = "未定飯店"

	// NoAccommodation is the sentinel the editor writes for "no hotel tonight".
	// Days carrying it are excluded from accommodation budget items unless
	// they also carry a positive cost.
	NoAccommodation = "無"
)

// Weather is an opaque display payload; no logic reads it.
type Weather struct {
	Icon string `json:"icon"`
	Temp string `json:"temp"`
	Desc string `json:"desc"`
}

// Stop is a single timed activity within a day.
// Time is fixed-width 24-hour "HH:MM" text; stop ordering relies on that.
// Currency defaults to the trip's destination currency when empty.
type Stop struct {
	Time        string   `json:"time"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Transport   string   `json:"transport,omitempty"`
	Cost        int      `json:"cost"`
	Currency    string   `json:"currency,omitempty"`
	Lat         float64  `json:"lat,omitempty"`
	Lng         float64  `json:"lng,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Day is one calendar day of the trip. DayNumber is 1-based and dense,
// matching the day's position in Itinerary.Days. Date is a derived label
// ("2006-01-02 (週三)") recomputed by schedule reconciliation, never edited
// on its own. Stops are kept sorted ascending by Time.
type Day struct {
	DayNumber             int      `json:"dayNumber"`
	Date                  string   `json:"date"`
	Theme                 string   `json:"theme"`
	Weather               *Weather `json:"weather,omitempty"`
	Alternatives          string   `json:"alternatives,omitempty"`
	Checklist             []string `json:"checklist,omitempty"`
	Stops                 []Stop   `json:"stops"`
	Accommodation         string   `json:"accommodation,omitempty"`
	AccommodationCost     int      `json:"accommodation_cost,omitempty"`
	AccommodationCurrency string   `json:"accommodation_currency,omitempty"`
}

// TripMeta carries the trip-level settings. ExchangeRate means
// "1 unit of destination currency = ExchangeRate units of home currency".
type TripMeta struct {
	Title               string  `json:"title"`
	DaysCount           int     `json:"days_count"`
	Travelers           int     `json:"travelers"`
	Budget              int     `json:"budget"`
	Location            string  `json:"location,omitempty"`
	StartDate           string  `json:"start_date,omitempty"` // "2006-01-02"
	HomeCurrency        string  `json:"home_currency,omitempty"`
	DestinationCurrency string  `json:"destination_currency,omitempty"`
	ExchangeRate        float64 `json:"exchange_rate,omitempty"`
}

// Itinerary is the whole trip record. It is loaded, edited, and persisted
// wholesale; there are no partial patches.
type Itinerary struct {
	TripMeta TripMeta `json:"trip_meta"`
	Days     []Day    `json:"days"`
}

// HomeCurrencyOrDefault returns the home currency code, falling back to TWD.
func (m TripMeta) HomeCurrencyOrDefault() string {
	if m.HomeCurrency == "" {
		return DefaultHomeCurrency
	}
	return m.HomeCurrency
}

// DestinationCurrencyOrDefault returns the destination currency code, falling back to JPY.
func (m TripMeta) DestinationCurrencyOrDefault() string {
	if m.DestinationCurrency == "" {
		return DefaultDestinationCurrency
	}
	return m.DestinationCurrency
}

// ExchangeRateOrDefault returns the trip exchange rate, falling back to the
// seed document's rate when unset or non-positive.
func (m TripMeta) ExchangeRateOrDefault() float64 {
	if m.ExchangeRate <= 0 {
		return DefaultExchangeRate
	}
	return m.ExchangeRate
}

// Clone returns a deep copy of the stop, including its tag slice.
func (s Stop) Clone() Stop {
	out := s
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	return out
}

// Clone returns a deep copy of the day, including stops, checklist, and weather.
func (d Day) Clone() Day {
	out := d
	if d.Weather != nil {
		w := *d.Weather
		out.Weather = &w
	}
	if d.Checklist != nil {
		out.Checklist = append([]string(nil), d.Checklist...)
	}
	if d.Stops != nil {
		out.Stops = make([]Stop, len(d.Stops))
		for i, s := range d.Stops {
			out.Stops[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the whole record. Mutations work copy-on-write:
// clone, modify the clone, swap. No entity is ever shared by reference between
// two published snapshots.
func (it Itinerary) Clone() Itinerary {
	out := it
	if it.Days != nil {
		out.Days = make([]Day, len(it.Days))
		for i, d := range it.Days {
			out.Days[i] = d.Clone()
		}
	}
	return out
}
