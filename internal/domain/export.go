package domain

// ExportRow is a single row in the full-itinerary export.
// It is a flat, denormalized view: one row per stop, with day fields repeated
// for every stop on that day. Days with no stops yield one row with zero
// values for all stop fields.
//
// CostHome is the stop cost converted to the trip's home currency with the
// trip exchange rate, rounded to whole units.
// Tags is the stop's free-text tag list; callers that need a joined string
// (e.g. CSV) should join with "|".
type ExportRow struct {
	// Day fields — repeated for every stop on the day.
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	Theme     string `json:"theme"`

	// Stop fields — zero values when the day has no stops.
	StopTime  string   `json:"stop_time,omitempty"`
	StopName  string   `json:"stop_name,omitempty"`
	Transport string   `json:"transport,omitempty"`
	Cost      int      `json:"cost"`
	Currency  string   `json:"currency,omitempty"`
	CostHome  int      `json:"cost_home"`
	Tags      []string `json:"tags,omitempty"`
}
