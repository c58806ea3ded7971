// Package handler — export.go implements GET /api/export.
// Returns the itinerary as a flat per-stop table for download.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day", "date", "theme",
	"stop_time", "stop_name", "transport",
	"cost", "currency", "cost_home", "tags",
}

// GetExport handles GET /api/export.
// Use ?format=csv to receive a downloadable CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV encodes the rows as a CSV attachment.
// Tags within a row are pipe-separated ("|") to keep each stop on a single line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — writes to bytes.Buffer never fail.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(csvRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trip_itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// csvRecord encodes an ExportRow as a flat string slice.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.DayNumber),
		r.Date,
		r.Theme,
		r.StopTime,
		r.StopName,
		r.Transport,
		strconv.Itoa(r.Cost),
		r.Currency,
		strconv.Itoa(r.CostHome),
		strings.Join(r.Tags, "|"),
	}
}
