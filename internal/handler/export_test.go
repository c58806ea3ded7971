package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/handler"
)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func exportRows() []domain.ExportRow {
	return []domain.ExportRow{
		{
			DayNumber: 1, Date: "2026-04-15 (週三)", Theme: "抵達仙台",
			StopTime: "14:35", StopName: "仙台機場", Transport: "仙台空港鐵道",
			Cost: 660, Currency: "JPY", CostHome: 142, Tags: []string{"transit", "arrival"},
		},
		{DayNumber: 2, Date: "2026-04-16 (週四)", Theme: "自由探索"},
	}
}

func TestGetExport_200_JSON(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return exportRows(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp []domain.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "仙台機場", resp[0].StopName)
	assert.Equal(t, 142, resp[0].CostHome)
}

func TestGetExport_200_CSV(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return exportRows(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "trip_itinerary.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, "day", records[0][0])
	assert.Equal(t, "仙台機場", records[1][4])
	assert.Equal(t, "transit|arrival", records[1][9])
	// empty day row keeps the stop columns blank
	assert.Equal(t, "2", records[2][0])
	assert.Empty(t, records[2][4])
}

func TestGetExport_500_ServiceError(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) ([]domain.ExportRow, error) {
			return nil, errors.New("store offline")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec).Error.Code)
}
