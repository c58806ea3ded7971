package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/repo"
	"github.com/jackeywu6810photo-bot/tohoku-trip/testutil"
)

// newTestRepo opens a transaction against the test database and returns an
// ItineraryRepo backed by that transaction. The transaction is rolled back
// when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; skips otherwise.
func newTestRepo(t *testing.T) repo.ItineraryRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewItineraryRepo(tx)
}

// itineraryFixture returns a small two-day document for round-trip tests.
func itineraryFixture() domain.Itinerary {
	return domain.Itinerary{
		TripMeta: domain.TripMeta{
			Title:               "repo test trip",
			DaysCount:           2,
			Travelers:           2,
			StartDate:           "2026-04-15",
			HomeCurrency:        "TWD",
			DestinationCurrency: "JPY",
			ExchangeRate:        0.215,
		},
		Days: []domain.Day{
			{
				DayNumber:     1,
				Date:          "2026-04-15 (週三)",
				Theme:         "抵達仙台",
				Accommodation: "仙台大都會飯店",
				Stops: []domain.Stop{
					{Time: "14:35", Name: "仙台機場", Cost: 660, Currency: "JPY", Tags: []string{"transit"}},
				},
			},
			{DayNumber: 2, Date: "2026-04-16 (週四)", Theme: domain.PlaceholderTheme},
		},
	}
}

func TestItineraryRepo_LoadEmpty(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_SaveThenLoad(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := itineraryFixture()
	require.NoError(t, r.Save(ctx, input))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, input.TripMeta, got.TripMeta)
	require.Len(t, got.Days, 2)
	assert.Equal(t, input.Days[0].Stops, got.Days[0].Stops)
	assert.Equal(t, domain.PlaceholderTheme, got.Days[1].Theme)
}

func TestItineraryRepo_SaveReplacesWholesale(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := itineraryFixture()
	require.NoError(t, r.Save(ctx, first))

	second := itineraryFixture()
	second.TripMeta.Title = "replaced trip"
	second.Days = second.Days[:1]
	require.NoError(t, r.Save(ctx, second))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, "replaced trip", got.TripMeta.Title)
	assert.Len(t, got.Days, 1, "old days must not linger after full replace")
}

func TestItineraryRepo_PreservesUnicodeText(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := itineraryFixture()
	input.Days[0].Stops[0].Description = "善治郎牛舌御膳，澱粉與炭火的香氣"

	require.NoError(t, r.Save(ctx, input))
	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, input.Days[0].Stops[0].Description, got.Days[0].Stops[0].Description)
}
