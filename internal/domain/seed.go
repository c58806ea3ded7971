package domain

// DefaultItinerary returns the seed document served (and persisted
// best-effort) when the backing store holds no itinerary yet. It is a fresh
// deep value on every call, so callers may mutate it freely.
func DefaultItinerary() Itinerary {
	return Itinerary{
		TripMeta: TripMeta{
			Title:               "2026 東北櫻花夢幻之旅",
			DaysCount:           7,
			Travelers:           2,
			Budget:              150000,
			Location:            "日本東北",
			StartDate:           "2026-04-15",
			HomeCurrency:        DefaultHomeCurrency,
			DestinationCurrency: DefaultDestinationCurrency,
			ExchangeRate:        DefaultExchangeRate,
		},
		Days: []Day{
			{
				DayNumber: 1,
				Date:      "2026-04-15 (週三)",
				Theme:     "抵達仙台",
				Stops: []Stop{
					{
						Time:        "14:35",
						Name:        "仙台機場 (SDJ)",
						Description: "抵達與入境",
						Cost:        0,
						Currency:    "JPY",
					},
					{
						Time:        "16:30",
						Name:        "仙台大都會飯店",
						Description: "Check-in",
						Transport:   "仙台空港Access線",
						Cost:        660,
						Currency:    "JPY",
					},
				},
				Accommodation:         "仙台大都會飯店",
				AccommodationCost:     15000,
				AccommodationCurrency: "JPY",
			},
		},
	}
}
