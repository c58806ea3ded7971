// Package service contains the business logic for the Tohoku Trip backend:
// stop ordering, schedule reconciliation, budget categorization, currency
// conversion, and the load/save orchestration around them.
// Services depend on repo interfaces, not implementations; no SQL lives here.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// Convert converts amount from one currency code to another, rounded to the
// nearest whole unit of the target currency (trips are budgeted in whole yen
// and whole dollars; there are no fractional minor units anywhere in the
// document).
//
// The trip defines exactly one directional rate, destination → home:
// 1 unit of destination currency = rate units of home currency. When the
// source and target codes match the amount passes through unchanged.
// Any other amount is treated as destination-priced and multiplied by the
// rate. That is only correct for two-currency trips, which is all the editor
// produces; a third currency would need a rate table this document does not
// carry.
//
// Pure function, no side effects. The multiplication runs on decimals so a
// rate like 0.215 never picks up binary float drift before rounding.
func Convert(amount int, from, to string, rate float64) int {
	if from == to {
		return amount
	}
	converted := decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromFloat(rate))
	return int(converted.Round(0).IntPart())
}

// convertToHome converts a cost into the trip's home currency using the
// trip-level settings, applying the destination-currency default for costs
// that carry no currency code of their own.
func convertToHome(cost int, currency string, meta domainMeta) int {
	curr := currency
	if curr == "" {
		curr = meta.dest
	}
	return Convert(cost, curr, meta.home, meta.rate)
}

// domainMeta is the resolved trip-level currency context: defaults applied once,
// then threaded through categorization and export instead of re-deriving per item.
type domainMeta struct {
	home string
	dest string
	rate float64
}

func resolveMeta(m domain.TripMeta) domainMeta {
	return domainMeta{
		home: m.HomeCurrencyOrDefault(),
		dest: m.DestinationCurrencyOrDefault(),
		rate: m.ExchangeRateOrDefault(),
	}
}
