package service

import (
	"github.com/perpusid/perpustakaan-service/internal/model"
)

// DefaultFinePerDay is the per-day late fine in rupiah when none is
// configured.
const DefaultFinePerDay int64 = 1000

// CalculateFine returns the fine owed on a loan due on planned and
// evaluated at actual: zero when actual is on or before planned,
// otherwise days late times the per-day rate. Pure and total at day
// granularity.
func CalculateFine(planned, actual model.Date, ratePerDay int64) int64 {
	if !actual.After(planned) {
		return 0
	}
	return int64(actual.DaysSince(planned)) * ratePerDay
}
