package stats

import (
	"math"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
)

// ConversionRate returns hired/total as a percentage. A zero total yields
// 0 rather than NaN.
func ConversionRate(hired, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(hired) / float64(total) * 100)
}

// PercentageChange returns the period-over-period change between two
// values. With a zero previous period the result is 0 when the current
// period is also zero, else 100.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return round1((current - previous) / previous * 100)
}

// AverageTimeToHireDays averages updated_at minus created_at, in days,
// over referrals that reached hired. Referrals in other stages are
// ignored. An empty input yields 0.
func AverageTimeToHireDays(referrals []models.Referral) float64 {
	var totalDays float64
	var count int
	for _, r := range referrals {
		if r.Status != models.StatusHired {
			continue
		}
		totalDays += r.UpdatedAt.Sub(r.CreatedAt).Hours() / 24
		count++
	}
	if count == 0 {
		return 0
	}
	return round1(totalDays / float64(count))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
