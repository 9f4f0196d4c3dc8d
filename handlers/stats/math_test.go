package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
)

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0.0, ConversionRate(0, 0))
	assert.Equal(t, 0.0, ConversionRate(5, 0))
	assert.Equal(t, 50.0, ConversionRate(1, 2))
	assert.Equal(t, 33.3, ConversionRate(1, 3))
	assert.Equal(t, 100.0, ConversionRate(4, 4))
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 7, 0, 100},
		{"growth", 15, 10, 50},
		{"decline", 5, 10, -50},
		{"flat", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentageChange(tt.current, tt.previous))
		})
	}
}

func TestMetricsAreAlwaysFinite(t *testing.T) {
	values := []float64{
		ConversionRate(0, 0),
		ConversionRate(100, 0),
		PercentageChange(0, 0),
		PercentageChange(100, 0),
		AverageTimeToHireDays(nil),
	}

	for i, v := range values {
		assert.False(t, math.IsNaN(v), "value %d is NaN", i)
		assert.False(t, math.IsInf(v, 0), "value %d is Inf", i)
	}
}

func TestAverageTimeToHireDays(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	referrals := []models.Referral{
		{Status: models.StatusHired, CreatedAt: created, UpdatedAt: created.AddDate(0, 0, 10)},
		{Status: models.StatusHired, CreatedAt: created, UpdatedAt: created.AddDate(0, 0, 20)},
		// Non-hired referrals are ignored.
		{Status: models.StatusInterviewing, CreatedAt: created, UpdatedAt: created.AddDate(0, 0, 90)},
	}

	assert.Equal(t, 15.0, AverageTimeToHireDays(referrals))
}

func TestAverageTimeToHireDays_NoHires(t *testing.T) {
	referrals := []models.Referral{
		{Status: models.StatusPending},
		{Status: models.StatusRejected},
	}
	assert.Equal(t, 0.0, AverageTimeToHireDays(referrals))
}

func TestBuildStatistics(t *testing.T) {
	counts := map[string]int64{
		models.StatusPending:      3,
		models.StatusContacted:    2,
		models.StatusInterviewing: 1,
		models.StatusHired:        4,
		models.StatusRejected:     5,
	}

	s := BuildStatistics(counts)

	assert.Equal(t, int64(15), s.TotalReferrals)
	assert.Equal(t, int64(3), s.PendingReferrals)
	assert.Equal(t, int64(3), s.InProgressReferrals)
	assert.Equal(t, int64(4), s.CompletedReferrals)
	assert.Equal(t, int64(5), s.RejectedReferrals)
}

func TestBuildStatistics_UnknownStatusCountsAsPending(t *testing.T) {
	s := BuildStatistics(map[string]int64{"archived": 2})

	assert.Equal(t, int64(2), s.TotalReferrals)
	assert.Equal(t, int64(2), s.PendingReferrals)
}

func TestBuildStatistics_Empty(t *testing.T) {
	s := BuildStatistics(nil)
	assert.Equal(t, int64(0), s.TotalReferrals)
}
