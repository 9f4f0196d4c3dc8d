package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow_Week(t *testing.T) {
	// Wednesday, June 18 2025.
	now := time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)

	window, err := ResolveWindow("week", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, "week", window.Range)
}

func TestResolveWindow_WeekOnSunday(t *testing.T) {
	// Sunday still belongs to the week that started the previous Monday.
	now := time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)

	window, err := ResolveWindow("week", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_WeekExcludesPriorPeriod(t *testing.T) {
	now := time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)

	window, err := ResolveWindow("week", "", "", now)
	require.NoError(t, err)

	// A referral created last week falls outside the window.
	lastWeek := time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC)
	assert.True(t, lastWeek.Before(window.Start))
}

func TestResolveWindow_Month(t *testing.T) {
	now := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

	window, err := ResolveWindow("month", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_Quarter(t *testing.T) {
	tests := []struct {
		month     time.Month
		wantStart time.Month
		wantEnd   time.Month
	}{
		{time.January, time.January, time.April},
		{time.March, time.January, time.April},
		{time.April, time.April, time.July},
		{time.August, time.July, time.October},
		{time.December, time.October, time.January},
	}

	for _, tt := range tests {
		now := time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.UTC)
		window, err := ResolveWindow("quarter", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, tt.wantStart, window.Start.Month(), "month=%v", tt.month)
		assert.Equal(t, tt.wantEnd, window.End.Month(), "month=%v", tt.month)
	}
}

func TestResolveWindow_CustomRequiresBothBounds(t *testing.T) {
	now := time.Now()

	_, err := ResolveWindow("custom", "", "", now)
	assert.Error(t, err)

	_, err = ResolveWindow("custom", "2025-01-01", "", now)
	assert.Error(t, err)

	_, err = ResolveWindow("custom", "garbage", "2025-02-01", now)
	assert.Error(t, err)

	window, err := ResolveWindow("custom", "2025-01-01", "2025-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), window.Start)
	// Upper bound is inclusive of the whole toDate day.
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), window.End)
}

func TestResolveWindow_UnknownRange(t *testing.T) {
	_, err := ResolveWindow("decade", "", "", time.Now())
	assert.Error(t, err)
}

func TestResolveWindow_DefaultsToWeek(t *testing.T) {
	now := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	window, err := ResolveWindow("", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, "week", window.Range)
}
