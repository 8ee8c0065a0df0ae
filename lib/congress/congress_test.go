package congress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalendarBaseCase(t *testing.T) {
	start, err := StartYear(0)
	require.NoError(t, err)
	require.Equal(t, 1786, start)

	end, err := EndYear(0)
	require.NoError(t, err)
	require.Equal(t, 1789, end)
}

func TestCalendarContiguity(t *testing.T) {
	for n := 1; n <= MaxNumber; n++ {
		prevEnd, err := EndYear(n - 1)
		require.NoError(t, err)
		start, err := StartYear(n)
		require.NoError(t, err)
		require.Equal(t, prevEnd, start, "congress %d", n)
	}
}

func TestCalendarOutOfRange(t *testing.T) {
	_, err := StartYear(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = EndYear(MaxNumber + 1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, _, err = Years(MaxNumber + 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNumbersBoundaryYear(t *testing.T) {
	// 1789 ends the Continental Congress and starts the 1st
	require.Equal(t, []int{0, 1}, Numbers(1789))
	require.Equal(t, []int{1}, Numbers(1790))
	require.Equal(t, []int{1, 2}, Numbers(1791))
	require.Empty(t, Numbers(1700))
}

func TestYearRangePrefersLaterCongress(t *testing.T) {
	start, end, ok := YearRange(1789)
	require.True(t, ok)
	require.Equal(t, 1789, start)
	require.Equal(t, 1791, end)

	_, _, ok = YearRange(1700)
	require.False(t, ok)
}

func TestCurrentNumber(t *testing.T) {
	cases := []struct {
		now    time.Time
		expect int
	}{
		// mid-2026 is squarely in the 119th
		{time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), 119},
		// Jan 1-2 2027 the outgoing 119th is still seated
		{time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), 119},
		{time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC), 119},
		// the 120th convenes Jan 3
		{time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC), 120},
		{time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC), 116},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, CurrentNumber(test.now), "now=%s", test.now)
	}
}
