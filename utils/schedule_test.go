package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/calendar"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

func TestAddMonth(t *testing.T) {
	t.Parallel()

	require.Equal(t, d(2024, 2, 29), utils.AddMonth(d(2024, 1, 31), 1))
	require.Equal(t, d(2024, 3, 31), utils.AddMonth(d(2024, 1, 31), 2))
	require.Equal(t, d(2024, 4, 30), utils.AddMonth(d(2024, 3, 31), 1))
	require.Equal(t, d(2023, 12, 15), utils.AddMonth(d(2024, 1, 15), -1))
}

func TestAddYears(t *testing.T) {
	t.Parallel()

	require.Equal(t, d(2025, 2, 28), utils.AddYears(d(2024, 2, 29), 1))
	require.Equal(t, d(2028, 2, 29), utils.AddYears(d(2024, 2, 29), 4))
	require.Equal(t, d(2026, 7, 10), utils.AddYears(d(2024, 7, 10), 2))
}

func TestGenerateSchedule_Quarterly(t *testing.T) {
	t.Parallel()

	schedule, err := utils.GenerateSchedule(d(2024, 1, 1), d(2024, 7, 1), "3M",
		calendar.NoAdjustment, calendar.Calendar{})
	require.NoError(t, err)

	require.Equal(t, []time.Time{d(2024, 1, 1), d(2024, 4, 1), d(2024, 7, 1)}, schedule)
}

func TestGenerateSchedule_IncludesAdjustedEndpoints(t *testing.T) {
	t.Parallel()

	// 2024-03-31 is a Sunday; Modified Following keeps it inside March.
	schedule, err := utils.GenerateSchedule(d(2024, 1, 1), d(2024, 3, 31), "1M",
		calendar.ModifiedFollowing, calendar.Calendar{})
	require.NoError(t, err)

	require.Equal(t, d(2024, 1, 1), schedule[0])
	require.Equal(t, d(2024, 3, 29), schedule[len(schedule)-1])
}

func TestGenerateSchedule_AnnualFrequency(t *testing.T) {
	t.Parallel()

	schedule, err := utils.GenerateSchedule(d(2024, 1, 1), d(2027, 1, 1), "1Y",
		calendar.NoAdjustment, calendar.Calendar{})
	require.NoError(t, err)

	require.Equal(t, []time.Time{
		d(2024, 1, 1), d(2025, 1, 1), d(2026, 1, 1), d(2027, 1, 1),
	}, schedule)
}

func TestGenerateSchedule_Errors(t *testing.T) {
	t.Parallel()

	_, err := utils.GenerateSchedule(d(2024, 7, 1), d(2024, 1, 1), "3M",
		calendar.NoAdjustment, calendar.Calendar{})
	require.ErrorIs(t, err, utils.ErrBackwardDates)

	for _, frequency := range []string{"", "M", "3W", "0M", "-1M", "3X"} {
		_, err := utils.GenerateSchedule(d(2024, 1, 1), d(2024, 7, 1), frequency,
			calendar.NoAdjustment, calendar.Calendar{})
		require.ErrorIs(t, err, utils.ErrBadFrequency, "frequency %q", frequency)
	}
}
