package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end time.Time
		convention utils.Convention
		want       float64
	}{
		{"act360 half year", d(2024, 1, 1), d(2024, 6, 29), utils.Act360, 0.5},
		{"act360 full span", d(2024, 1, 1), d(2024, 7, 1), utils.Act360, 182.0 / 360.0},
		{"act365 one year", d(2023, 1, 1), d(2024, 1, 1), utils.Act365F, 1.0},
		{"act365 leap year", d(2024, 1, 1), d(2025, 1, 1), utils.Act365F, 366.0 / 365.0},
		{"act365.25", d(2024, 1, 1), d(2025, 1, 1), utils.Act365Q, 366.0 / 365.25},
		{"actact leap year", d(2024, 1, 1), d(2025, 1, 1), utils.ActAct, 1.0},
		{"actact non-leap", d(2023, 1, 1), d(2024, 1, 1), utils.ActAct, 1.0},
		{"actact multi year", d(2023, 1, 1), d(2026, 1, 1), utils.ActAct, 3.0},
		{"30/360 six months", d(2024, 1, 15), d(2024, 7, 15), utils.Thirty360, 0.5},
		{"30/360 end of month caps", d(2024, 1, 31), d(2024, 7, 31), utils.Thirty360, 0.5},
		{"zero length", d(2024, 1, 1), d(2024, 1, 1), utils.Act360, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := utils.YearFraction(tt.start, tt.end, tt.convention)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestYearFraction_ActActPartialYears(t *testing.T) {
	t.Parallel()

	// Half of 2023 (non-leap) plus half of 2024 (leap), counted against each
	// year's own length.
	got, err := utils.YearFraction(d(2023, 7, 2), d(2024, 7, 2), utils.ActAct)
	require.NoError(t, err)

	want := 183.0/365.0 + 183.0/366.0
	require.InDelta(t, want, got, 1e-12)
}

func TestYearFraction_Errors(t *testing.T) {
	t.Parallel()

	_, err := utils.YearFraction(d(2024, 7, 1), d(2024, 1, 1), utils.Act360)
	require.ErrorIs(t, err, utils.ErrBackwardDates)

	_, err = utils.YearFraction(d(2024, 1, 1), d(2024, 7, 1), utils.Convention("BUS/252"))
	require.ErrorIs(t, err, utils.ErrUnknownConvention)
}
