package curve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/curve"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

func TestFromDiscountFactors_RoundTrip(t *testing.T) {
	t.Parallel()

	original := testCurve(t, curve.DiscountLogLinear)

	dfs := make([]float64, len(pillars))
	for i, pillarDate := range pillars {
		df, err := original.DiscountFactor(pillarDate)
		require.NoError(t, err)
		dfs[i] = df
	}

	rebuilt, err := curve.FromDiscountFactors(valuation, pillars, dfs,
		utils.Act365F, curve.DiscountLogLinear, curve.Continuous)
	require.NoError(t, err)

	for i, pillarDate := range pillars {
		z, err := rebuilt.ZeroRate(pillarDate)
		require.NoError(t, err)
		require.InDelta(t, zeros[i], z, 1e-12)
	}

	for _, target := range []time.Time{d(2024, 8, 1), d(2025, 6, 15), d(2026, 11, 30)} {
		want, err := original.DiscountFactor(target)
		require.NoError(t, err)
		got, err := rebuilt.DiscountFactor(target)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-12)
	}
}

func TestFromDiscountFactors_Validation(t *testing.T) {
	t.Parallel()

	_, err := curve.FromDiscountFactors(valuation, []time.Time{valuation}, []float64{1.0},
		utils.Act365F, curve.RateLinear, curve.Continuous)
	require.ErrorIs(t, err, curve.ErrBeforeValuation)

	_, err = curve.FromDiscountFactors(valuation, []time.Time{d(2025, 1, 1)}, []float64{0.0},
		utils.Act365F, curve.RateLinear, curve.Continuous)
	require.ErrorIs(t, err, curve.ErrInvalidDiscountFactor)

	_, err = curve.FromDiscountFactors(valuation, []time.Time{d(2025, 1, 1)}, []float64{-0.5},
		utils.Act365F, curve.RateLinear, curve.Continuous)
	require.ErrorIs(t, err, curve.ErrInvalidDiscountFactor)

	_, err = curve.FromDiscountFactors(valuation, []time.Time{d(2025, 1, 1)}, []float64{1.5},
		utils.Act365F, curve.RateLinear, curve.Continuous)
	require.ErrorIs(t, err, curve.ErrInvalidDiscountFactor)
}

func TestFromDeposits(t *testing.T) {
	t.Parallel()

	maturities := []time.Time{d(2024, 4, 1), d(2024, 7, 1), d(2025, 1, 1)}
	depositRates := []float64{0.021, 0.022, 0.023}

	c, err := curve.FromDeposits(valuation, maturities, depositRates,
		utils.Act360, curve.RateLinear, curve.Simple)
	require.NoError(t, err)

	for i, maturity := range maturities {
		tau, err := utils.YearFraction(valuation, maturity, utils.Act360)
		require.NoError(t, err)

		df, err := c.DiscountFactor(maturity)
		require.NoError(t, err)
		require.InDelta(t, 1.0/(1.0+depositRates[i]*tau), df, 1e-12)
	}
}
