package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/config"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/curve"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

func TestHorizonDate_FollowsDayCountBasis(t *testing.T) {
	t.Parallel()

	valuation := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, valuation.AddDate(0, 0, 360), horizonDate(valuation, 1.0, utils.Act360))
	require.Equal(t, valuation.AddDate(0, 0, 365), horizonDate(valuation, 1.0, utils.Act365F))
	require.Equal(t, valuation.AddDate(0, 0, 900), horizonDate(valuation, 2.5, utils.Act360))
}

func TestRun_CurveBondUsesModelBasis(t *testing.T) {
	t.Parallel()

	in := SimInput{
		ValuationDate:  "2024-01-01",
		SwapMaturities: []string{"2025-01-01", "2026-01-01"},
		ParSwapRates:   []float64{0.02, 0.022},
		Frequency:      "6M",
		MeanReversion:  0.1,
		Volatility:     0.01,
		Scheme:         "exact",
		HorizonYears:   1.0,
	}

	cfg := config.Default()
	cfg.NumPaths = 4
	cfg.NumSteps = 12

	out, err := run(in, cfg)
	require.NoError(t, err)

	// The diagnostic must discount to the same date the model maps the
	// horizon to: under the default ACT/360 that is valuation + 360 days,
	// not + 365.
	valuation := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	maturities := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	crv, err := curve.BootstrapFromParSwaps(valuation, maturities, in.ParSwapRates,
		in.Frequency, cfg.DayCountConvention(), curve.DiscountLogLinear, curve.Continuous)
	require.NoError(t, err)

	want, err := crv.DiscountFactor(valuation.AddDate(0, 0, 360))
	require.NoError(t, err)
	require.Equal(t, want, out.CurveBondPrice)

	mismatched, err := crv.DiscountFactor(valuation.AddDate(0, 0, 365))
	require.NoError(t, err)
	require.NotEqual(t, mismatched, out.CurveBondPrice)

	require.Equal(t, cfg.NumPaths, out.Paths)
	require.Greater(t, out.ClosedFormBond, 0.0)
}
