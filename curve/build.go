package curve

import (
	"time"

	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// FromZeroRates builds a curve directly from (date, zero rate) pillars.
func FromZeroRates(valuation time.Time, dates []time.Time, zeroRates []float64,
	dayCount utils.Convention, interpolation Interpolation, compounding Compounding) (*DiscountCurve, error) {
	return New(valuation, dates, zeroRates, dayCount, interpolation, compounding)
}

// FromDiscountFactors builds a curve by inverting the compounding formula at
// each pillar. Discount factors must lie in (0, 1] and pillar dates must be
// strictly after the valuation date.
func FromDiscountFactors(valuation time.Time, dates []time.Time, discountFactors []float64,
	dayCount utils.Convention, interpolation Interpolation, compounding Compounding) (*DiscountCurve, error) {

	if len(dates) != len(discountFactors) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "FromDiscountFactors: %d dates, %d factors",
			len(dates), len(discountFactors))
	}
	switch compounding {
	case Continuous, Annual, Simple:
	default:
		return nil, errors.Wrapf(ErrUnknownCompounding, "FromDiscountFactors: %q", compounding)
	}

	zeros := make([]float64, len(dates))
	for i, d := range dates {
		t, err := utils.YearFraction(valuation, d, dayCount)
		if err != nil {
			return nil, errors.Wrap(err, "FromDiscountFactors")
		}
		if t <= 0 {
			return nil, errors.Wrapf(ErrBeforeValuation, "FromDiscountFactors: pillar %s", d.Format("2006-01-02"))
		}
		df := discountFactors[i]
		if df <= 0 || df >= 1.0+1e-12 {
			return nil, errors.Wrapf(ErrInvalidDiscountFactor, "FromDiscountFactors: %.12f at %s",
				df, d.Format("2006-01-02"))
		}
		zeros[i] = zeroFromDF(compounding, df, t)
	}

	return New(valuation, dates, zeros, dayCount, interpolation, compounding)
}

// FromDeposits builds a curve from simple deposit quotes r over [0, T] using
// DF = 1 / (1 + r*T), then delegates to FromDiscountFactors.
func FromDeposits(valuation time.Time, maturities []time.Time, simpleRates []float64,
	dayCount utils.Convention, interpolation Interpolation, compounding Compounding) (*DiscountCurve, error) {

	if len(maturities) != len(simpleRates) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "FromDeposits: %d maturities, %d rates",
			len(maturities), len(simpleRates))
	}

	dfs := make([]float64, len(maturities))
	for i, d := range maturities {
		t, err := utils.YearFraction(valuation, d, dayCount)
		if err != nil {
			return nil, errors.Wrap(err, "FromDeposits")
		}
		if t <= 0 {
			return nil, errors.Wrapf(ErrBeforeValuation, "FromDeposits: maturity %s", d.Format("2006-01-02"))
		}
		dfs[i] = 1.0 / (1.0 + simpleRates[i]*t)
	}

	return FromDiscountFactors(valuation, maturities, dfs, dayCount, interpolation, compounding)
}
