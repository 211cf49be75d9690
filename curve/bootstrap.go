package curve

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/calendar"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// BootstrapFromParSwaps bootstraps a curve from par swap rates, processed in
// ascending maturity order.
//
// Each swap's par rate S satisfies sum(DF(t_i) * S * tau_i) = 1 - DF(T), so
// every maturity adds one pillar solved in closed form from the pillars
// already known:
//
//	DF(T) = (1 - PV_known) / (1 + S * tau_last)
//
// The first swap's discount factor is approximated directly from the simple
// rate formula over its full tenor. Schedules use exact (unadjusted) dates.
// A single failing swap aborts the whole construction.
func BootstrapFromParSwaps(valuation time.Time, maturities []time.Time, parRates []float64,
	frequency string, dayCount utils.Convention, interpolation Interpolation, compounding Compounding) (*DiscountCurve, error) {

	if len(maturities) != len(parRates) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "BootstrapFromParSwaps: %d maturities, %d rates",
			len(maturities), len(parRates))
	}
	if len(maturities) == 0 {
		return nil, errors.Wrap(ErrNoPillars, "BootstrapFromParSwaps")
	}

	swaps := make([]pillar, len(maturities))
	for i := range maturities {
		swaps[i] = pillar{date: maturities[i], rate: parRates[i]}
	}
	sort.Slice(swaps, func(i, j int) bool {
		return swaps[i].date.Before(swaps[j].date)
	})

	var (
		pillarDates     []time.Time
		discountFactors []float64
	)

	for _, sw := range swaps {
		maturity, swapRate := sw.date, sw.rate

		// Exact schedule dates only; business-day adjustment would move
		// cashflows off the bootstrap grid.
		schedule, err := utils.GenerateSchedule(valuation, maturity, frequency, calendar.NoAdjustment, calendar.Calendar{})
		if err != nil {
			return nil, errors.Wrap(err, "BootstrapFromParSwaps")
		}
		if len(schedule) > 0 && schedule[0].Equal(valuation) {
			schedule = schedule[1:]
		}
		if len(schedule) == 0 {
			return nil, errors.Wrapf(ErrBootstrapFailed, "BootstrapFromParSwaps: empty schedule for maturity %s",
				maturity.Format("2006-01-02"))
		}

		if len(pillarDates) == 0 {
			// First swap: no earlier pillars to discount against, so use the
			// simple-rate approximation over the full tenor.
			t, err := utils.YearFraction(valuation, maturity, dayCount)
			if err != nil {
				return nil, errors.Wrap(err, "BootstrapFromParSwaps")
			}
			if t <= 0 {
				return nil, errors.Wrapf(ErrBeforeValuation, "BootstrapFromParSwaps: maturity %s",
					maturity.Format("2006-01-02"))
			}
			pillarDates = append(pillarDates, maturity)
			discountFactors = append(discountFactors, 1.0/(1.0+swapRate*t))
			continue
		}

		temp, err := FromDiscountFactors(valuation, pillarDates, discountFactors, dayCount, interpolation, compounding)
		if err != nil {
			return nil, errors.Wrap(err, "BootstrapFromParSwaps")
		}

		pvKnown := 0.0
		tauMaturity := 0.0

		for i, end := range schedule {
			start := valuation
			if i > 0 {
				start = schedule[i-1]
			}
			tau, err := utils.YearFraction(start, end, dayCount)
			if err != nil {
				return nil, errors.Wrap(err, "BootstrapFromParSwaps")
			}

			if end.Equal(maturity) {
				tauMaturity = tau
				continue
			}
			df, err := temp.DiscountFactor(end)
			if err != nil {
				return nil, errors.Wrap(err, "BootstrapFromParSwaps")
			}
			pvKnown += df * swapRate * tau
		}

		if !schedule[len(schedule)-1].Equal(maturity) {
			tauMaturity, err = utils.YearFraction(schedule[len(schedule)-1], maturity, dayCount)
			if err != nil {
				return nil, errors.Wrap(err, "BootstrapFromParSwaps")
			}
		}

		dfMaturity := 1.0
		if tauMaturity > 0 {
			dfMaturity = (1.0 - pvKnown) / (1.0 + swapRate*tauMaturity)
		}
		if dfMaturity <= 0 || dfMaturity > 1.0 {
			return nil, errors.Wrapf(ErrBootstrapFailed,
				"BootstrapFromParSwaps: discount factor %.12f at maturity %s",
				dfMaturity, maturity.Format("2006-01-02"))
		}

		pillarDates = append(pillarDates, maturity)
		discountFactors = append(discountFactors, dfMaturity)
	}

	return FromDiscountFactors(valuation, pillarDates, discountFactors, dayCount, interpolation, compounding)
}
