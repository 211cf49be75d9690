// Package curve implements discount curves with pillar interpolation and
// builders that bootstrap them from market quotes.
package curve

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// Interpolation selects how zero rates between pillars are derived.
type Interpolation string

const (
	// RateLinear interpolates zero rates linearly in time.
	RateLinear Interpolation = "rate-linear"
	// DiscountLogLinear interpolates log discount factors linearly in time.
	DiscountLogLinear Interpolation = "discount-log-linear"
)

// Compounding selects the rate/discount-factor conversion formula.
type Compounding string

const (
	Continuous Compounding = "continuous"
	Annual     Compounding = "annual"
	Simple     Compounding = "simple"
)

// DiscountCurve holds pillar anchors and answers discount factor, zero rate,
// and forward rate queries. It is immutable after construction and safe for
// concurrent read-only use.
type DiscountCurve struct {
	valuation     time.Time
	pillarDates   []time.Time
	pillarRates   []float64
	pillarTimes   []float64 // years from valuation under dayCount
	dayCount      utils.Convention
	interpolation Interpolation
	compounding   Compounding
}

type pillar struct {
	date time.Time
	rate float64
}

// New constructs a curve from raw (date, zero rate) pairs. The pairs are
// sorted by date before the curve is frozen.
func New(valuation time.Time, dates []time.Time, zeroRates []float64,
	dayCount utils.Convention, interpolation Interpolation, compounding Compounding) (*DiscountCurve, error) {

	if len(dates) != len(zeroRates) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "curve.New: %d dates, %d rates", len(dates), len(zeroRates))
	}
	if len(dates) == 0 {
		return nil, errors.Wrap(ErrNoPillars, "curve.New")
	}
	switch interpolation {
	case RateLinear, DiscountLogLinear:
	default:
		return nil, errors.Wrapf(ErrUnknownInterpolation, "curve.New: %q", interpolation)
	}
	switch compounding {
	case Continuous, Annual, Simple:
	default:
		return nil, errors.Wrapf(ErrUnknownCompounding, "curve.New: %q", compounding)
	}

	pillars := make([]pillar, len(dates))
	for i := range dates {
		if dates[i].Before(valuation) {
			return nil, errors.Wrapf(ErrBeforeValuation, "curve.New: pillar %s", dates[i].Format("2006-01-02"))
		}
		pillars[i] = pillar{date: dates[i], rate: zeroRates[i]}
	}
	sort.Slice(pillars, func(i, j int) bool {
		return pillars[i].date.Before(pillars[j].date)
	})

	c := &DiscountCurve{
		valuation:     valuation,
		pillarDates:   make([]time.Time, len(pillars)),
		pillarRates:   make([]float64, len(pillars)),
		pillarTimes:   make([]float64, len(pillars)),
		dayCount:      dayCount,
		interpolation: interpolation,
		compounding:   compounding,
	}
	for i, p := range pillars {
		t, err := utils.YearFraction(valuation, p.date, dayCount)
		if err != nil {
			return nil, errors.Wrap(err, "curve.New")
		}
		if i > 0 {
			if !pillars[i-1].date.Before(p.date) || t <= c.pillarTimes[i-1] {
				return nil, errors.Wrapf(ErrNonIncreasingPillars, "curve.New: pillar %s", p.date.Format("2006-01-02"))
			}
		}
		c.pillarDates[i] = p.date
		c.pillarRates[i] = p.rate
		c.pillarTimes[i] = t
	}

	return c, nil
}

// DiscountFactor returns the discount factor to target. It is 1.0 at the
// valuation date and fails for earlier dates.
func (c *DiscountCurve) DiscountFactor(target time.Time) (float64, error) {
	if target.Before(c.valuation) {
		return 0, errors.Wrapf(ErrBeforeValuation, "DiscountFactor: %s", target.Format("2006-01-02"))
	}
	t, err := utils.YearFraction(c.valuation, target, c.dayCount)
	if err != nil {
		return 0, errors.Wrap(err, "DiscountFactor")
	}
	if t == 0 {
		return 1.0, nil
	}
	return c.dfFromRate(c.zeroRateAt(t), t), nil
}

// ZeroRate returns the interpolated zero rate to target. At the valuation
// date it returns the first pillar's rate as the zero-maturity proxy.
func (c *DiscountCurve) ZeroRate(target time.Time) (float64, error) {
	if target.Before(c.valuation) {
		return 0, errors.Wrapf(ErrBeforeValuation, "ZeroRate: %s", target.Format("2006-01-02"))
	}
	t, err := utils.YearFraction(c.valuation, target, c.dayCount)
	if err != nil {
		return 0, errors.Wrap(err, "ZeroRate")
	}
	if t == 0 {
		return c.pillarRates[0], nil
	}
	return c.zeroRateAt(t), nil
}

// ForwardRate returns the simple forward rate over [start, end] implied by
// the ratio of discount factors.
func (c *DiscountCurve) ForwardRate(start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, errors.Wrapf(ErrBadInterval, "ForwardRate: %s -> %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	dfStart, err := c.DiscountFactor(start)
	if err != nil {
		return 0, errors.Wrap(err, "ForwardRate")
	}
	dfEnd, err := c.DiscountFactor(end)
	if err != nil {
		return 0, errors.Wrap(err, "ForwardRate")
	}
	tau, err := utils.YearFraction(start, end, c.dayCount)
	if err != nil {
		return 0, errors.Wrap(err, "ForwardRate")
	}
	return (dfStart/dfEnd - 1.0) / tau, nil
}

// ValuationDate returns the curve's valuation date.
func (c *DiscountCurve) ValuationDate() time.Time {
	return c.valuation
}

// DayCount returns the curve's day count convention.
func (c *DiscountCurve) DayCount() utils.Convention {
	return c.dayCount
}

// PillarDates returns a copy of the sorted pillar dates.
func (c *DiscountCurve) PillarDates() []time.Time {
	out := make([]time.Time, len(c.pillarDates))
	copy(out, c.pillarDates)
	return out
}

// PillarRates returns a copy of the zero rates aligned with PillarDates.
func (c *DiscountCurve) PillarRates() []float64 {
	out := make([]float64, len(c.pillarRates))
	copy(out, c.pillarRates)
	return out
}

// zeroRateAt interpolates the zero rate at year fraction t. Outside the
// pillar range the nearest pillar's rate is used; extrapolation is not
// configurable on this curve type.
func (c *DiscountCurve) zeroRateAt(t float64) float64 {
	times := c.pillarTimes
	rates := c.pillarRates

	if t <= times[0] {
		return rates[0]
	}
	if t >= times[len(times)-1] {
		return rates[len(rates)-1]
	}

	// First pillar with time >= t; t is strictly inside the range here.
	idx := sort.SearchFloat64s(times, t)
	t0, t1 := times[idx-1], times[idx]
	z0, z1 := rates[idx-1], rates[idx]

	switch c.interpolation {
	case RateLinear:
		return linearInterpolate(t0, z0, t1, z1, t)
	case DiscountLogLinear:
		logDF0 := math.Log(c.dfFromRate(z0, t0))
		logDF1 := math.Log(c.dfFromRate(z1, t1))
		dfT := math.Exp(linearInterpolate(t0, logDF0, t1, logDF1, t))
		return c.rateFromDF(dfT, t)
	default:
		panic(fmt.Sprintf("curve: unsupported interpolation %q", c.interpolation))
	}
}

func (c *DiscountCurve) dfFromRate(r, t float64) float64 {
	return dfFromZero(c.compounding, r, t)
}

func (c *DiscountCurve) rateFromDF(df, t float64) float64 {
	if t == 0 {
		return c.pillarRates[0]
	}
	return zeroFromDF(c.compounding, df, t)
}

// dfFromZero converts a zero rate to a discount factor at year fraction t.
func dfFromZero(compounding Compounding, r, t float64) float64 {
	switch compounding {
	case Continuous:
		return math.Exp(-r * t)
	case Annual:
		return math.Pow(1.0+r, -t)
	case Simple:
		return 1.0 / (1.0 + r*t)
	default:
		panic(fmt.Sprintf("curve: unsupported compounding %q", compounding))
	}
}

// zeroFromDF is the exact inverse of dfFromZero for t > 0.
func zeroFromDF(compounding Compounding, df, t float64) float64 {
	switch compounding {
	case Continuous:
		return -math.Log(df) / t
	case Annual:
		return math.Pow(df, -1.0/t) - 1.0
	case Simple:
		return (1.0/df - 1.0) / t
	default:
		panic(fmt.Sprintf("curve: unsupported compounding %q", compounding))
	}
}

func linearInterpolate(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	w := (x - x0) / (x1 - x0)
	return (1.0-w)*y0 + w*y1
}
