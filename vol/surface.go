// Package vol implements expiry-by-tenor volatility surfaces with
// per-axis interpolation and extrapolation.
package vol

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// Interpolation selects how in-range queries blend grid values.
type Interpolation string

const (
	Linear Interpolation = "linear"
	Flat   Interpolation = "flat"
)

// Extrapolation selects how out-of-range queries extend the grid.
type Extrapolation string

const (
	FlatExtrapolation   Extrapolation = "flat"
	LinearExtrapolation Extrapolation = "linear"
)

var (
	// ErrEmptyAxis is returned when an expiry or tenor axis has no points.
	ErrEmptyAxis = errors.New("at least one grid point per axis is required")

	// ErrNonIncreasingAxis is returned when axis times are not strictly increasing.
	ErrNonIncreasingAxis = errors.New("axis times must be strictly increasing")

	// ErrGridShape is returned when the matrix does not match the axis lengths.
	ErrGridShape = errors.New("volatility matrix shape mismatch")

	// ErrNegativeVolatility is returned for a negative grid entry.
	ErrNegativeVolatility = errors.New("volatility must be non-negative")

	// ErrNegativeTime is returned when a query time is negative.
	ErrNegativeTime = errors.New("query time must be non-negative")

	// ErrExpiryBeforeValuation is returned for expiry dates before the valuation date.
	ErrExpiryBeforeValuation = errors.New("expiry date before valuation date")

	// ErrUnknownMode is returned for an unrecognized interpolation or
	// extrapolation mode.
	ErrUnknownMode = errors.New("unknown surface mode")
)

// Surface is an immutable volatility surface indexed [expiry][tenor].
type Surface struct {
	valuation     time.Time
	expiryTimes   []float64
	tenorTimes    []float64
	matrix        [][]float64
	interpolation Interpolation
	extrapolation Extrapolation
	dayCount      utils.Convention
}

// NewSurface validates and freezes a surface. The matrix is copied, so the
// caller's slices stay independent.
func NewSurface(valuation time.Time, expiryTimes, tenorTimes []float64, matrix [][]float64,
	interpolation Interpolation, extrapolation Extrapolation, dayCount utils.Convention) (*Surface, error) {

	if len(expiryTimes) == 0 || len(tenorTimes) == 0 {
		return nil, errors.Wrap(ErrEmptyAxis, "vol.NewSurface")
	}
	if err := validateIncreasing(expiryTimes); err != nil {
		return nil, errors.Wrap(err, "vol.NewSurface: expiries")
	}
	if err := validateIncreasing(tenorTimes); err != nil {
		return nil, errors.Wrap(err, "vol.NewSurface: tenors")
	}
	switch interpolation {
	case Linear, Flat:
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "vol.NewSurface: interpolation %q", interpolation)
	}
	switch extrapolation {
	case FlatExtrapolation, LinearExtrapolation:
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "vol.NewSurface: extrapolation %q", extrapolation)
	}

	if len(matrix) != len(expiryTimes) {
		return nil, errors.Wrapf(ErrGridShape, "vol.NewSurface: %d rows for %d expiries",
			len(matrix), len(expiryTimes))
	}
	rows := make([][]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(tenorTimes) {
			return nil, errors.Wrapf(ErrGridShape, "vol.NewSurface: row %d has %d columns for %d tenors",
				i, len(row), len(tenorTimes))
		}
		for j, v := range row {
			if v < 0 {
				return nil, errors.Wrapf(ErrNegativeVolatility, "vol.NewSurface: [%d][%d] = %g", i, j, v)
			}
		}
		rows[i] = append([]float64(nil), row...)
	}

	return &Surface{
		valuation:     valuation,
		expiryTimes:   append([]float64(nil), expiryTimes...),
		tenorTimes:    append([]float64(nil), tenorTimes...),
		matrix:        rows,
		interpolation: interpolation,
		extrapolation: extrapolation,
		dayCount:      dayCount,
	}, nil
}

// Volatility converts the expiry date to a year fraction under the surface's
// day count and delegates to VolatilityAtTimes.
func (s *Surface) Volatility(expiryDate time.Time, tenorYears float64) (float64, error) {
	if expiryDate.Before(s.valuation) {
		return 0, errors.Wrapf(ErrExpiryBeforeValuation, "Volatility: %s", expiryDate.Format("2006-01-02"))
	}
	expiryTime, err := utils.YearFraction(s.valuation, expiryDate, s.dayCount)
	if err != nil {
		return 0, errors.Wrap(err, "Volatility")
	}
	return s.VolatilityAtTimes(expiryTime, tenorYears)
}

// VolatilityAtTimes answers a 2-D interpolated/extrapolated query. The tenor
// axis is resolved first within each bracketing expiry row, then the two
// results are blended along the expiry axis.
func (s *Surface) VolatilityAtTimes(expiryTime, tenorTime float64) (float64, error) {
	if expiryTime < 0 {
		return 0, errors.Wrapf(ErrNegativeTime, "VolatilityAtTimes: expiry %g", expiryTime)
	}
	if tenorTime < 0 {
		return 0, errors.Wrapf(ErrNegativeTime, "VolatilityAtTimes: tenor %g", tenorTime)
	}

	expIdx := findIndex(s.expiryTimes, expiryTime)
	tenIdx := findIndex(s.tenorTimes, tenorTime)

	expLow, expHigh := s.bounds(s.expiryTimes, expIdx)
	tenLow, tenHigh := s.bounds(s.tenorTimes, tenIdx)

	var rowLow, rowHigh []float64
	switch {
	case expIdx < 0:
		// Below the first expiry.
		rowLow = s.matrix[0]
		rowHigh = s.matrix[0]
		if len(s.expiryTimes) > 1 {
			rowHigh = s.matrix[1]
		}
	case expIdx >= len(s.expiryTimes)-1:
		// At or above the last expiry.
		if len(s.expiryTimes) > 1 && s.extrapolation == LinearExtrapolation {
			rowLow = s.matrix[len(s.matrix)-2]
			rowHigh = s.matrix[len(s.matrix)-1]
		} else {
			rowLow = s.matrix[len(s.matrix)-1]
			rowHigh = s.matrix[len(s.matrix)-1]
		}
	default:
		rowLow = s.matrix[expIdx]
		rowHigh = s.matrix[expIdx+1]
	}

	var volLow, volHigh float64
	switch {
	case tenIdx < 0:
		volLow = rowLow[0]
		volHigh = rowHigh[0]
	case tenIdx >= len(s.tenorTimes)-1:
		volLow = rowLow[len(rowLow)-1]
		volHigh = rowHigh[len(rowHigh)-1]
	default:
		volLow = s.interpolate1D(tenLow, rowLow[tenIdx], tenHigh, rowLow[tenIdx+1], tenorTime)
		volHigh = s.interpolate1D(tenLow, rowHigh[tenIdx], tenHigh, rowHigh[tenIdx+1], tenorTime)
	}

	return s.interpolate1D(expLow, volLow, expHigh, volHigh, expiryTime), nil
}

// findIndex classifies t against the axis: -1 below the first point, n-1 at
// or above the last, otherwise the index of the left bracket.
func findIndex(times []float64, t float64) int {
	if t <= times[0] {
		return -1
	}
	if t >= times[len(times)-1] {
		return len(times) - 1
	}
	// Rightmost grid point <= t, so an exact grid coordinate anchors its own row.
	return sort.Search(len(times), func(i int) bool { return times[i] > t }) - 1
}

// bounds returns the axis coordinates used for blending at idx, honoring the
// extrapolation mode outside the grid. A one-point axis degenerates to a
// repeated boundary, which makes the blend constant along that axis.
func (s *Surface) bounds(times []float64, idx int) (float64, float64) {
	n := len(times)
	if idx < 0 {
		if s.extrapolation == FlatExtrapolation || n == 1 {
			return times[0], times[0]
		}
		return times[0], times[1]
	}
	if idx >= n-1 {
		if s.extrapolation == FlatExtrapolation || n == 1 {
			return times[n-1], times[n-1]
		}
		return times[n-2], times[n-1]
	}
	return times[idx], times[idx+1]
}

func (s *Surface) interpolate1D(x0, y0, x1, y1, x float64) float64 {
	if s.interpolation == Flat {
		return y0
	}
	if x1 == x0 {
		return y0
	}
	w := (x - x0) / (x1 - x0)
	return (1.0-w)*y0 + w*y1
}

func validateIncreasing(values []float64) error {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return ErrNonIncreasingAxis
		}
	}
	return nil
}
