package hullwhite

import "github.com/pkg/errors"

var (
	// ErrNilCurve is returned when a model is constructed without a curve.
	ErrNilCurve = errors.New("nil discount curve")

	// ErrNonPositiveParam is returned when mean reversion or volatility is
	// not strictly positive.
	ErrNonPositiveParam = errors.New("model parameter must be positive")

	// ErrUnknownScheme is returned for an unrecognized discretization scheme.
	ErrUnknownScheme = errors.New("unknown discretization scheme")

	// ErrNegativeTime is returned when a simulation or pricing time is negative.
	ErrNegativeTime = errors.New("time must be non-negative")

	// ErrNonIncreasingTimes is returned when the simulation grid is not
	// strictly increasing.
	ErrNonIncreasingTimes = errors.New("times must be strictly increasing")

	// ErrShockLength is returned when the supplied shocks do not have exactly
	// len(times)-1 entries.
	ErrShockLength = errors.New("shocks must have len(times)-1 entries")

	// ErrMaturityBeforeTime is returned when a bond maturity precedes the
	// pricing time.
	ErrMaturityBeforeTime = errors.New("maturity must not precede pricing time")

	// ErrNilNormalSource is returned when path simulation is asked to draw
	// shocks without a random source.
	ErrNilNormalSource = errors.New("nil normal source")
)
