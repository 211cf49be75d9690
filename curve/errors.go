package curve

import "github.com/pkg/errors"

var (
	// ErrNoPillars is returned when a curve is built without any pillar.
	ErrNoPillars = errors.New("at least one pillar is required")

	// ErrMismatchedLengths is returned when pillar dates and values differ in length.
	ErrMismatchedLengths = errors.New("mismatched pillar lengths")

	// ErrNonIncreasingPillars is returned when pillar dates or their year
	// fractions are not strictly increasing after sorting.
	ErrNonIncreasingPillars = errors.New("pillar times must be strictly increasing")

	// ErrBeforeValuation is returned when a pillar or query date precedes the
	// curve's valuation date.
	ErrBeforeValuation = errors.New("date before valuation date")

	// ErrBadInterval is returned when a forward period's end does not follow its start.
	ErrBadInterval = errors.New("period end must be after period start")

	// ErrInvalidDiscountFactor is returned for discount factors outside (0, 1].
	ErrInvalidDiscountFactor = errors.New("discount factor outside (0, 1]")

	// ErrBootstrapFailed is returned when a bootstrap step produces an
	// unusable discount factor or schedule.
	ErrBootstrapFailed = errors.New("bootstrap failed")

	// ErrUnknownInterpolation is returned for an unrecognized interpolation mode.
	ErrUnknownInterpolation = errors.New("unknown interpolation mode")

	// ErrUnknownCompounding is returned for an unrecognized compounding mode.
	ErrUnknownCompounding = errors.New("unknown compounding mode")
)
