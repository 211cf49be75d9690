package utils

import (
	"time"

	"github.com/pkg/errors"
)

// Convention names a day count convention for year-fraction calculations.
type Convention string

const (
	Act360    Convention = "ACT/360"
	Act365F   Convention = "ACT/365"
	Act365Q   Convention = "ACT/365.25"
	ActAct    Convention = "ACT/ACT"
	Thirty360 Convention = "30/360"
)

// ErrUnknownConvention is returned for a day count convention outside the
// supported set.
var ErrUnknownConvention = errors.New("unknown day count convention")

// ErrBackwardDates is returned when an end date precedes its start date.
var ErrBackwardDates = errors.New("end date before start date")

// YearFraction computes the year fraction between two dates under the given
// day count convention.
func YearFraction(start, end time.Time, convention Convention) (float64, error) {
	if end.Before(start) {
		return 0, errors.Wrapf(ErrBackwardDates, "YearFraction: %s > %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	switch convention {
	case Act360:
		return Days(start, end) / 360.0, nil
	case Act365F:
		return Days(start, end) / 365.0, nil
	case Act365Q:
		return Days(start, end) / 365.25, nil
	case ActAct:
		return actActFraction(start, end), nil
	case Thirty360:
		d1 := start.Day()
		if d1 == 31 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0, nil
	default:
		return 0, errors.Wrapf(ErrUnknownConvention, "YearFraction: %q", convention)
	}
}

// actActFraction counts actual days within each calendar year against that
// year's actual length.
func actActFraction(start, end time.Time) float64 {
	if start.Year() == end.Year() {
		return Days(start, end) / daysInYear(start.Year())
	}

	total := 0.0

	firstYearEnd := time.Date(start.Year()+1, 1, 1, 0, 0, 0, 0, time.UTC)
	total += Days(start, firstYearEnd) / daysInYear(start.Year())

	for year := start.Year() + 1; year < end.Year(); year++ {
		total += 1.0
	}

	lastYearStart := time.Date(end.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	total += Days(lastYearStart, end) / daysInYear(end.Year())

	return total
}

func daysInYear(year int) float64 {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	return Days(start, start.AddDate(1, 0, 0))
}
