package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/calendar"
)

// ErrBadFrequency is returned for frequency strings outside the "<n>M"/"<n>Y" form.
var ErrBadFrequency = errors.New("unsupported frequency")

// parseFrequency splits strings like "3M", "6M", "1Y" into a step count and unit.
func parseFrequency(frequency string) (int, byte, error) {
	frequency = strings.TrimSpace(strings.ToUpper(frequency))
	if len(frequency) < 2 {
		return 0, 0, errors.Wrapf(ErrBadFrequency, "parseFrequency: %q", frequency)
	}
	value, err := strconv.Atoi(frequency[:len(frequency)-1])
	if err != nil || value <= 0 {
		return 0, 0, errors.Wrapf(ErrBadFrequency, "parseFrequency: %q", frequency)
	}
	unit := frequency[len(frequency)-1]
	if unit != 'M' && unit != 'Y' {
		return 0, 0, errors.Wrapf(ErrBadFrequency, "parseFrequency: %q", frequency)
	}
	return value, unit, nil
}

// GenerateSchedule produces the payment dates between start and end at the
// given frequency, each adjusted per the business-day rule. The adjusted
// start and end dates are always included.
func GenerateSchedule(start, end time.Time, frequency string, rule calendar.Rule, cal calendar.Calendar) ([]time.Time, error) {
	if end.Before(start) {
		return nil, errors.Wrapf(ErrBackwardDates, "GenerateSchedule: %s > %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	step, unit, err := parseFrequency(frequency)
	if err != nil {
		return nil, err
	}

	schedule := []time.Time{cal.Adjust(start, rule)}

	current := start
	for current.Before(end) {
		if unit == 'M' {
			current = AddMonth(current, step)
		} else {
			current = AddYears(current, step)
		}
		if !current.After(end) {
			schedule = append(schedule, cal.Adjust(current, rule))
		}
	}

	if !schedule[len(schedule)-1].Equal(end) {
		adjustedEnd := cal.Adjust(end, rule)
		if !adjustedEnd.Equal(schedule[len(schedule)-1]) {
			schedule = append(schedule, adjustedEnd)
		}
	}

	return schedule, nil
}
