// Package calendar provides holiday calendars and business-day adjustment.
package calendar

import "time"

// Rule selects how a non-business date is rolled onto a business day.
type Rule string

const (
	Following         Rule = "Following"
	ModifiedFollowing Rule = "Modified Following"
	Preceding         Rule = "Preceding"
	ModifiedPreceding Rule = "Modified Preceding"
	NoAdjustment      Rule = "None"
)

// Calendar is a set of holiday dates. The zero value is a weekend-only
// calendar, which is what curve bootstrapping uses.
type Calendar struct {
	holidays map[string]struct{}
}

const dateKey = "2006-01-02"

// New builds a calendar from explicit holiday dates.
func New(holidays ...time.Time) Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(dateKey)] = struct{}{}
	}
	return Calendar{holidays: set}
}

func (c Calendar) isHoliday(t time.Time) bool {
	if c.holidays == nil {
		return false
	}
	_, ok := c.holidays[t.Format(dateKey)]
	return ok
}

// IsBusinessDay checks weekends and the holiday set.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !c.isHoliday(t)
}

// Adjust rolls t onto a business day according to rule.
func (c Calendar) Adjust(t time.Time, rule Rule) time.Time {
	switch rule {
	case NoAdjustment:
		return t
	case Following:
		return c.roll(t, 1)
	case Preceding:
		return c.roll(t, -1)
	case ModifiedFollowing:
		adjusted := c.roll(t, 1)
		if adjusted.Month() != t.Month() {
			return c.roll(t, -1)
		}
		return adjusted
	case ModifiedPreceding:
		adjusted := c.roll(t, -1)
		if adjusted.Month() != t.Month() {
			return c.roll(t, 1)
		}
		return adjusted
	default:
		return c.roll(t, 1)
	}
}

func (c Calendar) roll(t time.Time, step int) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, step)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func (c Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}
