// Package core holds the domain model of a workout log: calendar dates,
// classified log lines, and the aggregation pipeline that turns lines into
// a summable log.
package core

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DatePattern is the textual shape accepted for user-supplied date bounds.
const DatePattern = "dd.MM.yyyy"

var ErrDateFormat = errors.New("invalid date format")

var boundPattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// CalendarDate is a plain calendar triple. It guarantees nothing beyond
// the digit counts of the pattern that produced it: "99.99.9999" parses to
// a perfectly comparable date. Calendar validity checking is out of scope.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Compare orders dates by year, then month, then day. It returns -1 when
// d is before o, 0 when equal and +1 when after.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// String renders the date in the input shape, dd.MM.yyyy.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// DateRange bounds a date query. A nil bound means unbounded on that side.
type DateRange struct {
	Start *CalendarDate
	End   *CalendarDate
}

// Contains reports whether d falls within the bounds that are set.
// Both bounds are inclusive.
func (r DateRange) Contains(d CalendarDate) bool {
	if r.Start != nil && d.Compare(*r.Start) < 0 {
		return false
	}
	if r.End != nil && d.Compare(*r.End) > 0 {
		return false
	}
	return true
}

// ParseDate parses a user-supplied dd.MM.yyyy string into a CalendarDate.
// The whole string must match. Unlike the line classifier, a mismatch here
// is an error: a filter bound that cannot be parsed is a usage mistake,
// not data noise to skip.
func ParseDate(s string) (CalendarDate, error) {
	m := boundPattern.FindStringSubmatch(s)
	if m == nil {
		return CalendarDate{}, fmt.Errorf("%w: %q does not match %s", ErrDateFormat, s, DatePattern)
	}
	return dateFromGroups(m[1], m[2], m[3]), nil
}

// dateFromGroups reorders the captured day.month.year groups into the
// internal (year, month, day) representation.
func dateFromGroups(day, month, year string) CalendarDate {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	return CalendarDate{Year: y, Month: m, Day: d}
}
