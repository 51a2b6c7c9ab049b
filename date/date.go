// Package date provides a day-granularity Date value type and a
// chronological History container used by the tax calculation engine.
package date

import (
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// longFormat is the alternative human input format, e.g. "5 Jan 2020".
const longFormat = "2 Jan 2006"

// prettyFormat is the format used when presenting dates in reports.
const prettyFormat = "02/01/2006"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or 1 when d is before, equal to, or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.Before(x):
		return -1
	case d.After(x):
		return 1
	default:
		return 0
	}
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its standard ISO format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Pretty formats the date the way reports present it, as DD/MM/YYYY.
func (d Date) Pretty() string { return d.time().Format(prettyFormat) }

// Parse parses a Date from a string. It accepts the ISO form "2020-01-05"
// and the long form "5 Jan 2020". Any other form is an error.
func Parse(str string) (Date, error) {
	if on, err := time.Parse(DateFormat, str); err == nil {
		return New(on.Date()), nil
	}
	if on, err := time.Parse(longFormat, str); err == nil {
		return New(on.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q: want %q or %q", str, DateFormat, longFormat)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
