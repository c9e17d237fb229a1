package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DateOnly truncates a time to its calendar day in UTC.
// Calendar comparisons in the engine ignore clock time and zone offsets.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OnOrBefore reports whether a falls on or before b as calendar days
func OnOrBefore(a, b time.Time) bool {
	return !DateOnly(a).After(DateOnly(b))
}

// MonthIndex returns a linear month number (year*12 + month-1)
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// MonthsBetween returns the number of whole months elapsed from one date to another.
// A month is only complete once the day-of-month of from is reached again; the
// result is negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	from, to = DateOnly(from), DateOnly(to)
	if to.Before(from) {
		return -MonthsBetween(to, from)
	}
	months := MonthIndex(to) - MonthIndex(from)
	if months > 0 && to.Day() < from.Day() && to.Day() < DaysInMonth(to.Year(), to.Month()) {
		months--
	}
	return months
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of a calendar month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateInMonth builds a date, clamping day to the length of the month
// (day 31 in April becomes April 30, Feb 29 becomes Feb 28 off leap years).
func DateInMonth(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AnniversaryInYear returns the date's month and day moved to another year
func AnniversaryInYear(date time.Time, year int) time.Time {
	return DateInMonth(year, date.Month(), date.Day())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// BeginningOfYear returns the first day of a calendar year
func BeginningOfYear(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns the last day of a calendar year
func EndOfYear(year int) time.Time {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
}

// Later returns the later of two dates
func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
