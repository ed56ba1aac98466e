package dateutil

import "time"

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInMonth returns the number of days in the given month (1-12)
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// WeekdayOfFirst returns the day of week of the first day of the month,
// with 0 = Sunday.
func WeekdayOfFirst(year, month int) int {
	a := (14 - month) / 12
	y := year - a
	m := month + 12*a - 2
	return (1 + y + y/4 - y/100 + y/400 + (31*m)/12) % 7
}

// NextMonth returns the month following (year, month)
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// PrevMonth returns the month preceding (year, month)
func PrevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// IsWeekend returns true if the weekday (0 = Sunday) is Saturday or Sunday
func IsWeekend(weekday int) bool {
	return weekday == int(time.Saturday) || weekday == int(time.Sunday)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
