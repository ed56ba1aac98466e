package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/cal/pkg/dateutil"
)

var (
	ErrInvalidMonth   = errors.New("invalid month")
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidDay     = errors.New("invalid day")
	ErrInvalidYear    = errors.New("invalid year")
)

// Month is a month of the year, January = 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// NewMonth returns the Month for value, failing outside 1-12
func NewMonth(value int) (Month, error) {
	if value < int(January) || value > int(December) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, value)
	}
	return Month(value), nil
}

func (m Month) String() string {
	return time.Month(m).String()
}

// Succ returns the next month, December wraps to January
func (m Month) Succ() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Pred returns the previous month, January wraps to December
func (m Month) Pred() Month {
	if m == January {
		return December
	}
	return m - 1
}

// Weekday is a day of the week, Sunday = 0
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayAbbrevs = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// NewWeekday returns the Weekday for value, failing outside 0-6
func NewWeekday(value int) (Weekday, error) {
	if value < int(Sunday) || value > int(Saturday) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, value)
	}
	return Weekday(value), nil
}

func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// Abbrev returns the two-letter label used in the weekday row
func (w Weekday) Abbrev() string {
	return weekdayAbbrevs[w]
}

// Succ returns the next weekday, Saturday wraps to Sunday
func (w Weekday) Succ() Weekday {
	return (w + 1) % 7
}

// Add returns the weekday n days after w; n may be negative
func (w Weekday) Add(n int) Weekday {
	return Weekday(((int(w)+n)%7 + 7) % 7)
}

// IsWeekend returns true for Saturday and Sunday
func (w Weekday) IsWeekend() bool {
	return dateutil.IsWeekend(int(w))
}

// MonthOfYear identifies a calendar month independent of any day
type MonthOfYear struct {
	Year  int
	Month Month
}

// NewMonthOfYear validates year and month
func NewMonthOfYear(year, month int) (MonthOfYear, error) {
	if year < 1 {
		return MonthOfYear{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	m, err := NewMonth(month)
	if err != nil {
		return MonthOfYear{}, err
	}
	return MonthOfYear{Year: year, Month: m}, nil
}

func (my MonthOfYear) String() string {
	return fmt.Sprintf("%s %d", my.Month, my.Year)
}

// Days returns the length of the month
func (my MonthOfYear) Days() int {
	return dateutil.DaysInMonth(my.Year, int(my.Month))
}

// WeekdayOfFirst returns the day of week of day 1
func (my MonthOfYear) WeekdayOfFirst() Weekday {
	return Weekday(dateutil.WeekdayOfFirst(my.Year, int(my.Month)))
}

// Succ returns the following month, rolling the year after December
func (my MonthOfYear) Succ() MonthOfYear {
	y, m := dateutil.NextMonth(my.Year, int(my.Month))
	return MonthOfYear{Year: y, Month: Month(m)}
}

// Pred returns the preceding month, rolling the year before January
func (my MonthOfYear) Pred() MonthOfYear {
	y, m := dateutil.PrevMonth(my.Year, int(my.Month))
	return MonthOfYear{Year: y, Month: Month(m)}
}

// Compare returns -1, 0 or +1 as my is before, equal to or after other
func (my MonthOfYear) Compare(other MonthOfYear) int {
	switch {
	case my.Year < other.Year:
		return -1
	case my.Year > other.Year:
		return 1
	case my.Month < other.Month:
		return -1
	case my.Month > other.Month:
		return 1
	}
	return 0
}

// Date is a validated calendar day
type Date struct {
	Year  int
	Month Month
	Day   int
}

// NewDate returns the Date for (year, month, day), rejecting days that do
// not exist in that month.
func NewDate(year, month, day int) (Date, error) {
	my, err := NewMonthOfYear(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > my.Days() {
		return Date{}, fmt.Errorf("%w: %d (%s has %d days)", ErrInvalidDay, day, my, my.Days())
	}
	return Date{Year: year, Month: my.Month, Day: day}, nil
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// MonthOfYear returns the month containing d
func (d Date) MonthOfYear() MonthOfYear {
	return MonthOfYear{Year: d.Year, Month: d.Month}
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
