package calendar

import (
	"errors"
	"testing"
	"time"
)

func moy(year, month int) MonthOfYear {
	return MonthOfYear{Year: year, Month: Month(month)}
}

func TestNewMonth(t *testing.T) {
	m, err := NewMonth(1)
	if err != nil || m != January {
		t.Fatalf("NewMonth(1) = %v, %v; want January", m, err)
	}

	for _, v := range []int{0, 13, -1} {
		_, err := NewMonth(v)
		if !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("NewMonth(%d) error = %v, want ErrInvalidMonth", v, err)
		}
	}

	_, err = NewMonth(13)
	if err == nil || err.Error() != "invalid month: 13" {
		t.Errorf("NewMonth(13) error = %v, want message naming the value", err)
	}
}

func TestMonthSuccPred(t *testing.T) {
	tests := []struct {
		in, succ, pred Month
	}{
		{January, February, December},
		{November, December, October},
		{December, January, November},
	}

	for _, tt := range tests {
		if got := tt.in.Succ(); got != tt.succ {
			t.Errorf("%v.Succ() = %v, want %v", tt.in, got, tt.succ)
		}
		if got := tt.in.Pred(); got != tt.pred {
			t.Errorf("%v.Pred() = %v, want %v", tt.in, got, tt.pred)
		}
	}
}

func TestMonthString(t *testing.T) {
	if January.String() != "January" || February.String() != "February" {
		t.Errorf("unexpected month names: %s, %s", January, February)
	}
}

func TestNewWeekday(t *testing.T) {
	w, err := NewWeekday(0)
	if err != nil || w != Sunday {
		t.Fatalf("NewWeekday(0) = %v, %v; want Sunday", w, err)
	}
	w, err = NewWeekday(6)
	if err != nil || w != Saturday {
		t.Fatalf("NewWeekday(6) = %v, %v; want Saturday", w, err)
	}
	if _, err := NewWeekday(7); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("NewWeekday(7) error = %v, want ErrInvalidWeekday", err)
	}
	if _, err := NewWeekday(-1); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("NewWeekday(-1) error = %v, want ErrInvalidWeekday", err)
	}
}

func TestWeekdayCycle(t *testing.T) {
	if Saturday.Succ() != Sunday {
		t.Errorf("Saturday.Succ() = %v, want Sunday", Saturday.Succ())
	}
	if Sunday.Add(-1) != Saturday {
		t.Errorf("Sunday.Add(-1) = %v, want Saturday", Sunday.Add(-1))
	}
	if Monday.Add(13) != Sunday {
		t.Errorf("Monday.Add(13) = %v, want Sunday", Monday.Add(13))
	}
	if !Saturday.IsWeekend() || !Sunday.IsWeekend() || Friday.IsWeekend() {
		t.Error("IsWeekend should hold for Saturday and Sunday only")
	}
	if Wednesday.Abbrev() != "We" {
		t.Errorf("Wednesday.Abbrev() = %q, want We", Wednesday.Abbrev())
	}
}

func TestMonthOfYearDays(t *testing.T) {
	tests := []struct {
		my   MonthOfYear
		want int
	}{
		{moy(2020, 1), 31},
		{moy(2020, 2), 29},
		{moy(2020, 4), 30},
		{moy(2021, 2), 28},
	}

	for _, tt := range tests {
		if got := tt.my.Days(); got != tt.want {
			t.Errorf("%v.Days() = %d, want %d", tt.my, got, tt.want)
		}
	}
}

func TestMonthOfYearWeekdayOfFirst(t *testing.T) {
	tests := []struct {
		my   MonthOfYear
		want Weekday
	}{
		{moy(2022, 11), Tuesday},
		{moy(2022, 12), Thursday},
		{moy(2023, 1), Sunday},
		{moy(2023, 2), Wednesday},
	}

	for _, tt := range tests {
		if got := tt.my.WeekdayOfFirst(); got != tt.want {
			t.Errorf("%v.WeekdayOfFirst() = %v, want %v", tt.my, got, tt.want)
		}
	}
}

func TestMonthOfYearSuccPred(t *testing.T) {
	if got := moy(2022, 11).Pred(); got != moy(2022, 10) {
		t.Errorf("Pred(Nov 2022) = %v", got)
	}
	if got := moy(2022, 11).Succ(); got != moy(2022, 12) {
		t.Errorf("Succ(Nov 2022) = %v", got)
	}
	if got := moy(2022, 1).Pred(); got != moy(2021, 12) {
		t.Errorf("Pred(Jan 2022) = %v, want December 2021", got)
	}
	if got := moy(2022, 12).Succ(); got != moy(2023, 1) {
		t.Errorf("Succ(Dec 2022) = %v, want January 2023", got)
	}
}

func TestMonthOfYearRoundTrip(t *testing.T) {
	for year := 2; year < 2100; year += 13 {
		for month := 1; month <= 12; month++ {
			m := moy(year, month)
			if got := m.Succ().Pred(); got != m {
				t.Fatalf("Pred(Succ(%v)) = %v", m, got)
			}
			if got := m.Pred().Succ(); got != m {
				t.Fatalf("Succ(Pred(%v)) = %v", m, got)
			}
			if m.Compare(m.Succ()) != -1 || m.Succ().Compare(m) != 1 || m.Compare(m) != 0 {
				t.Fatalf("Compare is not a chronological order around %v", m)
			}
		}
	}
}

func TestNewMonthOfYear(t *testing.T) {
	if _, err := NewMonthOfYear(2022, 1); err != nil {
		t.Errorf("NewMonthOfYear(2022, 1) error = %v", err)
	}
	if _, err := NewMonthOfYear(2022, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("NewMonthOfYear(2022, 13) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := NewMonthOfYear(0, 1); !errors.Is(err, ErrInvalidYear) {
		t.Errorf("NewMonthOfYear(0, 1) error = %v, want ErrInvalidYear", err)
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		wantErr error
	}{
		{"valid", 2022, 11, 30, nil},
		{"leap day", 2020, 2, 29, nil},
		{"no leap day", 2021, 2, 29, ErrInvalidDay},
		{"day zero", 2022, 1, 0, ErrInvalidDay},
		{"day 32", 2022, 1, 32, ErrInvalidDay},
		{"bad month", 2022, 0, 1, ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.y, tt.m, tt.d)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate() error = %v", err)
			}
			if d.Year != tt.y || int(d.Month) != tt.m || d.Day != tt.d {
				t.Errorf("NewDate() = %v", d)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2022, time.November, 7, 23, 59, 0, 0, time.UTC))
	if d != (Date{Year: 2022, Month: November, Day: 7}) {
		t.Errorf("DateOf() = %v", d)
	}
	if d.String() != "2022-11-07" {
		t.Errorf("String() = %q", d.String())
	}
	if d.MonthOfYear() != moy(2022, 11) {
		t.Errorf("MonthOfYear() = %v", d.MonthOfYear())
	}
	if d.IsZero() || !(Date{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}
