package calendar

// Cursor walks consecutive months starting at a given month
type Cursor struct {
	cur MonthOfYear
}

// NewCursor creates a cursor positioned at start
func NewCursor(start MonthOfYear) *Cursor {
	return &Cursor{cur: start}
}

// Current returns the month under the cursor
func (c *Cursor) Current() MonthOfYear {
	return c.cur
}

// Next returns the current month and advances the cursor
func (c *Cursor) Next() MonthOfYear {
	cur := c.cur
	c.cur = cur.Succ()
	return cur
}

// Take returns the next n months
func (c *Cursor) Take(n int) []MonthOfYear {
	months := make([]MonthOfYear, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, c.Next())
	}
	return months
}

// Range is a window of consecutive months around an origin
type Range struct {
	Origin MonthOfYear
	Count  int
	Span   bool // center the window on Origin
	Year   bool // whole year of Origin, overrides Count and Span
}

// Start returns the first month of the window
func (r Range) Start() MonthOfYear {
	if r.Year {
		return MonthOfYear{Year: r.Origin.Year, Month: January}
	}
	start := r.Origin
	if r.Span {
		for i := 0; i < r.Count/2; i++ {
			start = start.Pred()
		}
	}
	return start
}

// Len returns the number of months in the window
func (r Range) Len() int {
	if r.Year {
		return 12
	}
	return r.Count
}

// Months returns the months of the window in chronological order
func (r Range) Months() []MonthOfYear {
	return NewCursor(r.Start()).Take(r.Len())
}

// Selection holds the month-count flags as given on the command line
type Selection struct {
	One        bool
	Three      bool
	Year       bool
	Twelve     bool
	Months     int // 0 when not given
	Span       bool
	YearGiven  bool
	MonthGiven bool
}

// Resolve applies the flag precedence to build the Range for origin:
// one > three > year > twelve > months > implicit year > single month.
func (s Selection) Resolve(origin MonthOfYear) Range {
	implicitYear := s.YearGiven && !s.MonthGiven
	switch {
	case s.One:
		return Range{Origin: origin, Count: 1}
	case s.Three:
		return Range{Origin: origin, Count: 3, Span: true}
	case s.Year:
		return Range{Origin: origin, Count: 12, Year: true}
	case s.Twelve:
		if implicitYear {
			return Range{Origin: origin, Count: 12, Year: true}
		}
		return Range{Origin: origin, Count: 12, Span: s.Span}
	case s.Months > 0:
		return Range{Origin: origin, Count: s.Months, Span: s.Span}
	case implicitYear:
		return Range{Origin: origin, Count: 12, Year: true}
	}
	return Range{Origin: origin, Count: 1}
}
