package calendar

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"
)

const (
	// CellWidth is the width of one day cell: two digits and a space
	CellWidth = 3
	// MonthWidth is the display width of every line of a Block
	MonthWidth = 7 * CellWidth
	// DayRows is fixed so that blocks stacked side by side align
	DayRows = 6
	// BlockLines is header + weekday row + day rows
	BlockLines = 2 + DayRows
)

// Block is the rendered text of one month. Each line is MonthWidth columns
// wide once color escapes are removed.
type Block [BlockLines]string

// Style maps day categories to colorstring tags
type Style struct {
	Sunday    string
	Saturday  string
	Today     string
	Spillover string

	colorize colorstring.Colorize
}

// NewStyle returns the default palette; a disabled style renders plain text
func NewStyle(enabled bool) *Style {
	return &Style{
		Sunday:    "red",
		Saturday:  "blue",
		Today:     "invert",
		Spillover: "dim",
		colorize: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !enabled,
			Reset:   true,
		},
	}
}

// Enabled reports whether the style emits escape sequences
func (s *Style) Enabled() bool {
	return s != nil && !s.colorize.Disable
}

func (s *Style) paint(text string, tags ...string) string {
	if !s.Enabled() {
		return text
	}
	var b strings.Builder
	for _, tag := range tags {
		if tag != "" {
			b.WriteString("[" + tag + "]")
		}
	}
	if b.Len() == 0 {
		return text
	}
	b.WriteString(text)
	return s.colorize.Color(b.String())
}

func (s *Style) weekday(w Weekday) string {
	if s == nil {
		return ""
	}
	switch w {
	case Sunday:
		return s.Sunday
	case Saturday:
		return s.Saturday
	}
	return ""
}

// BlockOptions control how a single month is drawn
type BlockOptions struct {
	FirstWeekday Weekday
	// Highlight is emphasised when it falls in the rendered month
	Highlight Date
	// Spillover fills leading and trailing cells with dimmed days of the
	// neighbouring months. It only takes effect with an enabled Style.
	Spillover bool
	// OmitYear drops the year from the header
	OmitYear bool
	Style    *Style
}

// Center pads text with spaces to width, extra padding going to the right
func Center(text string, width int) string {
	slack := width - uniseg.StringWidth(text)
	if slack <= 0 {
		return text
	}
	left := slack / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", slack-left)
}

// Header returns the centered month title
func Header(my MonthOfYear, omitYear bool) string {
	title := my.Month.String()
	if !omitYear {
		title = fmt.Sprintf("%s %d", my.Month, my.Year)
	}
	return Center(title, MonthWidth)
}

// WeekdayRow returns the weekday labels starting at first
func WeekdayRow(first Weekday, style *Style) string {
	var b strings.Builder
	w := first
	for i := 0; i < 7; i++ {
		b.WriteString(style.paint(w.Abbrev(), style.weekday(w)))
		b.WriteByte(' ')
		w = w.Succ()
	}
	return b.String()
}

// DayRowsOf returns the six rows of day cells for my
func DayRowsOf(my MonthOfYear, opts BlockOptions) [DayRows]string {
	var rows [DayRows]string
	style := opts.Style
	if style == nil {
		style = NewStyle(false)
	}
	spill := opts.Spillover && style.Enabled()
	length := my.Days()
	prevLength := my.Pred().Days()
	offset := int(my.WeekdayOfFirst()-opts.FirstWeekday+7) % 7
	start := 1 - offset

	for r := 0; r < DayRows; r++ {
		var b strings.Builder
		for c := 0; c < 7; c++ {
			d := start + 7*r + c
			w := opts.FirstWeekday.Add(c)
			switch {
			case d >= 1 && d <= length:
				tags := []string{style.weekday(w)}
				if opts.Highlight == (Date{Year: my.Year, Month: my.Month, Day: d}) {
					tags = append(tags, style.Today)
				}
				b.WriteString(style.paint(fmt.Sprintf("%2d", d), tags...))
				b.WriteByte(' ')
			case spill && d < 1:
				b.WriteString(style.paint(fmt.Sprintf("%2d", prevLength+d), style.Spillover))
				b.WriteByte(' ')
			case spill && d > length:
				b.WriteString(style.paint(fmt.Sprintf("%2d", d-length), style.Spillover))
				b.WriteByte(' ')
			default:
				b.WriteString("   ")
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// RenderBlock draws one month
func RenderBlock(my MonthOfYear, opts BlockOptions) Block {
	var block Block
	block[0] = Header(my, opts.OmitYear)
	block[1] = WeekdayRow(opts.FirstWeekday, opts.Style)
	rows := DayRowsOf(my, opts)
	copy(block[2:], rows[:])
	return block
}
