package calendar

import (
	"fmt"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// Plan is the validated configuration for one render
type Plan struct {
	Range        Range
	FirstWeekday Weekday
	Columns      int
	Highlight    Date
	// Spillover dims adjacent-month days; only applied to a single-month view
	Spillover bool
	Style     *Style
}

// Validate checks the plan before rendering
func (p Plan) Validate() error {
	if _, err := NewMonthOfYear(p.Range.Origin.Year, int(p.Range.Origin.Month)); err != nil {
		return err
	}
	if _, err := NewWeekday(int(p.FirstWeekday)); err != nil {
		return err
	}
	if !p.Range.Year && p.Range.Count < 1 {
		return fmt.Errorf("month count must be positive, got %d", p.Range.Count)
	}
	if p.Columns < 1 {
		return fmt.Errorf("column count must be positive, got %d", p.Columns)
	}
	return nil
}

// Renderer turns plans into text
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a Renderer; a nil logger disables logging
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// Render plans the months, draws each block and composes the grid
func (r *Renderer) Render(plan Plan) (string, error) {
	if err := plan.Validate(); err != nil {
		return "", err
	}

	months := plan.Range.Months()
	opts := BlockOptions{
		FirstWeekday: plan.FirstWeekday,
		Highlight:    plan.Highlight,
		Spillover:    plan.Spillover && len(months) == 1 && !plan.Range.Year,
		OmitYear:     plan.Range.Year,
		Style:        plan.Style,
	}
	grid := Grid{Columns: plan.Columns, Gutter: " "}
	if plan.Range.Year {
		grid.Gutter = "  "
		grid.Banner = yearBanner(plan.Range.Origin.Year)
	}

	r.logger.Debug("Rendering calendar",
		zap.Stringer("start", months[0]),
		zap.Int("months", len(months)),
		zap.Bool("span", plan.Range.Span),
		zap.Bool("year", plan.Range.Year),
		zap.Stringer("first_weekday", plan.FirstWeekday),
		zap.Int("columns", plan.Columns),
		zap.Bool("spillover", opts.Spillover),
		zap.Bool("color", plan.Style.Enabled()))

	blocks := iter.Map(months, func(my *MonthOfYear) Block {
		return RenderBlock(*my, opts)
	})
	return grid.Compose(blocks), nil
}

// Render is a convenience wrapper using a Renderer without logging
func Render(plan Plan) (string, error) {
	return NewRenderer(nil).Render(plan)
}
