package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/cal/internal/calendar"
	"github.com/username/cal/internal/config"
	"github.com/username/cal/internal/terminal"
	"github.com/username/cal/pkg/dateutil"
)

var (
	configPath string
	verbose    bool
	logger     = zap.NewNop()
	cfg        = config.Default()

	// today is replaced in tests
	today = dateutil.Today
)

// options holds the command line flags
type options struct {
	one       bool
	three     bool
	year      bool
	twelve    bool
	months    int
	monthsSet bool
	span      bool

	sunday   bool
	monday   bool
	first    int
	firstSet bool

	column int
	color  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "cal [flags] [year [month [day]]]",
		Short: "Display a calendar",
		Long:  "Display one or more months as a text calendar, highlighting today",
		Args:  cobra.MaximumNArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, level)
			} else {
				logger = initLogger(level)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync() //nolint:errcheck

			opts.monthsSet = cmd.Flags().Changed("months")
			opts.firstSet = cmd.Flags().Changed("first")
			if !cmd.Flags().Changed("color") {
				opts.color = cfg.Color
			}
			plan, err := buildPlan(opts, args, calendar.DateOf(today()), cfg)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), plan)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default $HOME/.config/cal/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	f := cmd.Flags()
	f.BoolVarP(&opts.one, "one", "1", false, "show only a single month (default)")
	f.BoolVarP(&opts.three, "three", "3", false, "show three months spanning the date")
	f.BoolVarP(&opts.year, "year", "y", false, "show the whole year")
	f.BoolVarP(&opts.twelve, "twelve", "Y", false, "show the next twelve months")
	f.IntVarP(&opts.months, "months", "n", 0, "show NUM months starting with date's month")
	f.BoolVarP(&opts.span, "span", "S", false, "span the date when displaying multiple months")
	f.BoolVarP(&opts.sunday, "sunday", "s", false, "Sunday as first day of week")
	f.BoolVarP(&opts.monday, "monday", "m", false, "Monday as first day of week")
	f.IntVarP(&opts.first, "first", "f", 0, "set first day of week (Sunday = 0, Monday = 1, ...)")
	f.IntVarP(&opts.column, "column", "c", 0, "format calendar into NUM columns of months")
	f.StringVar(&opts.color, "color", config.ColorAuto, "colorize output: auto, always or never")

	cmd.MarkFlagsMutuallyExclusive("one", "three", "year", "twelve", "months")
	cmd.MarkFlagsMutuallyExclusive("sunday", "monday", "first")

	return cmd
}

// buildPlan validates the arguments and resolves flags against the config
func buildPlan(opts options, args []string, now calendar.Date, cfg *config.Config) (calendar.Plan, error) {
	var nums []int
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return calendar.Plan{}, fmt.Errorf("invalid argument %q: %w", arg, err)
		}
		nums = append(nums, n)
	}

	year, month := now.Year, int(now.Month)
	highlight := now
	if len(nums) > 0 {
		year = nums[0]
	}
	if len(nums) > 1 {
		month = nums[1]
	}
	origin, err := calendar.NewMonthOfYear(year, month)
	if err != nil {
		return calendar.Plan{}, err
	}
	if len(nums) > 2 {
		highlight, err = calendar.NewDate(year, month, nums[2])
		if err != nil {
			return calendar.Plan{}, err
		}
	}

	if opts.monthsSet && opts.months < 1 {
		return calendar.Plan{}, fmt.Errorf("months must be positive, got %d", opts.months)
	}

	sel := calendar.Selection{
		One:        opts.one,
		Three:      opts.three,
		Year:       opts.year,
		Twelve:     opts.twelve,
		Months:     opts.months,
		Span:       opts.span,
		YearGiven:  len(nums) > 0,
		MonthGiven: len(nums) > 1,
	}

	first := calendar.Weekday(cfg.FirstWeekday)
	switch {
	case opts.monday:
		first = calendar.Monday
	case opts.firstSet:
		if first, err = calendar.NewWeekday(opts.first); err != nil {
			return calendar.Plan{}, err
		}
	case opts.sunday:
		first = calendar.Sunday
	}

	columns := opts.column
	if columns == 0 {
		columns = cfg.Columns
	}
	if columns == 0 {
		columns = terminal.Columns(terminal.Width(os.Stdout), calendar.MonthWidth)
	}
	if columns < 1 {
		columns = 1
	}

	plan := calendar.Plan{
		Range:        sel.Resolve(origin),
		FirstWeekday: first,
		Columns:      columns,
		Highlight:    highlight,
		Spillover:    cfg.Spillover,
		Style:        calendar.NewStyle(terminal.UseColor(opts.color, os.Stdout)),
	}
	return plan, plan.Validate()
}

func render(w io.Writer, plan calendar.Plan) error {
	out, err := calendar.NewRenderer(logger).Render(plan)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.WarnLevel
	}
	return zapLevel
}
