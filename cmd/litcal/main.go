// Command litcal prints liturgical days, anchors and calendar feeds.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
	"github.com/zapponejosh/liturgical-day/internal/feed"
	"github.com/zapponejosh/liturgical-day/internal/logger"
)

type options struct {
	json     bool
	timezone string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "litcal",
		Short:        "Liturgical calendar calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "UTC", "IANA time zone used for today's date")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newDayCmd(opts),
		newAnchorsCmd(opts),
		newYearCmd(opts),
		newICSCmd(opts),
	)
	return root
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(cmd.ErrOrStderr(), o.logLevel, "text")
}

func (o *options) clock() (calendar.Clock, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", o.timezone, err)
	}
	return calendar.SystemClock(loc), nil
}

func newDayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the liturgical designation of a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := opts.clock()
			if err != nil {
				return err
			}

			var dateStr string
			if len(args) == 1 {
				dateStr = args[0]
			}

			day, err := calendar.Compute(dateStr, clock)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debug("computed day", slog.String("date", day.Date.String()))

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), day)
			}
			return writeDays(cmd.OutOrStdout(), []calendar.LiturgicalDay{day})
		},
	}
}

func newAnchorsCmd(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "anchors",
		Short: "Show the movable and fixed anchor dates of a civil year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkYear(year); err != nil {
				return err
			}
			a := calendar.AnchorsFor(year)
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), a)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			rows := []struct {
				name string
				date calendar.Date
			}{
				{"Epiphany", a.Epiphany},
				{"Ash Wednesday", a.AshWednesday},
				{"Palm Sunday", a.HolyWeekStart},
				{"Easter", a.Easter},
				{"Ascension", a.Ascension},
				{"Pentecost", a.Pentecost},
				{"Advent", a.AdventStart},
				{"Christmas", a.Christmas},
			}
			for _, row := range rows {
				fmt.Fprintf(tw, "%s:\t%s\t%s\n", row.name, row.date, calendar.DayName(row.date))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "civil year")
	return cmd
}

func newYearCmd(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "year",
		Short: "List every day of a liturgical year (Advent to Advent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkYear(year); err != nil {
				return err
			}
			start, end := feed.Year(year)
			days := calendar.ResolveRange(start, end.AddDays(-1))
			opts.logger(cmd).Debug("resolved liturgical year",
				slog.Int("year", year),
				slog.Int("days", len(days)))

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), days)
			}
			return writeDays(cmd.OutOrStdout(), days)
		},
	}

	cmd.Flags().IntVar(&year, "year", calendar.LiturgicalYear(calendar.DateOf(time.Now())), "liturgical year, named by the year its Advent begins")
	return cmd
}

func newICSCmd(opts *options) *cobra.Command {
	var (
		year   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write an iCalendar feed of a liturgical year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkYear(year); err != nil {
				return err
			}
			body := feed.Serialize(year, time.Now().UTC())

			if output == "" || output == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), body)
				return err
			}
			if err := os.WriteFile(output, []byte(body), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			opts.logger(cmd).Info("wrote calendar feed",
				slog.String("path", output),
				slog.Int("year", year))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", calendar.LiturgicalYear(calendar.DateOf(time.Now())), "liturgical year, named by the year its Advent begins")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func checkYear(year int) error {
	if year < 1583 || year > 9999 {
		return fmt.Errorf("year %d out of range 1583-9999", year)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDays(w io.Writer, days []calendar.LiturgicalDay) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, day := range days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\tYear %s\n",
			day.Date, day.DayOfWeek, day.Season, day.Label, day.SundayCycle)
	}
	return tw.Flush()
}
