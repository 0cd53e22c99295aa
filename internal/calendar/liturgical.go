package calendar

import (
	"fmt"
	"time"
)

// LiturgicalDay is the liturgical designation of a single civil date.
type LiturgicalDay struct {
	Date      Date   `json:"date"`
	Season    Season `json:"season"`
	Week      int    `json:"week,omitempty"` // 1-based; 0 for unnumbered spans
	DayOfWeek string `json:"day_of_week"`
	Label     string `json:"label"`
	Period    string `json:"period"`

	// DayOfSeason counts days from the first day of the season span, so
	// for Christmas it is the number of days after Christmas Day.
	DayOfSeason int `json:"day_of_season"`

	LiturgicalYear int    `json:"liturgical_year"`
	YearCycle      int    `json:"year_cycle"`
	SundayCycle    string `json:"sunday_cycle"`
}

// DayName returns the day of week name (Sunday, Monday, etc.)
func DayName(date Date) string {
	return date.Weekday().String()
}

// Ordinal returns the ordinal form of a number (1st, 2nd, 3rd, 4th, 11th, 21st, etc.)
func Ordinal(n int) string {
	return fmt.Sprintf("%d%s", n, ordinalSuffix(n))
}

func ordinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// format builds the LiturgicalDay for d, which p must contain.
func format(d Date, p Placement) LiturgicalDay {
	day := LiturgicalDay{
		Date:           d,
		Season:         p.Season,
		DayOfWeek:      DayName(d),
		DayOfSeason:    d.DaysSince(p.Start),
		LiturgicalYear: LiturgicalYear(d),
		YearCycle:      GetYearCycle(d),
		SundayCycle:    SundayCycle(d),
	}

	switch p.Season {
	case SeasonAdvent:
		formatAdvent(&day, d, p.Anchors)
	case SeasonChristmas:
		formatChristmas(&day, d, p.Anchors)
	case SeasonLent:
		formatLent(&day, d, p.Anchors)
	case SeasonEaster:
		formatEaster(&day, d, p.Anchors)
	default:
		formatOrdinaryTime(&day, d, p)
	}
	return day
}

// weekLabel names a day within a numbered week, e.g. "2nd Sunday of Advent"
// or "Tuesday of the 2nd Week of Advent".
func weekLabel(d Date, week int, phrase string) string {
	if d.Weekday() == time.Sunday {
		return fmt.Sprintf("%s Sunday %s", Ordinal(week), phrase)
	}
	return fmt.Sprintf("%s of the %s Week %s", DayName(d), Ordinal(week), phrase)
}

func weekPeriod(week int, phrase string) string {
	return fmt.Sprintf("%s Week %s", Ordinal(week), phrase)
}

func formatAdvent(day *LiturgicalDay, d Date, a Anchors) {
	week := min(GetLiturgicalWeekNumber(d, a.AdventStart), 4)
	day.Week = week
	day.Period = weekPeriod(week, "of Advent")
	day.Label = weekLabel(d, week, "of Advent")
}

func formatChristmas(day *LiturgicalDay, d Date, a Anchors) {
	n := d.DaysSince(a.Christmas)
	day.Period = "Christmas Season"

	switch {
	case n == 0:
		day.Label = "Christmas Day"
	case n == 7:
		day.Label = "Octave Day of Christmas"
	case d.Weekday() == time.Sunday:
		day.Label = fmt.Sprintf("%s Sunday after Christmas", Ordinal((n-1)/7+1))
	default:
		// Christmas Day itself is the first of the twelve days.
		day.Label = fmt.Sprintf("%s Day of Christmas", Ordinal(n+1))
	}
}

func formatLent(day *LiturgicalDay, d Date, a Anchors) {
	firstSunday := a.AshWednesday.AddDays(4)

	switch {
	case !d.Before(a.HolyWeekStart):
		day.Week = 6
		day.Period = "Holy Week"
		day.Label = holyWeekLabel(d, d.DaysSince(a.HolyWeekStart))
	case d.Before(firstSunday):
		day.Period = "Ash Wednesday and Following"
		if d.Equal(a.AshWednesday) {
			day.Label = "Ash Wednesday"
		} else {
			day.Label = DayName(d) + " after Ash Wednesday"
		}
	default:
		// Numbered from Ash Wednesday, so weeks turn over on Wednesdays.
		week := GetLiturgicalWeekNumber(d, a.AshWednesday)
		day.Week = week
		day.Period = weekPeriod(week, "of Lent")
		day.Label = weekLabel(d, week, "of Lent")
	}
}

func holyWeekLabel(d Date, daysSincePalm int) string {
	switch daysSincePalm {
	case 0:
		return "Palm Sunday"
	case 4:
		return "Holy Thursday"
	case 5:
		return "Good Friday"
	case 6:
		return "Holy Saturday"
	default:
		return DayName(d) + " of Holy Week"
	}
}

func formatEaster(day *LiturgicalDay, d Date, a Anchors) {
	week := min(GetLiturgicalWeekNumber(d, a.Easter), 7)
	day.Week = week
	day.Period = weekPeriod(week, "of Easter")

	switch {
	case d.Equal(a.Easter):
		day.Label = "Easter Sunday"
	case d.Equal(a.Ascension):
		day.Label = "Ascension Day"
	default:
		day.Label = weekLabel(d, week, "of Easter")
	}
}

// formatOrdinaryTime numbers weeks from the start of the span, turning
// over on each Sunday.
func formatOrdinaryTime(day *LiturgicalDay, d Date, p Placement) {
	a := p.Anchors
	week := 1 + (d.DaysSince(p.Start)+int(p.Start.Weekday()))/7
	day.Week = week
	day.Period = weekPeriod(week, "in Ordinary Time")

	switch {
	case d.Equal(a.Epiphany):
		day.Label = "Epiphany"
	case d.Equal(a.Pentecost):
		day.Label = "Pentecost Sunday"
	case d.Equal(a.Pentecost.AddDays(7)):
		day.Label = "Trinity Sunday"
	case d.Equal(a.AdventStart.AddDays(-7)):
		day.Label = "Christ the King"
	default:
		day.Label = weekLabel(d, week, "in Ordinary Time")
	}
}

// GetLiturgicalWeekNumber calculates which week of a season a date falls in,
// counting seven-day weeks from seasonStart.
func GetLiturgicalWeekNumber(date Date, seasonStart Date) int {
	return date.DaysSince(seasonStart)/7 + 1
}
