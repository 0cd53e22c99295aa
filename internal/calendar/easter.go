// Package calendar computes liturgical seasons and day labels for the
// Western (Gregorian) church calendar.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

// Offsets of the Easter-cycle anchors, in days from Easter Sunday.
const (
	// DaysFromEasterToAshWednesday covers the forty days of Lent plus the
	// six Sundays that are not counted in them.
	DaysFromEasterToAshWednesday = 46

	DaysFromEasterToPalmSunday = 7
	DaysFromEasterToAscension  = 39

	// DaysFromEasterToPentecost is seven weeks.
	DaysFromEasterToPentecost = 49
)

// CalculateEaster returns Easter Sunday for a given year using the
// anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// The result is exact for every Gregorian year (1583 onwards). Earlier
// years are computed with the same arithmetic but are not meaningful.
func CalculateEaster(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return NewDate(year, time.Month(month), day)
}

// CalculateAdvent returns the first Sunday of Advent for a given year.
//
// Advent Sunday is the Sunday nearest November 30 (St. Andrew's Day),
// which is the same as the Sunday on or before December 3. It always
// falls between November 27 and December 3.
func CalculateAdvent(year int) Date {
	dec3 := NewDate(year, time.December, 3)
	return dec3.AddDays(-int(dec3.Weekday()))
}

// Anchors holds the dates one civil year's seasons are measured from.
type Anchors struct {
	Year          int  `json:"year"`
	AshWednesday  Date `json:"ash_wednesday"`
	HolyWeekStart Date `json:"holy_week_start"`
	Easter        Date `json:"easter"`
	Ascension     Date `json:"ascension"`
	Pentecost     Date `json:"pentecost"`
	AdventStart   Date `json:"advent_start"`
	Christmas     Date `json:"christmas"`
	Epiphany      Date `json:"epiphany"`
}

// DeriveAnchors computes the anchor dates for year from its Easter date.
func DeriveAnchors(year int, easter Date) Anchors {
	return Anchors{
		Year:          year,
		AshWednesday:  easter.AddDays(-DaysFromEasterToAshWednesday),
		HolyWeekStart: easter.AddDays(-DaysFromEasterToPalmSunday),
		Easter:        easter,
		Ascension:     easter.AddDays(DaysFromEasterToAscension),
		Pentecost:     easter.AddDays(DaysFromEasterToPentecost),
		AdventStart:   CalculateAdvent(year),
		Christmas:     fixedFeast(aa.ChristmasDay, year),
		Epiphany:      fixedFeast(aa.Epiphany, year),
	}
}

// AnchorsFor computes the anchor dates for year.
func AnchorsFor(year int) Anchors {
	return DeriveAnchors(year, CalculateEaster(year))
}

// ChristmasEnd returns the exclusive end of the Christmas season that
// begins in a.Year: Epiphany of the following civil year.
func (a Anchors) ChristmasEnd() Date {
	return fixedFeast(aa.Epiphany, a.Year+1)
}

// fixedFeast reads a fixed-date feast from its holiday definition. Only the
// wall-clock date is kept, so the definition's location does not matter.
func fixedFeast(h *cal.Holiday, year int) Date {
	actual, _ := h.Calc(year)
	return DateOf(actual)
}
