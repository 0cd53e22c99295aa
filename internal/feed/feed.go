// Package feed renders a liturgical year as an iCalendar feed.
package feed

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
)

// ProductID identifies the feed's producer in the PRODID property.
const ProductID = "-//zapponejosh//liturgical-day//EN"

// Year returns the span of liturgical year y: Advent of y up to, but not
// including, Advent of y+1.
func Year(y int) (start, end calendar.Date) {
	return calendar.CalculateAdvent(y), calendar.CalculateAdvent(y + 1)
}

// Days resolves every Sunday and principal weekday feast of liturgical
// year y, in date order.
func Days(y int) []calendar.LiturgicalDay {
	start, end := Year(y)
	feasts := feastDays(calendar.AnchorsFor(y), calendar.AnchorsFor(y+1))

	var days []calendar.LiturgicalDay
	for d := start; d.Before(end); d = d.AddDays(1) {
		if d.Weekday() == time.Sunday || feasts[d] {
			days = append(days, calendar.Resolve(d))
		}
	}
	return days
}

// feastDays returns the weekday feasts of the liturgical year that begins
// with cur's Advent; next holds the anchors of the following civil year.
func feastDays(cur, next calendar.Anchors) map[calendar.Date]bool {
	return map[calendar.Date]bool{
		cur.Christmas:            true,
		cur.Christmas.AddDays(7): true, // Octave Day
		next.Epiphany:            true,
		next.AshWednesday:        true,
		next.Easter.AddDays(-3):  true, // Holy Thursday
		next.Easter.AddDays(-2):  true, // Good Friday
		next.Ascension:           true,
	}
}

// Build returns the iCalendar for liturgical year y. stamp is written as
// every event's DTSTAMP.
func Build(y int, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for _, day := range Days(y) {
		start := day.Date.Time()

		event := cal.AddEvent(fmt.Sprintf("%s@liturgical-day", day.Date))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(day.Label)
		event.SetDescription(fmt.Sprintf("%s. %s, Year %s.", day.Period, day.Season, day.SundayCycle))
	}
	return cal
}

// Serialize renders liturgical year y as iCalendar text.
func Serialize(y int, stamp time.Time) string {
	return Build(y, stamp).Serialize()
}
