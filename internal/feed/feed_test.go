package feed

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
)

var stamp = time.Date(2024, time.November, 1, 12, 0, 0, 0, time.UTC)

func TestYear(t *testing.T) {
	start, end := Year(2024)
	assert.Equal(t, calendar.NewDate(2024, time.December, 1), start)
	assert.Equal(t, calendar.NewDate(2025, time.November, 30), end)
}

func TestDays_2024(t *testing.T) {
	days := Days(2024)

	// 52 Sundays plus seven weekday feasts.
	require.Len(t, days, 59)
	assert.Equal(t, "1st Sunday of Advent", days[0].Label)
	assert.Equal(t, "Christ the King", days[len(days)-1].Label)

	labels := make(map[string]calendar.Date)
	for i, day := range days {
		labels[day.Label] = day.Date
		if i > 0 {
			assert.True(t, days[i-1].Date.Before(day.Date), "days out of order at %s", day.Date)
		}
	}

	for label, want := range map[string]calendar.Date{
		"Christmas Day":           calendar.NewDate(2024, time.December, 25),
		"Octave Day of Christmas": calendar.NewDate(2025, time.January, 1),
		"Epiphany":                calendar.NewDate(2025, time.January, 6),
		"Ash Wednesday":           calendar.NewDate(2025, time.March, 5),
		"Holy Thursday":           calendar.NewDate(2025, time.April, 17),
		"Good Friday":             calendar.NewDate(2025, time.April, 18),
		"Easter Sunday":           calendar.NewDate(2025, time.April, 20),
		"Ascension Day":           calendar.NewDate(2025, time.May, 29),
		"Pentecost Sunday":        calendar.NewDate(2025, time.June, 8),
	} {
		assert.Equal(t, want, labels[label], label)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	out := Serialize(2024, stamp)
	assert.Contains(t, out, ProductID)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 59)

	var easter *ics.VEvent
	for _, e := range events {
		if e.GetProperty(ics.ComponentPropertySummary).Value == "Easter Sunday" {
			easter = e
		}
	}
	require.NotNil(t, easter, "no Easter Sunday event")
	assert.Equal(t, "20250420", easter.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "2025-04-20@liturgical-day", easter.GetProperty(ics.ComponentPropertyUniqueId).Value)
}

func TestSerialize_Deterministic(t *testing.T) {
	assert.Equal(t, Serialize(2025, stamp), Serialize(2025, stamp))
}
