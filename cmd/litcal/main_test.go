package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDayCommand(t *testing.T) {
	out, err := execute(t, "day", "2024-12-25")
	require.NoError(t, err)
	assert.Contains(t, out, "Christmas Day")
	assert.Contains(t, out, "2024-12-25")
}

func TestDayCommand_JSON(t *testing.T) {
	out, err := execute(t, "day", "2025-04-20", "--json")
	require.NoError(t, err)

	var day calendar.LiturgicalDay
	require.NoError(t, json.Unmarshal([]byte(out), &day))
	assert.Equal(t, calendar.SeasonEaster, day.Season)
	assert.Equal(t, "Easter Sunday", day.Label)
}

func TestDayCommand_InvalidDate(t *testing.T) {
	_, err := execute(t, "day", "25/12/2024")
	assert.ErrorIs(t, err, calendar.ErrInvalidDateFormat)
}

func TestDayCommand_BadTimezone(t *testing.T) {
	_, err := execute(t, "day", "--timezone", "Nowhere/Special")
	assert.Error(t, err)
}

func TestAnchorsCommand(t *testing.T) {
	out, err := execute(t, "anchors", "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-31")
	assert.Contains(t, out, "2024-12-01")
}

func TestYearCommand(t *testing.T) {
	out, err := execute(t, "year", "--year", "2024", "--json")
	require.NoError(t, err)

	var days []calendar.LiturgicalDay
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	// Advent 2024 (Dec 1) through the Saturday before Advent 2025 (Nov 30)
	assert.Len(t, days, 364)
	assert.Equal(t, "1st Sunday of Advent", days[0].Label)
}

func TestICSCommand(t *testing.T) {
	out, err := execute(t, "ics", "--year", "2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Christmas Day")
}

func TestYearOutOfRange(t *testing.T) {
	_, err := execute(t, "anchors", "--year", "1200")
	assert.Error(t, err)
}
