package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"2024-03-31", d(2024, time.March, 31), false},
		{"2024-02-29", d(2024, time.February, 29), false},
		{"1583-01-01", d(1583, time.January, 1), false},
		{"not-a-date", Date{}, true},
		{"", Date{}, true},
		{"2024-3-31", Date{}, true},
		{"2024/03/31", Date{}, true},
		{"2024-03-31T00:00:00Z", Date{}, true},
		{" 2024-03-31", Date{}, true},
		{"2024-13-01", Date{}, true},
		{"2024-00-10", Date{}, true},
		{"2023-02-29", Date{}, true},
		{"2024-04-31", Date{}, true},
		{"0000-01-01", Date{}, true},
		{"２０２４-03-31", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_DefaultsToToday(t *testing.T) {
	t.Parallel()

	// Late evening in Edmonton: the calendar day is still the 24th there.
	edmonton := time.FixedZone("MST", -7*60*60)
	clock := fixedClock(time.Date(2024, time.December, 24, 22, 0, 0, 0, edmonton))

	got, err := Normalize("", clock)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.December, 24), got)

	got, err = Normalize("2025-01-03", clock)
	require.NoError(t, err)
	assert.Equal(t, d(2025, time.January, 3), got)
}

func TestCompute_Scenarios(t *testing.T) {
	t.Parallel()

	clock := fixedClock(time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		input      string
		wantSeason Season
		wantWeek   int
		wantLabel  string
		wantDay    int
	}{
		{"2024-03-31", SeasonEaster, 1, "Easter Sunday", 0},
		{"2024-02-14", SeasonLent, 0, "Ash Wednesday", 0},
		{"2024-12-01", SeasonAdvent, 1, "1st Sunday of Advent", 0},
		{"2024-12-26", SeasonChristmas, 0, "2nd Day of Christmas", 1},
		{"2025-01-03", SeasonChristmas, 0, "10th Day of Christmas", 9},
		{"", SeasonEaster, 1, "Easter Sunday", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Compute(tt.input, clock)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeason, got.Season)
			assert.Equal(t, tt.wantWeek, got.Week)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantDay, got.DayOfSeason)
		})
	}
}

func TestCompute_InvalidDate(t *testing.T) {
	t.Parallel()

	_, err := Compute("not-a-date", SystemClock(nil))
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateResolver(t *testing.T) {
	t.Parallel()

	dr := NewDateResolver(fixedClock(time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, d(2025, time.January, 3), dr.Today())

	today, err := dr.Compute("")
	require.NoError(t, err)
	assert.Equal(t, SeasonChristmas, today.Season)
	assert.Equal(t, today, Resolve(dr.Today()))

	days := dr.ResolveRange(d(2024, time.December, 23), d(2024, time.December, 26))
	require.Len(t, days, 4)
	assert.Equal(t, SeasonAdvent, days[0].Season)
	assert.Equal(t, SeasonAdvent, days[1].Season)
	assert.Equal(t, SeasonChristmas, days[2].Season)
	assert.Equal(t, "Christmas Day", days[2].Label)

	assert.Empty(t, dr.ResolveRange(d(2024, time.December, 26), d(2024, time.December, 25)))
	assert.Equal(t, days, ResolveRange(d(2024, time.December, 23), d(2024, time.December, 26)))
}

func TestResolve_Concurrent(t *testing.T) {
	t.Parallel()

	want := Resolve(d(2025, time.January, 3))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Resolve(d(2025, time.January, 3)))
		}()
	}
	wg.Wait()
}
