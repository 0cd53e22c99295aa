package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDateFormat is returned when a date string is not a valid
// YYYY-MM-DD calendar date.
var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Clock supplies the current time. Only its wall-clock date is used.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the system time in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return ClockFunc(func() time.Time { return time.Now().In(loc) })
}

// ParseDate parses a date string in YYYY-MM-DD format. The numeric fields
// map directly onto the result; no time zone is involved.
func ParseDate(dateStr string) (Date, error) {
	m := datePattern.FindStringSubmatch(dateStr)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, dateStr)
	}

	// The pattern guarantees the groups are digits.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	d := NewDate(year, time.Month(month), day)
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDateFormat, dateStr)
	}
	return d, nil
}

// Normalize resolves an optional date string. An empty string means today
// according to clock.
func Normalize(dateStr string, clock Clock) (Date, error) {
	if dateStr == "" {
		return DateOf(clock.Now()), nil
	}
	return ParseDate(dateStr)
}

// Resolve returns the liturgical designation of d.
func Resolve(d Date) LiturgicalDay {
	return format(d, Classify(d))
}

// Compute normalizes dateStr and resolves it. It fails only with
// ErrInvalidDateFormat.
func Compute(dateStr string, clock Clock) (LiturgicalDay, error) {
	d, err := Normalize(dateStr, clock)
	if err != nil {
		return LiturgicalDay{}, err
	}
	return Resolve(d), nil
}

// DateResolver resolves dates against a fixed clock.
// It holds no mutable state and is safe for concurrent use.
type DateResolver struct {
	clock Clock
}

// NewDateResolver creates a new date resolver.
func NewDateResolver(clock Clock) *DateResolver {
	return &DateResolver{clock: clock}
}

// Today returns the current calendar date.
func (dr *DateResolver) Today() Date {
	return DateOf(dr.clock.Now())
}

// Compute resolves an optional YYYY-MM-DD string, defaulting to today.
func (dr *DateResolver) Compute(dateStr string) (LiturgicalDay, error) {
	return Compute(dateStr, dr.clock)
}

// ResolveRange resolves every date from start to end inclusive.
func (dr *DateResolver) ResolveRange(start, end Date) []LiturgicalDay {
	return ResolveRange(start, end)
}

// ResolveRange resolves every date from start to end inclusive. It is
// empty when end is before start.
func ResolveRange(start, end Date) []LiturgicalDay {
	var days []LiturgicalDay
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, Resolve(d))
	}
	return days
}
