package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Converter combines calendar dates with wall-clock "HH:MM" strings and turns
// them back into strings. The location is injected once at construction so
// every conversion in the process uses the same calendar convention instead
// of hidden global state.
type Converter struct {
	loc *time.Location
}

func NewConverter(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.UTC
	}
	return &Converter{loc: loc}
}

// UTC is the converter used when no explicit location is configured.
var UTC = NewConverter(time.UTC)

func (c *Converter) Location() *time.Location {
	return c.loc
}

// Combine anchors a "HH:MM" wall-clock string on the given calendar date and
// returns the absolute instant.
func (c *Converter) Combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, c.loc), nil
}

// ValidClock reports whether s parses as a "HH:MM" wall-clock string.
func (c *Converter) ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func (c *Converter) FormatClock(t time.Time) string {
	return t.In(c.loc).Format(ClockLayout)
}

// ParseDate parses a "YYYY-MM-DD" string into a midnight instant in the
// converter's location.
func (c *Converter) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func (c *Converter) FormatDate(t time.Time) string {
	return t.In(c.loc).Format(DateLayout)
}
