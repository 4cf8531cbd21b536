package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	c := NewConverter(time.UTC)
	d := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	got, err := c.Combine(d, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, 9, 30, 0, 0, time.UTC), got)

	_, err = c.Combine(d, "25:00")
	assert.Error(t, err)
	_, err = c.Combine(d, "nine")
	assert.Error(t, err)
}

func TestCombineRoundTrip(t *testing.T) {
	c := NewConverter(time.UTC)
	d := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"00:00", "09:05", "12:30", "23:59"} {
		got, err := c.Combine(d, clock)
		require.NoError(t, err)
		assert.Equal(t, clock, c.FormatClock(got))
	}
}

func TestParseDate(t *testing.T) {
	c := NewConverter(time.UTC)

	d, err := c.ParseDate("2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-01-08", c.FormatDate(d))

	_, err = c.ParseDate("08.01.2024")
	assert.Error(t, err)
}

func TestNilLocationFallsBackToUTC(t *testing.T) {
	c := NewConverter(nil)
	assert.Equal(t, time.UTC, c.Location())
}

func TestValidClock(t *testing.T) {
	c := NewConverter(time.UTC)
	assert.True(t, c.ValidClock("08:15"))
	assert.False(t, c.ValidClock("8:15pm"))
	assert.False(t, c.ValidClock(""))
}
