package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekDayOf(t *testing.T) {
	// one full week starting on Sunday 2024-01-07
	want := []WeekDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	for i, w := range want {
		d := time.Date(2024, time.January, 7+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, w, WeekDayOf(d), "day %s", d.Format("2006-01-02"))
	}
}

func TestWeekDayString(t *testing.T) {
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Saturday", Saturday.String())
	assert.Equal(t, "Unknown", WeekDay(0).String())
	assert.Equal(t, "Unknown", WeekDay(8).String())
}
