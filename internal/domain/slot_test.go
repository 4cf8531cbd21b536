package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomsched/internal/pkg/timeutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSlot(t *testing.T, cfg SlotConfig) *ScheduleSlot {
	t.Helper()
	s, err := NewSlot(cfg)
	require.NoError(t, err)
	return s
}

func TestNewSlot_DerivesEndFromDuration(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		Duration:  90,
	})

	assert.Equal(t, "10:30", s.EndTime())
	assert.Equal(t, 90, s.Duration())
	assert.Equal(t, int64(90*60*1000), s.EndTimeInMillis()-s.StartTimeInMillis())
}

func TestNewSlot_DerivesDurationFromEnd(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "11:15",
	})

	assert.Equal(t, 135, s.Duration())
	assert.Equal(t, "11:15", s.EndTime())
}

func TestNewSlot_KeepsAgreeingEndAndDuration(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "10:00",
		Duration:  60,
	})

	assert.Equal(t, "10:00", s.EndTime())
	assert.Equal(t, 60, s.Duration())
}

func TestNewSlot_RejectsDisagreeingEndAndDuration(t *testing.T) {
	_, err := NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "10:00",
		Duration:  90,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentTiming)
	// the message must report the implied duration
	assert.Contains(t, err.Error(), "60 minutes")
}

func TestNewSlot_RejectsMissingStartTime(t *testing.T) {
	_, err := NewSlot(SlotConfig{
		Date:     date(2024, time.January, 8),
		EndTime:  "10:00",
		Duration: 60,
	})

	assert.ErrorIs(t, err, ErrMissingStartTime)
}

func TestNewSlot_RejectsUnderspecifiedInterval(t *testing.T) {
	_, err := NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrUnderspecifiedInterval)

	_, err = NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		Duration:  -30,
	})
	assert.ErrorIs(t, err, ErrUnderspecifiedInterval)
}

func TestNewSlot_RejectsEndNotAfterStart(t *testing.T) {
	_, err := NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "10:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewSlot_RejectsMalformedClock(t *testing.T) {
	_, err := NewSlot(SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "9 o'clock",
		Duration:  60,
	})
	assert.Error(t, err)
}

func TestCollision_TouchingSlotsDoNotCollide(t *testing.T) {
	d := date(2024, time.January, 8)
	a := mustSlot(t, SlotConfig{Date: d, StartTime: "09:00", EndTime: "10:00"})
	b := mustSlot(t, SlotConfig{Date: d, StartTime: "10:00", EndTime: "11:00"})

	assert.False(t, a.IsCollidingWith(b))
	assert.False(t, b.IsCollidingWith(a))
}

func TestCollision_OverlappingSlotsCollide(t *testing.T) {
	d := date(2024, time.January, 8)
	a := mustSlot(t, SlotConfig{Date: d, StartTime: "09:00", EndTime: "10:30"})
	b := mustSlot(t, SlotConfig{Date: d, StartTime: "10:00", EndTime: "11:00"})

	assert.True(t, a.IsCollidingWith(b))
	assert.True(t, b.IsCollidingWith(a))
}

func TestCollision_IdenticalSlotsCollide(t *testing.T) {
	d := date(2024, time.January, 8)
	a := mustSlot(t, SlotConfig{Date: d, StartTime: "09:00", EndTime: "10:00"})
	b := mustSlot(t, SlotConfig{Date: d, StartTime: "09:00", EndTime: "10:00"})

	assert.True(t, a.IsCollidingWith(b))
	assert.True(t, b.IsCollidingWith(a))
}

func TestCollision_ContainedSlotCollides(t *testing.T) {
	d := date(2024, time.January, 8)
	outer := mustSlot(t, SlotConfig{Date: d, StartTime: "08:00", EndTime: "12:00"})
	inner := mustSlot(t, SlotConfig{Date: d, StartTime: "09:15", EndTime: "09:45"})

	assert.True(t, outer.IsCollidingWith(inner))
	assert.True(t, inner.IsCollidingWith(outer))
}

func TestCollision_DifferentDaysDoNotCollide(t *testing.T) {
	a := mustSlot(t, SlotConfig{Date: date(2024, time.January, 8), StartTime: "09:00", EndTime: "10:00"})
	b := mustSlot(t, SlotConfig{Date: date(2024, time.January, 9), StartTime: "09:00", EndTime: "10:00"})

	assert.False(t, a.IsCollidingWith(b))
	assert.False(t, b.IsCollidingWith(a))
}

func TestSetStartTime_RecomputesDuration(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	require.NoError(t, s.SetStartTime("10:00"))
	assert.Equal(t, 60, s.Duration())
	assert.Equal(t, "11:00", s.EndTime())
}

func TestSetStartTime_AfterEndFailsWithoutMutation(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	err := s.SetStartTime("12:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
	// the failed mutation must not leave partial state behind
	assert.Equal(t, "09:00", s.StartTime())
	assert.Equal(t, 120, s.Duration())
}

func TestSetEndTime_RecomputesDuration(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	require.NoError(t, s.SetEndTime("09:30"))
	assert.Equal(t, 30, s.Duration())

	err := s.SetEndTime("08:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, "09:30", s.EndTime())
}

func TestMutators_RejectZeroLengthInterval(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	// collapsing the interval to a point must not commit a zero duration
	err := s.SetEndTime("09:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, "11:00", s.EndTime())
	assert.Equal(t, 120, s.Duration())

	err = s.SetStartTime("11:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, "09:00", s.StartTime())
	assert.Equal(t, 120, s.Duration())
}

func TestSetDuration_AnchorsOnStartInstant(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, s.SetDuration(45))
	assert.Equal(t, "09:45", s.EndTime())
	assert.Equal(t, 45, s.Duration())
	assert.Equal(t, int64(45*60*1000), s.EndTimeInMillis()-s.StartTimeInMillis())

	err := s.SetDuration(0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, 45, s.Duration())
}

func TestSetDate_DoesNotRevalidate(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	s.SetDate(date(2024, time.February, 1))
	assert.Equal(t, date(2024, time.February, 1), s.Date())
	assert.Equal(t, 60, s.Duration())

	require.NoError(t, s.UpdateDuration())
	assert.Equal(t, 60, s.Duration())
}

func TestAttributes_DefensiveCopy(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:       date(2024, time.January, 8),
		StartTime:  "09:00",
		Duration:   60,
		Attributes: map[string]any{"course": "algorithms"},
	})

	got := s.Attributes()
	got["course"] = "hacked"
	got["extra"] = true

	assert.Equal(t, "algorithms", s.Attribute("course"))
	assert.False(t, s.HasAttribute("extra"))
}

func TestAttributes_BuilderMapNotAliased(t *testing.T) {
	in := map[string]any{"group": "301"}
	s := mustSlot(t, SlotConfig{
		Date:       date(2024, time.January, 8),
		StartTime:  "09:00",
		Duration:   60,
		Attributes: in,
	})

	in["group"] = "999"
	assert.Equal(t, "301", s.Attribute("group"))
}

func TestSetAttribute_Chains(t *testing.T) {
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		Duration:  60,
	})

	s.SetAttribute("course", "databases").SetAttribute("group", "301")

	assert.Equal(t, "databases", s.Attribute("course"))
	assert.True(t, s.HasAttribute("group"))
}

func TestDayOfWeek(t *testing.T) {
	// 2024-01-08 is a Monday
	s := mustSlot(t, SlotConfig{
		Date:      date(2024, time.January, 8),
		StartTime: "09:00",
		Duration:  90,
	})

	assert.Equal(t, Monday, s.DayOfWeek())
	assert.Equal(t, Monday, s.DayOfWeek())
	assert.Equal(t, "10:30", s.EndTime())

	// boundary days of the Sunday=1..Saturday=7 mapping
	sun := mustSlot(t, SlotConfig{Date: date(2024, time.January, 7), StartTime: "09:00", Duration: 30})
	sat := mustSlot(t, SlotConfig{Date: date(2024, time.January, 13), StartTime: "09:00", Duration: 30})
	assert.Equal(t, Sunday, sun.DayOfWeek())
	assert.Equal(t, Saturday, sat.DayOfWeek())
}

func TestStringIncludesLocationAndAttributes(t *testing.T) {
	room := &Room{ID: 1, Name: "Raf 10", Capacity: 30}
	s := mustSlot(t, SlotConfig{
		Date:       date(2024, time.January, 8),
		StartTime:  "09:00",
		Duration:   60,
		Location:   room,
		Attributes: map[string]any{"course": "algorithms"},
	})

	out := s.String()
	assert.Contains(t, out, "2024-01-08")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "Raf 10")
	assert.Contains(t, out, "algorithms")
}

func TestConverterInjection(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	conv := timeutil.NewConverter(berlin)

	d := time.Date(2024, time.January, 8, 0, 0, 0, 0, berlin)
	s := mustSlot(t, SlotConfig{Date: d, StartTime: "09:00", Duration: 60, Times: conv})

	want := time.Date(2024, time.January, 8, 9, 0, 0, 0, berlin).UnixMilli()
	assert.Equal(t, want, s.StartTimeInMillis())
}
