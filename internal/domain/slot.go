package domain

import (
	"fmt"
	"time"

	"roomsched/internal/pkg/export"
	"roomsched/internal/pkg/timeutil"
)

const millisPerMinute = 60 * 1000

// ScheduleSlot is a single bookable time interval on a calendar date. It keeps
// the triple (start time, end time, duration) mutually consistent: the value
// is either fully valid or the failed construction/mutation leaves it
// untouched.
//
// A slot is a single-threaded value; callers sharing one instance across
// goroutines must serialize access themselves.
type ScheduleSlot struct {
	times *timeutil.Converter

	date       time.Time
	startTime  string
	endTime    string
	duration   int
	location   *Room
	attributes map[string]any
}

// SlotConfig collects the optional fields of a slot before the one-shot
// validation in NewSlot. StartTime is mandatory; of EndTime and Duration at
// least one must be given.
type SlotConfig struct {
	Date       time.Time
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM", derived from Duration when empty
	Duration   int    // minutes, derived from EndTime when <= 0
	Location   *Room
	Attributes map[string]any
	Times      *timeutil.Converter // nil means timeutil.UTC
}

// NewSlot validates cfg and derives the missing time attribute.
//
// Rules, in order:
//   - no start time: ErrMissingStartTime
//   - duration > 0, no end time: end = start + duration
//   - duration > 0 and end time given: both are kept only when the duration
//     implied by (end - start) equals the supplied one, otherwise
//     ErrInconsistentTiming
//   - duration <= 0 and end time given: duration = (end - start) in minutes,
//     which must come out positive
//   - neither: ErrUnderspecifiedInterval
//
// All comparisons are done on absolute instants anchored on Date, never on
// the clock strings themselves.
func NewSlot(cfg SlotConfig) (*ScheduleSlot, error) {
	times := cfg.Times
	if times == nil {
		times = timeutil.UTC
	}

	if cfg.StartTime == "" {
		return nil, ErrMissingStartTime
	}
	start, err := times.Combine(cfg.Date, cfg.StartTime)
	if err != nil {
		return nil, err
	}

	s := &ScheduleSlot{
		times:      times,
		date:       cfg.Date,
		startTime:  cfg.StartTime,
		location:   cfg.Location,
		attributes: copyAttributes(cfg.Attributes),
	}

	switch {
	case cfg.Duration > 0 && cfg.EndTime == "":
		s.duration = cfg.Duration
		s.endTime = times.FormatClock(start.Add(time.Duration(cfg.Duration) * time.Minute))

	case cfg.Duration > 0:
		end, err := times.Combine(cfg.Date, cfg.EndTime)
		if err != nil {
			return nil, err
		}
		implied := int((end.UnixMilli() - start.UnixMilli()) / millisPerMinute)
		if implied != cfg.Duration {
			return nil, fmt.Errorf("%w: based on the end time the duration would be %d minutes, got %d",
				ErrInconsistentTiming, implied, cfg.Duration)
		}
		s.duration = cfg.Duration
		s.endTime = cfg.EndTime

	case cfg.EndTime != "":
		end, err := times.Combine(cfg.Date, cfg.EndTime)
		if err != nil {
			return nil, err
		}
		implied := int((end.UnixMilli() - start.UnixMilli()) / millisPerMinute)
		if implied <= 0 {
			return nil, fmt.Errorf("%w: start %s is not before end %s",
				ErrInvalidInterval, cfg.StartTime, cfg.EndTime)
		}
		s.duration = implied
		s.endTime = cfg.EndTime

	default:
		return nil, ErrUnderspecifiedInterval
	}

	return s, nil
}

func copyAttributes(attributes map[string]any) map[string]any {
	out := make(map[string]any, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}
	return out
}

// StartTimeInMillis returns the absolute instant of date + start time in Unix
// milliseconds. It is recomputed from the current fields on every call.
func (s *ScheduleSlot) StartTimeInMillis() int64 {
	// startTime is validated on every write, Combine cannot fail here.
	t, _ := s.times.Combine(s.date, s.startTime)
	return t.UnixMilli()
}

// EndTimeInMillis returns the start instant plus the duration, in Unix
// milliseconds.
func (s *ScheduleSlot) EndTimeInMillis() int64 {
	return s.StartTimeInMillis() + int64(s.duration)*millisPerMinute
}

// IsCollidingWith reports whether the half-open intervals [start, end) of the
// two slots overlap. Touching endpoints do not collide. The relation is
// symmetric and free of side effects.
func (s *ScheduleSlot) IsCollidingWith(other *ScheduleSlot) bool {
	start1, end1 := s.StartTimeInMillis(), s.EndTimeInMillis()
	start2, end2 := other.StartTimeInMillis(), other.EndTimeInMillis()

	return (start1 <= start2 && start2 < end1) || (start2 <= start1 && start1 < end2)
}

// SetDate replaces the calendar date. The end time and duration are not
// revalidated against the new date; callers that need that guarantee must run
// UpdateDuration themselves.
func (s *ScheduleSlot) SetDate(date time.Time) {
	s.date = date
}

// SetStartTime replaces the start time and recomputes the duration from the
// current end time. The slot is unchanged when the new start would not land
// strictly before the end.
func (s *ScheduleSlot) SetStartTime(startTime string) error {
	d, err := s.impliedDuration(startTime, s.endTime)
	if err != nil {
		return err
	}
	s.startTime = startTime
	s.duration = d
	return nil
}

// SetEndTime replaces the end time and recomputes the duration from the
// current start time.
func (s *ScheduleSlot) SetEndTime(endTime string) error {
	d, err := s.impliedDuration(s.startTime, endTime)
	if err != nil {
		return err
	}
	s.endTime = endTime
	s.duration = d
	return nil
}

// UpdateDuration recomputes the duration from the current date, start and end
// times.
func (s *ScheduleSlot) UpdateDuration() error {
	d, err := s.impliedDuration(s.startTime, s.endTime)
	if err != nil {
		return err
	}
	s.duration = d
	return nil
}

func (s *ScheduleSlot) impliedDuration(startClock, endClock string) (int, error) {
	start, err := s.times.Combine(s.date, startClock)
	if err != nil {
		return 0, err
	}
	end, err := s.times.Combine(s.date, endClock)
	if err != nil {
		return 0, err
	}
	// equal instants are rejected too: the duration must stay strictly
	// positive after every mutation, as at construction
	if !start.Before(end) {
		return 0, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, startClock, endClock)
	}
	return int((end.UnixMilli() - start.UnixMilli()) / millisPerMinute), nil
}

// SetDuration replaces the duration and re-derives the end time from the
// current start instant, keeping the start unchanged.
func (s *ScheduleSlot) SetDuration(duration int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInterval, duration)
	}
	start, err := s.times.Combine(s.date, s.startTime)
	if err != nil {
		return err
	}
	s.duration = duration
	s.endTime = s.times.FormatClock(start.Add(time.Duration(duration) * time.Minute))
	return nil
}

func (s *ScheduleSlot) SetLocation(location *Room) {
	s.location = location
}

// SetAttribute stores one attribute and returns the slot to support chained
// configuration calls.
func (s *ScheduleSlot) SetAttribute(name string, value any) *ScheduleSlot {
	s.attributes[name] = value
	return s
}

func (s *ScheduleSlot) Date() time.Time { return s.date }

func (s *ScheduleSlot) StartTime() string { return s.startTime }

func (s *ScheduleSlot) EndTime() string { return s.endTime }

func (s *ScheduleSlot) Duration() int { return s.duration }

func (s *ScheduleSlot) Location() *Room { return s.location }

func (s *ScheduleSlot) Attribute(name string) any { return s.attributes[name] }

func (s *ScheduleSlot) HasAttribute(name string) bool {
	_, ok := s.attributes[name]
	return ok
}

// Attributes returns a copy of the attribute bag; mutating it does not affect
// the slot.
func (s *ScheduleSlot) Attributes() map[string]any {
	return copyAttributes(s.attributes)
}

// DayOfWeek maps the slot's date to its WeekDay value (Sunday=1..Saturday=7).
func (s *ScheduleSlot) DayOfWeek() WeekDay {
	return WeekDayOf(s.date)
}

func (s *ScheduleSlot) String() string {
	locationName := ""
	if s.location != nil {
		locationName = s.location.Name
	}
	return fmt.Sprintf("<on day: %s> <starts at: %s> <ends at: %s> <location: %s> <properties: %s>",
		s.times.FormatDate(s.date), s.startTime, s.endTime, locationName,
		export.SerializeAttributes(s.attributes))
}
