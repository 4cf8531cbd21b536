package domain

import "time"

// WeekDay enumerates the days of the week, Sunday=1 through Saturday=7.
// The numbering follows the calendar convention the scheduling component has
// always used; it is covered by tests on both boundary days.
type WeekDay int

const (
	Sunday WeekDay = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekDayNames = [...]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

func (d WeekDay) String() string {
	if d < Sunday || d > Saturday {
		return "Unknown"
	}
	return weekDayNames[d]
}

// WeekDayOf maps a calendar date to its WeekDay value.
func WeekDayOf(date time.Time) WeekDay {
	return WeekDay(int(date.Weekday()) + 1)
}
