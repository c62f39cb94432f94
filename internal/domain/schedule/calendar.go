package schedule

import "time"

// WeekLength is the number of days rendered in week view (Monday to Saturday).
const WeekLength = 6

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays returns Monday through Saturday of the week containing ref, at
// local midnight and in ascending order. A Sunday belongs to the week that
// ends on it, so its Monday is six days earlier.
//
// Sunday is never part of the result, even for schedules that open on Sunday.
func WeekDays(ref time.Time) []time.Time {
	day := StartOfDay(ref)

	offset := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	monday := day.AddDate(0, 0, -offset)

	days := make([]time.Time, 0, WeekLength)
	for i := 0; i < WeekLength; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}
	return days
}

// EndTime returns the end of an appointment starting at start and lasting
// durationMin minutes.
func EndTime(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

// SlotAllowed reports whether an appointment may start at start.
// Only the hour is checked: a slot that begins inside an open hour is accepted
// even if it runs past the end of the interval.
func SlotAllowed(start time.Time, s Schedule) bool {
	return IsBusinessHour(start, start.Hour(), s)
}
