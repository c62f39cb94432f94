// Package schedule models a salon's weekly opening hours.
//
// A Schedule maps each weekday to the half-open hour intervals during which the
// salon is open. The query functions are pure: they read the Schedule they are
// given and never mutate it.
package schedule

import "time"

// Interval is a half-open range of whole hours [Start, End).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether hour falls inside the interval. End is exclusive.
func (iv Interval) Contains(hour int) bool {
	return hour >= iv.Start && hour < iv.End
}

// Schedule maps a weekday to its ordered opening intervals.
// A missing weekday and a weekday with no intervals both mean closed.
type Schedule map[time.Weekday][]Interval

// Default returns the out-of-the-box opening hours.
// Every call returns a fresh copy, so callers may modify it freely.
func Default() Schedule {
	return Schedule{
		time.Sunday:    {},
		time.Monday:    {},
		time.Tuesday:   {{Start: 9, End: 18}},
		time.Wednesday: {{Start: 9, End: 18}},
		time.Thursday:  {{Start: 9, End: 13}, {Start: 16, End: 20}},
		time.Friday:    {{Start: 9, End: 13}, {Start: 15, End: 20}},
		time.Saturday:  {{Start: 9, End: 15}},
	}
}

func orDefault(s Schedule) Schedule {
	if s == nil {
		return Default()
	}
	return s
}

// IsBusinessHour reports whether the salon is open during the given hour of
// date's weekday. The caller is expected to have put date in the salon's
// location. A nil schedule means Default().
func IsBusinessHour(date time.Time, hour int, s Schedule) bool {
	for _, iv := range orDefault(s)[date.Weekday()] {
		if iv.Contains(hour) {
			return true
		}
	}
	return false
}

// BusinessHoursForDay returns the opening intervals for date's weekday.
// It never returns nil: a closed or unconfigured day yields an empty slice.
// The result is a copy; s is left untouched by changes to it.
func BusinessHoursForDay(date time.Time, s Schedule) []Interval {
	intervals := orDefault(s)[date.Weekday()]
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	return out
}

// DisplayRange returns the span used to size a day's timeline: the earliest
// start and the latest end across all intervals. Gaps between intervals stay
// inside the range. open is false when there are no intervals.
func DisplayRange(intervals []Interval) (start, end int, open bool) {
	if len(intervals) == 0 {
		return 0, 0, false
	}

	start, end = intervals[0].Start, intervals[0].End
	for _, iv := range intervals[1:] {
		if iv.Start < start {
			start = iv.Start
		}
		if iv.End > end {
			end = iv.End
		}
	}
	return start, end, true
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for day, intervals := range s {
		cp := make([]Interval, len(intervals))
		copy(cp, intervals)
		out[day] = cp
	}
	return out
}

// OpensOn reports whether any interval is configured for day.
func (s Schedule) OpensOn(day time.Weekday) bool {
	return len(s[day]) > 0
}
