package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// MarshalJSON encodes the schedule as {"0": [[9,18]], ...}. Days are keyed by
// the decimal weekday number and intervals are two-element arrays.
func (s Schedule) MarshalJSON() ([]byte, error) {
	out := make(map[string][][2]int, len(s))
	for day, intervals := range s {
		pairs := make([][2]int, 0, len(intervals))
		for _, iv := range intervals {
			pairs = append(pairs, [2]int{iv.Start, iv.End})
		}
		out[strconv.Itoa(int(day))] = pairs
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the persisted shape produced by MarshalJSON.
// Keys must be "0" to "6" and every interval exactly two integers; interval
// contents are not checked here, see Validate.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw map[string][][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	out := make(Schedule, len(raw))
	for key, pairs := range raw {
		n, err := strconv.Atoi(key)
		if err != nil || n < int(time.Sunday) || n > int(time.Saturday) || strconv.Itoa(n) != key {
			return fmt.Errorf("%w: day key %q", ErrInvalidSchedule, key)
		}

		intervals := make([]Interval, 0, len(pairs))
		for _, p := range pairs {
			if len(p) != 2 {
				return fmt.Errorf("%w: day %s: interval %v must have two hours", ErrInvalidSchedule, key, p)
			}
			intervals = append(intervals, Interval{Start: p[0], End: p[1]})
		}
		out[time.Weekday(n)] = intervals
	}

	*s = out
	return nil
}

// Parse decodes persisted JSON and validates the result.
func Parse(data []byte) (Schedule, error) {
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Normalize(), nil
}

// Validate rejects intervals outside 0..24, empty or inverted intervals and
// intervals that overlap on the same day. Order is not required.
func (s Schedule) Validate() error {
	for day, intervals := range s {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidSchedule, int(day))
		}

		for _, iv := range intervals {
			if iv.Start < 0 || iv.End > 24 {
				return fmt.Errorf("%w: %s: interval [%d,%d) outside 0..24", ErrInvalidSchedule, day, iv.Start, iv.End)
			}
			if iv.Start >= iv.End {
				return fmt.Errorf("%w: %s: interval [%d,%d) is empty", ErrInvalidSchedule, day, iv.Start, iv.End)
			}
		}

		sorted := sortedCopy(intervals)
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Start < sorted[i-1].End {
				return fmt.Errorf(
					"%w: %s: intervals [%d,%d) and [%d,%d) overlap",
					ErrInvalidSchedule, day,
					sorted[i-1].Start, sorted[i-1].End,
					sorted[i].Start, sorted[i].End,
				)
			}
		}
	}
	return nil
}

// Normalize returns a copy with every day's intervals sorted by start and all
// seven weekdays present.
func (s Schedule) Normalize() Schedule {
	out := make(Schedule, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		out[day] = sortedCopy(s[day])
	}
	return out
}

func sortedCopy(intervals []Interval) []Interval {
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Start < cp[j].Start })
	return cp
}
