package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-05 is a Sunday.
func day(offset int) time.Time {
	return time.Date(2025, 1, 5+offset, 0, 0, 0, 0, time.UTC)
}

var (
	sunday    = day(0)
	monday    = day(1)
	tuesday   = day(2)
	wednesday = day(3)
	thursday  = day(4)
	friday    = day(5)
	saturday  = day(6)
)

func TestIsBusinessHour_DefaultSchedule(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		hour int
		want bool
	}{
		{"tuesday opening hour", tuesday, 9, true},
		{"tuesday last open hour", tuesday, 17, true},
		{"tuesday closing hour is closed", tuesday, 18, false},
		{"tuesday before opening", tuesday, 8, false},
		{"thursday morning", thursday, 12, true},
		{"thursday break starts at 13", thursday, 13, false},
		{"thursday inside break", thursday, 14, false},
		{"thursday afternoon reopens at 16", thursday, 16, true},
		{"friday break ends at 15", friday, 15, true},
		{"friday 14 is closed", friday, 14, false},
		{"saturday 14 open", saturday, 14, true},
		{"saturday 15 closed", saturday, 15, false},
		{"negative hour", tuesday, -1, false},
		{"hour past midnight", tuesday, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusinessHour(tt.date, tt.hour, Default()))
		})
	}
}

func TestIsBusinessHour_NilScheduleUsesDefault(t *testing.T) {
	assert.True(t, IsBusinessHour(tuesday, 9, nil))
	assert.False(t, IsBusinessHour(monday, 9, nil))
}

func TestIsBusinessHour_ClosedDaysAreClosedAllDay(t *testing.T) {
	s := Schedule{
		time.Tuesday:  {{Start: 0, End: 24}},
		time.Saturday: {},
	}

	for _, d := range []time.Time{sunday, monday, wednesday, thursday, friday, saturday} {
		for hour := 0; hour < 24; hour++ {
			assert.False(t, IsBusinessHour(d, hour, s), "%s %d", d.Weekday(), hour)
		}
	}
	for hour := 0; hour < 24; hour++ {
		assert.True(t, IsBusinessHour(tuesday, hour, s))
	}
}

func TestIsBusinessHour_Idempotent(t *testing.T) {
	s := Default()
	first := IsBusinessHour(thursday, 16, s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, IsBusinessHour(thursday, 16, s))
		assert.Equal(t, []Interval{{9, 13}, {16, 20}}, BusinessHoursForDay(thursday, s))
	}
	assert.Equal(t, Default(), s)
}

func TestBusinessHoursForDay(t *testing.T) {
	s := Default()

	assert.Equal(t, []Interval{{Start: 9, End: 13}, {Start: 16, End: 20}}, BusinessHoursForDay(thursday, s))
	assert.Equal(t, []Interval{{Start: 9, End: 18}}, BusinessHoursForDay(wednesday, s))

	closed := BusinessHoursForDay(monday, s)
	require.NotNil(t, closed)
	assert.Empty(t, closed)

	absent := BusinessHoursForDay(sunday, Schedule{time.Tuesday: {{9, 18}}})
	require.NotNil(t, absent)
	assert.Empty(t, absent)
}

func TestBusinessHoursForDayDoesNotAliasSchedule(t *testing.T) {
	s := Default()

	iv := BusinessHoursForDay(thursday, s)
	iv[0].Start = 0

	assert.Equal(t, []Interval{{9, 13}, {16, 20}}, s[time.Thursday])
	assert.Equal(t, Default(), s)
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	s := Default()
	s[time.Tuesday][0].End = 12
	s[time.Monday] = []Interval{{10, 11}}

	assert.Equal(t, []Interval{{9, 18}}, Default()[time.Tuesday])
	assert.Empty(t, Default()[time.Monday])
}

func TestDisplayRange(t *testing.T) {
	start, end, open := DisplayRange(BusinessHoursForDay(thursday, Default()))
	assert.True(t, open)
	assert.Equal(t, 9, start)
	assert.Equal(t, 20, end)

	// unordered input still spans min start to max end
	start, end, open = DisplayRange([]Interval{{16, 21}, {8, 12}})
	assert.True(t, open)
	assert.Equal(t, 8, start)
	assert.Equal(t, 21, end)

	_, _, open = DisplayRange(nil)
	assert.False(t, open)
}

func TestCloneIsDeep(t *testing.T) {
	s := Default()
	c := s.Clone()
	c[time.Friday][1].Start = 14

	assert.Equal(t, 15, s[time.Friday][1].Start)
	assert.Nil(t, Schedule(nil).Clone())
}

func TestOpensOn(t *testing.T) {
	s := Default()
	assert.False(t, s.OpensOn(time.Sunday))
	assert.True(t, s.OpensOn(time.Saturday))
}
