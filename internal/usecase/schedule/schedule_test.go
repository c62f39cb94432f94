package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newRepo(hours sched.Schedule) *memory.Repository {
	return memory.NewRepository(models.Salon{
		ID:           1,
		Name:         "Salon",
		Timezone:     "Europe/Madrid",
		OpeningHours: hours,
	})
}

func TestGetScheduleFallsBackToDefault(t *testing.T) {
	got, err := NewGetSchedule(newRepo(nil), zap.NewNop()).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, sched.Default(), got)
}

func TestGetScheduleNormalizesStored(t *testing.T) {
	repo := newRepo(sched.Schedule{time.Friday: {{Start: 15, End: 20}, {Start: 9, End: 13}}})

	got, err := NewGetSchedule(repo, zap.NewNop()).Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, got, 7)
	assert.Equal(t, []sched.Interval{{Start: 9, End: 13}, {Start: 15, End: 20}}, got[time.Friday])
	assert.Empty(t, got[time.Tuesday])
}

func TestGetScheduleUnknownSalon(t *testing.T) {
	_, err := NewGetSchedule(newRepo(nil), zap.NewNop()).Execute(context.Background(), 9)
	assert.True(t, httperr.IsBusiness(err, "salon_not_found"))
}

func TestHoursOfUnreadableWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	got := HoursOf(&models.Salon{ID: 1, HoursInvalid: true}, zap.New(core))
	assert.Equal(t, sched.Default(), got)
	assert.Equal(t, 1, logs.Len())
}

func TestReplaceSchedule(t *testing.T) {
	repo := newRepo(nil)
	uc := NewReplaceSchedule(repo, nil, zap.NewNop())

	in := sched.Schedule{
		time.Monday:   {{Start: 16, End: 20}, {Start: 10, End: 14}},
		time.Saturday: {{Start: 9, End: 14}},
	}
	saved, err := uc.Execute(context.Background(), 1, "staff", in)
	require.NoError(t, err)

	assert.Equal(t, []sched.Interval{{Start: 10, End: 14}, {Start: 16, End: 20}}, saved[time.Monday])
	assert.Empty(t, saved[time.Tuesday], "replacement is wholesale")

	got, err := NewGetSchedule(repo, zap.NewNop()).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.True(t, sched.IsBusinessHour(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), 10, got))
}

func TestReplaceScheduleRejectsInvalid(t *testing.T) {
	repo := newRepo(nil)
	uc := NewReplaceSchedule(repo, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), 1, "staff", sched.Schedule{
		time.Thursday: {{Start: 9, End: 14}, {Start: 13, End: 20}},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))

	got, err := NewGetSchedule(repo, zap.NewNop()).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, sched.Default(), got, "nothing persisted")
}

func TestReplaceScheduleWarnsOnSunday(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	uc := NewReplaceSchedule(newRepo(nil), nil, zap.New(core))

	_, err := uc.Execute(context.Background(), 1, "staff", sched.Schedule{
		time.Sunday: {{Start: 10, End: 14}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("sunday").Len())
}

func TestBuildDayWindow(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// Thursday
	w := BuildDayWindow(time.Date(2025, 1, 9, 0, 0, 0, 0, madrid), sched.Default())
	assert.Equal(t, "2025-01-09", w.Date)
	assert.False(t, w.Closed)
	assert.Equal(t, 9, w.StartHour)
	assert.Equal(t, 20, w.EndHour)
	require.Len(t, w.Hours, 11)

	open := map[int]bool{}
	for _, h := range w.Hours {
		open[h.Hour] = h.Open
	}
	assert.True(t, open[12])
	assert.False(t, open[13])
	assert.False(t, open[15])
	assert.True(t, open[16])
	assert.True(t, open[19])
}

func TestBuildDayWindowClosedDay(t *testing.T) {
	// Monday
	w := BuildDayWindow(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), sched.Default())
	assert.True(t, w.Closed)
	assert.Equal(t, 9, w.StartHour)
	assert.Equal(t, 20, w.EndHour)
	assert.NotNil(t, w.Intervals)
	for _, h := range w.Hours {
		assert.False(t, h.Open)
	}
}

func TestGetDayWindow(t *testing.T) {
	uc := NewGetDayWindow(newRepo(nil), zap.NewNop())

	w, err := uc.Execute(context.Background(), 1, "2025-01-11")
	require.NoError(t, err)
	assert.Equal(t, 9, w.StartHour)
	assert.Equal(t, 15, w.EndHour)

	_, err = uc.Execute(context.Background(), 1, "11/01/2025")
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
