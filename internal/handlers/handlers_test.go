package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/salon-scheduler/internal/messaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
	ucStylist "github.com/BruksfildServices01/salon-scheduler/internal/usecase/stylist"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	repo := memory.NewRepository(models.Salon{ID: 1, Name: "Salon", Timezone: "Europe/Madrid"})
	require.NoError(t, repo.CreateStylist(context.Background(), &models.Stylist{
		SalonID: 1, Key: "isabel", Name: "Isabel", CalendarID: "cal-isabel", Active: true,
	}))
	cal := memory.NewCalendar()
	cache := memory.NewDayCache()

	w := ucAppointment.NewWriter(repo, cal, cache, nil, nil, nil, log, 60)
	appointments := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(w),
		ucAppointment.NewUpdateAppointment(w),
		ucAppointment.NewDeleteAppointment(w),
		ucAppointment.NewListAppointmentsByDate(repo, cal, cache, log),
		ucAppointment.NewListAppointmentsByWeek(repo, cal, log),
		log,
	)
	schedules := NewScheduleHandler(
		ucSchedule.NewGetSchedule(repo, log),
		ucSchedule.NewReplaceSchedule(repo, nil, log),
		ucSchedule.NewGetDayWindow(repo, log),
		log,
	)
	salons := NewSalonHandler(ucSalon.NewGetSalon(repo), ucSalon.NewUpdateSalon(repo, cache, nil), log)
	stylists := NewStylistHandler(ucStylist.NewListStylists(repo), ucStylist.NewCreateStylist(repo, nil), log)
	reminders := NewReminderHandler(
		ucReminder.NewSendReminders(repo, cal, messaging.NewLogSender(log), nil, log),
		"cron-key", 1, log,
	)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/cron/reminders", reminders.Run)

	secured := api.Group("/")
	secured.Use(func(c *gin.Context) {
		c.Set(middleware.ContextActor, "tester")
		c.Set(middleware.ContextSalonID, uint(1))
		c.Next()
	})
	secured.GET("/me", salons.Me)
	secured.GET("/settings/salon", salons.Get)
	secured.PATCH("/settings/salon", salons.Update)
	secured.GET("/stylists", stylists.List)
	secured.POST("/stylists", stylists.Create)
	secured.GET("/appointments", appointments.ListByDate)
	secured.GET("/appointments/week", appointments.ListByWeek)
	secured.POST("/appointments", appointments.Create)
	secured.PUT("/appointments/:id", appointments.Update)
	secured.DELETE("/appointments/:id", appointments.Delete)
	secured.GET("/settings/schedule", schedules.Get)
	secured.PUT("/settings/schedule", schedules.Replace)
	secured.GET("/schedule/day", schedules.Day)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestAppointmentLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/appointments", gin.H{
		"stylist":     "Isabel",
		"client_name": "Ana",
		"service":     "Corte",
		"phone":       "600000000",
		"reminders":   true,
		"date":        "2025-01-07",
		"time":        "10:00",
		"duration":    30,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := created["id"].(string)
	assert.Equal(t, "10:00", created["time"])
	assert.Equal(t, "isabel", created["stylist"])

	w = do(r, http.MethodGet, "/api/appointments?date=2025-01-07", nil)
	require.Equal(t, http.StatusOK, w.Code)
	day := decode(t, w)
	assert.Equal(t, "2025-01-07", day["date"])
	assert.Len(t, day["calendars"].(map[string]any)["isabel"], 1)

	w = do(r, http.MethodPut, "/api/appointments/"+id, gin.H{
		"stylist": "isabel", "client_name": "Ana", "date": "2025-01-07", "time": "11:30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 60, decode(t, w)["duration_min"])

	w = do(r, http.MethodGet, "/api/appointments/week?date=2025-01-08", nil)
	require.Equal(t, http.StatusOK, w.Code)
	week := decode(t, w)
	assert.Len(t, week["days"], 6)
	assert.Len(t, week["appointments"].(map[string]any)["2025-01-07"], 1)

	w = do(r, http.MethodDelete, "/api/appointments/"+id+"?stylist=isabel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/appointments/"+id+"?stylist=isabel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", decode(t, w)["error_code"])
}

func TestCreateAppointmentErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed", `{"stylist":`, http.StatusBadRequest, "invalid_request"},
		{"missing date", gin.H{"stylist": "isabel", "time": "10:00"}, http.StatusBadRequest, "invalid_request"},
		{"closed hour", gin.H{"stylist": "isabel", "date": "2025-01-07", "time": "18:00"}, http.StatusBadRequest, "outside_business_hours"},
		{"unknown stylist", gin.H{"stylist": "nadie", "date": "2025-01-07", "time": "10:00"}, http.StatusBadRequest, "invalid_stylist"},
		{"bad time", gin.H{"stylist": "isabel", "date": "2025-01-07", "time": "10h"}, http.StatusBadRequest, "invalid_date_or_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/appointments", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["error_code"])
		})
	}

	w := do(r, http.MethodGet, "/api/appointments", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_date", decode(t, w)["error_code"])
}

func TestScheduleSettings(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/settings/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"0":[],"1":[],"2":[[9,18]],"3":[[9,18]],"4":[[9,13],[16,20]],"5":[[9,13],[15,20]],"6":[[9,15]]}`, w.Body.String())

	w = do(r, http.MethodPut, "/api/settings/schedule", `{"1":[[16,20],[10,14]],"6":[[9,14]]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"0":[],"1":[[10,14],[16,20]],"2":[],"3":[],"4":[],"5":[],"6":[[9,14]]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/schedule/day?date=2025-01-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	window := decode(t, w)
	assert.Equal(t, false, window["closed"])
	assert.EqualValues(t, 10, window["start_hour"])
	assert.EqualValues(t, 20, window["end_hour"])

	for _, body := range []string{
		`{"2":[[9,14],[13,20]]}`,
		`{"2":[[18,9]]}`,
		`{"8":[[9,10]]}`,
		`{"2":[[9]]}`,
		`[]`,
	} {
		w = do(r, http.MethodPut, "/api/settings/schedule", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "invalid_schedule", decode(t, w)["error_code"], body)
	}
}

func TestStylists(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/stylists", gin.H{"key": "Yolanda", "name": "Yolanda", "position": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/api/stylists", gin.H{"key": "yolanda"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "stylist_exists", decode(t, w)["error_code"])

	w = do(r, http.MethodGet, "/api/stylists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.EqualValues(t, 2, list["total"])
}

func TestReminderRoute(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/cron/reminders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/cron/reminders?key=wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/cron/reminders?key=cron-key", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode(t, w)
	assert.Equal(t, true, report["success"])
	assert.Contains(t, report, "stats")
}

func TestSalonSettings(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, "tester", me["actor"])
	assert.Equal(t, "Europe/Madrid", me["salon"].(map[string]any)["timezone"])

	w = do(r, http.MethodPatch, "/api/settings/salon", gin.H{"timezone": "Nowhere/City"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_timezone", decode(t, w)["error_code"])

	w = do(r, http.MethodPatch, "/api/settings/salon", gin.H{"name": "Peluquería Ana"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Peluquería Ana", decode(t, w)["name"])

	w = do(r, http.MethodGet, "/api/settings/salon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Peluquería Ana", decode(t, w)["name"])
}
