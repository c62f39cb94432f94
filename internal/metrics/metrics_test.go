package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveAppointment("create", nil)
	m.ObserveAppointment("create", nil)
	m.ObserveAppointment("create", errors.New("boom"))
	m.ObserveReminder("sent")
	m.ObserveRequest("GET", "/api/appointments", "200", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointmentsTotal.WithLabelValues("create", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remindersTotal.WithLabelValues("sent")))
}

func TestBookingMetricsCustomRegistryIsolated(t *testing.T) {
	// two registries can hold the same collectors without panicking
	NewBookingMetrics(prometheus.NewRegistry())
	NewBookingMetrics(prometheus.NewRegistry())
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveAppointment("delete", nil)
	m.ObserveReminder("skipped")
	m.ObserveRequest("PUT", "/api/settings/schedule", "400", 0.1)
}
