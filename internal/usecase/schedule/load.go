package schedule

import (
	"go.uber.org/zap"

	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// HoursOf returns the schedule to apply for salon. Nothing stored means the
// default table; unreadable stored hours fall back to it too, with a warning.
func HoursOf(salon *models.Salon, log *zap.Logger) sched.Schedule {
	if salon.HoursInvalid {
		log.Warn("stored opening hours unreadable, using default",
			zap.Uint("salon_id", salon.ID),
		)
		return sched.Default()
	}
	if len(salon.OpeningHours) == 0 {
		return sched.Default()
	}
	return salon.OpeningHours
}
