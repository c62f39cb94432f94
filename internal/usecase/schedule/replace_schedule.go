package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ReplaceSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReplaceSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ReplaceSchedule {
	return &ReplaceSchedule{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// Execute swaps the salon's opening hours for hours as a whole.
func (uc *ReplaceSchedule) Execute(
	ctx context.Context,
	salonID uint,
	actor string,
	hours sched.Schedule,
) (sched.Schedule, error) {

	if err := hours.Validate(); err != nil {
		uc.log.Info("schedule rejected", zap.Uint("salon_id", salonID), zap.Error(err))
		return nil, httperr.ErrBusiness("invalid_schedule")
	}
	normalized := hours.Normalize()

	if normalized.OpensOn(time.Sunday) {
		uc.log.Warn("schedule opens on sunday; week view shows monday to saturday only",
			zap.Uint("salon_id", salonID),
		)
	}

	if err := uc.repo.SaveOpeningHours(ctx, salonID, normalized); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Actor:    actor,
		Action:   "schedule_updated",
		Entity:   "salon",
		Metadata: normalized,
	})

	return normalized, nil
}
