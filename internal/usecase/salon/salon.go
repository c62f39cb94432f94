package salon

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetSalon struct {
	repo domain.Repository
}

func NewGetSalon(repo domain.Repository) *GetSalon {
	return &GetSalon{repo: repo}
}

func (uc *GetSalon) Execute(ctx context.Context, salonID uint) (*models.Salon, error) {
	return uc.repo.GetSalon(ctx, salonID)
}

type UpdateSalonInput struct {
	SalonID  uint
	Actor    string
	Name     *string
	Timezone *string
}

type UpdateSalon struct {
	repo  domain.Repository
	cache domain.DayCache
	audit *audit.Dispatcher
}

func NewUpdateSalon(
	repo domain.Repository,
	cache domain.DayCache,
	audit *audit.Dispatcher,
) *UpdateSalon {
	return &UpdateSalon{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute changes the salon name and/or timezone. Cached day listings are
// dropped because their clock times depend on the timezone.
func (uc *UpdateSalon) Execute(
	ctx context.Context,
	in UpdateSalonInput,
) (*models.Salon, error) {

	var name, tz string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
	}
	if in.Timezone != nil {
		tz = strings.TrimSpace(*in.Timezone)
		if !timezone.IsValid(tz) {
			return nil, httperr.ErrBusiness("invalid_timezone")
		}
	}

	if err := uc.repo.UpdateSalonProfile(ctx, in.SalonID, name, tz); err != nil {
		return nil, err
	}

	if tz != "" {
		uc.cache.Invalidate(ctx, in.SalonID)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Actor:    in.Actor,
		Action:   "salon_updated",
		Entity:   "salon",
		Metadata: map[string]string{"name": name, "timezone": tz},
	})

	return uc.repo.GetSalon(ctx, in.SalonID)
}
