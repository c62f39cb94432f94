package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *SalonGormRepository) GetSalon(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	err := r.db.WithContext(ctx).First(&salon, id).Error
	if errors.Is(err, schedule.ErrInvalidSchedule) {
		// stored hours are unreadable: load the rest and flag it
		salon = models.Salon{}
		err = r.db.WithContext(ctx).Omit("OpeningHours").First(&salon, id).Error
		salon.HoursInvalid = err == nil
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, fmt.Errorf("get salon %d: %w", id, err)
	}
	return &salon, nil
}

// SaveOpeningHours replaces the whole stored schedule in one statement.
func (r *SalonGormRepository) SaveOpeningHours(
	ctx context.Context,
	salonID uint,
	hours schedule.Schedule,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Salon{ID: salonID}).
		Select("OpeningHours").
		Updates(models.Salon{OpeningHours: hours})
	if res.Error != nil {
		return fmt.Errorf("save opening hours for salon %d: %w", salonID, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("salon_not_found")
	}
	return nil
}

// UpdateSalonProfile writes name and timezone. Empty values are left as they
// are.
func (r *SalonGormRepository) UpdateSalonProfile(
	ctx context.Context,
	salonID uint,
	name string,
	timezone string,
) error {

	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if timezone != "" {
		updates["timezone"] = timezone
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", salonID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update salon %d: %w", salonID, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("salon_not_found")
	}
	return nil
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

func (r *SalonGormRepository) ListStylists(
	ctx context.Context,
	salonID uint,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = ?", salonID, true).
		Order("position ASC, id ASC").
		Find(&stylists).Error; err != nil {
		return nil, fmt.Errorf("list stylists: %w", err)
	}
	return stylists, nil
}

func (r *SalonGormRepository) GetStylistByKey(
	ctx context.Context,
	salonID uint,
	key string,
) (*models.Stylist, error) {

	var st models.Stylist
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND key = ? AND active = ?", salonID, strings.ToLower(key), true).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("invalid_stylist")
		}
		return nil, fmt.Errorf("get stylist %q: %w", key, err)
	}
	return &st, nil
}

func (r *SalonGormRepository) CreateStylist(
	ctx context.Context,
	st *models.Stylist,
) error {
	st.Key = strings.ToLower(st.Key)
	if err := r.db.WithContext(ctx).Create(st).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("stylist_exists")
		}
		return fmt.Errorf("create stylist: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
