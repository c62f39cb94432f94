package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Stylist{},
		&models.CalendarEvent{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	seed(db, cfg, logger)

	return db
}

// seed makes sure the configured salon exists so the API has a schedule to
// serve on a fresh database.
func seed(db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	salon := models.Salon{ID: cfg.SalonID}
	err := db.
		Where(models.Salon{ID: cfg.SalonID}).
		Attrs(models.Salon{Name: "Salon", Timezone: cfg.SalonTimezone}).
		FirstOrCreate(&salon).Error
	if err != nil {
		logger.Fatal("failed to seed salon", zap.Error(err))
	}
}
