package db

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.OAuthAccount{},
		&model.Category{},
		&model.Store{},
		&model.Image{},
		&model.Review{},
		&model.Banner{},
		&model.Video{},
		&model.TrackingScript{},
		&model.VisitorCounter{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
