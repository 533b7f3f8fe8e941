package database

import (
	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

// Migrate creates or updates the schema for every model. Column order
// matters only for readability; gorm resolves foreign keys itself.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Order{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.DownloadLog{},
		&models.Review{},
		&models.Wishlist{},
	)
}
