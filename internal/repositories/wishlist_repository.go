package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var (
	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")
	ErrWishlistEntryExists   = errors.New("project already in wishlist")
)

type WishlistRepository interface {
	FindByUser(userID string) ([]models.Wishlist, error)
	Exists(userID, projectID string) (bool, error)
	Create(entry *models.Wishlist) error
	Delete(userID, projectID string) error
}

type WishlistRepositoryImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &WishlistRepositoryImpl{db: db}
}

func (r *WishlistRepositoryImpl) FindByUser(userID string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *WishlistRepositoryImpl) Exists(userID, projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Wishlist{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *WishlistRepositoryImpl) Create(entry *models.Wishlist) error {
	err := r.db.Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrWishlistEntryExists
		}
		return err
	}
	return nil
}

func (r *WishlistRepositoryImpl) Delete(userID, projectID string) error {
	result := r.db.Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&models.Wishlist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishlistEntryNotFound
	}
	return nil
}
