package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var ErrDownloadLogNotFound = errors.New("download log not found")

type DownloadLogRepository interface {
	FindByOrder(userID, projectID, orderID string) (*models.DownloadLog, error)
	Create(log *models.DownloadLog) error
	IncrementCount(id string) error
	CountAll() (int64, error)
}

type DownloadLogRepositoryImpl struct {
	db *gorm.DB
}

func NewDownloadLogRepository(db *gorm.DB) DownloadLogRepository {
	return &DownloadLogRepositoryImpl{db: db}
}

func (r *DownloadLogRepositoryImpl) FindByOrder(userID, projectID, orderID string) (*models.DownloadLog, error) {
	var log models.DownloadLog
	err := r.db.Where("user_id = ? AND project_id = ? AND order_id = ?", userID, projectID, orderID).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDownloadLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *DownloadLogRepositoryImpl) Create(log *models.DownloadLog) error {
	return r.db.Create(log).Error
}

func (r *DownloadLogRepositoryImpl) IncrementCount(id string) error {
	result := r.db.Model(&models.DownloadLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"download_count":     gorm.Expr("download_count + 1"),
			"last_downloaded_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDownloadLogNotFound
	}
	return nil
}

func (r *DownloadLogRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.DownloadLog{}).Count(&count).Error
	return count, err
}
