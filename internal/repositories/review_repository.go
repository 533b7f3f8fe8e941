package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type RatingStats struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	FindByID(id string) (*models.Review, error)
	FindByProject(projectID string, page, pageSize int) ([]models.Review, int64, error)
	FindByUserAndProject(userID, projectID string) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	DeleteByIDForUser(id, userID string) error
	Stats(projectID string) (*RatingStats, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByProject(projectID string, page, pageSize int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) FindByUserAndProject(userID, projectID string) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	return r.db.Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":  review.Rating,
			"comment": review.Comment,
		}).Error
}

func (r *ReviewRepositoryImpl) DeleteByIDForUser(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Stats(projectID string) (*RatingStats, error) {
	var stats RatingStats
	err := r.db.Model(&models.Review{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
