package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter is the dynamic WHERE surface of the catalog listing.
type ProjectFilter struct {
	Search     string
	Category   string
	Difficulty string
	MaxPrice   float64
	Technology string
	Sort       string
	Page       int
	PageSize   int
}

// ProjectPatch lists the only fields an admin update may change.
// Nil means "leave untouched"; the patch is applied in one UPDATE.
type ProjectPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Thumbnail   *string
	ContentURL  *string
	Category    *string
	Difficulty  *string
	Features    []byte // JSON-encoded list, nil to skip
	TechStack   []byte
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProjectRepository interface {
	FindByID(id string) (*models.Project, error)
	FindWithFilter(filter ProjectFilter) ([]models.Project, int64, error)
	CategoryCounts() ([]CategoryCount, error)

	Create(project *models.Project) error
	ApplyPatch(id string, patch *ProjectPatch) error
	Delete(id string) error
	CountAll() (int64, error)
	UpdateRatingStats(projectID string, average float64, count int64) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindWithFilter(filter ProjectFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Technology != "" {
		pattern := "%" + filter.Technology + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "oldest":
		query = query.Order("created_at ASC")
	case "popular":
		query = query.Order("reviews_count DESC, average_rating DESC")
	case "rating":
		query = query.Order("average_rating DESC, reviews_count DESC")
	default: // newest
		query = query.Order("created_at DESC")
	}

	offset := (filter.Page - 1) * filter.PageSize
	var projects []models.Project
	err := query.Limit(filter.PageSize).Offset(offset).Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepositoryImpl) CategoryCounts() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&models.Project{}).
		Select("category, COUNT(*) as count").
		Where("category IS NOT NULL AND category != ''").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) ApplyPatch(id string, patch *ProjectPatch) error {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Thumbnail != nil {
		updates["thumbnail"] = *patch.Thumbnail
	}
	if patch.ContentURL != nil {
		updates["content_url"] = *patch.ContentURL
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.Features != nil {
		updates["features"] = patch.Features
	}
	if patch.TechStack != nil {
		updates["tech_stack"] = patch.TechStack
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

func (r *ProjectRepositoryImpl) UpdateRatingStats(projectID string, average float64, count int64) error {
	return r.db.Model(&models.Project{}).Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"average_rating": average,
			"reviews_count":  count,
		}).Error
}
