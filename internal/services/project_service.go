package services

import (
	"context"
	"errors"

	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type ProjectService interface {
	List(ctx context.Context, query *dto.ProjectListQuery) (*dto.ProjectListResponse, error)
	// Detail parses the stored content once and reports whether the
	// requesting user (if any) already owns the project. Admins always
	// count as owners.
	Detail(ctx context.Context, projectID string, user *models.User) (*dto.ProjectDetail, error)
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	orderRepo   repositories.OrderRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, orderRepo repositories.OrderRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, orderRepo: orderRepo}
}

func (s *ProjectServiceImpl) List(ctx context.Context, query *dto.ProjectListQuery) (*dto.ProjectListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 12
	}

	projects, total, err := s.projectRepo.FindWithFilter(repositories.ProjectFilter{
		Search:     query.Search,
		Category:   query.Category,
		Difficulty: query.Difficulty,
		MaxPrice:   query.MaxPrice,
		Technology: query.Technology,
		Sort:       query.Sort,
		Page:       page,
		PageSize:   limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, dto.ToProjectSummary(&projects[i]))
	}
	return &dto.ProjectListResponse{
		Projects:   summaries,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *ProjectServiceImpl) Detail(ctx context.Context, projectID string, user *models.User) (*dto.ProjectDetail, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	isPurchased := false
	if user != nil {
		if user.IsAdmin() {
			isPurchased = true
		} else {
			isPurchased, err = s.orderRepo.HasPaidOrder(user.ID, projectID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	}

	content := models.ParseProjectContent(project.Description)
	detail := dto.ToProjectDetail(project, content, isPurchased)
	return &detail, nil
}

func (s *ProjectServiceImpl) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	counts, err := s.projectRepo.CategoryCounts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	categories := make([]dto.CategoryResponse, 0, len(counts))
	for _, c := range counts {
		categories = append(categories, dto.CategoryResponse{Category: c.Category, Count: c.Count})
	}
	return categories, nil
}
