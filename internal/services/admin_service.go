package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type AdminService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectSummary, error)
	UpdateProject(ctx context.Context, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectSummary, error)
	// DeleteProject refuses when paid orders reference the project;
	// unpaid checkout attempts are purged first so the delete can land.
	DeleteProject(ctx context.Context, projectID string) error

	AllOrders(ctx context.Context, page, limit int) (*dto.OrderListResponse, error)
	AllUsers(ctx context.Context, page, limit int) (*dto.AdminUserListResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)
}

type AdminServiceImpl struct {
	projectRepo repositories.ProjectRepository
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
	logRepo     repositories.DownloadLogRepository
}

func NewAdminService(
	projectRepo repositories.ProjectRepository,
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	logRepo repositories.DownloadLogRepository,
) AdminService {
	return &AdminServiceImpl{
		projectRepo: projectRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		logRepo:     logRepo,
	}
}

func (s *AdminServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectSummary, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		ContentURL:  req.ContentURL,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
	}
	if project.Category == "" {
		project.Category = "IoT"
	}
	if req.Features != nil {
		raw, err := json.Marshal(req.Features)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.Features = raw
	}
	if req.TechStack != nil {
		raw, err := json.Marshal(req.TechStack)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.TechStack = raw
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project created", "project_id", project.ID, "title", project.Title)
	resp := dto.ToProjectSummary(project)
	return &resp, nil
}

func (s *AdminServiceImpl) UpdateProject(ctx context.Context, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectSummary, error) {
	patch := &repositories.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		ContentURL:  req.ContentURL,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
	}
	if req.Features != nil {
		raw, err := json.Marshal(req.Features)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		patch.Features = raw
	}
	if req.TechStack != nil {
		raw, err := json.Marshal(req.TechStack)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		patch.TechStack = raw
	}

	if err := s.projectRepo.ApplyPatch(projectID, patch); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project updated", "project_id", projectID)
	resp := dto.ToProjectSummary(project)
	return &resp, nil
}

func (s *AdminServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	paid, err := s.orderRepo.CountPaidByProject(projectID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if paid > 0 {
		return apperrors.NewConflictError("catalog",
			"Cannot delete a project with completed purchases")
	}

	if err := s.orderRepo.DeleteUnpaidByProject(projectID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.projectRepo.Delete(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project deleted", "project_id", projectID)
	return nil
}

func (s *AdminServiceImpl) AllOrders(ctx context.Context, page, limit int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := s.orderRepo.FindAll(page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.ToOrderResponse(&orders[i]))
	}
	return &dto.OrderListResponse{
		Orders:     items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *AdminServiceImpl) AllUsers(ctx context.Context, page, limit int) (*dto.AdminUserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.userRepo.FindAll(page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.AdminUserResponse{
			UserResponse: dto.ToUserResponse(&users[i]),
			OrdersCount:  int64(len(users[i].Orders)),
		})
	}
	return &dto.AdminUserListResponse{
		Users:      items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalProjects, err := s.projectRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalSales, err := s.orderRepo.CountPaid()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalRevenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	monthly, err := s.orderRepo.MonthlyRevenue(sixMonthsAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	monthlyRevenue := make([]dto.MonthRevenue, 0, len(monthly))
	for _, m := range monthly {
		monthlyRevenue = append(monthlyRevenue, dto.MonthRevenue{
			Month:   m.Month.Format("2006-01"),
			Revenue: m.Revenue,
		})
	}
	totalDownloads, err := s.logRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	recent, err := s.orderRepo.RecentPaid(10)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentItems := make([]dto.OrderResponse, 0, len(recent))
	for i := range recent {
		recentItems = append(recentItems, dto.ToOrderResponse(&recent[i]))
	}
	return &dto.DashboardStats{
		TotalUsers:     totalUsers,
		TotalProjects:  totalProjects,
		TotalSales:     totalSales,
		TotalRevenue:   totalRevenue,
		MonthlyRevenue: monthlyRevenue,
		TotalDownloads: totalDownloads,
		RecentOrders:   recentItems,
	}, nil
}
