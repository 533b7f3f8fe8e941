package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/metrics"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type DownloadService interface {
	// Grant authorizes one download of a purchased project, consuming
	// one unit of the entitlement. Admins bypass metering entirely.
	Grant(ctx context.Context, user *models.User, projectID string) (*dto.DownloadGrant, error)
	GrantAdmin(ctx context.Context, projectID string) (*dto.AdminDownloadGrant, error)
}

type DownloadServiceImpl struct {
	orderRepo    repositories.OrderRepository
	projectRepo  repositories.ProjectRepository
	logRepo      repositories.DownloadLogRepository
	maxDownloads int
	expiryDays   int
}

func NewDownloadService(
	orderRepo repositories.OrderRepository,
	projectRepo repositories.ProjectRepository,
	logRepo repositories.DownloadLogRepository,
	maxDownloads, expiryDays int,
) DownloadService {
	return &DownloadServiceImpl{
		orderRepo:    orderRepo,
		projectRepo:  projectRepo,
		logRepo:      logRepo,
		maxDownloads: maxDownloads,
		expiryDays:   expiryDays,
	}
}

func (s *DownloadServiceImpl) Grant(ctx context.Context, user *models.User, projectID string) (*dto.DownloadGrant, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	order, err := s.orderRepo.LatestPaidOrder(user.ID, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			metrics.DownloadGrants.WithLabelValues("denied_unpurchased").Inc()
			return nil, apperrors.ErrNotPurchased
		}
		return nil, apperrors.InternalError(err)
	}

	log, err := s.logRepo.FindByOrder(user.ID, projectID, order.ID)
	switch {
	case err == nil:
		// Expiry is checked before the cap so an expired entitlement
		// reports expiry even when the count is also exhausted.
		if time.Now().After(log.ExpiryDate) {
			metrics.DownloadGrants.WithLabelValues("denied_expired").Inc()
			return nil, apperrors.ErrDownloadExpired
		}
		if log.DownloadCount >= log.MaxDownloads {
			metrics.DownloadGrants.WithLabelValues("denied_limit").Inc()
			return nil, apperrors.ErrDownloadLimit(
				fmt.Sprintf("Download limit reached (%d/%d). Contact support for additional downloads.",
					log.DownloadCount, log.MaxDownloads))
		}
		if err := s.logRepo.IncrementCount(log.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		log.DownloadCount++

	case errors.Is(err, repositories.ErrDownloadLogNotFound):
		// First download after purchase: create the entitlement with
		// this download already counted.
		log = &models.DownloadLog{
			UserID:        user.ID,
			ProjectID:     projectID,
			OrderID:       order.ID,
			DownloadCount: 1,
			MaxDownloads:  s.maxDownloads,
			ExpiryDate:    time.Now().AddDate(0, 0, s.expiryDays),
		}
		now := time.Now()
		log.LastDownloadedAt = &now
		if err := s.logRepo.Create(log); err != nil {
			return nil, apperrors.InternalError(err)
		}

	default:
		return nil, apperrors.InternalError(err)
	}

	metrics.DownloadGrants.WithLabelValues("granted").Inc()
	logger.CtxInfo(ctx, "download granted",
		"user_id", user.ID,
		"project_id", projectID,
		"count", log.DownloadCount,
		"max", log.MaxDownloads)

	daysLeft := int(time.Until(log.ExpiryDate).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}
	return &dto.DownloadGrant{
		DownloadURL:        resolveDownloadURL(project),
		FileName:           downloadFileName(project.Title),
		DownloadsUsed:      log.DownloadCount,
		DownloadsRemaining: log.Remaining(),
		ExpiryDate:         log.ExpiryDate,
		DaysUntilExpiry:    daysLeft,
	}, nil
}

func (s *DownloadServiceImpl) GrantAdmin(ctx context.Context, projectID string) (*dto.AdminDownloadGrant, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin download", "project_id", projectID)
	return &dto.AdminDownloadGrant{
		DownloadURL: resolveDownloadURL(project),
		FileName:    downloadFileName(project.Title),
	}, nil
}

// resolveDownloadURL prefers the link embedded in structured content and
// falls back to the project-level content URL for legacy rows.
func resolveDownloadURL(project *models.Project) string {
	content := models.ParseProjectContent(project.Description)
	if content.Format == models.ContentFormatStructured && content.DownloadURL != "" {
		return content.DownloadURL
	}
	return project.ContentURL
}

func downloadFileName(title string) string {
	return strings.ReplaceAll(title, " ", "_") + ".zip"
}
