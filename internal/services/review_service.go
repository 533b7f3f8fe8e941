package services

import (
	"context"
	"errors"

	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type ReviewService interface {
	ProjectReviews(ctx context.Context, projectID string, page, limit int) (*dto.ProjectReviewsResponse, error)
	// Submit upserts: one review per (user, project), later submissions
	// replace the earlier rating and comment.
	Submit(ctx context.Context, user *models.User, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userID, reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	orderRepo   repositories.OrderRepository
	projectRepo repositories.ProjectRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	orderRepo repositories.OrderRepository,
	projectRepo repositories.ProjectRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
	}
}

func (s *ReviewServiceImpl) ProjectReviews(ctx context.Context, projectID string, page, limit int) (*dto.ProjectReviewsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reviews, total, err := s.reviewRepo.FindByProject(projectID, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.reviewRepo.Stats(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, dto.ToReviewResponse(&reviews[i]))
	}
	return &dto.ProjectReviewsResponse{
		Reviews:       items,
		AverageRating: stats.Average,
		TotalReviews:  stats.Count,
		Pagination:    dto.NewPagination(page, limit, total),
	}, nil
}

func (s *ReviewServiceImpl) Submit(ctx context.Context, user *models.User, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	order, err := s.orderRepo.LatestPaidOrder(user.ID, req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrReviewRequiresPurchase
		}
		return nil, apperrors.InternalError(err)
	}

	review, err := s.reviewRepo.FindByUserAndProject(user.ID, req.ProjectID)
	switch {
	case err == nil:
		review.Rating = req.Rating
		review.Comment = req.Comment
		if err := s.reviewRepo.Update(review); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrReviewNotFound):
		review = &models.Review{
			ProjectID: req.ProjectID,
			UserID:    user.ID,
			OrderID:   order.ID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := s.reviewRepo.Create(review); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	if err := s.refreshRatingStats(req.ProjectID); err != nil {
		logger.CtxError(ctx, "rating stats refresh failed", "project_id", req.ProjectID, "error", err)
	}

	logger.CtxInfo(ctx, "review submitted", "project_id", req.ProjectID, "user_id", user.ID, "rating", req.Rating)
	review.User = *user
	resp := dto.ToReviewResponse(review)
	return &resp, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError("Review not found")
		}
		return apperrors.InternalError(err)
	}
	if review.UserID != userID {
		return apperrors.NewNotFoundError("Review not found")
	}

	if err := s.reviewRepo.DeleteByIDForUser(reviewID, userID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError("Review not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.refreshRatingStats(review.ProjectID); err != nil {
		logger.CtxError(ctx, "rating stats refresh failed", "project_id", review.ProjectID, "error", err)
	}
	return nil
}

// refreshRatingStats recomputes the denormalized average and count on
// the project row from the reviews table.
func (s *ReviewServiceImpl) refreshRatingStats(projectID string) error {
	stats, err := s.reviewRepo.Stats(projectID)
	if err != nil {
		return err
	}
	return s.projectRepo.UpdateRatingStats(projectID, stats.Average, stats.Count)
}
