package services

import (
	"context"
	"errors"

	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type WishlistService interface {
	List(ctx context.Context, userID string) ([]dto.WishlistEntryResponse, error)
	Add(ctx context.Context, userID, projectID string) (*dto.WishlistEntryResponse, error)
	Remove(ctx context.Context, userID, projectID string) error
}

type WishlistServiceImpl struct {
	wishlistRepo repositories.WishlistRepository
	projectRepo  repositories.ProjectRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository, projectRepo repositories.ProjectRepository) WishlistService {
	return &WishlistServiceImpl{wishlistRepo: wishlistRepo, projectRepo: projectRepo}
}

func (s *WishlistServiceImpl) List(ctx context.Context, userID string) ([]dto.WishlistEntryResponse, error) {
	entries, err := s.wishlistRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.WishlistEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.ToWishlistEntryResponse(&entries[i]))
	}
	return items, nil
}

func (s *WishlistServiceImpl) Add(ctx context.Context, userID, projectID string) (*dto.WishlistEntryResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	entry := &models.Wishlist{UserID: userID, ProjectID: projectID}
	if err := s.wishlistRepo.Create(entry); err != nil {
		if errors.Is(err, repositories.ErrWishlistEntryExists) {
			return nil, apperrors.NewConflictError("wishlist", "Project is already in your wishlist")
		}
		return nil, apperrors.InternalError(err)
	}

	entry.Project = *project
	resp := dto.ToWishlistEntryResponse(entry)
	return &resp, nil
}

func (s *WishlistServiceImpl) Remove(ctx context.Context, userID, projectID string) error {
	if err := s.wishlistRepo.Delete(userID, projectID); err != nil {
		if errors.Is(err, repositories.ErrWishlistEntryNotFound) {
			return apperrors.NewNotFoundError("Project is not in your wishlist")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
