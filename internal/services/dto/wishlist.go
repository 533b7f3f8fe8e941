package dto

import (
	"time"

	"inovitaz_backend/internal/models"
)

type AddToWishlistRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
}

type WishlistEntryResponse struct {
	ID      string         `json:"id"`
	Project ProjectSummary `json:"project"`
	AddedAt time.Time      `json:"added_at"`
}

func ToWishlistEntryResponse(entry *models.Wishlist) WishlistEntryResponse {
	return WishlistEntryResponse{
		ID:      entry.ID,
		Project: ToProjectSummary(&entry.Project),
		AddedAt: entry.CreatedAt,
	}
}
