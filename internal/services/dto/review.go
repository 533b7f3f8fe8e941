package dto

import (
	"time"

	"inovitaz_backend/internal/models"
)

type SubmitReviewRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
	Pagination    Pagination       `json:"pagination"`
}

func ToReviewResponse(review *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		ProjectID: review.ProjectID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	if review.User.ID != "" {
		resp.UserName = review.User.Name
	}
	return resp
}
