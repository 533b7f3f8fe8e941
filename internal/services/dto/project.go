package dto

import (
	"encoding/json"
	"time"

	"inovitaz_backend/internal/models"
)

type ProjectListQuery struct {
	Search     string  `form:"search"`
	Category   string  `form:"category"`
	Difficulty string  `form:"difficulty"`
	MaxPrice   float64 `form:"max_price"`
	Technology string  `form:"technology"`
	Sort       string  `form:"sort" binding:"omitempty,oneof=newest oldest price_asc price_desc popular rating"`
	Page       int     `form:"page"`
	Limit      int     `form:"limit"`
}

// ProjectSummary is the catalog card: no content, no download link.
type ProjectSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Price         float64   `json:"price"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty,omitempty"`
	Features      []string  `json:"features,omitempty"`
	TechStack     []string  `json:"tech_stack,omitempty"`
	AverageRating float64   `json:"average_rating"`
	ReviewsCount  int64     `json:"reviews_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectContentResponse never carries the download link; that is only
// handed out through the metered download endpoint.
type ProjectContentResponse struct {
	Format     string `json:"format"`
	Overview   string `json:"overview,omitempty"`
	Components string `json:"components,omitempty"`
	Circuit    string `json:"circuit,omitempty"`
	Steps      string `json:"steps,omitempty"`
}

type ProjectDetail struct {
	ProjectSummary
	Content     ProjectContentResponse `json:"content"`
	IsPurchased bool                   `json:"is_purchased"`
}

type ProjectListResponse struct {
	Projects   []ProjectSummary `json:"projects"`
	Pagination Pagination       `json:"pagination"`
}

type CategoryResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func ToProjectSummary(project *models.Project) ProjectSummary {
	return ProjectSummary{
		ID:            project.ID,
		Title:         project.Title,
		Price:         project.Price,
		Thumbnail:     project.Thumbnail,
		Category:      project.Category,
		Difficulty:    project.Difficulty,
		Features:      decodeStringList(project.Features),
		TechStack:     decodeStringList(project.TechStack),
		AverageRating: project.AverageRating,
		ReviewsCount:  project.ReviewsCount,
		CreatedAt:     project.CreatedAt,
	}
}

func ToProjectDetail(project *models.Project, content *models.ProjectContent, isPurchased bool) ProjectDetail {
	return ProjectDetail{
		ProjectSummary: ToProjectSummary(project),
		Content: ProjectContentResponse{
			Format:     string(content.Format),
			Overview:   content.Overview,
			Components: content.Components,
			Circuit:    content.Circuit,
			Steps:      content.Steps,
		},
		IsPurchased: isPurchased,
	}
}
