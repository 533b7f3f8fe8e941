package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("/project/:id", h.ProjectReviews)
		reviews.POST("", authRequired, h.Submit)
		reviews.DELETE("/:id", authRequired, h.Delete)
	}
}

func (h *ReviewHandler) ProjectReviews(c *gin.Context) {
	page, limit := h.ParsePagination(c, 20)
	resp, err := h.reviewService.ProjectReviews(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Submit(c.Request.Context(), user, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Message(c, "Review deleted")
}
