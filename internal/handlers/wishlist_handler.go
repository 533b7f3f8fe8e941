package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type WishlistHandler struct {
	*BaseHandler
	wishlistService services.WishlistService
}

func NewWishlistHandler(base *BaseHandler, wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{BaseHandler: base, wishlistService: wishlistService}
}

func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	wishlist := rg.Group("/wishlist", authRequired)
	{
		wishlist.GET("", h.List)
		wishlist.POST("", h.Add)
		wishlist.DELETE("/:projectId", h.Remove)
	}
}

func (h *WishlistHandler) List(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	resp, err := h.wishlistService.List(c.Request.Context(), user.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.AddToWishlistRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.wishlistService.Add(c.Request.Context(), user.ID, req.ProjectID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(c.Request.Context(), user.ID, c.Param("projectId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Message(c, "Removed from wishlist")
}
