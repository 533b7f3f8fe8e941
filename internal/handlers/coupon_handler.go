package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type CouponHandler struct {
	*BaseHandler
	couponService services.CouponService
}

func NewCouponHandler(base *BaseHandler, couponService services.CouponService) *CouponHandler {
	return &CouponHandler{BaseHandler: base, couponService: couponService}
}

func (h *CouponHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	coupons := rg.Group("/coupons", authRequired)
	{
		coupons.POST("/validate", h.Validate)
	}
}

func (h *CouponHandler) Validate(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ValidateCouponRequest
	if !h.BindJSON(c, &req) {
		return
	}

	quote, err := h.couponService.Validate(c.Request.Context(), user.ID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, quote)
}
