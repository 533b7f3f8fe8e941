package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	orders := rg.Group("/orders", authRequired)
	{
		orders.GET("/my", h.MyOrders)
		orders.GET("/purchased", h.PurchasedProjects)
		orders.GET("/:id", h.OrderByID)
	}
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var query dto.OrderListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.orderService.MyOrders(c.Request.Context(), user.ID, &query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OrderHandler) PurchasedProjects(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	resp, err := h.orderService.PurchasedProjects(c.Request.Context(), user.ID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OrderHandler) OrderByID(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	resp, err := h.orderService.OrderByID(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
