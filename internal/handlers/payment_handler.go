package handlers

import (
	"github.com/gin-gonic/gin"

	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	pay := rg.Group("/payment", authRequired)
	{
		pay.POST("/create-order", h.CreateOrder)
		pay.POST("/verify-payment", h.VerifyPayment)
	}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateOrder(c.Request.Context(), user, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), user, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.MessageWithData(c, "Payment verified successfully", resp)
}
