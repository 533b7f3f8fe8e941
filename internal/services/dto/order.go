package dto

import (
	"time"

	"inovitaz_backend/internal/models"
)

type OrderListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type OrderResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	ProjectTitle    string    `json:"project_title,omitempty"`
	RazorpayOrderID string    `json:"razorpay_order_id"`
	Amount          float64   `json:"amount"`
	OriginalAmount  float64   `json:"original_amount"`
	DiscountAmount  float64   `json:"discount_amount"`
	CouponCode      *string   `json:"coupon_code,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// PurchasedProjectResponse is one row of the user's library: the kit
// plus its download entitlement state.
type PurchasedProjectResponse struct {
	Project            ProjectSummary `json:"project"`
	OrderID            string         `json:"order_id"`
	PurchasedAt        time.Time      `json:"purchased_at"`
	DownloadsUsed      int            `json:"downloads_used"`
	DownloadsRemaining int            `json:"downloads_remaining"`
	DownloadExpiry     *time.Time     `json:"download_expiry,omitempty"`
}

func ToOrderResponse(order *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		ProjectID:       order.ProjectID,
		RazorpayOrderID: order.RazorpayOrderID,
		Amount:          order.Amount,
		OriginalAmount:  order.OriginalAmount,
		DiscountAmount:  order.DiscountAmount,
		CouponCode:      order.CouponCode,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
	if order.Project.ID != "" {
		resp.ProjectTitle = order.Project.Title
	}
	return resp
}
