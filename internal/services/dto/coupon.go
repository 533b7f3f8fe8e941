package dto

import (
	"time"

	"inovitaz_backend/internal/models"
)

type ValidateCouponRequest struct {
	Code      string `json:"code" binding:"required,max=50"`
	ProjectID string `json:"project_id" binding:"required,uuid"`
}

// CouponQuote is a dry-run result: nothing is reserved until payment
// verification succeeds.
type CouponQuote struct {
	Code           string  `json:"code"`
	Description    string  `json:"description,omitempty"`
	DiscountType   string  `json:"discount_type"`
	OriginalAmount float64 `json:"original_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

type CreateCouponRequest struct {
	Code              string     `json:"code" binding:"required,min=3,max=50,coupon_code"`
	Description       string     `json:"description" binding:"omitempty,max=255"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64    `json:"discount_value" binding:"required,gt=0"`
	MinPurchaseAmount int64      `json:"min_purchase_amount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *int64     `json:"max_discount_amount" binding:"omitempty,gt=0"`
	UsageLimit        *int64     `json:"usage_limit" binding:"omitempty,gt=0"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
}

type CouponResponse struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	Description       string     `json:"description,omitempty"`
	DiscountType      string     `json:"discount_type"`
	DiscountValue     float64    `json:"discount_value"`
	MinPurchaseAmount int64      `json:"min_purchase_amount"`
	MaxDiscountAmount *int64     `json:"max_discount_amount,omitempty"`
	UsageLimit        *int64     `json:"usage_limit,omitempty"`
	UsedCount         int64      `json:"used_count"`
	ValidFrom         time.Time  `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CouponListResponse struct {
	Coupons    []CouponResponse `json:"coupons"`
	Pagination Pagination       `json:"pagination"`
}

func ToCouponResponse(coupon *models.Coupon) CouponResponse {
	return CouponResponse{
		ID:                coupon.ID,
		Code:              coupon.Code,
		Description:       coupon.Description,
		DiscountType:      string(coupon.DiscountType),
		DiscountValue:     coupon.DiscountValue,
		MinPurchaseAmount: coupon.MinPurchaseAmount,
		MaxDiscountAmount: coupon.MaxDiscountAmount,
		UsageLimit:        coupon.UsageLimit,
		UsedCount:         coupon.UsedCount,
		ValidFrom:         coupon.ValidFrom,
		ValidUntil:        coupon.ValidUntil,
		IsActive:          coupon.IsActive,
		CreatedAt:         coupon.CreatedAt,
	}
}
