package dto

type CreateOrderRequest struct {
	ProjectID  string `json:"project_id" binding:"required,uuid"`
	CouponCode string `json:"coupon_code" binding:"omitempty,max=50"`
}

// CreateOrderResponse carries everything the frontend checkout widget
// needs. Amount is in paise, as the gateway expects.
type CreateOrderResponse struct {
	OrderID        string  `json:"order_id"`
	Amount         int64   `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"key_id"`
	ProjectTitle   string  `json:"project_title"`
	OriginalAmount float64 `json:"original_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	CouponCode     string  `json:"coupon_code,omitempty"`
	IsMockOrder    bool    `json:"is_mock_order,omitempty"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type VerifyPaymentResponse struct {
	OrderID   string `json:"order_id"`
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
}
