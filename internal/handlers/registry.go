package handlers

import (
	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	Project  *ProjectHandler
	Payment  *PaymentHandler
	Coupon   *CouponHandler
	Order    *OrderHandler
	Review   *ReviewHandler
	Wishlist *WishlistHandler
	Admin    *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:     NewAuthHandler(base, sc.AuthService),
		Project:  NewProjectHandler(base, sc.ProjectService, sc.DownloadService),
		Payment:  NewPaymentHandler(base, sc.PaymentService),
		Coupon:   NewCouponHandler(base, sc.CouponService),
		Order:    NewOrderHandler(base, sc.OrderService),
		Review:   NewReviewHandler(base, sc.ReviewService),
		Wishlist: NewWishlistHandler(base, sc.WishlistService),
		Admin:    NewAdminHandler(base, sc.AdminService, sc.CouponService),
	}
}
