package services

import (
	"time"

	"gorm.io/gorm"

	"inovitaz_backend/internal/config"
	"inovitaz_backend/internal/email"
	"inovitaz_backend/internal/payment"
	"inovitaz_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories once at
// startup.
type ServiceContainer struct {
	AuthService     AuthService
	ProjectService  ProjectService
	CouponService   CouponService
	PaymentService  PaymentService
	DownloadService DownloadService
	OrderService    OrderService
	ReviewService   ReviewService
	WishlistService WishlistService
	AdminService    AdminService
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, gateway payment.Gateway, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	logRepo := repositories.NewDownloadLogRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	couponSvc := NewCouponService(couponRepo, projectRepo)
	tokenTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, cfg.JWT.Secret, tokenTTL),
		ProjectService: NewProjectService(projectRepo, orderRepo),
		CouponService:  couponSvc,
		PaymentService: NewPaymentService(
			orderRepo, projectRepo, couponRepo, couponSvc, gateway, mailer, cfg.Razorpay.KeyID),
		DownloadService: NewDownloadService(
			orderRepo, projectRepo, logRepo, cfg.Downloads.MaxDownloads, cfg.Downloads.ExpiryDays),
		OrderService:    NewOrderService(orderRepo, cfg.Downloads.MaxDownloads),
		ReviewService:   NewReviewService(reviewRepo, orderRepo, projectRepo),
		WishlistService: NewWishlistService(wishlistRepo, projectRepo),
		AdminService:    NewAdminService(projectRepo, orderRepo, userRepo, logRepo),
	}
}
