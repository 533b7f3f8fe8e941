package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"inovitaz_backend/internal/email"
	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/metrics"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/payment"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type PaymentService interface {
	// CreateOrder prices the checkout server-side, creates a gateway
	// order and persists a pending local order in one pass.
	CreateOrder(ctx context.Context, user *models.User, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)

	// VerifyPayment checks the callback signature and finalizes the
	// order: paid on a valid signature, failed otherwise.
	VerifyPayment(ctx context.Context, user *models.User, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
}

type PaymentServiceImpl struct {
	orderRepo   repositories.OrderRepository
	projectRepo repositories.ProjectRepository
	couponRepo  repositories.CouponRepository
	couponSvc   CouponService
	gateway     payment.Gateway
	mailer      email.Provider
	keyID       string
}

func NewPaymentService(
	orderRepo repositories.OrderRepository,
	projectRepo repositories.ProjectRepository,
	couponRepo repositories.CouponRepository,
	couponSvc CouponService,
	gateway payment.Gateway,
	mailer email.Provider,
	keyID string,
) PaymentService {
	return &PaymentServiceImpl{
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
		couponRepo:  couponRepo,
		couponSvc:   couponSvc,
		gateway:     gateway,
		mailer:      mailer,
		keyID:       keyID,
	}
}

func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, user *models.User, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// The price is always re-read from the catalog; the client never
	// supplies an amount.
	originalAmount := project.Price
	finalAmount := originalAmount
	var discount float64
	var coupon *models.Coupon
	if req.CouponCode != "" {
		coupon, discount, err = s.couponSvc.Quote(ctx, user.ID, req.CouponCode, originalAmount)
		if err != nil {
			return nil, err
		}
		finalAmount = math.Round((originalAmount-discount)*100) / 100
	}

	amountPaise := int64(math.Round(finalAmount * 100))
	receipt := fmt.Sprintf("order_%s_%d", project.ID, time.Now().Unix())

	gatewayOrder, err := s.gateway.CreateOrder(ctx, payment.CreateOrderInput{
		AmountPaise: amountPaise,
		Currency:    "INR",
		Receipt:     receipt,
		Notes: map[string]string{
			"project_id": project.ID,
			"user_id":    user.ID,
		},
	})
	if err != nil {
		return nil, apperrors.ErrGatewayFailure(err)
	}

	order := &models.Order{
		UserID:          user.ID,
		ProjectID:       project.ID,
		RazorpayOrderID: gatewayOrder.ID,
		Amount:          finalAmount,
		OriginalAmount:  originalAmount,
		DiscountAmount:  discount,
		Status:          models.OrderStatusPending,
	}
	if coupon != nil {
		code := coupon.Code
		order.CouponCode = &code
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "checkout order created",
		"order_id", order.ID,
		"gateway_order_id", gatewayOrder.ID,
		"amount_paise", amountPaise,
		"mock", s.gateway.IsMock())

	resp := &dto.CreateOrderResponse{
		OrderID:        gatewayOrder.ID,
		Amount:         amountPaise,
		Currency:       gatewayOrder.Currency,
		KeyID:          s.keyID,
		ProjectTitle:   project.Title,
		OriginalAmount: originalAmount,
		DiscountAmount: discount,
		FinalAmount:    finalAmount,
		IsMockOrder:    s.gateway.IsMock(),
	}
	if coupon != nil {
		resp.CouponCode = coupon.Code
	}
	return resp, nil
}

func (s *PaymentServiceImpl) VerifyPayment(ctx context.Context, user *models.User, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	order, err := s.orderRepo.FindByGatewayOrderID(req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if order.UserID != user.ID {
		return nil, apperrors.ErrOrderNotFound(errors.New("order belongs to another user"))
	}

	if order.Status == models.OrderStatusPaid {
		metrics.PaymentVerifications.WithLabelValues("conflict").Inc()
		return nil, apperrors.ErrOrderAlreadyPaid
	}

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		if err := s.orderRepo.MarkFailed(order.ID); err != nil && !errors.Is(err, repositories.ErrOrderNotPending) {
			logger.CtxError(ctx, "failed to mark order failed", "order_id", order.ID, "error", err)
		}
		metrics.PaymentVerifications.WithLabelValues("failed").Inc()
		logger.CtxWarn(ctx, "payment signature mismatch", "order_id", order.ID)
		return nil, apperrors.ErrSignatureMismatch
	}

	var coupon *models.Coupon
	var discountPaise int64
	if order.CouponCode != nil {
		coupon, err = s.lookupCoupon(*order.CouponCode)
		if err != nil {
			return nil, err
		}
		discountPaise = int64(math.Round(order.DiscountAmount * 100))
	}

	if err := s.orderRepo.MarkPaid(order.ID, req.RazorpayPaymentID, coupon, discountPaise); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotPending):
			metrics.PaymentVerifications.WithLabelValues("conflict").Inc()
			return nil, apperrors.ErrOrderAlreadyPaid
		case errors.Is(err, repositories.ErrCouponExhausted):
			return nil, apperrors.ErrCouponUsageLimit
		case errors.Is(err, repositories.ErrCouponUsageExists):
			return nil, apperrors.ErrCouponAlreadyUsed
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	metrics.PaymentVerifications.WithLabelValues("paid").Inc()
	if coupon != nil {
		metrics.CouponRedemptions.Inc()
	}
	logger.CtxInfo(ctx, "payment verified", "order_id", order.ID, "payment_id", req.RazorpayPaymentID)

	go s.sendConfirmation(user, order)

	return &dto.VerifyPaymentResponse{
		OrderID:   order.ID,
		ProjectID: order.ProjectID,
		Status:    string(models.OrderStatusPaid),
	}, nil
}

func (s *PaymentServiceImpl) lookupCoupon(code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrCouponNotFound) {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return coupon, nil
}

// sendConfirmation runs out of band; an email failure never fails the
// verification response.
func (s *PaymentServiceImpl) sendConfirmation(user *models.User, order *models.Order) {
	project, err := s.projectRepo.FindByID(order.ProjectID)
	if err != nil {
		logger.Error("confirmation email skipped", "order_id", order.ID, "error", err)
		return
	}

	err = s.mailer.SendOrderConfirmation(user.Email, user.Name, email.OrderConfirmation{
		ProjectTitle: project.Title,
		Amount:       order.Amount,
		OrderID:      order.ID,
		PurchasedAt:  time.Now(),
	})
	if err != nil {
		logger.Error("confirmation email failed", "order_id", order.ID, "error", err)
	}
}
