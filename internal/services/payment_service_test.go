package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "u1"},
		Email:     "buyer@example.com",
		Name:      "Buyer",
		Role:      models.UserRoleUser,
	}
}

func kitProject() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: "p1"},
		Title:     "Smart Irrigation Kit",
		Price:     499,
	}
}

func newPaymentService(
	orderRepo *stubOrderRepo,
	projectRepo *stubProjectRepo,
	couponRepo *stubCouponRepo,
	gateway *stubGateway,
) (PaymentService, *stubMailer) {
	mailer := &stubMailer{}
	couponSvc := NewCouponService(couponRepo, projectRepo)
	svc := NewPaymentService(orderRepo, projectRepo, couponRepo, couponSvc, gateway, mailer, "rzp_test_key")
	return svc, mailer
}

func TestCreateOrder_PricesFromCatalog(t *testing.T) {
	var persisted *models.Order
	orderRepo := &stubOrderRepo{
		create: func(order *models.Order) error {
			persisted = order
			return nil
		},
	}
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	gateway := &stubGateway{orderID: "order_gw_1"}
	svc, _ := newPaymentService(orderRepo, projectRepo, &stubCouponRepo{}, gateway)

	resp, err := svc.CreateOrder(context.Background(), testUser(), &dto.CreateOrderRequest{ProjectID: "p1"})

	assert.NoError(t, err)
	assert.Equal(t, "order_gw_1", resp.OrderID)
	assert.Equal(t, int64(49900), resp.Amount, "paise sent to the gateway")
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.Equal(t, 499.0, resp.FinalAmount)

	// A pending local order is persisted before the client pays.
	assert.NotNil(t, persisted)
	assert.Equal(t, models.OrderStatusPending, persisted.Status)
	assert.Equal(t, "order_gw_1", persisted.RazorpayOrderID)
	assert.Nil(t, persisted.CouponCode)
}

func TestCreateOrder_WithCoupon(t *testing.T) {
	coupon := activeCoupon("SAVE50")
	coupon.DiscountValue = 50

	var persisted *models.Order
	orderRepo := &stubOrderRepo{
		create: func(order *models.Order) error { persisted = order; return nil },
	}
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	couponRepo := &stubCouponRepo{
		findActiveByCode: func(string) (*models.Coupon, error) { return coupon, nil },
	}
	gateway := &stubGateway{}
	svc, _ := newPaymentService(orderRepo, projectRepo, couponRepo, gateway)

	resp, err := svc.CreateOrder(context.Background(), testUser(), &dto.CreateOrderRequest{
		ProjectID:  "p1",
		CouponCode: "SAVE50",
	})

	assert.NoError(t, err)
	assert.Equal(t, 499.0, resp.OriginalAmount)
	assert.Equal(t, 50.0, resp.DiscountAmount)
	assert.Equal(t, 449.0, resp.FinalAmount)
	assert.Equal(t, int64(44900), resp.Amount)
	assert.Equal(t, "SAVE50", resp.CouponCode)

	assert.NotNil(t, persisted.CouponCode)
	assert.Equal(t, "SAVE50", *persisted.CouponCode)
	assert.Equal(t, int64(44900), gateway.created[0].AmountPaise)
}

func TestCreateOrder_InvalidCouponAbortsCheckout(t *testing.T) {
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	svc, _ := newPaymentService(&stubOrderRepo{}, projectRepo, &stubCouponRepo{}, &stubGateway{})

	_, err := svc.CreateOrder(context.Background(), testUser(), &dto.CreateOrderRequest{
		ProjectID:  "p1",
		CouponCode: "NOPE",
	})
	assert.ErrorIs(t, err, apperrors.ErrCouponNotFound)
}

func TestCreateOrder_UnknownProject(t *testing.T) {
	svc, _ := newPaymentService(&stubOrderRepo{}, &stubProjectRepo{}, &stubCouponRepo{}, &stubGateway{})

	_, err := svc.CreateOrder(context.Background(), testUser(), &dto.CreateOrderRequest{ProjectID: "missing"})

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func pendingOrder() *models.Order {
	return &models.Order{
		BaseModel:       models.BaseModel{ID: "o1"},
		UserID:          "u1",
		ProjectID:       "p1",
		RazorpayOrderID: "order_gw_1",
		Amount:          499,
		OriginalAmount:  499,
		Status:          models.OrderStatusPending,
	}
}

func TestVerifyPayment_Success(t *testing.T) {
	order := pendingOrder()
	var markedPaid bool
	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(id string) (*models.Order, error) {
			assert.Equal(t, "order_gw_1", id)
			return order, nil
		},
		markPaid: func(orderID, paymentID string, coupon *models.Coupon, discountPaise int64) error {
			markedPaid = true
			assert.Equal(t, "o1", orderID)
			assert.Equal(t, "pay_1", paymentID)
			assert.Nil(t, coupon)
			return nil
		},
	}
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	svc, _ := newPaymentService(orderRepo, projectRepo, &stubCouponRepo{}, &stubGateway{verifyResult: true})

	resp, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})

	assert.NoError(t, err)
	assert.True(t, markedPaid)
	assert.Equal(t, "o1", resp.OrderID)
	assert.Equal(t, "paid", resp.Status)

	// Confirmation email runs async.
	time.Sleep(50 * time.Millisecond)
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	order := pendingOrder()
	var markedFailed bool
	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(string) (*models.Order, error) { return order, nil },
		markFailed: func(orderID string) error {
			markedFailed = true
			return nil
		},
	}
	svc, _ := newPaymentService(orderRepo, &stubProjectRepo{}, &stubCouponRepo{}, &stubGateway{verifyResult: false})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "forged",
	})

	assert.ErrorIs(t, err, apperrors.ErrSignatureMismatch)
	assert.True(t, markedFailed, "order flipped to failed")
}

func TestVerifyPayment_UnknownOrder(t *testing.T) {
	svc, _ := newPaymentService(&stubOrderRepo{}, &stubProjectRepo{}, &stubCouponRepo{}, &stubGateway{verifyResult: true})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_missing",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestVerifyPayment_AlreadyPaidConflict(t *testing.T) {
	order := pendingOrder()
	order.Status = models.OrderStatusPaid
	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(string) (*models.Order, error) { return order, nil },
	}
	svc, _ := newPaymentService(orderRepo, &stubProjectRepo{}, &stubCouponRepo{}, &stubGateway{verifyResult: true})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})

	assert.ErrorIs(t, err, apperrors.ErrOrderAlreadyPaid)
}

func TestVerifyPayment_OtherUsersOrderHidden(t *testing.T) {
	order := pendingOrder()
	order.UserID = "someone-else"
	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(string) (*models.Order, error) { return order, nil },
	}
	svc, _ := newPaymentService(orderRepo, &stubProjectRepo{}, &stubCouponRepo{}, &stubGateway{verifyResult: true})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestVerifyPayment_RaceLostMapsToConflict(t *testing.T) {
	order := pendingOrder()
	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(string) (*models.Order, error) { return order, nil },
		markPaid: func(string, string, *models.Coupon, int64) error {
			return repositories.ErrOrderNotPending
		},
	}
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	svc, _ := newPaymentService(orderRepo, projectRepo, &stubCouponRepo{}, &stubGateway{verifyResult: true})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})

	assert.ErrorIs(t, err, apperrors.ErrOrderAlreadyPaid)
}

func TestVerifyPayment_CouponRedeemedAtomically(t *testing.T) {
	coupon := activeCoupon("SAVE50")
	coupon.DiscountValue = 50

	order := pendingOrder()
	code := "SAVE50"
	order.CouponCode = &code
	order.Amount = 449
	order.DiscountAmount = 50

	orderRepo := &stubOrderRepo{
		findByGatewayOrderID: func(string) (*models.Order, error) { return order, nil },
		markPaid: func(orderID, paymentID string, c *models.Coupon, discountPaise int64) error {
			assert.NotNil(t, c)
			assert.Equal(t, "SAVE50", c.Code)
			assert.Equal(t, int64(5000), discountPaise)
			return nil
		},
	}
	projectRepo := &stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return kitProject(), nil },
	}
	couponRepo := &stubCouponRepo{
		findByCode: func(string) (*models.Coupon, error) { return coupon, nil },
	}
	svc, _ := newPaymentService(orderRepo, projectRepo, couponRepo, &stubGateway{verifyResult: true})

	_, err := svc.VerifyPayment(context.Background(), testUser(), &dto.VerifyPaymentRequest{
		RazorpayOrderID:   "order_gw_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	})
	assert.NoError(t, err)
}
