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

func int64Ptr(v int64) *int64 { return &v }

func activeCoupon(code string) *models.Coupon {
	return &models.Coupon{
		BaseModel:    models.BaseModel{ID: "c-" + code},
		Code:         code,
		DiscountType: models.DiscountTypeFixed,
		ValidFrom:    time.Now().Add(-time.Hour),
		IsActive:     true,
	}
}

func TestComputeDiscount_FixedAmount(t *testing.T) {
	coupon := activeCoupon("SAVE50")
	coupon.DiscountValue = 50

	assert.Equal(t, 50.0, ComputeDiscount(coupon, 499))
}

func TestComputeDiscount_FixedNeverExceedsAmount(t *testing.T) {
	coupon := activeCoupon("SAVE50")
	coupon.DiscountValue = 50

	assert.Equal(t, 30.0, ComputeDiscount(coupon, 30))
}

func TestComputeDiscount_PercentageClampedToMax(t *testing.T) {
	coupon := activeCoupon("FIRST20")
	coupon.DiscountType = models.DiscountTypePercentage
	coupon.DiscountValue = 20
	coupon.MaxDiscountAmount = int64Ptr(4000) // ₹40 in paise

	// 20% of 499 is 99.80, clamped to 40.
	assert.Equal(t, 40.0, ComputeDiscount(coupon, 499))
}

func TestComputeDiscount_PercentageWithoutCap(t *testing.T) {
	coupon := activeCoupon("TEN")
	coupon.DiscountType = models.DiscountTypePercentage
	coupon.DiscountValue = 10

	assert.Equal(t, 49.9, ComputeDiscount(coupon, 499))
}

func TestQuote_RuleOrdering(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		svc := NewCouponService(&stubCouponRepo{}, &stubProjectRepo{})
		_, _, err := svc.Quote(ctx, "u1", "NOPE", 499)
		assert.ErrorIs(t, err, apperrors.ErrCouponNotFound)
	})

	t.Run("usage cap beats min purchase", func(t *testing.T) {
		coupon := activeCoupon("CAPPED")
		coupon.DiscountValue = 10
		coupon.UsageLimit = int64Ptr(5)
		coupon.UsedCount = 5
		coupon.MinPurchaseAmount = 100000 // also unmet, cap must win

		svc := NewCouponService(&stubCouponRepo{
			findActiveByCode: func(string) (*models.Coupon, error) { return coupon, nil },
		}, &stubProjectRepo{})

		_, _, err := svc.Quote(ctx, "u1", "CAPPED", 499)
		assert.ErrorIs(t, err, apperrors.ErrCouponUsageLimit)
	})

	t.Run("min purchase beats per-user usage", func(t *testing.T) {
		coupon := activeCoupon("MIN500")
		coupon.DiscountValue = 10
		coupon.MinPurchaseAmount = 50000 // ₹500

		svc := NewCouponService(&stubCouponRepo{
			findActiveByCode: func(string) (*models.Coupon, error) { return coupon, nil },
			hasUserUsed:      func(string, string) (bool, error) { return true, nil },
		}, &stubProjectRepo{})

		_, _, err := svc.Quote(ctx, "u1", "MIN500", 499)
		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Contains(t, appErr.Message, "Minimum purchase")
	})

	t.Run("per-user usage checked last", func(t *testing.T) {
		coupon := activeCoupon("ONCE")
		coupon.DiscountValue = 10

		svc := NewCouponService(&stubCouponRepo{
			findActiveByCode: func(string) (*models.Coupon, error) { return coupon, nil },
			hasUserUsed:      func(string, string) (bool, error) { return true, nil },
		}, &stubProjectRepo{})

		_, _, err := svc.Quote(ctx, "u1", "ONCE", 499)
		assert.ErrorIs(t, err, apperrors.ErrCouponAlreadyUsed)
	})
}

func TestQuote_MinPurchaseBoundary(t *testing.T) {
	coupon := activeCoupon("MIN499")
	coupon.DiscountValue = 50
	coupon.MinPurchaseAmount = 49900 // exactly ₹499

	svc := NewCouponService(&stubCouponRepo{
		findActiveByCode: func(string) (*models.Coupon, error) { return coupon, nil },
	}, &stubProjectRepo{})

	// Equal to the minimum qualifies.
	_, discount, err := svc.Quote(context.Background(), "u1", "MIN499", 499)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, discount)

	// One paisa under does not.
	_, _, err = svc.Quote(context.Background(), "u1", "MIN499", 498.99)
	assert.Error(t, err)
}

func TestValidate_FullQuote(t *testing.T) {
	coupon := activeCoupon("SAVE50")
	coupon.DiscountValue = 50

	project := &models.Project{
		BaseModel: models.BaseModel{ID: "p1"},
		Title:     "Smart Irrigation Kit",
		Price:     499,
	}

	svc := NewCouponService(&stubCouponRepo{
		findActiveByCode: func(code string) (*models.Coupon, error) {
			assert.Equal(t, "SAVE50", code)
			return coupon, nil
		},
	}, &stubProjectRepo{
		findByID: func(id string) (*models.Project, error) {
			assert.Equal(t, "p1", id)
			return project, nil
		},
	})

	quote, err := svc.Validate(context.Background(), "u1", &dto.ValidateCouponRequest{
		Code:      "SAVE50",
		ProjectID: "p1",
	})
	assert.NoError(t, err)
	assert.Equal(t, 499.0, quote.OriginalAmount)
	assert.Equal(t, 50.0, quote.DiscountAmount)
	assert.Equal(t, 449.0, quote.FinalAmount)
	assert.Equal(t, "fixed", quote.DiscountType)
}

func TestValidate_ExpiredCouponLooksUnknown(t *testing.T) {
	// The repository filters expired coupons in SQL, so the service
	// sees not-found and answers with the same error as a bad code.
	svc := NewCouponService(&stubCouponRepo{
		findActiveByCode: func(string) (*models.Coupon, error) {
			return nil, repositories.ErrCouponNotFound
		},
	}, &stubProjectRepo{
		findByID: func(string) (*models.Project, error) {
			return &models.Project{BaseModel: models.BaseModel{ID: "p1"}, Price: 499}, nil
		},
	})

	_, err := svc.Validate(context.Background(), "u1", &dto.ValidateCouponRequest{
		Code:      "EXPIRED",
		ProjectID: "p1",
	})
	assert.ErrorIs(t, err, apperrors.ErrCouponNotFound)
}
