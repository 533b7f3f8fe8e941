package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/repositories"
	"inovitaz_backend/internal/services/dto"
	"inovitaz_backend/pkg/apperrors"
)

type CouponService interface {
	// Validate runs the full rule chain for a user and project, without
	// reserving anything, and returns the priced quote.
	Validate(ctx context.Context, userID string, req *dto.ValidateCouponRequest) (*dto.CouponQuote, error)

	// Quote is Validate for an already-loaded amount; shared with
	// checkout so both paths price identically.
	Quote(ctx context.Context, userID, code string, amount float64) (*models.Coupon, float64, error)

	Create(ctx context.Context, req *dto.CreateCouponRequest) (*dto.CouponResponse, error)
	List(ctx context.Context, page, limit int) (*dto.CouponListResponse, error)
}

type CouponServiceImpl struct {
	couponRepo  repositories.CouponRepository
	projectRepo repositories.ProjectRepository
}

func NewCouponService(couponRepo repositories.CouponRepository, projectRepo repositories.ProjectRepository) CouponService {
	return &CouponServiceImpl{couponRepo: couponRepo, projectRepo: projectRepo}
}

func (s *CouponServiceImpl) Validate(ctx context.Context, userID string, req *dto.ValidateCouponRequest) (*dto.CouponQuote, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	coupon, discount, err := s.Quote(ctx, userID, req.Code, project.Price)
	if err != nil {
		return nil, err
	}

	return &dto.CouponQuote{
		Code:           coupon.Code,
		Description:    coupon.Description,
		DiscountType:   string(coupon.DiscountType),
		OriginalAmount: project.Price,
		DiscountAmount: discount,
		FinalAmount:    roundMoney(project.Price - discount),
	}, nil
}

// Quote checks the rules in a fixed order so the client always sees the
// most actionable failure: existence and window, then global usage cap,
// then minimum purchase, then per-user usage.
func (s *CouponServiceImpl) Quote(ctx context.Context, userID, code string, amount float64) (*models.Coupon, float64, error) {
	coupon, err := s.couponRepo.FindActiveByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrCouponNotFound) {
			return nil, 0, apperrors.ErrCouponNotFound
		}
		return nil, 0, apperrors.InternalError(err)
	}

	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, 0, apperrors.ErrCouponUsageLimit
	}

	amountPaise := int64(math.Round(amount * 100))
	if amountPaise < coupon.MinPurchaseAmount {
		minRupees := float64(coupon.MinPurchaseAmount) / 100
		return nil, 0, apperrors.ErrCouponMinPurchase(
			fmt.Sprintf("Minimum purchase of ₹%.0f required for this coupon", minRupees))
	}

	used, err := s.couponRepo.HasUserUsed(coupon.ID, userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	if used {
		return nil, 0, apperrors.ErrCouponAlreadyUsed
	}

	discount := ComputeDiscount(coupon, amount)
	logger.CtxInfo(ctx, "coupon quoted", "code", coupon.Code, "amount", amount, "discount", discount)
	return coupon, discount, nil
}

// ComputeDiscount prices a coupon against a rupee amount. Percentage
// discounts are clamped to MaxDiscountAmount (stored in paise); no
// discount ever exceeds the amount itself.
func ComputeDiscount(coupon *models.Coupon, amount float64) float64 {
	var discount float64
	switch coupon.DiscountType {
	case models.DiscountTypePercentage:
		discount = amount * coupon.DiscountValue / 100
		if coupon.MaxDiscountAmount != nil {
			maxDiscount := float64(*coupon.MaxDiscountAmount) / 100
			if discount > maxDiscount {
				discount = maxDiscount
			}
		}
	case models.DiscountTypeFixed:
		discount = coupon.DiscountValue
	}

	if discount > amount {
		discount = amount
	}
	if discount < 0 {
		discount = 0
	}
	return roundMoney(discount)
}

func (s *CouponServiceImpl) Create(ctx context.Context, req *dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	coupon := &models.Coupon{
		Code:              req.Code,
		Description:       req.Description,
		DiscountType:      models.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		ValidFrom:         time.Now(),
		ValidUntil:        req.ValidUntil,
		IsActive:          true,
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}

	if coupon.DiscountType == models.DiscountTypePercentage && coupon.DiscountValue > 100 {
		return nil, apperrors.NewBadRequestError("Percentage discount cannot exceed 100")
	}

	if err := s.couponRepo.Create(coupon); err != nil {
		if errors.Is(err, repositories.ErrCouponAlreadyExists) {
			return nil, apperrors.NewConflictError("coupons", "A coupon with this code already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "coupon created", "code", coupon.Code, "type", coupon.DiscountType)
	resp := dto.ToCouponResponse(coupon)
	return &resp, nil
}

func (s *CouponServiceImpl) List(ctx context.Context, page, limit int) (*dto.CouponListResponse, error) {
	coupons, total, err := s.couponRepo.FindAll(page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CouponResponse, 0, len(coupons))
	for i := range coupons {
		items = append(items, dto.ToCouponResponse(&coupons[i]))
	}
	return &dto.CouponListResponse{
		Coupons:    items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
