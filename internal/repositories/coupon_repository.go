package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inovitaz_backend/internal/models"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon code already exists")
)

type CouponRepository interface {
	FindByCode(code string) (*models.Coupon, error)
	FindActiveByCode(code string) (*models.Coupon, error)
	HasUserUsed(couponID, userID string) (bool, error)
	Create(coupon *models.Coupon) error
	FindAll(page, pageSize int) ([]models.Coupon, int64, error)
	SetActive(id string, active bool) error
}

type CouponRepositoryImpl struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &CouponRepositoryImpl{db: db}
}

func (r *CouponRepositoryImpl) FindByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindActiveByCode only matches coupons inside their validity window.
// The window check lives in SQL so "not yet valid" and "expired" look
// the same as "no such code" to the caller.
func (r *CouponRepositoryImpl) FindActiveByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("code = ? AND is_active = true", code).
		Where("valid_from <= now()").
		Where("valid_until IS NULL OR valid_until >= now()").
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepositoryImpl) HasUserUsed(couponID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *CouponRepositoryImpl) Create(coupon *models.Coupon) error {
	err := r.db.Create(coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCouponAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CouponRepositoryImpl) FindAll(page, pageSize int) ([]models.Coupon, int64, error) {
	var total int64
	if err := r.db.Model(&models.Coupon{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []models.Coupon
	err := r.db.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&coupons).Error
	return coupons, total, err
}

func (r *CouponRepositoryImpl) SetActive(id string, active bool) error {
	result := r.db.Model(&models.Coupon{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}
