package models

import "time"

// Coupon holds discount rules. MinPurchaseAmount and MaxDiscountAmount
// are stored in paise; DiscountValue is a percentage number or a fixed
// rupee amount depending on DiscountType.
type Coupon struct {
	BaseModel
	Code              string       `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description       string       `gorm:"type:varchar(255)"`
	DiscountType      DiscountType `gorm:"type:varchar(20);not null"`
	DiscountValue     float64      `gorm:"type:decimal(10,2);not null"`
	MinPurchaseAmount int64        `gorm:"default:0"`
	MaxDiscountAmount *int64
	UsageLimit        *int64
	UsedCount         int64     `gorm:"default:0"`
	ValidFrom         time.Time `gorm:"default:now()"`
	ValidUntil        *time.Time
	IsActive          bool `gorm:"default:true"`
}

// CouponUsage is an append-only redemption record. The unique
// (coupon, user) index is what enforces one redemption per user even
// under concurrent verification calls.
type CouponUsage struct {
	BaseModel
	CouponID       string `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_user"`
	UserID         string `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_user"`
	OrderID        string `gorm:"type:uuid;not null"`
	DiscountAmount int64  `gorm:"not null"` // paise

	Coupon Coupon `gorm:"foreignKey:CouponID"`
}
