package models

// Order is a single purchase attempt. A project counts as owned by a
// user iff an order with status paid exists for that (user, project)
// pair. Amounts are rupees; OriginalAmount and DiscountAmount are kept
// for audit even though Amount is what was charged.
type Order struct {
	BaseModel
	UserID            string      `gorm:"type:uuid;not null;index"`
	ProjectID         string      `gorm:"type:uuid;not null;index"`
	RazorpayOrderID   string      `gorm:"type:varchar(100);uniqueIndex"`
	RazorpayPaymentID string      `gorm:"type:varchar(100)"`
	Amount            float64     `gorm:"type:decimal(10,2);not null"`
	OriginalAmount    float64     `gorm:"type:decimal(10,2);not null"`
	DiscountAmount    float64     `gorm:"type:decimal(10,2);default:0"`
	CouponCode        *string     `gorm:"type:varchar(50)"`
	Status            OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	// Relations
	User    User    `gorm:"foreignKey:UserID"`
	Project Project `gorm:"foreignKey:ProjectID"`
}
