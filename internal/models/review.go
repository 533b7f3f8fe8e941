package models

type Review struct {
	BaseModel
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_project"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_project"`
	OrderID   string `gorm:"type:uuid;not null"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `gorm:"type:text"`

	// Relations
	User    User    `gorm:"foreignKey:UserID"`
	Project Project `gorm:"foreignKey:ProjectID"`
}
