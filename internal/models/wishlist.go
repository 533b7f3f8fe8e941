package models

type Wishlist struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_project"`
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_project"`

	Project Project `gorm:"foreignKey:ProjectID"`
}
