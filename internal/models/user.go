package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Name         string   `gorm:"type:varchar(100);not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user';index"`

	// Relations
	Orders   []Order    `gorm:"foreignKey:UserID"`
	Reviews  []Review   `gorm:"foreignKey:UserID"`
	Wishlist []Wishlist `gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
