package models

import "gorm.io/datatypes"

// Project is a sellable catalog item. Price is in major currency units
// (rupees); the paise conversion happens at the payment boundary.
type Project struct {
	BaseModel
	Title         string         `gorm:"not null"`
	Description   string         `gorm:"type:text;not null"`
	Price         float64        `gorm:"type:decimal(10,2);not null;index"`
	Thumbnail     string         `gorm:"type:varchar(500)"`
	ContentURL    string         `gorm:"type:varchar(500)"`
	Category      string         `gorm:"type:varchar(100);default:'IoT';index"`
	Difficulty    string         `gorm:"type:varchar(50)"`
	Features      datatypes.JSON `gorm:"type:jsonb"`
	TechStack     datatypes.JSON `gorm:"type:jsonb"`
	AverageRating float64        `gorm:"type:decimal(3,1);default:0"`
	ReviewsCount  int64          `gorm:"default:0"`
}
