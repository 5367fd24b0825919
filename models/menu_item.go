package models

import "time"

type MenuItem struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	CategoryID      uint         `gorm:"not null" json:"category_id"`
	Category        MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name            string       `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string      `gorm:"type:text" json:"description"`
	Price           float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        *string      `gorm:"type:varchar(255)" json:"image_url"`
	PreparationTime int          `gorm:"not null;default:15" json:"preparation_time"`
	IsAvailable     bool         `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`

	// Filled by the listing join, not a column.
	CategoryName string `gorm:"->;-:migration" json:"category_name,omitempty"`
}
