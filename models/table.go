package models

import "time"

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_room_table" json:"table_number"`
	RoomName    *string   `gorm:"type:varchar(100);uniqueIndex:idx_room_table" json:"room_name"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	QRCodeURL   *string   `gorm:"type:varchar(255)" json:"qr_code_url"`
	IsOccupied  bool      `gorm:"not null;default:false" json:"is_occupied"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
