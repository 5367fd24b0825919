package models

import "time"

const (
	ReservationConfirmed = "confirmed"
	ReservationSeated    = "seated"
	ReservationCancelled = "cancelled"
	ReservationNoShow    = "no_show"
)

type Reservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	GuestName       string     `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestPhone      *string    `gorm:"type:varchar(50)" json:"guest_phone"`
	GuestEmail      *string    `gorm:"type:varchar(255)" json:"guest_email"`
	PartySize       int        `gorm:"not null" json:"party_size"`
	ReservationDate string     `gorm:"type:varchar(10);not null;index" json:"reservation_date"`
	ReservationTime string     `gorm:"type:varchar(5);not null" json:"reservation_time"`
	Status          string     `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	TableID         *uint      `gorm:"index" json:"table_id"`
	SpecialRequests *string    `gorm:"type:text" json:"special_requests"`
	SeatedAt        *time.Time `json:"seated_at"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}
