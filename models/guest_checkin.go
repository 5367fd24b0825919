package models

import "time"

// GuestCheckin records a seating. At most one of ReservationID and
// WaitingGuestID is set; both nil means a walk-in seated directly.
type GuestCheckin struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReservationID  *uint     `gorm:"index" json:"reservation_id"`
	WaitingGuestID *uint     `gorm:"index" json:"waiting_guest_id"`
	TableID        uint      `gorm:"not null;index" json:"table_id"`
	Table          Table     `gorm:"foreignKey:TableID" json:"-"`
	StaffID        uint      `gorm:"not null" json:"staff_id"`
	Staff          Staff     `gorm:"foreignKey:StaffID" json:"-"`
	GuestName      string    `gorm:"type:varchar(255);not null" json:"guest_name"`
	PartySize      int       `gorm:"not null" json:"party_size"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	CheckedInAt    time.Time `gorm:"not null" json:"checked_in_at"`
}
