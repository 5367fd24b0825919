package models

import "time"

const (
	WaitingGuestWaiting = "waiting"
	WaitingGuestSeated  = "seated"
)

type WaitingGuest struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	GuestName            string     `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestPhone           *string    `gorm:"type:varchar(50)" json:"guest_phone"`
	PartySize            int        `gorm:"not null" json:"party_size"`
	ArrivedAt            time.Time  `gorm:"not null" json:"arrived_at"`
	EstimatedWaitMinutes int        `gorm:"not null;default:15" json:"estimated_wait_minutes"`
	Status               string     `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	TableID              *uint      `gorm:"index" json:"table_id"`
	Notes                *string    `gorm:"type:text" json:"notes"`
	SeatedAt             *time.Time `json:"seated_at"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}
