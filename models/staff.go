package models

import "time"

type Staff struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"type:varchar(50);unique;not null" json:"employee_id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email      *string   `gorm:"type:varchar(255);index" json:"email"`
	Phone      *string   `gorm:"type:varchar(50)" json:"phone"`
	Role       string    `gorm:"type:varchar(50);not null" json:"role"`
	Pin        *string   `gorm:"type:varchar(10)" json:"-"`
	Password   string    `gorm:"type:varchar(255)" json:"-"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
