package models

import "time"

// StaffPerformance holds one row per staff member per calendar date.
// Date uses the YYYY-MM-DD form so it groups and compares as a plain string.
type StaffPerformance struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	StaffID              uint      `gorm:"not null;uniqueIndex:idx_staff_date" json:"staff_id"`
	Staff                Staff     `gorm:"foreignKey:StaffID" json:"-"`
	Date                 string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_staff_date" json:"date"`
	OrdersServed         int       `gorm:"not null;default:0" json:"orders_served"`
	TotalSales           float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_sales"`
	TablesServed         int       `gorm:"not null;default:0" json:"tables_served"`
	ShiftDurationMinutes int       `gorm:"not null;default:0" json:"shift_duration_minutes"`
	CustomerRatingAvg    float64   `gorm:"type:decimal(3,2);not null;default:0.00" json:"customer_rating_avg"`
	TipsEarned           float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"tips_earned"`
	CreatedAt            time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null" json:"updated_at"`
}

func (StaffPerformance) TableName() string { return "staff_performance" }
