package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(50);unique;not null" json:"order_number"`
	WaiterID    uint        `gorm:"not null;index" json:"waiter_id"`
	Waiter      Staff       `gorm:"foreignKey:WaiterID" json:"-"`
	TableID     *uint       `gorm:"index" json:"table_id"`
	Table       *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}
