package models

import (
	"time"
)

// Order statuses, forward-only: queued -> in_progress -> delivered.
const (
	StatusQueued     = "queued"
	StatusInProgress = "in_progress"
	StatusDelivered  = "delivered"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	ClientID   uint        `gorm:"not null;index" json:"client_id"`
	Status     string      `gorm:"type:varchar(20);not null;default:'queued'" json:"status"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

// NextStatus returns the status that follows s. Delivered is terminal and
// maps to itself.
func NextStatus(s string) string {
	switch s {
	case StatusQueued:
		return StatusInProgress
	case StatusInProgress:
		return StatusDelivered
	default:
		return StatusDelivered
	}
}

// Deletable reports whether an order in status s may still be deleted.
func Deletable(s string) bool {
	return s == StatusQueued || s == StatusInProgress
}
