package models

import (
	"time"
)

type Client struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Address *string `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone   *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	// SessionKey ties a client record to an external identity; unique when set.
	SessionKey *string   `gorm:"type:varchar(255);uniqueIndex" json:"session_key,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
