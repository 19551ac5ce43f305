package models

import "time"

type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Method    string    `gorm:"size:64" json:"method"`
	CreatedAt time.Time `json:"created_at"`
}
