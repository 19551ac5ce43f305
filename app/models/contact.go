package models

import "time"

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:191;not null" json:"name"`
	Email     string    `gorm:"size:191;not null" json:"email"`
	Message   string    `gorm:"size:2048;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
