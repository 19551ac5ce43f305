package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null" json:"user_id"`
	Total      float64     `json:"total"`
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"order_items"`
	CreatedAt  time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"not null" json:"order_id"`
	ArticleID uint     `gorm:"not null" json:"article_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Article   *Article `json:"article,omitempty"`
}
