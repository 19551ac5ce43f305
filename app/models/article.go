package models

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	Category    *Category `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}
