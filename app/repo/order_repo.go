package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

// Create persists the order together with its items in one transaction.
func (r *OrderRepository) Create(o *models.Order) error { return r.db.Create(o).Error }

func (r *OrderRepository) Delete(o *models.Order) error {
	return r.db.Select("OrderItems").Delete(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("OrderItems.Article").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	return orders, r.db.Preload("OrderItems").Find(&orders).Error
}
