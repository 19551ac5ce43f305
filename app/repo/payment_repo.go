package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(p *models.Payment) error { return r.db.Create(p).Error }

func (r *PaymentRepository) FindByID(id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListAll() ([]models.Payment, error) {
	var payments []models.Payment
	return payments, r.db.Find(&payments).Error
}
