package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type ContactRepository struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{db: db} }

func (r *ContactRepository) Create(c *models.Contact) error { return r.db.Create(c).Error }

func (r *ContactRepository) ListAll() ([]models.Contact, error) {
	var contacts []models.Contact
	return contacts, r.db.Find(&contacts).Error
}
