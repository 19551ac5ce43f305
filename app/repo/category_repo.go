package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) Create(c *models.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepository) Save(c *models.Category) error { return r.db.Save(c).Error }

func (r *CategoryRepository) Delete(c *models.Category) error { return r.db.Delete(c).Error }

func (r *CategoryRepository) FindByID(id uint) (*models.Category, error) {
	var c models.Category
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) ListAll() ([]models.Category, error) {
	var categories []models.Category
	return categories, r.db.Find(&categories).Error
}
