package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type ArticleRepository struct{ db *gorm.DB }

func NewArticleRepository(db *gorm.DB) *ArticleRepository { return &ArticleRepository{db: db} }

func (r *ArticleRepository) Create(a *models.Article) error { return r.db.Create(a).Error }

func (r *ArticleRepository) Save(a *models.Article) error { return r.db.Save(a).Error }

func (r *ArticleRepository) Delete(a *models.Article) error { return r.db.Delete(a).Error }

func (r *ArticleRepository) FindByID(id uint) (*models.Article, error) {
	var a models.Article
	if err := r.db.Preload("Category").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) ListAll() ([]models.Article, error) {
	var articles []models.Article
	return articles, r.db.Preload("Category").Find(&articles).Error
}
