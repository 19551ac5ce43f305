package services

import (
	"errors"

	"monresto/app/models"
	"monresto/app/repo"

	"gorm.io/gorm"
)

type CategoryService struct{ categories *repo.CategoryRepository }

func NewCategoryService(categories *repo.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(c *models.Category) error { return s.categories.Create(c) }

func (s *CategoryService) Update(id uint, name string) (*models.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	c.Name = name
	return c, s.categories.Save(c)
}

func (s *CategoryService) Delete(id uint) error {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return asNotFound(err)
	}
	return s.categories.Delete(c)
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return c, nil
}

func (s *CategoryService) List() ([]models.Category, error) { return s.categories.ListAll() }

type ArticleService struct{ articles *repo.ArticleRepository }

func NewArticleService(articles *repo.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

func (s *ArticleService) Create(a *models.Article) error { return s.articles.Create(a) }

func (s *ArticleService) Update(id uint, name, description string, price float64, categoryID uint) (*models.Article, error) {
	a, err := s.articles.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	a.Name = name
	a.Description = description
	a.Price = price
	a.CategoryID = categoryID
	a.Category = nil
	return a, s.articles.Save(a)
}

func (s *ArticleService) Delete(id uint) error {
	a, err := s.articles.FindByID(id)
	if err != nil {
		return asNotFound(err)
	}
	return s.articles.Delete(a)
}

func (s *ArticleService) Get(id uint) (*models.Article, error) {
	a, err := s.articles.FindByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return a, nil
}

func (s *ArticleService) List() ([]models.Article, error) { return s.articles.ListAll() }

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
