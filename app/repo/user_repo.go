package repo

import (
	"monresto/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) Save(u *models.User) error { return r.db.Save(u).Error }

func (r *UserRepository) Delete(u *models.User) error { return r.db.Delete(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
}

// CountOthersByUsernameOrEmail counts users holding the username or email
// under a different id, for the update uniqueness check.
func (r *UserRepository) CountOthersByUsernameOrEmail(id uint, username, email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, id).
		Count(&count).Error
}

func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	return users, r.db.Find(&users).Error
}
