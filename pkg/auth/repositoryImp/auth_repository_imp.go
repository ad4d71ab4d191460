package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/auth/repository"
)

type authRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &authRepo{db} }

func (r *authRepo) ByEmail(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepo) ByEmailWithCompany(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Preload("Company").Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepo) ByID(id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepo) Create(u *entities.User) error { return r.db.Create(u).Error }
