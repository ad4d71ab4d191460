package repository

import "agridev/entities"

type AuthRepository interface {
	ByEmail(email string) (*entities.User, error)
	ByEmailWithCompany(email string) (*entities.User, error)
	ByID(id uint) (*entities.User, error)
	Create(u *entities.User) error
}
