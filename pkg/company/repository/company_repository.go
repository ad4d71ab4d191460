package repository

import "agridev/entities"

type CompanyRepository interface {
	UserByEmail(email string) (*entities.User, error)
	// CreateAggregate writes the user, the company and its locations in one
	// transaction.
	CreateAggregate(u *entities.User, comp *entities.Company, locations []entities.Location) error
	All() ([]entities.Company, error)
	ByID(id uint) (*entities.Company, error)
	// Delete removes the company's locations, the company and its owning
	// user in one transaction.
	Delete(comp *entities.Company) error
}
