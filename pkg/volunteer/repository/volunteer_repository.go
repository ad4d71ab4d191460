package repository

import "agridev/entities"

type VolunteerRepository interface {
	UserByEmail(email string) (*entities.User, error)
	// CreateWithLocations writes the volunteer user and location rows in one
	// transaction.
	CreateWithLocations(u *entities.User, locations []entities.Location) error
	AllVolunteers() ([]entities.User, error)
	ByID(id uint) (*entities.User, error)
	// Delete removes the user's locations and the user in one transaction.
	Delete(id uint) error
}
