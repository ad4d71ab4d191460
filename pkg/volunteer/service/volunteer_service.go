package service

import (
	"agridev/entities"
	farmerSvc "agridev/pkg/farmer/service"
)

type CreateVolunteerInput struct {
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Password  string                  `json:"password"`
	Locations []farmerSvc.NewLocation `json:"locations,omitempty"`
}

type Session struct {
	User  *entities.User
	Token string
}

type VolunteerService interface {
	Create(in CreateVolunteerInput) (*Session, error)
	All() ([]entities.User, error)
	ByID(id uint) (*entities.User, error)
	Delete(id uint) error
}
