package service

import (
	"agridev/entities"
	farmerSvc "agridev/pkg/farmer/service"
)

// CreateCompanyInput arrives as multipart form data; the logo reference is
// produced by the upload collaborator before the service runs.
type CreateCompanyInput struct {
	Name      string
	Email     string
	Password  string
	TIN       string
	LogoRef   string
	Locations []farmerSvc.NewLocation
}

type CompanyService interface {
	Create(in CreateCompanyInput) (*entities.User, *entities.Company, error)
	All() ([]entities.Company, error)
	ByID(id uint) (*entities.Company, error)
	Delete(id uint) error
}
