package serviceImp

import (
	"golang.org/x/crypto/bcrypt"

	"agridev/entities"
	"agridev/pkg/company/repository"
	"agridev/pkg/company/service"
	"agridev/pkg/errs"
)

type companySvc struct{ r repository.CompanyRepository }

func New(r repository.CompanyRepository) service.CompanyService { return &companySvc{r} }

func (s *companySvc) Create(in service.CreateCompanyInput) (*entities.User, *entities.Company, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.TIN == "" {
		return nil, nil, errs.Invalid("Name, email, password, and TIN are required")
	}

	existing, err := s.r.UserByEmail(in.Email)
	if err != nil {
		return nil, nil, errs.Internal("Failed to create company", err)
	}
	if existing != nil {
		return nil, nil, errs.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errs.Internal("Failed to create company", err)
	}

	u := &entities.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Type:     entities.UserTypeCompany,
	}
	comp := &entities.Company{TIN: in.TIN, Logo: in.LogoRef}

	locations := make([]entities.Location, 0, len(in.Locations))
	for _, loc := range in.Locations {
		locations = append(locations, entities.Location{
			Province: loc.Province,
			District: loc.District,
			Sector:   loc.Sector,
			Cell:     loc.Cell,
			Village:  loc.Village,
		})
	}

	if err := s.r.CreateAggregate(u, comp, locations); err != nil {
		return nil, nil, errs.Internal("Failed to create company", err)
	}
	comp.Locations = locations
	return u, comp, nil
}

func (s *companySvc) All() ([]entities.Company, error) {
	out, err := s.r.All()
	if err != nil {
		return nil, errs.Internal("Failed to retrieve companies", err)
	}
	return out, nil
}

func (s *companySvc) ByID(id uint) (*entities.Company, error) {
	c, err := s.r.ByID(id)
	if err != nil {
		return nil, errs.Internal("Failed to fetch company", err)
	}
	if c == nil {
		return nil, errs.NotFound("Company not found")
	}
	return c, nil
}

func (s *companySvc) Delete(id uint) error {
	c, err := s.r.ByID(id)
	if err != nil {
		return errs.Internal("Failed to delete company", err)
	}
	if c == nil {
		return errs.NotFound("Company not found")
	}
	if err := s.r.Delete(c); err != nil {
		return errs.Internal("Failed to delete company", err)
	}
	return nil
}
