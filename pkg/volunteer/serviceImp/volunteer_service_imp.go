package serviceImp

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"agridev/entities"
	"agridev/pkg/auth"
	"agridev/pkg/errs"
	"agridev/pkg/volunteer/repository"
	"agridev/pkg/volunteer/service"
)

type volunteerSvc struct {
	r      repository.VolunteerRepository
	secret string
}

func New(r repository.VolunteerRepository, secret string) service.VolunteerService {
	return &volunteerSvc{r: r, secret: secret}
}

func (s *volunteerSvc) Create(in service.CreateVolunteerInput) (*service.Session, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errs.Invalid("Name, email and password are required")
	}

	existing, err := s.r.UserByEmail(in.Email)
	if err != nil {
		return nil, errs.Internal("Failed to create volunteer", err)
	}
	if existing != nil {
		return nil, errs.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("Failed to create volunteer", err)
	}

	role := entities.RoleVolunteer
	u := &entities.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Type:     entities.UserTypePlain,
		Role:     &role,
	}

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

	if err := s.r.CreateWithLocations(u, locations); err != nil {
		return nil, errs.Internal("Failed to create volunteer", err)
	}
	u.Locations = locations

	token, err := auth.SignToken(s.secret, u, time.Hour)
	if err != nil {
		return nil, errs.Internal("Failed to create volunteer", err)
	}
	return &service.Session{User: u, Token: token}, nil
}

func (s *volunteerSvc) All() ([]entities.User, error) {
	out, err := s.r.AllVolunteers()
	if err != nil {
		return nil, errs.Internal("Failed to retrieve volunteers", err)
	}
	return out, nil
}

func (s *volunteerSvc) ByID(id uint) (*entities.User, error) {
	u, err := s.r.ByID(id)
	if err != nil {
		return nil, errs.Internal("Failed to retrieve volunteer", err)
	}
	if u == nil || u.Role == nil || *u.Role != entities.RoleVolunteer {
		return nil, errs.NotFound("Volunteer not found")
	}
	return u, nil
}

func (s *volunteerSvc) Delete(id uint) error {
	if _, err := s.ByID(id); err != nil {
		return err
	}
	if err := s.r.Delete(id); err != nil {
		return errs.Internal("Failed to delete volunteer", err)
	}
	return nil
}
