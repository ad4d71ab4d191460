package serviceImp

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"agridev/entities"
	"agridev/pkg/auth"
	"agridev/pkg/auth/repository"
	"agridev/pkg/auth/service"
	"agridev/pkg/errs"
)

type authSvc struct {
	r      repository.AuthRepository
	secret string
}

func New(r repository.AuthRepository, secret string) service.AuthService {
	return &authSvc{r: r, secret: secret}
}

func (s *authSvc) Register(in service.RegisterInput) (*service.Session, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errs.Invalid("Name, email and password are required")
	}

	existing, err := s.r.ByEmail(in.Email)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}
	if existing != nil {
		return nil, errs.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}

	u := &entities.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Type:     entities.UserTypePlain,
		Role:     in.Role,
	}
	if err := s.r.Create(u); err != nil {
		return nil, errs.Internal("Server error", err)
	}

	token, err := auth.SignToken(s.secret, u, time.Hour)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}
	return &service.Session{User: u, Token: token}, nil
}

func (s *authSvc) Login(in service.LoginInput) (*service.Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, errs.Invalid("Email and password are required")
	}

	u, err := s.r.ByEmailWithCompany(in.Email)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}
	if u == nil {
		return nil, errs.Unauthorized("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, errs.Unauthorized("Invalid email or password")
	}

	token, err := auth.SignToken(s.secret, u, 23*time.Hour)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}
	return &service.Session{User: u, Token: token}, nil
}

func (s *authSvc) Profile(uid uint) (*entities.User, error) {
	u, err := s.r.ByID(uid)
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}
	if u == nil {
		return nil, errs.NotFound("User not found")
	}
	return u, nil
}
